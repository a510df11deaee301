package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ccmc-tools/kamodoctl/internal/util/prerequisites"
)

// checkAllTools checks every tool any pipeline needs. Variable for test injection.
var checkAllTools = func() *prerequisites.CheckResults {
	return prerequisites.Check(prerequisites.AllTools())
}

var (
	doctorOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	doctorFailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	doctorWarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	doctorDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Doctor checks that the tools the install and cleanup pipelines depend on
// are available, printing a report for each. It returns an error when a
// required tool is missing.
func Doctor() error {
	results := checkAllTools()
	fmt.Println(renderDoctorReport(results))
	if results.HasErrors() {
		return results.Error()
	}
	return nil
}

func renderDoctorReport(results *prerequisites.CheckResults) string {
	var b strings.Builder
	b.WriteString("Checking required tools:\n\n")

	for _, result := range results.Results {
		switch {
		case result.Found:
			b.WriteString(fmt.Sprintf("  %s %-8s %s\n", doctorOKStyle.Render("[OK]"), result.Tool.Name, doctorDimStyle.Render(result.Path)))
			if result.Version != "" {
				b.WriteString(doctorDimStyle.Render(fmt.Sprintf("       %s", result.Version)) + "\n")
			}
		case result.Tool.Required:
			b.WriteString(fmt.Sprintf("  %s %-8s not found\n", doctorFailStyle.Render("[!!]"), result.Tool.Name))
			if result.Tool.InstallURL != "" {
				b.WriteString(doctorDimStyle.Render(fmt.Sprintf("       install: %s", result.Tool.InstallURL)) + "\n")
			}
		default:
			b.WriteString(fmt.Sprintf("  %s %-8s not found (optional)\n", doctorWarnStyle.Render("[--]"), result.Tool.Name))
		}
	}

	if results.HasErrors() {
		b.WriteString("\n" + doctorFailStyle.Render("Some required tools are missing."))
	} else {
		b.WriteString("\n" + doctorOKStyle.Render("All required tools are available."))
	}
	return b.String()
}
