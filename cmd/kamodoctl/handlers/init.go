package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/ccmc-tools/kamodoctl/internal/config"
	"github.com/ccmc-tools/kamodoctl/internal/config/wizard"
)

// Factory function variables for the init flow - can be replaced in tests.
var (
	runWizard   = wizard.Run
	writeConfig = wizard.WriteConfig

	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}
)

var (
	initTitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	initSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	initDimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Init runs the interactive setup wizard and writes the resulting settings
// file to outputPath.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	fmt.Println(initTitleStyle.Render("kamodoctl setup"))
	fmt.Println(initDimStyle.Render("Answer a few questions to generate a settings file."))
	fmt.Println()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("setup wizard aborted: %w", err)
	}

	cfg := result.ToConfig()
	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	printInitSummary(cfg, outputPath)
	return nil
}

func printInitSummary(cfg *config.Config, outputPath string) {
	fmt.Println()
	fmt.Println(initSuccessStyle.Render(fmt.Sprintf("Settings written to %s", outputPath)))
	fmt.Printf("  environment: %s (python %s)\n", cfg.EnvName, cfg.PythonVersion)
	fmt.Printf("  packages:    %d\n", len(cfg.Packages))
	fmt.Println()
	fmt.Println(initDimStyle.Render("Run 'kamodoctl install' to provision the environment."))
}
