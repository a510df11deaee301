// Package prerequisites provides utilities for checking required client
// tools before a pipeline is started.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"
)

// Tool represents a client tool that may be required.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// InstallURL provides a URL for installation instructions.
	InstallURL string
}

// InstallTools returns the tools the install pipeline needs.
func InstallTools() []Tool {
	return []Tool{
		{
			Name:        "mamba",
			Required:    true,
			Description: "Creates the Conda environment and installs packages",
			InstallURL:  "https://mamba.readthedocs.io/en/latest/installation/mamba-installation.html",
		},
		{
			Name:        "conda",
			Required:    true,
			Description: "Runs commands inside the environment (conda run)",
			InstallURL:  "https://docs.conda.io/projects/conda/en/latest/user-guide/install/",
		},
		{
			Name:        "git",
			Required:    true,
			Description: "Clones the Kamodo source repository",
			InstallURL:  "https://git-scm.com/downloads",
		},
	}
}

// CleanupTools returns the tools the cleanup pipeline needs.
func CleanupTools() []Tool {
	return []Tool{
		{
			Name:        "conda",
			Required:    true,
			Description: "Removes the Conda environment",
			InstallURL:  "https://docs.conda.io/projects/conda/en/latest/user-guide/install/",
		},
		{
			Name:        "jupyter",
			Required:    true,
			Description: "Deregisters the notebook kernel",
			InstallURL:  "https://jupyter.org/install",
		},
	}
}

// AllTools returns the union of install and cleanup tools, for doctor.
func AllTools() []Tool {
	seen := make(map[string]bool)
	var all []Tool
	for _, tool := range append(InstallTools(), CleanupTools()...) {
		if seen[tool.Name] {
			continue
		}
		seen[tool.Name] = true
		all = append(all, tool)
	}
	return all
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool    Tool
	Found   bool
	Path    string
	Version string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error if any required tools are missing.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.InstallURL))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Check verifies that the specified tools are available.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		path, err := exec.LookPath(tool.Name)
		if err == nil {
			result.Found = true
			result.Path = path
			// Try to get version (best effort)
			result.Version = getToolVersion(tool.Name)
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// getToolVersion attempts to get the version of a tool.
// Returns empty string if version cannot be determined.
func getToolVersion(name string) string {
	// #nosec G204 - name comes from trusted Tool definitions, not user input
	cmd := exec.Command(name, "--version")
	output, err := cmd.Output()
	if err != nil {
		return ""
	}
	lines := strings.Split(string(output), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[0])
}
