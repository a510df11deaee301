package wizard

import (
	"context"
	"fmt"
	"regexp"

	"github.com/charmbracelet/huh"

	"github.com/ccmc-tools/kamodoctl/internal/config"
)

// envNameRegex validates environment names: alphanumeric with dots,
// underscores, and hyphens, no whitespace.
var envNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// pythonVersions are the interpreter versions offered by the wizard.
// Kamodo is validated upstream against 3.7; newer versions are offered
// for experimentation.
var pythonVersions = []string{"3.7", "3.8", "3.9", "3.10"}

// runEnvironmentGroup prompts for the environment name and Python version.
func runEnvironmentGroup(ctx context.Context, result *Result) error {
	result.EnvName = config.DefaultEnvName
	result.PythonVersion = config.DefaultPythonVersion

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Environment Name").
				Description("Name of the Conda environment to create").
				Placeholder(config.DefaultEnvName).
				Value(&result.EnvName).
				Validate(validateEnvName),
			huh.NewSelect[string]().
				Title("Python Version").
				Description("Interpreter version pinned at environment creation").
				Options(huh.NewOptions(pythonVersions...)...).
				Value(&result.PythonVersion),
		).Title("Environment"),
	).RunWithContext(ctx)
}

// runPackagesGroup prompts for the dependency package selection.
func runPackagesGroup(ctx context.Context, result *Result) error {
	defaults := config.DefaultPackages()

	options := make([]huh.Option[string], 0, len(defaults))
	for _, pkg := range defaults {
		options = append(options, huh.NewOption(pkg, pkg).Selected(true))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Packages").
				Description("Scientific-computing packages installed into the environment").
				Options(options...).
				Value(&result.SelectedPackages),
			huh.NewInput().
				Title("Extra Packages (Optional)").
				Description("Comma-separated package names to install in addition").
				Placeholder("numpy, pandas (or leave empty)").
				Value(&result.ExtraPackages),
		).Title("Packages"),
	).RunWithContext(ctx)
}

// validateEnvName checks the environment name format.
func validateEnvName(name string) error {
	if !envNameRegex.MatchString(name) {
		return fmt.Errorf("must be alphanumeric with dots, underscores, or hyphens")
	}
	return nil
}
