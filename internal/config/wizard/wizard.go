// Package wizard implements the interactive settings wizard behind
// `kamodoctl init`. It prompts for the environment name, Python version,
// and package selection, and writes the resulting settings file.
package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/ccmc-tools/kamodoctl/internal/config"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	// Environment identity
	EnvName       string
	PythonVersion string

	// Packages selected from the default list
	SelectedPackages []string

	// ExtraPackages is a comma-separated free-form addition
	ExtraPackages string
}

// Run runs the interactive settings wizard. The context is used for
// cancellation support (e.g., Ctrl+C).
func Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := runEnvironmentGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	if err := runPackagesGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("packages: %w", err)
	}

	return result, nil
}

// ToConfig converts the wizard answers into a settings Config.
func (r *Result) ToConfig() *config.Config {
	cfg := config.Default()
	cfg.EnvName = r.EnvName
	cfg.PythonVersion = r.PythonVersion

	packages := append([]string{}, r.SelectedPackages...)
	for _, extra := range strings.Split(r.ExtraPackages, ",") {
		extra = strings.TrimSpace(extra)
		if extra != "" {
			packages = append(packages, extra)
		}
	}
	cfg.Packages = packages

	return cfg
}
