package install

import (
	"fmt"

	"github.com/ccmc-tools/kamodoctl/internal/provision"
)

// PackagesStep installs the configured dependency packages into the
// environment with a single package-manager invocation, preserving the
// configured order for reproducible logs.
type PackagesStep struct{}

// Name implements provision.Step.
func (s *PackagesStep) Name() string { return "install-packages" }

// Run implements provision.Step. An empty package list is a no-op: the
// pipeline continues without invoking the package manager.
func (s *PackagesStep) Run(ctx *provision.Context) error {
	cfg := ctx.Config

	if len(cfg.Packages) == 0 {
		provision.LogStepSkipped(ctx.Observer, s.Name(), "no packages configured")
		return nil
	}

	ctx.Observer.Printf("Installing %d packages into %s from channel %s", len(cfg.Packages), cfg.EnvName, cfg.Channel)

	if err := ctx.Conda.InstallPackages(ctx, cfg.EnvName, cfg.Channel, cfg.Packages); err != nil {
		return fmt.Errorf("%w: %v", provision.ErrDependencyInstall, err)
	}

	ctx.Observer.Printf("Packages installed successfully in environment %s", cfg.EnvName)
	return nil
}
