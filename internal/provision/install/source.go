package install

import (
	"fmt"

	"github.com/ccmc-tools/kamodoctl/internal/provision"
)

// SourceFetchStep clones the Kamodo repository into the configured local
// directory and records the path for the install step.
type SourceFetchStep struct{}

// Name implements provision.Step.
func (s *SourceFetchStep) Name() string { return "fetch-source" }

// Run implements provision.Step.
func (s *SourceFetchStep) Run(ctx *provision.Context) error {
	cfg := ctx.Config
	ctx.Observer.Printf("Cloning %s into %s", cfg.RepoURL, cfg.CloneDir)

	if err := ctx.Git.Clone(ctx, cfg.RepoURL, cfg.CloneDir); err != nil {
		return fmt.Errorf("%w: %v", provision.ErrSourceFetch, err)
	}

	ctx.State.ClonePath = cfg.CloneDir
	ctx.Observer.Printf("Repository cloned successfully")
	return nil
}

// SourceInstallStep installs the cloned source tree into the environment
// in editable mode, so local changes to the checkout take effect without
// reinstalling.
type SourceInstallStep struct{}

// Name implements provision.Step.
func (s *SourceInstallStep) Name() string { return "install-source" }

// Run implements provision.Step.
func (s *SourceInstallStep) Run(ctx *provision.Context) error {
	cfg := ctx.Config

	clonePath := ctx.State.ClonePath
	if clonePath == "" {
		clonePath = cfg.CloneDir
	}

	ctx.Observer.Printf("Installing Kamodo from %s into %s", clonePath, cfg.EnvName)

	if err := ctx.Conda.RunIn(ctx, cfg.EnvName, "pip", "install", "-e", clonePath); err != nil {
		return fmt.Errorf("%w: %v", provision.ErrSourceInstall, err)
	}

	ctx.Observer.Printf("Kamodo installed successfully in %s", cfg.EnvName)
	return nil
}
