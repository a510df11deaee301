package install

import (
	"fmt"

	"github.com/ccmc-tools/kamodoctl/internal/provision"
)

// EnvironmentStep creates the Conda environment with the configured
// Python version.
type EnvironmentStep struct{}

// Name implements provision.Step.
func (s *EnvironmentStep) Name() string { return "create-environment" }

// Run implements provision.Step.
func (s *EnvironmentStep) Run(ctx *provision.Context) error {
	cfg := ctx.Config
	ctx.Observer.Printf("Creating Conda environment %s (python=%s)", cfg.EnvName, cfg.PythonVersion)

	if err := ctx.Conda.CreateEnv(ctx, cfg.EnvName, cfg.PythonVersion); err != nil {
		return fmt.Errorf("%w: %v", provision.ErrEnvironmentCreation, err)
	}

	ctx.Observer.Printf("Conda environment %s created successfully", cfg.EnvName)
	return nil
}
