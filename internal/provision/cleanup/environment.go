package cleanup

import (
	"fmt"

	"github.com/ccmc-tools/kamodoctl/internal/provision"
)

// EnvironmentStep removes the Conda environment and all its packages.
// A missing environment is treated as success, so cleanup can follow a
// failed or partial install.
type EnvironmentStep struct{}

// Name implements provision.Step.
func (s *EnvironmentStep) Name() string { return "remove-environment" }

// Run implements provision.Step.
func (s *EnvironmentStep) Run(ctx *provision.Context) error {
	cfg := ctx.Config

	exists, err := ctx.Conda.EnvExists(ctx, cfg.EnvName)
	if err != nil {
		return fmt.Errorf("%w: %v", provision.ErrEnvironmentRemoval, err)
	}
	if !exists {
		provision.LogStepSkipped(ctx.Observer, s.Name(), fmt.Sprintf("environment %s does not exist", cfg.EnvName))
		return nil
	}

	if err := ctx.Conda.RemoveEnv(ctx, cfg.EnvName); err != nil {
		return fmt.Errorf("%w: %v", provision.ErrEnvironmentRemoval, err)
	}

	ctx.Observer.Printf("Conda environment %s has been removed", cfg.EnvName)
	return nil
}
