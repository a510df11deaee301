package cleanup

import (
	"fmt"

	"github.com/ccmc-tools/kamodoctl/internal/provision"
)

// KernelStep removes the Jupyter kernel registration for the environment.
// A kernel that was never registered (or already removed) is a no-op.
type KernelStep struct{}

// Name implements provision.Step.
func (s *KernelStep) Name() string { return "deregister-kernel" }

// Run implements provision.Step.
func (s *KernelStep) Run(ctx *provision.Context) error {
	cfg := ctx.Config

	exists, err := ctx.Jupyter.KernelExists(ctx, cfg.EnvName)
	if err != nil {
		return fmt.Errorf("%w: %v", provision.ErrKernelRegistration, err)
	}
	if !exists {
		provision.LogStepSkipped(ctx.Observer, s.Name(), fmt.Sprintf("kernel %s is not registered", cfg.EnvName))
		return nil
	}

	if err := ctx.Jupyter.RemoveKernel(ctx, cfg.EnvName); err != nil {
		return fmt.Errorf("%w: %v", provision.ErrKernelRegistration, err)
	}

	ctx.Observer.Printf("Jupyter kernel %s removed", cfg.EnvName)
	return nil
}
