package install

import (
	"fmt"

	"github.com/ccmc-tools/kamodoctl/internal/provision"
)

// KernelStep registers the environment as a Jupyter kernel so it appears
// as a selectable interpreter in the notebook front-end. ipykernel is
// installed into the environment first, then the kernelspec is registered
// under the environment name.
type KernelStep struct{}

// Name implements provision.Step.
func (s *KernelStep) Name() string { return "register-kernel" }

// Run implements provision.Step.
func (s *KernelStep) Run(ctx *provision.Context) error {
	cfg := ctx.Config
	ctx.Observer.Printf("Registering Jupyter kernel for environment %s", cfg.EnvName)

	if err := ctx.Conda.InstallPackages(ctx, cfg.EnvName, cfg.Channel, []string{"ipykernel"}); err != nil {
		return fmt.Errorf("%w: %v", provision.ErrKernelRegistration, err)
	}

	err := ctx.Conda.RunIn(ctx, cfg.EnvName,
		"python", "-m", "ipykernel", "install",
		"--user", "--name", cfg.EnvName,
		"--display-name", fmt.Sprintf("Python (%s)", cfg.EnvName),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", provision.ErrKernelRegistration, err)
	}

	ctx.Observer.Printf("Jupyter kernel for environment %s installed successfully", cfg.EnvName)
	return nil
}
