package conda

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/ccmc-tools/kamodoctl/internal/platform/execx"
)

const (
	mambaBin = "mamba"
	condaBin = "conda"
)

// CLI implements Client by shelling out to the mamba and conda binaries.
type CLI struct {
	run execx.Runner
}

// NewCLI returns a Client backed by the real mamba/conda binaries.
func NewCLI() *CLI {
	return &CLI{run: execx.Run}
}

// NewCLIWithRunner returns a Client using a custom command runner.
// Used by tests to capture invocations without the real binaries.
func NewCLIWithRunner(run execx.Runner) *CLI {
	return &CLI{run: run}
}

// CreateEnv implements Client.
func (c *CLI) CreateEnv(ctx context.Context, name, pythonVersion string) error {
	_, err := c.run(ctx, mambaBin, "create", "-n", name, "python="+pythonVersion, "-y")
	return err
}

// InstallPackages implements Client.
func (c *CLI) InstallPackages(ctx context.Context, name, channel string, packages []string) error {
	args := []string{"install", "-n", name, "-c", channel}
	args = append(args, packages...)
	args = append(args, "-y")
	_, err := c.run(ctx, mambaBin, args...)
	return err
}

// RunIn implements Client.
func (c *CLI) RunIn(ctx context.Context, name string, args ...string) error {
	runArgs := append([]string{"run", "-n", name}, args...)
	_, err := c.run(ctx, condaBin, runArgs...)
	return err
}

// RemoveEnv implements Client.
func (c *CLI) RemoveEnv(ctx context.Context, name string) error {
	_, err := c.run(ctx, condaBin, "env", "remove", "-n", name, "-y")
	return err
}

// envList mirrors the JSON shape of `conda env list --json`.
type envList struct {
	Envs []string `json:"envs"`
}

// EnvExists implements Client. Environment names are the base name of the
// environment prefix directories reported by conda.
func (c *CLI) EnvExists(ctx context.Context, name string) (bool, error) {
	output, err := c.run(ctx, condaBin, "env", "list", "--json")
	if err != nil {
		return false, fmt.Errorf("failed to list environments: %w", err)
	}

	var list envList
	if err := json.Unmarshal(output, &list); err != nil {
		return false, fmt.Errorf("failed to parse environment list: %w", err)
	}

	for _, prefix := range list.Envs {
		if filepath.Base(prefix) == name {
			return true, nil
		}
	}
	return false, nil
}
