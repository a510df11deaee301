// Package jupyter wraps the jupyter command-line tool for kernelspec
// management.
package jupyter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ccmc-tools/kamodoctl/internal/platform/execx"
)

const jupyterBin = "jupyter"

// Client manages Jupyter kernel registrations.
type Client interface {
	// KernelExists reports whether a kernelspec with the given name is
	// registered.
	KernelExists(ctx context.Context, name string) (bool, error)

	// RemoveKernel removes the kernelspec with the given name.
	RemoveKernel(ctx context.Context, name string) error
}

// CLI implements Client by shelling out to the jupyter binary.
type CLI struct {
	run execx.Runner
}

// NewCLI returns a Client backed by the real jupyter binary.
func NewCLI() *CLI {
	return &CLI{run: execx.Run}
}

// NewCLIWithRunner returns a Client using a custom command runner.
func NewCLIWithRunner(run execx.Runner) *CLI {
	return &CLI{run: run}
}

// kernelspecList mirrors the JSON shape of `jupyter kernelspec list --json`.
type kernelspecList struct {
	Kernelspecs map[string]struct {
		ResourceDir string `json:"resource_dir"`
	} `json:"kernelspecs"`
}

// KernelExists implements Client. ipykernel lowercases kernel names on
// registration, so the comparison is case-insensitive.
func (c *CLI) KernelExists(ctx context.Context, name string) (bool, error) {
	output, err := c.run(ctx, jupyterBin, "kernelspec", "list", "--json")
	if err != nil {
		return false, fmt.Errorf("failed to list kernelspecs: %w", err)
	}

	var list kernelspecList
	if err := json.Unmarshal(output, &list); err != nil {
		return false, fmt.Errorf("failed to parse kernelspec list: %w", err)
	}

	for registered := range list.Kernelspecs {
		if strings.EqualFold(registered, name) {
			return true, nil
		}
	}
	return false, nil
}

// RemoveKernel implements Client.
func (c *CLI) RemoveKernel(ctx context.Context, name string) error {
	_, err := c.run(ctx, jupyterBin, "kernelspec", "remove", "-f", strings.ToLower(name))
	return err
}
