// Package git wraps the git command-line client for source acquisition.
package git

import (
	"context"
	"fmt"
	"os"

	"github.com/ccmc-tools/kamodoctl/internal/platform/execx"
)

// Client acquires source trees from a remote repository.
type Client interface {
	// Clone clones the repository at url into dir. An existing dir is
	// removed first so repeated runs start from a clean checkout.
	Clone(ctx context.Context, url, dir string) error
}

// CLI implements Client by shelling out to the git binary.
type CLI struct {
	run      execx.Runner
	lookPath func(string) (string, error)
}

// NewCLI returns a Client backed by the real git binary.
func NewCLI() *CLI {
	return &CLI{run: execx.Run, lookPath: execx.LookPath}
}

// NewCLIWithRunner returns a Client using a custom command runner.
func NewCLIWithRunner(run execx.Runner) *CLI {
	return &CLI{run: run, lookPath: func(name string) (string, error) { return name, nil }}
}

// Clone implements Client.
func (c *CLI) Clone(ctx context.Context, url, dir string) error {
	gitPath, err := c.lookPath("git")
	if err != nil {
		return err
	}

	if _, err := os.Stat(dir); err == nil {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove existing clone directory %s: %w", dir, err)
		}
	}

	if _, err := c.run(ctx, gitPath, "clone", url, dir); err != nil {
		return err
	}
	return nil
}
