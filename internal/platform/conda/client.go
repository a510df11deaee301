// Package conda wraps the mamba and conda command-line tools.
//
// Environment creation and package installation go through mamba for its
// faster solver; environment removal, listing, and in-environment command
// execution go through conda, matching how the two tools are commonly
// deployed side by side.
package conda

import "context"

// Client manages Conda environments through an external package manager.
type Client interface {
	// CreateEnv creates a new environment pinned to the given Python version.
	CreateEnv(ctx context.Context, name, pythonVersion string) error

	// InstallPackages installs the given packages into an existing
	// environment from the given channel.
	InstallPackages(ctx context.Context, name, channel string, packages []string) error

	// RunIn executes a command inside the named environment (conda run).
	RunIn(ctx context.Context, name string, args ...string) error

	// RemoveEnv deletes the named environment and all its packages.
	RemoveEnv(ctx context.Context, name string) error

	// EnvExists reports whether an environment with the given name exists.
	EnvExists(ctx context.Context, name string) (bool, error)
}
