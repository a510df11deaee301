package commands

import (
	"github.com/spf13/cobra"

	"github.com/ccmc-tools/kamodoctl/cmd/kamodoctl/handlers"
)

// Clean returns the clean command.
//
// The clean command tears down everything the install pipeline created,
// in reverse dependency order: kernel registration, environment, and
// the cloned source directory.
func Clean() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the environment, kernel, and cloned source",
		Long: `Remove everything the install pipeline created.

This command runs the cleanup pipeline:
  1. Deregister the Jupyter kernel
  2. Remove the Conda environment and its packages
  3. Delete the cloned source directory

Each step treats already-absent state as success, so clean can run
after a failed or partial install, and running it twice is harmless.

Example:
  kamodoctl clean -c mysettings.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Clean(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to settings file (default: kamodoctl.json)")

	return cmd
}
