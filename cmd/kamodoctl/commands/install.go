package commands

import (
	"github.com/spf13/cobra"

	"github.com/ccmc-tools/kamodoctl/cmd/kamodoctl/handlers"
)

// Install returns the install command.
//
// The install command runs the full provisioning pipeline: it creates
// the Conda environment, installs the configured packages, clones and
// installs the Kamodo source, and registers the Jupyter kernel.
func Install() *cobra.Command {
	var (
		configPath string
		plain      bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Create the environment and install Kamodo",
		Long: `Create the Conda environment and install Kamodo.

This command runs the install pipeline:
  1. Create the Conda environment (mamba create)
  2. Install the configured packages (mamba install)
  3. Clone the Kamodo source repository (git clone)
  4. Install Kamodo in editable mode (conda run pip install -e)
  5. Register the environment as a Jupyter kernel

The pipeline is fail-fast: the first failing step aborts the run and
the partially created state is left in place for inspection or a later
'kamodoctl clean'.

If no settings file is specified, kamodoctl.json in the current
directory is used; if that does not exist, the defaults apply.
Use 'kamodoctl init' to create a settings file.

Examples:
  # Provision using kamodoctl.json (or defaults)
  kamodoctl install

  # Provision using a specific settings file
  kamodoctl install -c mysettings.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Install(cmd.Context(), configPath, plain)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to settings file (default: kamodoctl.json)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable the interactive progress display")

	return cmd
}
