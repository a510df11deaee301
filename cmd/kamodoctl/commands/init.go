package commands

import (
	"github.com/spf13/cobra"

	"github.com/ccmc-tools/kamodoctl/cmd/kamodoctl/handlers"
)

// Init returns the command for interactively creating a settings file.
//
// Flags:
//
//	--output, -o: Path to output file (default "kamodoctl.json")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a settings file",
		Long: `Interactively create a kamodoctl settings file.

This command guides you through configuring the provisioner:

  - Environment name and Python version
  - Package selection from the default scientific-computing list
  - Additional packages

The answers are written as JSON; edit the file by hand afterwards to
change the source repository or Conda channel.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "kamodoctl.json", "Output file path")

	return cmd
}
