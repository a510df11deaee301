package commands

import (
	"github.com/spf13/cobra"

	"github.com/ccmc-tools/kamodoctl/cmd/kamodoctl/handlers"
)

// Doctor returns the doctor command.
//
// The doctor command checks that the external tools the pipelines rely
// on (mamba, conda, git, jupyter) are installed and reachable.
func Doctor() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that required external tools are installed",
		Long: `Check that the external tools kamodoctl drives are installed.

Reports the resolved path and version of each tool:
  - mamba   (environment creation, package installation)
  - conda   (conda run, environment removal)
  - git     (source clone)
  - jupyter (kernel deregistration)

Exits non-zero if a required tool is missing.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Doctor()
		},
	}
}
