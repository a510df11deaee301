// Package install contains the steps of the install pipeline: create the
// Conda environment, install the configured packages, clone and install
// the Kamodo source, and register the Jupyter kernel.
package install

import "github.com/ccmc-tools/kamodoctl/internal/provision"

// Steps returns the install pipeline steps in execution order.
func Steps() []provision.Step {
	return []provision.Step{
		&EnvironmentStep{},
		&PackagesStep{},
		&SourceFetchStep{},
		&SourceInstallStep{},
		&KernelStep{},
	}
}
