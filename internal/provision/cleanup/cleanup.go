// Package cleanup contains the steps of the teardown pipeline: deregister
// the Jupyter kernel, remove the Conda environment, and delete the cloned
// source directory.
//
// Every step treats already-absent external state as an idempotent no-op,
// so a cleanup run after a partial install (or a second cleanup run)
// succeeds.
package cleanup

import "github.com/ccmc-tools/kamodoctl/internal/provision"

// Steps returns the cleanup pipeline steps in execution order.
func Steps() []provision.Step {
	return []provision.Step{
		&KernelStep{},
		&EnvironmentStep{},
		&WorkspaceStep{},
	}
}
