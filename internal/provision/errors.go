package provision

import "errors"

// Step failure taxonomy. Each step wraps its sentinel around the
// underlying tool error, so errors.Is identifies the failing step while
// the message carries the tool's exit status and diagnostic output.
var (
	// ErrEnvironmentCreation marks a failed environment creation.
	ErrEnvironmentCreation = errors.New("environment creation failed")

	// ErrDependencyInstall marks a failed dependency package install.
	ErrDependencyInstall = errors.New("dependency installation failed")

	// ErrSourceFetch marks a failed source repository clone.
	ErrSourceFetch = errors.New("source fetch failed")

	// ErrSourceInstall marks a failed install of the cloned source tree.
	ErrSourceInstall = errors.New("source installation failed")

	// ErrKernelRegistration marks a failed kernel registration or removal.
	ErrKernelRegistration = errors.New("kernel registration failed")

	// ErrEnvironmentRemoval marks a failed environment removal.
	ErrEnvironmentRemoval = errors.New("environment removal failed")
)
