// Package provision provides the shared types for the kamodoctl step
// pipelines.
//
// The two pipelines are organized into focused subpackages:
//   - install/ — environment creation, package install, source fetch and
//     install, kernel registration
//   - cleanup/ — kernel deregistration, environment removal, workspace
//     removal
//
// This root package contains the Step interface, the fail-fast Pipeline
// runner, the shared Context, and the step error taxonomy.
package provision
