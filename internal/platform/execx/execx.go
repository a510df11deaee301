// Package execx runs external command-line tools and reports their
// failures with the full diagnostic output attached.
//
// Every external collaborator (mamba, conda, git, jupyter) is driven
// through a Runner so that platform clients can be exercised in tests
// without the real binaries installed.
package execx

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external command and returns its combined output.
// Implementations must return a *CommandError for non-zero exits.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// CommandError describes a failed external command invocation. It carries
// the argv, the exit code, and the tool's combined stdout/stderr so the
// operator sees the underlying diagnostic verbatim.
type CommandError struct {
	Argv     []string
	ExitCode int
	Output   string
	Err      error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", strings.Join(e.Argv, " "), e.ExitCode)
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

// Unwrap returns the underlying exec error.
func (e *CommandError) Unwrap() error { return e.Err }

// Run is the default Runner backed by os/exec. The command inherits the
// caller's environment; cancellation of ctx kills the process.
func Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	// #nosec G204 - argv is constructed from validated configuration, not raw user input
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return output, &CommandError{
			Argv:     append([]string{name}, args...),
			ExitCode: exitCode,
			Output:   strings.TrimSpace(string(output)),
			Err:      err,
		}
	}
	return output, nil
}

// LookPath reports the resolved path of an executable, or an error if it
// is not installed or not on PATH.
func LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s is not installed or not found in PATH: %w", name, err)
	}
	return path, nil
}
