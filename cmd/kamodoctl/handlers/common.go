// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ccmc-tools/kamodoctl/internal/config"
	"github.com/ccmc-tools/kamodoctl/internal/logging"
	"github.com/ccmc-tools/kamodoctl/internal/platform/conda"
	"github.com/ccmc-tools/kamodoctl/internal/platform/git"
	"github.com/ccmc-tools/kamodoctl/internal/platform/jupyter"
	"github.com/ccmc-tools/kamodoctl/internal/util/prerequisites"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile loads settings from file.
	loadConfigFile = config.LoadFile

	// findConfigFile resolves the settings path.
	findConfigFile = config.FindConfigFile

	// newCondaClient creates a mamba/conda client.
	newCondaClient = func() conda.Client { return conda.NewCLI() }

	// newGitClient creates a git client.
	newGitClient = func() git.Client { return git.NewCLI() }

	// newJupyterClient creates a jupyter kernelspec client.
	newJupyterClient = func() jupyter.Client { return jupyter.NewCLI() }

	// checkInstallPrereqs checks the install pipeline's tools.
	checkInstallPrereqs = func() *prerequisites.CheckResults {
		return prerequisites.Check(prerequisites.InstallTools())
	}

	// checkCleanupPrereqs checks the cleanup pipeline's tools.
	checkCleanupPrereqs = func() *prerequisites.CheckResults {
		return prerequisites.Check(prerequisites.CleanupTools())
	}

	// setupLogging wires the run's log file.
	setupLogging = logging.Setup

	// stdoutIsTTY reports whether stdout is an interactive terminal.
	stdoutIsTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
)

// loadConfig resolves and loads the settings file.
func loadConfig(configPath string) (*config.Config, error) {
	return loadConfigFile(findConfigFile(configPath))
}
