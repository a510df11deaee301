// Package main is the entry point for the kamodoctl CLI.
//
// kamodoctl provisions a Conda environment for the Kamodo scientific
// framework: it creates the environment, installs the configured
// packages, clones and installs the Kamodo source, and registers the
// environment as a Jupyter kernel. A cleanup mode tears everything down.
//
// Commands: install, clean, init, doctor, version.
//
// For detailed usage information, run:
//
//	kamodoctl --help
package main

import (
	"fmt"
	"os"

	"github.com/ccmc-tools/kamodoctl/cmd/kamodoctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
