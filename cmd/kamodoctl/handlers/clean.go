package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/ccmc-tools/kamodoctl/internal/provision"
	"github.com/ccmc-tools/kamodoctl/internal/provision/cleanup"
)

// Clean removes the environment, kernel registration, and source checkout
// described by the settings file. Resources that are already absent are
// skipped, so repeated runs succeed.
func Clean(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logFile, _, err := setupLogging()
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	if results := checkCleanupPrereqs(); results.HasErrors() {
		return results.Error()
	}

	log.Printf("Cleaning up environment %q", cfg.EnvName)

	pctx := provision.NewContext(ctx, cfg, newCondaClient(), newGitClient(), newJupyterClient(), nil)
	if err := provision.NewPipeline(cleanup.Steps()...).Run(pctx); err != nil {
		return fmt.Errorf("cleanup failed: %w", err)
	}

	log.Printf("Environment %q cleaned up", cfg.EnvName)
	return nil
}
