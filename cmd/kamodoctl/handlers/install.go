package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/ccmc-tools/kamodoctl/internal/provision"
	"github.com/ccmc-tools/kamodoctl/internal/provision/install"
	"github.com/ccmc-tools/kamodoctl/internal/ui/tui"
)

// Install provisions the Kamodo environment described by the settings file.
// It runs the install pipeline with a live TUI when stdout is a terminal,
// falling back to plain log output otherwise or when plain is set.
func Install(ctx context.Context, configPath string, plain bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logFile, _, err := setupLogging()
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	if results := checkInstallPrereqs(); results.HasErrors() {
		return results.Error()
	}

	log.Printf("Provisioning environment %q", cfg.EnvName)

	steps := install.Steps()

	if plain || !stdoutIsTTY() {
		pctx := provision.NewContext(ctx, cfg, newCondaClient(), newGitClient(), newJupyterClient(), nil)
		if err := provision.NewPipeline(steps...).Run(pctx); err != nil {
			return fmt.Errorf("install failed: %w", err)
		}
		log.Printf("Environment %q provisioned successfully", cfg.EnvName)
		return nil
	}

	names := make([]string, 0, len(steps))
	for _, step := range steps {
		names = append(names, step.Name())
	}

	err = tui.RunPipelineTUI(ctx, "kamodoctl install", cfg.EnvName, names, func(runCtx context.Context, ch chan<- tui.StepMsg) error {
		pctx := provision.NewContext(runCtx, cfg, newCondaClient(), newGitClient(), newJupyterClient(), tui.NewObserver(ch))
		return provision.NewPipeline(steps...).Run(pctx)
	})
	if err != nil {
		return fmt.Errorf("install failed: %w", err)
	}

	log.Printf("Environment %q provisioned successfully", cfg.EnvName)
	return nil
}
