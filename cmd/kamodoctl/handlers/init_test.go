package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccmc-tools/kamodoctl/internal/config"
	"github.com/ccmc-tools/kamodoctl/internal/config/wizard"
)

// stubInitFactories saves and restores the init factory functions.
func stubInitFactories(t *testing.T) {
	t.Helper()
	origFileExists := fileExists
	origRunWizard := runWizard
	origWriteConfig := writeConfig

	t.Cleanup(func() {
		fileExists = origFileExists
		runWizard = origRunWizard
		writeConfig = origWriteConfig
	})
}

func TestInit_WritesConfig(t *testing.T) {
	stubInitFactories(t)

	fileExists = func(string) bool { return false }
	runWizard = func(_ context.Context) (*wizard.Result, error) {
		return &wizard.Result{
			EnvName:          "my_env",
			PythonVersion:    "3.9",
			SelectedPackages: []string{"netCDF4", "jupyter"},
		}, nil
	}

	var written *config.Config
	var writtenPath string
	writeConfig = func(cfg *config.Config, outputPath string) error {
		written = cfg
		writtenPath = outputPath
		return nil
	}

	var err error
	output := captureOutput(func() {
		err = Init(context.Background(), "kamodoctl.json")
	})

	require.NoError(t, err)
	require.NotNil(t, written)
	assert.Equal(t, "my_env", written.EnvName)
	assert.Equal(t, "3.9", written.PythonVersion)
	assert.Equal(t, "kamodoctl.json", writtenPath)
	assert.Contains(t, output, "Settings written to kamodoctl.json")
	assert.NotContains(t, output, "already exists")
}

func TestInit_WarnsOnExistingFile(t *testing.T) {
	stubInitFactories(t)

	fileExists = func(string) bool { return true }
	runWizard = func(_ context.Context) (*wizard.Result, error) {
		return &wizard.Result{EnvName: "e", PythonVersion: "3.7"}, nil
	}
	writeConfig = func(*config.Config, string) error { return nil }

	output := captureOutput(func() {
		_ = Init(context.Background(), "kamodoctl.json")
	})

	assert.Contains(t, output, "already exists")
}

func TestInit_WizardAborted(t *testing.T) {
	stubInitFactories(t)

	fileExists = func(string) bool { return false }
	runWizard = func(_ context.Context) (*wizard.Result, error) {
		return nil, errors.New("user aborted")
	}
	writeConfig = func(*config.Config, string) error {
		t.Fatal("writeConfig should not be called after an aborted wizard")
		return nil
	}

	var err error
	captureOutput(func() {
		err = Init(context.Background(), "kamodoctl.json")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "aborted")
}

func TestInit_WriteError(t *testing.T) {
	stubInitFactories(t)

	fileExists = func(string) bool { return false }
	runWizard = func(_ context.Context) (*wizard.Result, error) {
		return &wizard.Result{EnvName: "e", PythonVersion: "3.7"}, nil
	}
	writeConfig = func(*config.Config, string) error {
		return errors.New("read-only filesystem")
	}

	var err error
	captureOutput(func() {
		err = Init(context.Background(), "kamodoctl.json")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write settings")
}
