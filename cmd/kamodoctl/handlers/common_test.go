package handlers

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/ccmc-tools/kamodoctl/internal/config"
	"github.com/ccmc-tools/kamodoctl/internal/platform/conda"
	"github.com/ccmc-tools/kamodoctl/internal/platform/git"
	"github.com/ccmc-tools/kamodoctl/internal/platform/jupyter"
	fakes "github.com/ccmc-tools/kamodoctl/internal/testing"
	"github.com/ccmc-tools/kamodoctl/internal/util/prerequisites"
)

// pipelineFakes bundles the recording fakes wired into a handler run.
type pipelineFakes struct {
	Log     *fakes.CallLog
	Conda   *fakes.FakeConda
	Git     *fakes.FakeGit
	Jupyter *fakes.FakeJupyter
}

// stubPipelineFactories swaps every pipeline factory for fakes and restores
// the originals when the test finishes. The returned config pointer can be
// mutated before calling the handler.
func stubPipelineFactories(t *testing.T, cfg *config.Config) *pipelineFakes {
	t.Helper()

	origLoad := loadConfigFile
	origFind := findConfigFile
	origConda := newCondaClient
	origGit := newGitClient
	origJupyter := newJupyterClient
	origInstallPrereqs := checkInstallPrereqs
	origCleanupPrereqs := checkCleanupPrereqs
	origLogging := setupLogging
	origTTY := stdoutIsTTY

	t.Cleanup(func() {
		loadConfigFile = origLoad
		findConfigFile = origFind
		newCondaClient = origConda
		newGitClient = origGit
		newJupyterClient = origJupyter
		checkInstallPrereqs = origInstallPrereqs
		checkCleanupPrereqs = origCleanupPrereqs
		setupLogging = origLogging
		stdoutIsTTY = origTTY
	})

	callLog := fakes.NewCallLog()
	f := &pipelineFakes{
		Log:     callLog,
		Conda:   fakes.NewFakeConda(callLog),
		Git:     fakes.NewFakeGit(callLog),
		Jupyter: fakes.NewFakeJupyter(callLog),
	}

	loadConfigFile = func(_ string) (*config.Config, error) { return cfg, nil }
	findConfigFile = func(explicit string) string { return explicit }
	newCondaClient = func() conda.Client { return f.Conda }
	newGitClient = func() git.Client { return f.Git }
	newJupyterClient = func() jupyter.Client { return f.Jupyter }
	checkInstallPrereqs = func() *prerequisites.CheckResults { return &prerequisites.CheckResults{} }
	checkCleanupPrereqs = func() *prerequisites.CheckResults { return &prerequisites.CheckResults{} }
	setupLogging = func() (*os.File, string, error) {
		f, err := os.Open(os.DevNull)
		return f, "", err
	}
	stdoutIsTTY = func() bool { return false }

	return f
}

// missingToolResults builds check results with one missing required tool.
func missingToolResults(name string) *prerequisites.CheckResults {
	tool := prerequisites.Tool{Name: name, Required: true}
	return &prerequisites.CheckResults{
		Results: []prerequisites.CheckResult{{Tool: tool}},
		Missing: []prerequisites.Tool{tool},
	}
}

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}
