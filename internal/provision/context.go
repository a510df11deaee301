package provision

import (
	"context"

	"github.com/ccmc-tools/kamodoctl/internal/config"
	"github.com/ccmc-tools/kamodoctl/internal/platform/conda"
	"github.com/ccmc-tools/kamodoctl/internal/platform/git"
	"github.com/ccmc-tools/kamodoctl/internal/platform/jupyter"
)

// State holds the shared results of pipeline steps. It is progressively
// populated as steps complete and read by later steps.
type State struct {
	// ClonePath is the local directory the source was cloned into,
	// populated by the fetch-source step.
	ClonePath string
}

// Context wraps the dependencies and state shared by every pipeline step.
type Context struct {
	context.Context
	Config   *config.Config
	Conda    conda.Client
	Git      git.Client
	Jupyter  jupyter.Client
	Observer Observer
	State    *State
}

// NewContext creates a pipeline context around the given tool clients.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	condaClient conda.Client,
	gitClient git.Client,
	jupyterClient jupyter.Client,
	observer Observer,
) *Context {
	if observer == nil {
		observer = NewConsoleObserver()
	}
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Conda:    condaClient,
		Git:      gitClient,
		Jupyter:  jupyterClient,
		Observer: observer,
		State:    &State{},
	}
}
