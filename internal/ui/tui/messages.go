// Package tui provides a Bubble Tea-based terminal UI for pipeline runs.
package tui

// StepMsg reports progress of a pipeline step.
type StepMsg struct {
	Name    string
	Done    bool
	Skipped bool
	Err     error
}

// TickMsg is sent periodically to advance the spinner.
type TickMsg struct{}

// ErrMsg carries a pipeline error.
type ErrMsg struct{ Err error }

// DoneMsg signals that the pipeline is complete.
type DoneMsg struct{}
