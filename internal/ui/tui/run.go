package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the operator quits the TUI mid-run.
var ErrAborted = errors.New("aborted by operator")

// RunPipelineTUI wraps a pipeline run with a Bubble Tea TUI. runFn
// executes the pipeline in a background goroutine, sending step updates
// on the channel; its error terminates the TUI and is returned. Quitting
// the TUI cancels the pipeline context and returns ErrAborted.
func RunPipelineTUI(ctx context.Context, title, envName string, stepNames []string, runFn func(ctx context.Context, ch chan<- StepMsg) error) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewModel(title, envName, stepNames)

	p := tea.NewProgram(m)

	done := make(chan error, 1)
	go func() {
		ch := make(chan StepMsg, 10)
		inner := make(chan error, 1)
		go func() {
			defer close(ch)
			inner <- runFn(runCtx, ch)
		}()

		for msg := range ch {
			p.Send(msg)
		}

		err := <-inner
		done <- err
		if err != nil {
			p.Send(ErrMsg{Err: err})
			return
		}
		p.Send(DoneMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Aborted {
		// Stop the pipeline and wait for it to unwind before returning,
		// so no external tool keeps running behind the operator's back.
		cancel()
		<-done
		return ErrAborted
	}
	return resultErr(fm)
}

// resultErr maps the final model to the pipeline outcome.
func resultErr(m Model) error {
	if m.Aborted {
		return ErrAborted
	}
	return m.Err
}
