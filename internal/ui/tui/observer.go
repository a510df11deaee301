package tui

import (
	"log"

	"github.com/ccmc-tools/kamodoctl/internal/provision"
)

// Observer forwards pipeline events to a TUI step channel while keeping
// plain log lines flowing to the configured logger (the log file).
type Observer struct {
	ch chan<- StepMsg
}

// NewObserver creates a provision.Observer feeding the given channel.
func NewObserver(ch chan<- StepMsg) *Observer {
	return &Observer{ch: ch}
}

// Printf implements provision.Logger.
func (o *Observer) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Event implements provision.Observer.
func (o *Observer) Event(event provision.Event) {
	log.Print(provision.EventString(event))

	switch event.Type {
	case provision.EventStepStarted:
		o.ch <- StepMsg{Name: event.Step}
	case provision.EventStepCompleted:
		o.ch <- StepMsg{Name: event.Step, Done: true}
	case provision.EventStepSkipped:
		o.ch <- StepMsg{Name: event.Step, Skipped: true}
	case provision.EventStepFailed:
		// The pipeline error is delivered separately once Run returns.
	}
}
