package provision

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Logger is the minimal logging surface a step can rely on.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Observer receives structured events from the pipeline and its steps.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)
}

// Event represents a structured pipeline event.
type Event struct {
	Type      EventType         // Type of event
	Step      string            // Step name (e.g., "create-environment")
	Message   string            // Human-readable message
	Timestamp time.Time         // When the event occurred
	Fields    map[string]string // Additional contextual fields
}

// EventType represents the type of pipeline event.
type EventType string

const (
	// EventStepStarted indicates a pipeline step has started.
	EventStepStarted EventType = "step.started"
	// EventStepCompleted indicates a pipeline step completed successfully.
	EventStepCompleted EventType = "step.completed"
	// EventStepFailed indicates a pipeline step failed.
	EventStepFailed EventType = "step.failed"
	// EventStepSkipped indicates a step had nothing to do (idempotent no-op).
	EventStepSkipped EventType = "step.skipped"
)

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct{}

// NewConsoleObserver creates a new console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{}
}

// Printf implements Logger.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Event implements Observer.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	log.Print(EventString(event))
}

// EventString formats an event for log output.
func EventString(event Event) string {
	parts := []string{string(event.Type)}

	if event.Step != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Step))
	}

	parts = append(parts, event.Message)

	if len(event.Fields) > 0 {
		fieldParts := make([]string, 0, len(event.Fields))
		for k, v := range event.Fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, v))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(fieldParts, ", ")))
	}

	return strings.Join(parts, " ")
}

// Helper functions for common events

// LogStepStart logs a step start event.
func LogStepStart(observer Observer, step string, index, total int) {
	observer.Event(Event{
		Type:    EventStepStarted,
		Step:    step,
		Message: fmt.Sprintf("starting (%d/%d)", index, total),
	})
}

// LogStepComplete logs a step completion event.
func LogStepComplete(observer Observer, step string, duration time.Duration) {
	observer.Event(Event{
		Type:    EventStepCompleted,
		Step:    step,
		Message: fmt.Sprintf("completed in %v", duration.Round(time.Millisecond)),
	})
}

// LogStepFailed logs a step failure event.
func LogStepFailed(observer Observer, step string, err error) {
	observer.Event(Event{
		Type:    EventStepFailed,
		Step:    step,
		Message: fmt.Sprintf("failed: %v", err),
	})
}

// LogStepSkipped logs a step no-op event with a reason.
func LogStepSkipped(observer Observer, step, reason string) {
	observer.Event(Event{
		Type:    EventStepSkipped,
		Step:    step,
		Message: reason,
	})
}
