package provision

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatEvent(t *testing.T) {
	t.Parallel()
	event := Event{
		Type:    EventStepCompleted,
		Step:    "install-packages",
		Message: "completed in 2s",
		Fields:  map[string]string{"packages": "9"},
	}

	msg := EventString(event)

	assert.Contains(t, msg, "step.completed")
	assert.Contains(t, msg, "[install-packages]")
	assert.Contains(t, msg, "completed in 2s")
	assert.Contains(t, msg, "packages=9")
}

func TestFormatEvent_NoStepNoFields(t *testing.T) {
	t.Parallel()
	msg := EventString(Event{Type: EventStepStarted, Message: "starting"})

	assert.Equal(t, "step.started starting", msg)
}

func TestLogHelpers(t *testing.T) {
	t.Parallel()
	observer := NewMockObserver()

	LogStepStart(observer, "fetch-source", 3, 5)
	LogStepComplete(observer, "fetch-source", 150*time.Millisecond)
	LogStepFailed(observer, "fetch-source", assert.AnError)
	LogStepSkipped(observer, "install-packages", "no packages configured")

	assert.Equal(t,
		[]EventType{EventStepStarted, EventStepCompleted, EventStepFailed, EventStepSkipped},
		observer.eventTypes())
	assert.Equal(t, "starting (3/5)", observer.events[0].Message)
	assert.Equal(t, "no packages configured", observer.events[3].Message)
}
