package testutil

import (
	"bytes"
	"math/rand/v2"
	"sync"

	"github.com/mitchelldurbincs/GridWalk/internal/game/core"
	"github.com/mitchelldurbincs/GridWalk/internal/game/events"
	"github.com/rs/zerolog"
)

// NewTestRNG seeds a generator the same way the engine does, so tests can
// replay the engine's draw sequence by hand
func NewTestRNG(seed uint64) *rand.Rand {
	return core.NewRNG(seed)
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// BufferLogger returns a JSON logger writing into a fresh buffer
func BufferLogger() (zerolog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return zerolog.New(buf), buf
}

// EventRecorder is a subscriber that keeps every event it receives, in order
type EventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *EventRecorder) ID() string               { return "test_event_recorder" }
func (r *EventRecorder) InterestedIn(string) bool { return true }

func (r *EventRecorder) HandleEvent(ev events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded events
func (r *EventRecorder) Events() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the recorded event types in delivery order
func (r *EventRecorder) Types() []string {
	var types []string
	for _, ev := range r.Events() {
		types = append(types, ev.Type())
	}
	return types
}

// NewRecordingBus returns a bus with an EventRecorder already subscribed
func NewRecordingBus() (*events.EventBus, *EventRecorder) {
	bus := events.NewEventBusWithLogger(zerolog.Nop())
	rec := &EventRecorder{}
	bus.Subscribe(rec)
	return bus, rec
}
