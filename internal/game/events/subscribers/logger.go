package subscribers

import (
	"encoding/json"

	"github.com/mitchelldurbincs/GridWalk/internal/game/events"
	"github.com/rs/zerolog"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	var logEvent *zerolog.Event
	switch ls.logLevel {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.InfoLevel:
		logEvent = eventLogger.Info()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	switch e := event.(type) {
	case *events.WalkStartedEvent:
		logEvent.
			Uint64("seed", e.Seed).
			Int("width", e.Width).
			Int("height", e.Height).
			Int("end_turn", e.EndTurn).
			Int("start_x", e.Start.X).
			Int("start_y", e.Start.Y).
			Int("points", e.Points)

	case *events.MoveExecutedEvent:
		logEvent.
			Int("turn", e.Turn).
			Int("from_x", e.From.X).
			Int("from_y", e.From.Y).
			Int("to_x", e.To.X).
			Int("to_y", e.To.Y).
			Str("direction", e.Direction.String()).
			Int("points", e.Points).
			Int("score", e.Score).
			Bool("done", e.Done)

	case *events.ActionRejectedEvent:
		logEvent.
			Int("turn", e.Turn).
			Int("x", e.At.X).
			Int("y", e.At.Y).
			Str("direction", e.Direction.String()).
			Str("reason", e.Reason)

	case *events.PointsCollectedEvent:
		logEvent.
			Int("turn", e.Turn).
			Int("x", e.At.X).
			Int("y", e.At.Y).
			Int("points", e.Points)

	case *events.WalkEndedEvent:
		logEvent.
			Int("final_turn", e.FinalTurn).
			Int("score", e.Score).
			Int("remaining", e.Remaining).
			Dur("duration", e.Duration)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from", e.From).
			Str("to", e.To).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Walk event")
}
