package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext provides walk-specific information to states
type GameContext struct {
	// GameID uniquely identifies this walk
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// EndTurn is the number of advances before the walk is done
	EndTurn int

	// StartTime is when PhaseActive was entered
	StartTime time.Time

	// EndTime is when PhaseDone was entered
	EndTime time.Time

	// Error holds the error that caused transition to PhaseError
	Error error
}

// NewGameContext creates a new walk context
func NewGameContext(gameID string, endTurn int, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID:  gameID,
		EndTurn: endTurn,
		Logger:  logger.With().Str("game_id", gameID).Logger(),
	}
}

// GetElapsedTime returns the time spent in PhaseActive so far
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	if !gc.EndTime.IsZero() {
		return gc.EndTime.Sub(gc.StartTime)
	}
	return time.Since(gc.StartTime)
}
