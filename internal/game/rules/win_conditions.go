package rules

import "github.com/rs/zerolog"

// TerminationChecker decides when a walk has used all of its turns
type TerminationChecker struct {
	logger  zerolog.Logger
	endTurn int
}

// NewTerminationChecker creates a checker for a walk of endTurn advances
func NewTerminationChecker(logger zerolog.Logger, endTurn int) *TerminationChecker {
	return &TerminationChecker{
		logger:  logger.With().Str("component", "TerminationChecker").Logger(),
		endTurn: endTurn,
	}
}

// EndTurn returns the turn at which the walk is done
func (tc *TerminationChecker) EndTurn() int {
	return tc.endTurn
}

// IsDone reports whether turn has reached the end turn
func (tc *TerminationChecker) IsDone(turn int) bool {
	return turn == tc.endTurn
}

// TurnsRemaining returns how many advances are still allowed
func (tc *TerminationChecker) TurnsRemaining(turn int) int {
	if turn >= tc.endTurn {
		return 0
	}
	return tc.endTurn - turn
}

// CheckDone is IsDone with logging, called once per completed advance
func (tc *TerminationChecker) CheckDone(turn int) bool {
	done := tc.IsDone(turn)
	tc.logger.Debug().
		Int("turn", turn).
		Int("turns_remaining", tc.TurnsRemaining(turn)).
		Bool("done", done).
		Msg("Termination check complete")
	if done {
		tc.logger.Info().Int("end_turn", tc.endTurn).Msg("End turn reached")
	}
	return done
}
