package states

import (
	"fmt"
	"time"
)

// InitializingState represents grid generation
type InitializingState struct{}

func NewInitializingState() State {
	return &InitializingState{}
}

func (s *InitializingState) Phase() GamePhase {
	return PhaseInitializing
}

func (s *InitializingState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering Initializing state")
	return nil
}

func (s *InitializingState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Exiting Initializing state")
	return nil
}

func (s *InitializingState) Validate(ctx *GameContext) error {
	return nil
}

// ActiveState represents the walk while turns remain
type ActiveState struct{}

func NewActiveState() State {
	return &ActiveState{}
}

func (s *ActiveState) Phase() GamePhase {
	return PhaseActive
}

func (s *ActiveState) Enter(ctx *GameContext) error {
	ctx.StartTime = time.Now()
	ctx.Logger.Debug().
		Int("end_turn", ctx.EndTurn).
		Msg("Walk started")
	return nil
}

func (s *ActiveState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Exiting active state")
	return nil
}

func (s *ActiveState) Validate(ctx *GameContext) error {
	if ctx.EndTurn < 0 {
		return fmt.Errorf("end turn must be non-negative, got %d", ctx.EndTurn)
	}
	return nil
}

// DoneState represents a completed walk
type DoneState struct{}

func NewDoneState() State {
	return &DoneState{}
}

func (s *DoneState) Phase() GamePhase {
	return PhaseDone
}

func (s *DoneState) Enter(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Debug().
		Dur("walk_duration", ctx.GetElapsedTime()).
		Msg("Walk done")
	return nil
}

func (s *DoneState) Exit(ctx *GameContext) error {
	return nil
}

func (s *DoneState) Validate(ctx *GameContext) error {
	return nil
}

// ErrorState represents a violated invariant
type ErrorState struct{}

func NewErrorState() State {
	return &ErrorState{}
}

func (s *ErrorState) Phase() GamePhase {
	return PhaseError
}

func (s *ErrorState) Enter(ctx *GameContext) error {
	ctx.Logger.Error().
		Err(ctx.Error).
		Msg("Walk entered error state")
	return nil
}

func (s *ErrorState) Exit(ctx *GameContext) error {
	return nil
}

func (s *ErrorState) Validate(ctx *GameContext) error {
	if ctx.Error == nil {
		return fmt.Errorf("error state requires an error in context")
	}
	return nil
}
