package events

import (
	"time"

	"github.com/mitchelldurbincs/GridWalk/internal/game/core"
)

// Event type constants
const (
	TypeWalkStarted     = "walk.started"
	TypeWalkEnded       = "walk.ended"
	TypeMoveExecuted    = "move.executed"
	TypeActionRejected  = "action.rejected"
	TypePointsCollected = "points.collected"
	TypeStateTransition = "state.transition"
)

// IsKnownType reports whether eventType is one of the walk event types
func IsKnownType(eventType string) bool {
	switch eventType {
	case TypeWalkStarted, TypeWalkEnded, TypeMoveExecuted, TypeActionRejected, TypePointsCollected, TypeStateTransition:
		return true
	}
	return false
}

// WalkStartedEvent is published once the grid has been generated
type WalkStartedEvent struct {
	BaseEvent
	Seed    uint64
	Width   int
	Height  int
	EndTurn int
	Start   core.Coordinate
	Points  int // total points on the grid
}

// NewWalkStartedEvent creates a new WalkStartedEvent
func NewWalkStartedEvent(gameID string, seed uint64, width, height, endTurn int, start core.Coordinate, points int) *WalkStartedEvent {
	return &WalkStartedEvent{
		BaseEvent: newBase(TypeWalkStarted, gameID),
		Seed:      seed,
		Width:     width,
		Height:    height,
		EndTurn:   endTurn,
		Start:     start,
		Points:    points,
	}
}

// MoveExecutedEvent is published after every successful advance
type MoveExecutedEvent struct {
	BaseEvent
	Turn      int // turn counter after the move
	From      core.Coordinate
	To        core.Coordinate
	Direction core.Direction
	Points    int // points collected by this move
	Score     int // cumulative score after the move
	Done      bool
	LegalMask [core.NumDirections]bool // legal moves at From
}

// NewMoveExecutedEvent creates a new MoveExecutedEvent
func NewMoveExecutedEvent(gameID string, turn int, from, to core.Coordinate, dir core.Direction, points, score int, done bool, mask [core.NumDirections]bool) *MoveExecutedEvent {
	return &MoveExecutedEvent{
		BaseEvent: newBase(TypeMoveExecuted, gameID),
		Turn:      turn,
		From:      from,
		To:        to,
		Direction: dir,
		Points:    points,
		Score:     score,
		Done:      done,
		LegalMask: mask,
	}
}

// ActionRejectedEvent is published when advance refuses an action
type ActionRejectedEvent struct {
	BaseEvent
	Turn      int
	At        core.Coordinate
	Direction core.Direction
	Reason    string
}

// NewActionRejectedEvent creates a new ActionRejectedEvent
func NewActionRejectedEvent(gameID string, turn int, at core.Coordinate, dir core.Direction, reason string) *ActionRejectedEvent {
	return &ActionRejectedEvent{
		BaseEvent: newBase(TypeActionRejected, gameID),
		Turn:      turn,
		At:        at,
		Direction: dir,
		Reason:    reason,
	}
}

// PointsCollectedEvent is published when a move lands on a cell holding points
type PointsCollectedEvent struct {
	BaseEvent
	Turn   int
	At     core.Coordinate
	Points int
}

// NewPointsCollectedEvent creates a new PointsCollectedEvent
func NewPointsCollectedEvent(gameID string, turn int, at core.Coordinate, points int) *PointsCollectedEvent {
	return &PointsCollectedEvent{
		BaseEvent: newBase(TypePointsCollected, gameID),
		Turn:      turn,
		At:        at,
		Points:    points,
	}
}

// WalkEndedEvent is published when the turn counter reaches the end turn
type WalkEndedEvent struct {
	BaseEvent
	FinalTurn int
	Score     int
	Remaining int // points left uncollected
	Duration  time.Duration
}

// NewWalkEndedEvent creates a new WalkEndedEvent
func NewWalkEndedEvent(gameID string, finalTurn, score, remaining int, duration time.Duration) *WalkEndedEvent {
	return &WalkEndedEvent{
		BaseEvent: newBase(TypeWalkEnded, gameID),
		FinalTurn: finalTurn,
		Score:     score,
		Remaining: remaining,
		Duration:  duration,
	}
}

// StateTransitionEvent is published on every phase change
type StateTransitionEvent struct {
	BaseEvent
	From   string
	To     string
	Reason string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, from, to, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		From:      from,
		To:        to,
		Reason:    reason,
	}
}
