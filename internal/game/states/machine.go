package states

import (
	"fmt"
	"sync"
	"time"

	"github.com/mitchelldurbincs/GridWalk/internal/game/events"
)

// State represents a walk phase with lifecycle callbacks
type State interface {
	// Phase returns the GamePhase this state represents
	Phase() GamePhase

	// Enter is called when transitioning into this state
	Enter(ctx *GameContext) error

	// Exit is called when transitioning out of this state
	Exit(ctx *GameContext) error

	// Validate checks if the state can be entered given the context
	Validate(ctx *GameContext) error
}

// Transition represents a state transition in the history
type Transition struct {
	From      GamePhase
	To        GamePhase
	Timestamp time.Time
	Reason    string
}

// StateMachine manages phase transitions and history
type StateMachine struct {
	mu           sync.RWMutex
	currentPhase GamePhase
	states       map[GamePhase]State
	context      *GameContext
	history      []Transition
	publisher    events.Publisher
}

// NewStateMachine creates a new state machine in PhaseInitializing.
// publisher may be nil.
func NewStateMachine(ctx *GameContext, publisher events.Publisher) *StateMachine {
	sm := &StateMachine{
		currentPhase: PhaseInitializing,
		states:       make(map[GamePhase]State),
		context:      ctx,
		history:      make([]Transition, 0, 4),
		publisher:    publisher,
	}

	sm.RegisterState(NewInitializingState())
	sm.RegisterState(NewActiveState())
	sm.RegisterState(NewDoneState())
	sm.RegisterState(NewErrorState())

	return sm
}

// RegisterState registers a state implementation
func (sm *StateMachine) RegisterState(state State) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.states[state.Phase()] = state
}

// CurrentPhase returns the current phase
func (sm *StateMachine) CurrentPhase() GamePhase {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase
}

// TransitionTo attempts to transition to the specified phase.
// The state.transition event is published after the lock is released, so
// subscribers may query the machine.
func (sm *StateMachine) TransitionTo(targetPhase GamePhase, reason string) error {
	sm.mu.Lock()
	from, err := sm.transitionLocked(targetPhase, reason)
	sm.mu.Unlock()
	if err != nil {
		return err
	}

	if sm.publisher != nil {
		sm.publisher.Publish(events.NewStateTransitionEvent(
			sm.context.GameID,
			from.String(),
			targetPhase.String(),
			reason,
		))
	}
	return nil
}

func (sm *StateMachine) transitionLocked(targetPhase GamePhase, reason string) (GamePhase, error) {
	from := sm.currentPhase
	if !from.CanTransitionTo(targetPhase) {
		return from, fmt.Errorf("invalid transition from %s to %s", from, targetPhase)
	}

	targetState, ok := sm.states[targetPhase]
	if !ok {
		return from, fmt.Errorf("no state implementation for phase %s", targetPhase)
	}
	if err := targetState.Validate(sm.context); err != nil {
		return from, fmt.Errorf("cannot enter %s: %w", targetPhase, err)
	}

	if current, ok := sm.states[from]; ok {
		if err := current.Exit(sm.context); err != nil {
			sm.context.Logger.Error().
				Err(err).
				Str("from_phase", from.String()).
				Str("to_phase", targetPhase.String()).
				Msg("Error exiting state")
		}
	}

	sm.currentPhase = targetPhase
	if err := targetState.Enter(sm.context); err != nil {
		sm.currentPhase = from
		return from, fmt.Errorf("failed to enter state %s: %w", targetPhase, err)
	}

	sm.history = append(sm.history, Transition{
		From:      from,
		To:        targetPhase,
		Timestamp: time.Now(),
		Reason:    reason,
	})

	sm.context.Logger.Debug().
		Str("from_phase", from.String()).
		Str("to_phase", targetPhase.String()).
		Str("reason", reason).
		Msg("State transition completed")

	return from, nil
}

// Fail records err in the context and moves to PhaseError
func (sm *StateMachine) Fail(err error) error {
	sm.mu.Lock()
	sm.context.Error = err
	sm.mu.Unlock()

	return sm.TransitionTo(PhaseError, err.Error())
}

// GetHistory returns a copy of the transition history
func (sm *StateMachine) GetHistory() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	history := make([]Transition, len(sm.history))
	copy(history, sm.history)
	return history
}

// GetContext returns the walk context
func (sm *StateMachine) GetContext() *GameContext {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.context
}

// CanTransitionTo checks if a transition to the target phase is allowed
func (sm *StateMachine) CanTransitionTo(targetPhase GamePhase) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase.CanTransitionTo(targetPhase)
}
