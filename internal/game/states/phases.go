package states

import "fmt"

// GamePhase represents the current phase of a walk
type GamePhase int

const (
	// PhaseInitializing - grid generation and start placement
	PhaseInitializing GamePhase = iota

	// PhaseActive - turns remain and the walker may advance
	PhaseActive

	// PhaseDone - the turn counter reached the end turn
	PhaseDone

	// PhaseError - an invariant was violated
	PhaseError
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseInitializing:
		return "Initializing"
	case PhaseActive:
		return "Active"
	case PhaseDone:
		return "Done"
	case PhaseError:
		return "Error"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseDone || p == PhaseError
}

// CanReceiveActions returns true if the walk can advance in this phase
func (p GamePhase) CanReceiveActions() bool {
	return p == PhaseActive
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseInitializing:
		return []GamePhase{PhaseActive, PhaseError}
	case PhaseActive:
		return []GamePhase{PhaseDone, PhaseError}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
