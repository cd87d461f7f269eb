package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/mitchelldurbincs/GridWalk/internal/game/core"
	"github.com/mitchelldurbincs/GridWalk/internal/game/events"
	"github.com/mitchelldurbincs/GridWalk/internal/game/rules"
	"github.com/mitchelldurbincs/GridWalk/internal/game/states"
	"github.com/rs/zerolog"
)

// Engine owns a single walk: the grid, the walker, the score and the RNG.
// It is not safe for concurrent use.
type Engine struct {
	gs           *GameState
	rng          *rand.Rand
	gameID       string
	logger       zerolog.Logger
	eventBus     events.Bus
	stateMachine *states.StateMachine
	legalMove    *rules.LegalMoveCalculator
	termination  *rules.TerminationChecker
}

// LegalActions returns the directions that keep the walker on the grid, in enumeration order
func (e *Engine) LegalActions() []core.Direction {
	return e.legalMove.LegalActions(e.gs.Grid, e.gs.Pos)
}

// LegalActionMask returns one flag per direction for the current position
func (e *Engine) LegalActionMask() [core.NumDirections]bool {
	return e.legalMove.GetLegalActionMask(e.gs.Grid, e.gs.Pos)
}

// RandomAction picks one legal direction using a single RNG draw.
// An empty legal set means the grid invariants are broken; the walk moves to
// the Error phase and ErrNoLegalActions is returned.
func (e *Engine) RandomAction() (core.Direction, error) {
	actions := e.LegalActions()
	if len(actions) == 0 {
		err := fmt.Errorf("%w: walker at %s on %dx%d grid", core.ErrNoLegalActions, e.gs.Pos, e.gs.Grid.W, e.gs.Grid.H)
		if e.stateMachine.CanTransitionTo(states.PhaseError) {
			if failErr := e.stateMachine.Fail(err); failErr != nil {
				e.logger.Error().Err(failErr).Msg("Failed to enter error state")
			}
		}
		return 0, err
	}
	return actions[e.rng.Uint64()%uint64(len(actions))], nil
}

// Step advances the walk by one move in direction d.
// Illegal directions are rejected with ErrInvalidAction and leave the state unchanged;
// stepping a finished walk returns ErrGameOver.
func (e *Engine) Step(d core.Direction) error {
	phase := e.stateMachine.CurrentPhase()
	if phase.IsTerminal() {
		return fmt.Errorf("%w: walk is %s", core.ErrGameOver, phase)
	}
	if !phase.CanReceiveActions() {
		return fmt.Errorf("walk is %s and not accepting moves", phase)
	}

	from := e.gs.Pos
	mask := e.LegalActionMask()

	to, points, err := core.ApplyMove(e.gs.Grid, from, d)
	if err != nil {
		e.logger.Warn().
			Err(err).
			Int("turn", e.gs.Turn).
			Str("direction", d.String()).
			Msg("Rejected action")
		e.publish(events.NewActionRejectedEvent(e.gameID, e.gs.Turn, from, d, err.Error()))
		return err
	}

	e.gs.Pos = to
	e.gs.Score += points
	e.gs.Turn++
	done := e.termination.CheckDone(e.gs.Turn)

	e.logger.Debug().
		Int("turn", e.gs.Turn).
		Str("direction", d.String()).
		Str("to", to.String()).
		Int("points", points).
		Int("score", e.gs.Score).
		Msg("Walker moved")

	if points > 0 {
		e.publish(events.NewPointsCollectedEvent(e.gameID, e.gs.Turn, to, points))
	}
	e.publish(events.NewMoveExecutedEvent(e.gameID, e.gs.Turn, from, to, d, points, e.gs.Score, done, mask))

	if done {
		e.finish()
	}
	return nil
}

// finish moves the walk to Done and announces the result
func (e *Engine) finish() {
	if err := e.stateMachine.TransitionTo(states.PhaseDone, "end turn reached"); err != nil {
		e.logger.Error().Err(err).Msg("Failed to finish walk")
		return
	}

	ctx := e.stateMachine.GetContext()
	e.publish(events.NewWalkEndedEvent(e.gameID, e.gs.Turn, e.gs.Score, e.gs.Grid.Remaining(), ctx.GetElapsedTime()))

	e.logger.Info().
		Int("final_turn", e.gs.Turn).
		Int("score", e.gs.Score).
		Msg("Walk finished")
}

func (e *Engine) publish(ev events.Event) {
	if e.eventBus != nil {
		e.eventBus.Publish(ev)
	}
}

// Public accessors
func (e *Engine) IsDone() bool              { return e.termination.IsDone(e.gs.Turn) }
func (e *Engine) Turn() int                 { return e.gs.Turn }
func (e *Engine) Score() int                { return e.gs.Score }
func (e *Engine) Position() core.Coordinate { return e.gs.Pos }
func (e *Engine) EndTurn() int              { return e.termination.EndTurn() }
func (e *Engine) GameID() string            { return e.gameID }
func (e *Engine) Phase() states.GamePhase   { return e.stateMachine.CurrentPhase() }

// GameState returns a deep copy of the current state
func (e *Engine) GameState() GameState { return e.gs.Clone() }

// History returns the phase transitions so far
func (e *Engine) History() []states.Transition { return e.stateMachine.GetHistory() }
