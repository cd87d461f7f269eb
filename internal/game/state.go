package game

import "github.com/mitchelldurbincs/GridWalk/internal/game/core"

// GameState is everything observable about a walk
type GameState struct {
	Turn  int
	Score int
	Pos   core.Coordinate
	Grid  *core.Grid
}

// Clone returns a deep copy of the state
func (gs *GameState) Clone() GameState {
	c := *gs
	if gs.Grid != nil {
		c.Grid = gs.Grid.Clone()
	}
	return c
}
