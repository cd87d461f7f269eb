package rules

import "github.com/mitchelldurbincs/GridWalk/internal/game/core"

// LegalMoveCalculator computes the walker's legal moves
type LegalMoveCalculator struct{}

// NewLegalMoveCalculator creates a new legal move calculator
func NewLegalMoveCalculator() *LegalMoveCalculator {
	return &LegalMoveCalculator{}
}

// LegalActions returns the directions that keep the walker on the grid,
// in enumeration order (+x, -x, +y, -y).
func (lmc *LegalMoveCalculator) LegalActions(grid *core.Grid, pos core.Coordinate) []core.Direction {
	actions := make([]core.Direction, 0, core.NumDirections)
	for _, d := range core.Directions() {
		if grid.InBounds(pos.Move(d)) {
			actions = append(actions, d)
		}
	}
	return actions
}

// GetLegalActionMask returns one flag per direction, indexed by direction value.
// true = legal move, false = illegal move
func (lmc *LegalMoveCalculator) GetLegalActionMask(grid *core.Grid, pos core.Coordinate) [core.NumDirections]bool {
	var mask [core.NumDirections]bool
	for _, d := range lmc.LegalActions(grid, pos) {
		mask[d] = true
	}
	return mask
}
