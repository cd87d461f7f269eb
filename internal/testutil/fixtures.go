package testutil

import (
	"github.com/mitchelldurbincs/GridWalk/internal/game/core"
)

// CreateTestGrid creates an empty grid with the given dimensions
func CreateTestGrid(width, height int) *core.Grid {
	return core.NewGrid(width, height)
}

// CreateTestGridWithPoints creates a grid and sets the listed cells
func CreateTestGridWithPoints(width, height int, points map[core.Coordinate]int) *core.Grid {
	grid := core.NewGrid(width, height)
	for coord, v := range points {
		grid.Set(coord, v)
	}
	return grid
}

// CreateFilledGrid creates a grid where every cell holds value
func CreateFilledGrid(width, height, value int) *core.Grid {
	grid := core.NewGrid(width, height)
	for i := range grid.P {
		grid.P[i] = value
	}
	return grid
}
