package rules

import (
	"testing"

	"github.com/mitchelldurbincs/GridWalk/internal/game/core"
	"github.com/mitchelldurbincs/GridWalk/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLegalActions(t *testing.T) {
	grid := testutil.CreateTestGrid(4, 3)
	lmc := NewLegalMoveCalculator()

	tests := []struct {
		name     string
		pos      core.Coordinate
		expected []core.Direction
	}{
		{"Corner_Origin", core.NewCoordinate(0, 0), []core.Direction{core.PlusX, core.PlusY}},
		{"Corner_FarX", core.NewCoordinate(3, 0), []core.Direction{core.MinusX, core.PlusY}},
		{"Corner_FarXY", core.NewCoordinate(3, 2), []core.Direction{core.MinusX, core.MinusY}},
		{"Corner_FarY", core.NewCoordinate(0, 2), []core.Direction{core.PlusX, core.MinusY}},
		{"Edge_Y0", core.NewCoordinate(1, 0), []core.Direction{core.PlusX, core.MinusX, core.PlusY}},
		{"Interior", core.NewCoordinate(1, 1), []core.Direction{core.PlusX, core.MinusX, core.PlusY, core.MinusY}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lmc.LegalActions(grid, tt.pos))
		})
	}
}

func TestLegalActions_AlwaysStayOnGrid(t *testing.T) {
	grid := testutil.CreateTestGrid(4, 3)
	lmc := NewLegalMoveCalculator()

	for x := 0; x < grid.W; x++ {
		for y := 0; y < grid.H; y++ {
			pos := core.NewCoordinate(x, y)
			actions := lmc.LegalActions(grid, pos)
			assert.GreaterOrEqual(t, len(actions), 2, "cell %s", pos)
			assert.LessOrEqual(t, len(actions), 4, "cell %s", pos)
			for _, d := range actions {
				assert.True(t, grid.InBounds(pos.Move(d)), "%s from %s leaves the grid", d, pos)
			}
		}
	}
}

func TestGetLegalActionMask(t *testing.T) {
	grid := testutil.CreateTestGrid(4, 3)
	lmc := NewLegalMoveCalculator()

	mask := lmc.GetLegalActionMask(grid, core.NewCoordinate(0, 0))
	assert.Equal(t, [core.NumDirections]bool{true, false, true, false}, mask)

	mask = lmc.GetLegalActionMask(grid, core.NewCoordinate(2, 1))
	assert.Equal(t, [core.NumDirections]bool{true, true, true, true}, mask)
}
