package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMove_CollectsPoints(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(Coordinate{1, 0}, 6)

	to, points, err := ApplyMove(g, Coordinate{0, 0}, PlusX)
	require.NoError(t, err)
	assert.Equal(t, Coordinate{1, 0}, to)
	assert.Equal(t, 6, points)
	assert.Equal(t, 0, g.At(to))
}

func TestApplyMove_EmptyCell(t *testing.T) {
	g := NewGrid(4, 3)

	to, points, err := ApplyMove(g, Coordinate{1, 1}, MinusY)
	require.NoError(t, err)
	assert.Equal(t, Coordinate{1, 0}, to)
	assert.Equal(t, 0, points)
}

func TestApplyMove_RejectsLeavingGrid(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(Coordinate{1, 0}, 4)
	before := g.Clone()

	from := Coordinate{0, 0}
	to, points, err := ApplyMove(g, from, MinusX)
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.Equal(t, from, to, "rejected move must not change position")
	assert.Equal(t, 0, points)
	assert.Equal(t, before.P, g.P, "rejected move must not touch the grid")
}
