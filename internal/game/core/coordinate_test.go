package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCoordinate(t *testing.T) {
	c := NewCoordinate(3, 2)
	assert.Equal(t, 3, c.X)
	assert.Equal(t, 2, c.Y)
}

func TestCoordinate_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		coord  Coordinate
		width  int
		height int
		valid  bool
	}{
		{"Valid_Origin", Coordinate{0, 0}, 4, 3, true},
		{"Valid_FarCorner", Coordinate{3, 2}, 4, 3, true},
		{"Invalid_NegativeX", Coordinate{-1, 1}, 4, 3, false},
		{"Invalid_NegativeY", Coordinate{1, -1}, 4, 3, false},
		{"Invalid_TooLargeX", Coordinate{4, 0}, 4, 3, false},
		{"Invalid_TooLargeY", Coordinate{0, 3}, 4, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.coord.IsValid(tt.width, tt.height))
		})
	}
}

func TestCoordinate_Move(t *testing.T) {
	origin := Coordinate{1, 1}
	assert.Equal(t, Coordinate{2, 1}, origin.Move(PlusX))
	assert.Equal(t, Coordinate{0, 1}, origin.Move(MinusX))
	assert.Equal(t, Coordinate{1, 2}, origin.Move(PlusY))
	assert.Equal(t, Coordinate{1, 0}, origin.Move(MinusY))
	assert.Equal(t, origin, origin.Move(Direction(7)), "unknown direction should not move")
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "(3,-1)", Coordinate{3, -1}.String())
}

func TestDirections_Order(t *testing.T) {
	dirs := Directions()
	assert.Equal(t, []Direction{PlusX, MinusX, PlusY, MinusY}, dirs)

	expected := []Coordinate{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for i, d := range dirs {
		assert.Equal(t, expected[i], d.Vector(), "vector mismatch for %s", d)
		assert.Equal(t, i, int(d), "direction value should match its enumeration index")
	}
}

func TestDirection_Valid(t *testing.T) {
	assert.True(t, PlusX.Valid())
	assert.True(t, MinusY.Valid())
	assert.False(t, Direction(-1).Valid())
	assert.False(t, Direction(NumDirections).Valid())
	assert.Equal(t, Coordinate{}, Direction(9).Vector())
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "+x", PlusX.String())
	assert.Equal(t, "-x", MinusX.String())
	assert.Equal(t, "+y", PlusY.String())
	assert.Equal(t, "-y", MinusY.String())
	assert.Equal(t, "Direction(5)", Direction(5).String())
}
