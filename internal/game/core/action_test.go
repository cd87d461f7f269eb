package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMove(t *testing.T) {
	g := NewGrid(4, 3)

	tests := []struct {
		name    string
		from    Coordinate
		dir     Direction
		wantErr bool
	}{
		{"Corner_PlusX", Coordinate{0, 0}, PlusX, false},
		{"Corner_PlusY", Coordinate{0, 0}, PlusY, false},
		{"Corner_MinusX", Coordinate{0, 0}, MinusX, true},
		{"Corner_MinusY", Coordinate{0, 0}, MinusY, true},
		{"FarEdge_PlusX", Coordinate{3, 1}, PlusX, true},
		{"FarEdge_PlusY", Coordinate{1, 2}, PlusY, true},
		{"Middle_MinusX", Coordinate{2, 1}, MinusX, false},
		{"UnknownDirection", Coordinate{1, 1}, Direction(4), true},
		{"NegativeDirection", Coordinate{1, 1}, Direction(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMove(g, tt.from, tt.dir)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAction)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
