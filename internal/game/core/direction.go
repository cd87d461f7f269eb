package core

import "fmt"

// Direction identifies one of the four unit moves available to the walker.
// The numeric value is also the action index used by masks and trajectories.
type Direction int

const (
	PlusX Direction = iota
	MinusX
	PlusY
	MinusY
)

// NumDirections is the size of the action space
const NumDirections = 4

// displacements is indexed by Direction; order matters, it is the enumeration
// order used by legal action queries.
var displacements = [NumDirections]Coordinate{
	PlusX:  {X: 1, Y: 0},
	MinusX: {X: -1, Y: 0},
	PlusY:  {X: 0, Y: 1},
	MinusY: {X: 0, Y: -1},
}

// Directions returns all directions in enumeration order
func Directions() []Direction {
	return []Direction{PlusX, MinusX, PlusY, MinusY}
}

// Valid reports whether d is one of the four known directions
func (d Direction) Valid() bool {
	return d >= 0 && d < NumDirections
}

// Vector returns the unit displacement for d, or the zero coordinate for an unknown direction
func (d Direction) Vector() Coordinate {
	if !d.Valid() {
		return Coordinate{}
	}
	return displacements[d]
}

func (d Direction) String() string {
	switch d {
	case PlusX:
		return "+x"
	case MinusX:
		return "-x"
	case PlusY:
		return "+y"
	case MinusY:
		return "-y"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
