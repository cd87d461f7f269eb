package core

import "fmt"

// ValidateMove checks that d is a known direction and that taking it from c stays on the grid
func ValidateMove(g *Grid, c Coordinate, d Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: unknown direction %d", ErrInvalidAction, int(d))
	}
	if to := c.Move(d); !g.InBounds(to) {
		return fmt.Errorf("%w: %s from %s leaves the %dx%d grid", ErrInvalidAction, d, c, g.W, g.H)
	}
	return nil
}
