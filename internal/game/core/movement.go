package core

// ApplyMove moves from c one step in direction d and collects the points on the
// destination cell. The grid is left untouched when the move is rejected.
func ApplyMove(g *Grid, c Coordinate, d Direction) (Coordinate, int, error) {
	if err := ValidateMove(g, c, d); err != nil {
		return c, 0, err
	}

	to := c.Move(d)
	return to, g.Collect(to), nil
}
