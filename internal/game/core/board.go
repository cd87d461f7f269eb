package core

// Grid holds the point value of every cell.
// Cells are stored x-major: all y values of column x=0 first, then x=1, and so on.
type Grid struct {
	W, H int
	P    []int // length = W*H
}

// NewGrid returns an all-zero grid
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, P: make([]int, w*h)}
}

// Idx and XY convert between coordinates and positions in P
func (g *Grid) Idx(x, y int) int       { return x*g.H + y }
func (g *Grid) XY(idx int) (int, int) { return idx / g.H, idx % g.H }

// InBounds checks if the coordinate lies on the grid
func (g *Grid) InBounds(c Coordinate) bool {
	return c.IsValid(g.W, g.H)
}

// At returns the point value at c, or 0 when c is off the grid
func (g *Grid) At(c Coordinate) int {
	if !g.InBounds(c) {
		return 0
	}
	return g.P[g.Idx(c.X, c.Y)]
}

// Set stores a point value at c. Off-grid coordinates are ignored.
func (g *Grid) Set(c Coordinate, v int) {
	if !g.InBounds(c) {
		return
	}
	g.P[g.Idx(c.X, c.Y)] = v
}

// Collect returns the value at c and zeroes the cell.
// A second collection of the same cell yields 0.
func (g *Grid) Collect(c Coordinate) int {
	if !g.InBounds(c) {
		return 0
	}
	idx := g.Idx(c.X, c.Y)
	v := g.P[idx]
	if v > 0 {
		g.P[idx] = 0
		return v
	}
	return 0
}

// Remaining sums the uncollected points left on the grid
func (g *Grid) Remaining() int {
	total := 0
	for _, v := range g.P {
		total += v
	}
	return total
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	p := make([]int, len(g.P))
	copy(p, g.P)
	return &Grid{W: g.W, H: g.H, P: p}
}
