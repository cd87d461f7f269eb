package mapgen

import (
	"math/rand/v2"

	"github.com/mitchelldurbincs/GridWalk/internal/game/core"
)

// startMask keeps the low 16 bits of a draw before reducing it to a start position
const startMask = 0xFFFF

// MapConfig holds configuration for grid generation
type MapConfig struct {
	Width    int
	Height   int
	MaxPoint int // cell values are drawn from [0, MaxPoint)
}

// DefaultMapConfig returns a configuration with single-digit point values
func DefaultMapConfig(w, h int) MapConfig {
	return MapConfig{
		Width:    w,
		Height:   h,
		MaxPoint: 10,
	}
}

// Generator handles grid generation with deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new grid generator. The rng is shared with the caller,
// so draws made here advance the caller's sequence.
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// GenerateMap picks the walker's start cell and fills every other cell with points.
// Draw order: start x, start y, then cells with x outer and y inner.
func (g *Generator) GenerateMap() (*core.Grid, core.Coordinate) {
	grid := core.NewGrid(g.config.Width, g.config.Height)

	start := g.placeStart()
	g.placePoints(grid, start)

	return grid, start
}

func (g *Generator) placeStart() core.Coordinate {
	x := int((g.rng.Uint64() & startMask) % uint64(g.config.Width))
	y := int((g.rng.Uint64() & startMask) % uint64(g.config.Height))
	return core.NewCoordinate(x, y)
}

func (g *Generator) placePoints(grid *core.Grid, start core.Coordinate) {
	maxPoint := g.config.MaxPoint
	if maxPoint <= 0 {
		maxPoint = 10
	}

	// x-major storage makes index order the x-outer, y-inner draw order
	for idx := range grid.P {
		if x, y := grid.XY(idx); x == start.X && y == start.Y {
			continue
		}
		grid.P[idx] = int(g.rng.Uint64() % uint64(maxPoint))
	}
}
