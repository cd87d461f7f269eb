package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mitchelldurbincs/GridWalk/internal/game/core"
	"github.com/mitchelldurbincs/GridWalk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderState_Format(t *testing.T) {
	gs := &GameState{
		Turn:  2,
		Score: 13,
		Pos:   core.NewCoordinate(1, 2),
		Grid: testutil.CreateTestGridWithPoints(4, 3, map[core.Coordinate]int{
			{X: 0, Y: 0}: 4,
			{X: 0, Y: 2}: 9,
			{X: 1, Y: 1}: 1,
			{X: 3, Y: 0}: 7,
		}),
	}

	expected := "tern: 2\n" +
		"score: 13\n" +
		"4.9\n" +
		".1@\n" +
		"...\n" +
		"7..\n"
	assert.Equal(t, expected, RenderState(gs))
}

func TestRenderState_WalkerHidesPoints(t *testing.T) {
	gs := &GameState{
		Pos:  core.NewCoordinate(0, 0),
		Grid: testutil.CreateFilledGrid(2, 2, 5),
	}
	assert.Equal(t, "tern: 0\nscore: 0\n@5\n55\n", RenderState(gs))
}

func TestEngine_RenderInitialState(t *testing.T) {
	e := newTestEngine(t, DefaultSeed)
	out := e.Render()

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2+DefaultWidth)
	assert.Equal(t, "tern: 0", lines[0])
	assert.Equal(t, "score: 0", lines[1])

	walkers := 0
	for x, row := range lines[2:] {
		require.Len(t, row, DefaultHeight)
		for y, ch := range row {
			c := core.NewCoordinate(x, y)
			v := e.gs.Grid.At(c)
			switch {
			case ch == WalkerSymbol:
				walkers++
				assert.Equal(t, e.Position(), c)
			case ch == EmptySymbol:
				assert.Equal(t, 0, v, "cell %s", c)
			default:
				assert.Equal(t, byte('0'+v), byte(ch), "cell %s", c)
			}
		}
	}
	assert.Equal(t, 1, walkers, "exactly one walker marker")
}

func TestEngine_Show(t *testing.T) {
	e := newTestEngine(t, DefaultSeed)
	var buf bytes.Buffer
	require.NoError(t, e.Show(&buf))
	assert.Equal(t, e.Render(), buf.String())
}
