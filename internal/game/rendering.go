package game

import (
	"io"
	"strconv"
	"strings"
)

// This file contains the plain-text rendering of a walk.

// Render returns the turn counter, the score, and one line per x value holding
// one character per y value: '@' for the walker, the digit of an uncollected
// cell, '.' for an empty cell.
func (e *Engine) Render() string {
	return RenderState(e.gs)
}

// RenderState renders any state in the same format as Engine.Render
func RenderState(gs *GameState) string {
	g := gs.Grid

	var sb strings.Builder
	sb.Grow(32 + g.W*(g.H+1))

	sb.WriteString("tern: ")
	sb.WriteString(strconv.Itoa(gs.Turn))
	sb.WriteString("\n")
	sb.WriteString("score: ")
	sb.WriteString(strconv.Itoa(gs.Score))
	sb.WriteString("\n")

	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			v := g.P[g.Idx(x, y)]
			switch {
			case x == gs.Pos.X && y == gs.Pos.Y:
				sb.WriteByte(WalkerSymbol)
			case v > 0:
				sb.WriteString(strconv.Itoa(v))
			default:
				sb.WriteByte(EmptySymbol)
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Show writes the current render to w
func (e *Engine) Show(w io.Writer) error {
	_, err := io.WriteString(w, e.Render())
	return err
}
