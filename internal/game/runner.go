package game

import (
	"fmt"
	"io"
)

// Run plays the walk to completion with random legal moves, rendering the state
// to w before every move and once more at the end.
func (e *Engine) Run(w io.Writer) error {
	for !e.IsDone() {
		if err := e.Show(w); err != nil {
			return fmt.Errorf("render turn %d: %w", e.gs.Turn, err)
		}

		action, err := e.RandomAction()
		if err != nil {
			return fmt.Errorf("choose action on turn %d: %w", e.gs.Turn, err)
		}

		if err := e.Step(action); err != nil {
			return fmt.Errorf("advance turn %d: %w", e.gs.Turn, err)
		}
	}

	if err := e.Show(w); err != nil {
		return fmt.Errorf("render final state: %w", err)
	}
	return nil
}
