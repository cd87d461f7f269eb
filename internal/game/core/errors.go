package core

import "errors"

var (
	ErrInvalidAction     = errors.New("invalid action")
	ErrNoLegalActions    = errors.New("no legal actions available")
	ErrGameOver          = errors.New("game is over")
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrInvalidConfig     = errors.New("invalid walk configuration")
)
