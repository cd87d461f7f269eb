package game

// Defaults for the demonstration walk
const (
	DefaultWidth    = 4
	DefaultHeight   = 3
	DefaultEndTurn  = 4
	DefaultSeed     = 100
	DefaultMaxPoint = 10

	// MaxPointLimit is the largest MaxPoint that keeps every cell a single digit
	MaxPointLimit = 10
)

// Render symbols
const (
	WalkerSymbol = '@'
	EmptySymbol  = '.'
)
