package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mitchelldurbincs/GridWalk/internal/game/core"
	"github.com/mitchelldurbincs/GridWalk/internal/game/events"
	"github.com/mitchelldurbincs/GridWalk/internal/game/mapgen"
	"github.com/mitchelldurbincs/GridWalk/internal/game/rules"
	"github.com/mitchelldurbincs/GridWalk/internal/game/states"
	"github.com/rs/zerolog"
)

// GameConfig configures a new walk. Zero Width, Height and MaxPoint fall back to the
// package defaults. Zero is a valid Seed, and a zero EndTurn gives a walk that is
// done as soon as it is created.
type GameConfig struct {
	Width    int
	Height   int
	EndTurn  int
	Seed     uint64
	MaxPoint int

	// GameID identifies the walk in events; a UUID is generated when empty
	GameID   string
	Logger   zerolog.Logger
	EventBus events.Bus
}

// DefaultGameConfig returns the 4x3, four turn walk seeded with 100
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		EndTurn:  DefaultEndTurn,
		Seed:     DefaultSeed,
		MaxPoint: DefaultMaxPoint,
	}
}

// NewEngine generates the grid from cfg.Seed and returns an engine in the Active phase
// (or already Done when EndTurn is 0).
func NewEngine(cfg GameConfig) (*Engine, error) {
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.MaxPoint == 0 {
		cfg.MaxPoint = DefaultMaxPoint
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", core.ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	if cfg.EndTurn < 0 {
		return nil, fmt.Errorf("%w: end turn must be non-negative, got %d", core.ErrInvalidConfig, cfg.EndTurn)
	}
	if cfg.MaxPoint < 1 || cfg.MaxPoint > MaxPointLimit {
		return nil, fmt.Errorf("%w: max point must be between 1 and %d, got %d", core.ErrInvalidConfig, MaxPointLimit, cfg.MaxPoint)
	}
	if cfg.GameID == "" {
		cfg.GameID = uuid.New().String()
	}

	logger := cfg.Logger.With().
		Str("component", "GridWalkEngine").
		Str("game_id", cfg.GameID).
		Logger()

	rng := core.NewRNG(cfg.Seed)
	mapCfg := mapgen.DefaultMapConfig(cfg.Width, cfg.Height)
	mapCfg.MaxPoint = cfg.MaxPoint
	generator := mapgen.NewGenerator(mapCfg, rng)
	grid, start := generator.GenerateMap()

	e := &Engine{
		gs: &GameState{
			Grid: grid,
			Pos:  start,
		},
		rng:         rng,
		gameID:      cfg.GameID,
		logger:      logger,
		eventBus:    cfg.EventBus,
		legalMove:   rules.NewLegalMoveCalculator(),
		termination: rules.NewTerminationChecker(logger, cfg.EndTurn),
	}

	ctx := states.NewGameContext(cfg.GameID, cfg.EndTurn, logger)
	e.stateMachine = states.NewStateMachine(ctx, cfg.EventBus)

	e.publish(events.NewWalkStartedEvent(cfg.GameID, cfg.Seed, cfg.Width, cfg.Height, cfg.EndTurn, start, grid.Remaining()))

	if err := e.stateMachine.TransitionTo(states.PhaseActive, "grid generated"); err != nil {
		return nil, fmt.Errorf("failed to start walk: %w", err)
	}
	if e.termination.IsDone(e.gs.Turn) {
		e.finish()
	}

	logger.Debug().
		Uint64("seed", cfg.Seed).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("end_turn", cfg.EndTurn).
		Str("start", start.String()).
		Msg("Engine created successfully")

	return e, nil
}
