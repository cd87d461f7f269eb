// gridwalk runs a seeded random walk over a small grid of point values and
// prints the grid before every move and once more at the end.
//
// Usage:
//
//	gridwalk [--config <file>] [--seed <n>] [--log-level <level>]
//
// Output is deterministic for a given configuration. Logs go to stderr.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mitchelldurbincs/GridWalk/internal/config"
	"github.com/mitchelldurbincs/GridWalk/internal/experience"
	"github.com/mitchelldurbincs/GridWalk/internal/game"
	"github.com/mitchelldurbincs/GridWalk/internal/game/core"
	"github.com/mitchelldurbincs/GridWalk/internal/game/events"
	"github.com/mitchelldurbincs/GridWalk/internal/game/events/subscribers"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	seed       uint64
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "gridwalk",
		Short: "Run a seeded random walk over a grid of points",
		Long: `gridwalk places a walker on a grid filled with random point values and
moves it in random legal directions, collecting the points it steps on,
until the end turn is reached. The grid is printed before every move.

Settings come from flags, GRIDWALK_* environment variables, and an
optional YAML file (gridwalk.yaml in . or ./config).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file")
	cmd.Flags().Uint64Var(&opts.seed, "seed", game.DefaultSeed, "RNG seed (overrides game.seed)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	if err := config.Init(opts.configPath); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		if err := config.Set("game.seed", opts.seed); err != nil {
			return err
		}
	}

	cfg := config.Get()
	if opts.logLevel == "" {
		opts.logLevel = cfg.Log.Level
	}
	setupLogging(opts.logLevel, cfg.Log.Format)

	log.Info().
		Str("config_file", config.ConfigFilePath()).
		Uint64("seed", cfg.Game.Seed).
		Int("width", cfg.Game.Grid.Width).
		Int("height", cfg.Game.Grid.Height).
		Int("end_turn", cfg.Game.EndTurn).
		Msg("Starting walk")

	bus := events.NewEventBusWithLogger(log.Logger)
	eventLogger := subscribers.NewLoggerSubscriber("event_logger", log.Logger, zerolog.DebugLevel)
	eventLogger.SetEventFilter(cfg.Log.Events)
	eventLogger.SetDevMode(cfg.Log.EventDetails)
	bus.Subscribe(eventLogger)
	collector := experience.NewCollector(cfg.Game.EndTurn, nil, log.Logger)
	bus.Subscribe(collector)
	log.Debug().Int("subscribers", bus.GetSubscriberCount()).Msg("Event bus ready")

	engine, err := game.NewEngine(game.GameConfig{
		Width:    cfg.Game.Grid.Width,
		Height:   cfg.Game.Grid.Height,
		EndTurn:  cfg.Game.EndTurn,
		Seed:     cfg.Game.Seed,
		MaxPoint: cfg.Game.MaxPoint,
		Logger:   log.Logger,
		EventBus: bus,
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	if err := engine.Run(cmd.OutOrStdout()); err != nil {
		if errors.Is(err, core.ErrNoLegalActions) {
			log.Fatal().Err(err).Str("game_id", engine.GameID()).Msg("Walk invariant violated")
		}
		return err
	}

	finalScore, _ := collector.FinalScore(engine.GameID())
	log.Info().
		Str("game_id", engine.GameID()).
		Int("score", finalScore).
		Int("transitions", collector.Count()).
		Float32("return", collector.Return(engine.GameID())).
		Msg("Walk complete")

	return nil
}
