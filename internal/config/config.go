package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchelldurbincs/GridWalk/internal/game"
	"github.com/mitchelldurbincs/GridWalk/internal/game/events"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game GameConfig `mapstructure:"game"`
	Log  LogConfig  `mapstructure:"log"`
}

// GameConfig holds walk configuration
type GameConfig struct {
	Grid     GridConfig `mapstructure:"grid"`
	EndTurn  int        `mapstructure:"end_turn"`
	Seed     uint64     `mapstructure:"seed"`
	MaxPoint int        `mapstructure:"max_point"`
}

// GridConfig holds grid dimensions
type GridConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`

	// Events limits event logging to these types; empty logs every event
	Events []string `mapstructure:"events"`
	// EventDetails attaches the full JSON of each logged event
	EventDetails bool `mapstructure:"event_details"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.grid.width", game.DefaultWidth)
	v.SetDefault("game.grid.height", game.DefaultHeight)
	v.SetDefault("game.end_turn", game.DefaultEndTurn)
	v.SetDefault("game.seed", game.DefaultSeed)
	v.SetDefault("game.max_point", game.DefaultMaxPoint)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.events", []string{})
	v.SetDefault("log.event_details", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("gridwalk")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// GRIDWALK_GAME_SEED overrides game.seed
	v.SetEnvPrefix("GRIDWALK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return reload()
}

func reload() error {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	cfg = c
	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// LoadEnvironmentConfig merges gridwalk.<env>.yaml, looked up next to the loaded
// config file or in the working directory. A missing overlay is not an error.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	dir := "."
	if used := v.ConfigFileUsed(); used != "" {
		dir = filepath.Dir(used)
	}
	envFile := filepath.Join(dir, fmt.Sprintf("gridwalk.%s.yaml", env))
	if _, err := os.Stat(envFile); err != nil {
		return nil
	}

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	return reload()
}

// Set allows runtime config updates
func Set(key string, value interface{}) error {
	v.Set(key, value)
	return reload()
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	// Every cell of a grid at least 2x2 has a legal move
	if c.Game.Grid.Width < 2 || c.Game.Grid.Height < 2 {
		return fmt.Errorf("game.grid dimensions must be at least 2x2, got %dx%d", c.Game.Grid.Width, c.Game.Grid.Height)
	}
	if c.Game.EndTurn < 0 {
		return fmt.Errorf("game.end_turn must be non-negative")
	}
	if c.Game.MaxPoint < 1 || c.Game.MaxPoint > game.MaxPointLimit {
		return fmt.Errorf("game.max_point must be between 1 and %d", game.MaxPointLimit)
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	for _, eventType := range c.Log.Events {
		if !events.IsKnownType(eventType) {
			return fmt.Errorf("log.events: unknown event type %q", eventType)
		}
	}

	return nil
}
