// Package config provides YAML-based configuration loading for the bot.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for a bot run.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Play    PlayConfig    `yaml:"play"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
}

// SearchConfig defines expectimax parameters.
type SearchConfig struct {
	Lookahead int `yaml:"lookahead"` // Plies searched (move plus placement)
	Workers   int `yaml:"workers"`   // Root directions searched concurrently
}

// SpawnConfig defines real tile placement.
type SpawnConfig struct {
	Weight float64 `yaml:"weight"` // Probability of a 2 (exponent 1) over a 4
}

// PlayConfig defines the driver loop.
type PlayConfig struct {
	MaxMoves int   `yaml:"max_moves"`
	Seed     int64 `yaml:"seed"` // 0 = entropy-seeded
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// StorageConfig defines where finished runs are recorded.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ErrInvalid is wrapped by Validate errors.
var ErrInvalid = errors.New("invalid config")

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Search.Lookahead < 1 {
		return fmt.Errorf("config: search.lookahead must be >= 1, got %d: %w", c.Search.Lookahead, ErrInvalid)
	}
	if c.Search.Workers < 1 {
		return fmt.Errorf("config: search.workers must be >= 1, got %d: %w", c.Search.Workers, ErrInvalid)
	}
	if c.Spawn.Weight < 0 || c.Spawn.Weight > 1 {
		return fmt.Errorf("config: spawn.weight must be in [0, 1], got %v: %w", c.Spawn.Weight, ErrInvalid)
	}
	if c.Play.MaxMoves < 1 {
		return fmt.Errorf("config: play.max_moves must be >= 1, got %d: %w", c.Play.MaxMoves, ErrInvalid)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	return nil
}
