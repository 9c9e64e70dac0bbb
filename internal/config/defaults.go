package config

import (
	_ "embed"
)

//go:embed defaults/bot.yaml
var defaultBotYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{
			Lookahead: 3,
			Workers:   1,
		},
		Spawn: SpawnConfig{
			Weight: 0.9,
		},
		Play: PlayConfig{
			MaxMoves: 1000,
			Seed:     0,
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			DBPath: "~/.bot2048/runs.db",
		},
	}
}
