// Package config reads server configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config is the process-level configuration, filled from environment
// variables with sensible local-dev defaults.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	TickRate int    `env:"TICK_RATE" envDefault:"30"`

	// LevelPath empty uses the built-in arena.
	LevelPath string `env:"LEVEL_PATH"`

	// Bots -1 keeps the level's own roster.
	Bots int `env:"BOTS" envDefault:"-1"`

	FragLimit    int     `env:"FRAG_LIMIT" envDefault:"20"`
	TimeLimitMin float64 `env:"TIME_LIMIT_MIN" envDefault:"10"`

	// Seed 0 seeds from the clock.
	Seed int64 `env:"SEED" envDefault:"0"`

	EventLogPath string `env:"EVENT_LOG_PATH" envDefault:"events.ndjson"`
	DBPath       string `env:"DB_PATH" envDefault:"matches.db"`
	SnapshotPath string `env:"SNAPSHOT_PATH" envDefault:"snapshot.bin"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "config: parse environment")
	}
	return cfg, nil
}
