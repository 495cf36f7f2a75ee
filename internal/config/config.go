package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, loaded from the environment.
type Config struct {
	// SavePath is the SQLite career database location.
	SavePath string `env:"WREST_SAVE_PATH" envDefault:"career.db"`
	// LogFile receives all debug logging; the TUI owns stdout.
	LogFile string `env:"WREST_LOG_FILE" envDefault:"wrest_debug.log"`
	// Seed fixes the random source; zero means seed from the clock.
	Seed int64 `env:"WREST_SEED" envDefault:"0"`
	// PlayerName names a freshly created wrestler.
	PlayerName string `env:"WREST_PLAYER_NAME" envDefault:"New Wrestler"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
