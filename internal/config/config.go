package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the replay application
type Config struct {
	DataPath     string        `env:"CREASE_DATA"          envDefault:"data/mockData.csv"`
	DatabasePath string        `env:"CREASE_DB"`
	LogFile      string        `env:"CREASE_LOG_FILE"      envDefault:"crease_debug.log"`
	LogLevel     string        `env:"CREASE_LOG_LEVEL"     envDefault:"info"`
	TickInterval time.Duration `env:"CREASE_TICK_INTERVAL" envDefault:"1s"`
	Seed         int64         `env:"CREASE_SEED"`
	Graphics     string        `env:"CREASE_GRAPHICS"      envDefault:"auto"`
	Theme        string        `env:"CREASE_THEME"         envDefault:"pavilion"`
}

// Load reads an optional .env file and then parses CREASE_* variables.
// Missing env files are not an error; unreadable or malformed ones are.
func Load(envFiles ...string) (Config, error) {
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that env tags cannot express
func (c Config) Validate() error {
	if c.DataPath == "" && c.DatabasePath == "" {
		return errors.New("config: one of CREASE_DATA or CREASE_DB is required")
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("config: tick interval must be positive, got %s", c.TickInterval)
	}
	switch c.Graphics {
	case "auto", "sixel", "kitty", "iterm", "none":
	default:
		return fmt.Errorf("config: unknown graphics protocol %q", c.Graphics)
	}
	return nil
}
