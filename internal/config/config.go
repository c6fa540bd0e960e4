package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the runtime settings of the board window. Every field can be
// overridden from the environment with the BOARD_ prefix, e.g. BOARD_TPS=30.
type Config struct {
	Title       string  `envconfig:"TITLE" default:"Football Tactical Board"`
	TPS         int     `envconfig:"TPS" default:"60"`
	WindowScale float64 `envconfig:"WINDOW_SCALE" default:"1"`
	LogLevel    string  `envconfig:"LOG_LEVEL" default:"info"`
	ShowStatus  bool    `envconfig:"SHOW_STATUS" default:"true"`
	Clipboard   bool    `envconfig:"CLIPBOARD" default:"true"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("board", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the run loop cannot honour.
func (c *Config) Validate() error {
	if c.TPS <= 0 {
		return fmt.Errorf("config: TPS must be > 0, got %d", c.TPS)
	}
	if c.WindowScale <= 0 {
		return fmt.Errorf("config: WINDOW_SCALE must be > 0, got %g", c.WindowScale)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: bad LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
