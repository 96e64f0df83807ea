package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/log"
)

const (
	// ConfigPathEnv names the environment variable holding the default config file path
	ConfigPathEnv = "PONG_CONFIG"
)

// Config holds the settings shared by the clients.
type Config struct {
	// LogLevel is one of error, warn, info, debug, trace
	LogLevel string `toml:"log_level"`
	// TPS is the number of simulation ticks per second
	TPS int `toml:"tps"`
	// Seed seeds ball serves; 0 picks a random seed at startup
	Seed uint64 `toml:"seed"`
	// SessionName is used instead of prompting or generating one
	SessionName string `toml:"session_name"`
	// Debug draws the debug overlay
	Debug bool `toml:"debug"`
	// Sound enables procedural sound effects where supported
	Sound bool `toml:"sound"`
	// MoveHoldTicks is how long a terminal key press keeps the paddle moving
	MoveHoldTicks int `toml:"move_hold_ticks"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		TPS:           60,
		MoveHoldTicks: 8,
	}
}

// Load returns the defaults overlaid with the file at path. An empty path
// falls back to the file named by PONG_CONFIG, if any.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %v", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Warn("Unknown config key %s in %s", key.String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	var errs []error
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be greater than 0, got %d", c.TPS))
	}
	if c.MoveHoldTicks < 0 {
		errs = append(errs, fmt.Errorf("move_hold_ticks must not be negative, got %d", c.MoveHoldTicks))
	}
	if len(c.SessionName) > constants.MaxSessionNameLength {
		errs = append(errs, fmt.Errorf("session_name must be at most %d characters", constants.MaxSessionNameLength))
	}
	return errors.Join(errs...)
}
