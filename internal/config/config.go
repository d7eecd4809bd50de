package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds runtime settings for moodwheel.
type Config struct {
	DBPath       string
	WheelPath    string // empty means the built-in wheel
	LogEvents    bool
	Resume       bool
	HistoryLimit int
}

// DefaultConfig returns a Config with sensible defaults. DBPath is left empty
// and resolved by Load, since it depends on the home directory.
func DefaultConfig() Config {
	return Config{
		Resume:       true,
		HistoryLimit: 10,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset or invalid values.
func Load() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("MOODWHEEL_DB"); v != "" {
		cfg.DBPath = v
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".moodwheel", "moodwheel.db")
	}
	cfg.WheelPath = os.Getenv("MOODWHEEL_WHEEL")

	if v := os.Getenv("MOODWHEEL_LOG_EVENTS"); v != "" {
		cfg.LogEvents, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("MOODWHEEL_RESUME"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Resume = b
		}
	}
	if v := os.Getenv("MOODWHEEL_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HistoryLimit = n
		}
	}

	return cfg, nil
}
