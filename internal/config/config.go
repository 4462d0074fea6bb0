package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds runtime settings. All fields come from environment variables
// layered over Default.
type Config struct {
	// DBPath is the SQLite catalog location. ":memory:" keeps nothing on disk.
	DBPath string
	// DataPath optionally overrides the bundled tables with a JSON or YAML file.
	DataPath string
	// TimeZone is the IANA name used for zone-less timestamps. Empty means local.
	TimeZone string
	// LogUseCases enables slog records for every service call.
	LogUseCases bool
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		DBPath: ":memory:",
	}
}

// Load reads DECALAGE_* environment variables, falling back to defaults for
// any unset values.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("DECALAGE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("DECALAGE_DATA"); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv("DECALAGE_TZ"); v != "" {
		cfg.TimeZone = v
	}
	if v := os.Getenv("DECALAGE_LOG_USECASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	return cfg
}

// Location resolves TimeZone, returning time.Local when it is empty.
func (c Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}
