package life

import (
	"fmt"
	"strconv"
)

// Config describes the board: dimensions, cell size in world units, and
// whether the edges wrap toroidally. A Config is immutable once the world
// has been built from it.
type Config struct {
	Rows     int
	Cols     int
	CellSize float64
	Wrap     bool
}

// ConfigError reports an invalid Config field. It is the only error kind
// raised during setup; nothing is constructed when it occurs.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("life: invalid config %s: %s", e.Field, e.Reason)
}

// DefaultConfig returns the standard board configuration.
func DefaultConfig() Config {
	return Config{Rows: 128, Cols: 128, CellSize: 8, Wrap: true}
}

// Validate checks the dimensional invariants.
func (c Config) Validate() error {
	if c.Rows <= 0 {
		return &ConfigError{Field: "rows", Reason: fmt.Sprintf("must be positive, got %d", c.Rows)}
	}
	if c.Cols <= 0 {
		return &ConfigError{Field: "cols", Reason: fmt.Sprintf("must be positive, got %d", c.Cols)}
	}
	if c.CellSize <= 0 {
		return &ConfigError{Field: "cell_size", Reason: fmt.Sprintf("must be positive, got %g", c.CellSize)}
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["wrap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Wrap = parsed
		}
	}
	return c
}
