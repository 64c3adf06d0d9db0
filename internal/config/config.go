// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Snake      SnakeParams      `yaml:"snake"`
	Hazard     HazardParams     `yaml:"hazard"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the play-field size and its cell size, in field units.
type FieldConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// SnakeParams defines snake length limits and the speed curve.
type SnakeParams struct {
	InitialLength int     `yaml:"initial_length"`
	MaxLength     int     `yaml:"max_length"`
	BaseInterval  float64 `yaml:"base_interval"`  // Seconds per step at world time 0
	SpeedupEvery  float64 `yaml:"speedup_every"`  // Seconds per speed-up milestone
	SpeedupFactor float64 `yaml:"speedup_factor"` // Fraction of base removed per milestone
	MinInterval   float64 `yaml:"min_interval"`   // Fastest allowed step interval
}

// HazardParams defines the hazard point lifecycle and effects.
type HazardParams struct {
	Duration         float64 `yaml:"duration"`
	RespawnMin       int     `yaml:"respawn_min"`
	RespawnMax       int     `yaml:"respawn_max"`
	ShortenAmount    int     `yaml:"shorten_amount"`
	SlowdownFactor   float64 `yaml:"slowdown_factor"`
	SlowdownDuration float64 `yaml:"slowdown_duration"`
}

// DifficultyConfig controls the speed-up curve and the starting speed.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`       // false keeps the step interval at base
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Speed gained at initial_level 1.0
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the configuration for values the simulation cannot run with.
func (c SnakeConfig) Validate() error {
	f := c.Field
	switch {
	case f.CellWidth <= 0 || f.CellHeight <= 0:
		return invalid("cell size must be positive, got %dx%d", f.CellWidth, f.CellHeight)
	case f.Width%f.CellWidth != 0 || f.Height%f.CellHeight != 0:
		return invalid("field %dx%d is not aligned to cell %dx%d", f.Width, f.Height, f.CellWidth, f.CellHeight)
	case f.Width/f.CellWidth < 2 || f.Height/f.CellHeight < 2:
		return invalid("field must be at least 2x2 cells, got %dx%d", f.Width/f.CellWidth, f.Height/f.CellHeight)
	}

	s := c.Snake
	switch {
	case s.MaxLength < 1:
		return invalid("max_length must be at least 1, got %d", s.MaxLength)
	case s.InitialLength < 1 || s.InitialLength > s.MaxLength:
		return invalid("initial_length %d outside [1, %d]", s.InitialLength, s.MaxLength)
	case s.BaseInterval <= 0 || s.MinInterval <= 0:
		return invalid("intervals must be positive, got base %g min %g", s.BaseInterval, s.MinInterval)
	case s.SpeedupEvery <= 0:
		return invalid("speedup_every must be positive, got %g", s.SpeedupEvery)
	case s.SpeedupFactor < 0:
		return invalid("speedup_factor must not be negative, got %g", s.SpeedupFactor)
	}

	h := c.Hazard
	switch {
	case h.Duration <= 0:
		return invalid("hazard duration must be positive, got %g", h.Duration)
	case h.RespawnMin < 0 || h.RespawnMin > h.RespawnMax:
		return invalid("respawn range [%d, %d] is invalid", h.RespawnMin, h.RespawnMax)
	case h.ShortenAmount < 0:
		return invalid("shorten_amount must not be negative, got %d", h.ShortenAmount)
	case h.SlowdownFactor <= 1:
		return invalid("slowdown_factor must be greater than 1, got %g", h.SlowdownFactor)
	case h.SlowdownDuration < 0:
		return invalid("slowdown_duration must not be negative, got %g", h.SlowdownDuration)
	}

	if lvl := c.Difficulty.InitialLevel; lvl < 0 || lvl > 1 {
		return invalid("initial_level must be within [0, 1], got %g", lvl)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
