package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Field: FieldConfig{
			Width:      480,
			Height:     480,
			CellWidth:  20,
			CellHeight: 20,
		},
		Snake: SnakeParams{
			InitialLength: 4,
			MaxLength:     100,
			BaseInterval:  0.1,
			SpeedupEvery:  30,
			SpeedupFactor: 0.2,
			MinInterval:   0.02,
		},
		Hazard: HazardParams{
			Duration:         5,
			RespawnMin:       3,
			RespawnMax:       9,
			ShortenAmount:    1,
			SlowdownFactor:   1.5,
			SlowdownDuration: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
