package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the classic hardcoded configuration, used as
// the last-resort fallback when the embedded YAML cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 20,
		},
		Speed: SpeedConfig{
			InitialIntervalMs: 150,
			StepDecrementMs:   10,
			MinIntervalMs:     50,
			FoodPerLevel:      5,
		},
	}
}
