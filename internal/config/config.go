// Package config provides YAML-based configuration loading and
// difficulty presets for the snake game.
package config

import "fmt"

// SnakeConfig contains all tunable game parameters.
type SnakeConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Speed SpeedConfig `yaml:"speed"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the difficulty curve. The step interval starts at
// InitialIntervalMs and shrinks by StepDecrementMs per level, floored at
// MinIntervalMs. A level is FoodPerLevel food eaten.
type SpeedConfig struct {
	InitialIntervalMs int `yaml:"initial_interval_ms"`
	StepDecrementMs   int `yaml:"step_decrement_ms"`
	MinIntervalMs     int `yaml:"min_interval_ms"`
	FoodPerLevel      int `yaml:"food_per_level"`
}

// Validate checks the config for values the simulation cannot run with.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 4 || c.Grid.Height < 4 {
		return fmt.Errorf("config: grid %dx%d too small, need at least 4x4", c.Grid.Width, c.Grid.Height)
	}
	if c.Speed.InitialIntervalMs <= 0 {
		return fmt.Errorf("config: initial_interval_ms must be positive, got %d", c.Speed.InitialIntervalMs)
	}
	if c.Speed.MinIntervalMs <= 0 || c.Speed.MinIntervalMs > c.Speed.InitialIntervalMs {
		return fmt.Errorf("config: min_interval_ms %d out of range (0, %d]", c.Speed.MinIntervalMs, c.Speed.InitialIntervalMs)
	}
	if c.Speed.StepDecrementMs < 0 {
		return fmt.Errorf("config: step_decrement_ms must not be negative, got %d", c.Speed.StepDecrementMs)
	}
	if c.Speed.FoodPerLevel <= 0 {
		return fmt.Errorf("config: food_per_level must be positive, got %d", c.Speed.FoodPerLevel)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset modifies the config based on a difficulty preset. Easy and
// hard shift the starting interval; fixed disables speed progression.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.InitialIntervalMs = 200
	case DifficultyHard:
		cfg.Speed.InitialIntervalMs = 110
	case DifficultyFixed:
		cfg.Speed.StepDecrementMs = 0
	}
}
