package tui

import (
	"time"

	"github.com/voskov/snake-tui/internal/config"
	"github.com/voskov/snake-tui/internal/game"
)

// GameConfigFrom converts loaded YAML configuration into simulation
// parameters. Seed zero lets the simulation pick a time-based seed.
func GameConfigFrom(cfg config.SnakeConfig, seed int64) game.Config {
	return game.Config{
		GridW:           cfg.Grid.Width,
		GridH:           cfg.Grid.Height,
		InitialInterval: time.Duration(cfg.Speed.InitialIntervalMs) * time.Millisecond,
		StepDecrement:   time.Duration(cfg.Speed.StepDecrementMs) * time.Millisecond,
		MinInterval:     time.Duration(cfg.Speed.MinIntervalMs) * time.Millisecond,
		FoodPerLevel:    cfg.Speed.FoodPerLevel,
		Seed:            seed,
	}
}
