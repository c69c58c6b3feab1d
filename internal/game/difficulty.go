package game

import "time"

// LevelFor derives the difficulty level from a score.
// Level 1 covers scores 0-4, level 2 covers 5-9, and so on.
func LevelFor(score, foodPerLevel int) int {
	if foodPerLevel <= 0 {
		foodPerLevel = 1
	}
	return score/foodPerLevel + 1
}

// IntervalFor derives the tick interval for a level. The interval shrinks
// by StepDecrement per level and never falls below MinInterval.
func IntervalFor(level int, cfg Config) time.Duration {
	interval := cfg.InitialInterval - time.Duration(level-1)*cfg.StepDecrement
	if interval < cfg.MinInterval {
		return cfg.MinInterval
	}
	return interval
}
