package game

import (
	"testing"
	"time"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		score    int
		expected int
	}{
		{0, 1},
		{4, 1},
		{5, 2},
		{9, 2},
		{10, 3},
		{49, 10},
		{50, 11},
	}

	for _, tt := range tests {
		if got := LevelFor(tt.score, 5); got != tt.expected {
			t.Errorf("LevelFor(%d) = %d, expected %d", tt.score, got, tt.expected)
		}
	}
}

func TestIntervalForCurve(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		level    int
		expected time.Duration
	}{
		{1, 150 * time.Millisecond},
		{2, 140 * time.Millisecond},
		{10, 60 * time.Millisecond},
		{11, 50 * time.Millisecond},
		{12, 50 * time.Millisecond}, // Floored
		{100, 50 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := IntervalFor(tt.level, cfg); got != tt.expected {
			t.Errorf("IntervalFor(%d) = %v, expected %v", tt.level, got, tt.expected)
		}
	}
}

func TestIntervalMonotonicNonIncreasing(t *testing.T) {
	cfg := DefaultConfig()

	prev := IntervalFor(1, cfg)
	for level := 2; level <= 50; level++ {
		cur := IntervalFor(level, cfg)
		if cur > prev {
			t.Fatalf("Interval increased from %v to %v at level %d", prev, cur, level)
		}
		if cur < cfg.MinInterval {
			t.Fatalf("Interval %v below floor at level %d", cur, level)
		}
		prev = cur
	}
}
