package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Grid.Width != 20 || cfg.Grid.Height != 20 {
		t.Errorf("Default grid should be 20x20, got %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Speed.InitialIntervalMs != 150 {
		t.Errorf("Default initial interval should be 150ms, got %d", cfg.Speed.InitialIntervalMs)
	}
	if cfg.Speed.MinIntervalMs != 50 {
		t.Errorf("Default min interval should be 50ms, got %d", cfg.Speed.MinIntervalMs)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")

	yaml := `
grid:
  width: 30
  height: 15
speed:
  initial_interval_ms: 100
  step_decrement_ms: 5
  min_interval_ms: 40
  food_per_level: 3
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Grid.Width != 30 || cfg.Grid.Height != 15 {
		t.Errorf("Custom grid not applied: %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Speed.FoodPerLevel != 3 {
		t.Errorf("Custom food_per_level not applied: %d", cfg.Speed.FoodPerLevel)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with a missing custom path should fail")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 1\n  height: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load with an invalid config should fail validation")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}

	bad := cfg
	bad.Speed.MinIntervalMs = 500
	if err := bad.Validate(); err == nil {
		t.Error("min interval above initial interval should fail")
	}

	bad = cfg
	bad.Speed.FoodPerLevel = 0
	if err := bad.Validate(); err == nil {
		t.Error("zero food_per_level should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultSnakeConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Speed.InitialIntervalMs != 200 {
		t.Errorf("Easy preset should slow the start, got %d", cfg.Speed.InitialIntervalMs)
	}

	cfg = DefaultSnakeConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Speed.InitialIntervalMs != 110 {
		t.Errorf("Hard preset should speed the start, got %d", cfg.Speed.InitialIntervalMs)
	}

	cfg = DefaultSnakeConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Speed.StepDecrementMs != 0 {
		t.Errorf("Fixed preset should disable progression, got %d", cfg.Speed.StepDecrementMs)
	}
}
