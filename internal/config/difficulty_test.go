package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		MaxAtRow:     60,
	})

	if got := d.Level(0); got != 0 {
		t.Errorf("Level at row 0 should be 0, got %f", got)
	}
	if got := d.Level(30); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level at row 30 should be 0.5, got %f", got)
	}
	if got := d.Level(60); got != 1 {
		t.Errorf("Level at row 60 should be 1, got %f", got)
	}
	if got := d.Level(300); got != 1 {
		t.Errorf("Level should cap at 1, got %f", got)
	}
}

func TestDifficultyInitialLevelOffset(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		MaxAtRow:     60,
	})

	if got := d.Level(0); got != 0.5 {
		t.Errorf("Level at row 0 should start at 0.5, got %f", got)
	}
	if got := d.Level(60); got != 1 {
		t.Errorf("Level at row 60 should still reach 1, got %f", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		MaxAtRow:     60,
	})

	if got := d.Level(500); got != 0.3 {
		t.Errorf("Disabled progression should hold the initial level, got %f", got)
	}
}

func TestDifficultyCarSpeed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		MaxAtRow:     60,
	})

	if got := d.CarSpeed(1.25, 2.9, 0); got != 1.25 {
		t.Errorf("Speed at row 0 should be the minimum, got %f", got)
	}
	if got := d.CarSpeed(1.25, 2.9, 120); got != 2.9 {
		t.Errorf("Speed past MaxAtRow should be the maximum, got %f", got)
	}
	mid := d.CarSpeed(1.25, 2.9, 30)
	if mid <= 1.25 || mid >= 2.9 {
		t.Errorf("Speed should interpolate inside the range, got %f", mid)
	}
}

func TestApplyCrossyPreset(t *testing.T) {
	cfg := DefaultCrossyConfig()
	ApplyCrossyPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("Hard preset should start at 0.7, got %f", cfg.Difficulty.InitialLevel)
	}
	if !cfg.Difficulty.Enabled {
		t.Error("Hard preset should keep progression enabled")
	}

	cfg = DefaultCrossyConfig()
	ApplyCrossyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("Fixed preset should disable progression")
	}
}
