package config

import "math"

// DifficultyManager derives scroll speed and spawn delay from the score.
// Both are pure functions of score; nothing accumulates between frames.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Speed returns the per-frame scroll speed: base + score/divisor.
func (d *DifficultyManager) Speed(score int) float64 {
	if !d.cfg.Enabled {
		return d.cfg.BaseSpeed
	}
	return d.cfg.BaseSpeed + float64(score)/d.cfg.SpeedDivisor
}

// SpawnDelay returns the seconds between spawns: max(min, base - score*step).
func (d *DifficultyManager) SpawnDelay(score int) float64 {
	if !d.cfg.Enabled {
		return d.cfg.BaseDelay
	}
	return math.Max(d.cfg.MinDelay, d.cfg.BaseDelay-float64(score)*d.cfg.DelayStep)
}
