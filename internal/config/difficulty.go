package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Drift returns the current enemy drift speed based on difficulty level.
func (d *DifficultyManager) Drift(baseDrift float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return baseDrift * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval returns the current seconds-between-spawns based on
// difficulty level. Never drops below 0.75s to keep the game playable.
func (d *DifficultyManager) SpawnInterval(baseInterval float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	result := baseInterval - level*d.cfg.Scaling.IntervalReduction
	if result < 0.75 {
		result = 0.75
	}
	return result
}

// SeekerChance returns the probability of a spawn being a seeker at the
// current difficulty level.
func (d *DifficultyManager) SeekerChance(score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return level * d.cfg.Scaling.SeekerShare
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
