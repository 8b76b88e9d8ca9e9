package config

import "math"

// DifficultyManager calculates dynamic game parameters based on run progress.
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

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0). progress is the
// number of levels cleared for "level" progression and the score for
// "score" progression.
func (d *DifficultyManager) Level(progress int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "level", "score":
	default:
		return d.initialLevel
	}

	p := clampF(float64(progress)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + p*(1.0-d.initialLevel)
}

// Speed returns the speed multiplier for the given progress.
func (d *DifficultyManager) Speed(progress int) float64 {
	if !d.cfg.Enabled {
		return 1.0
	}
	// Speed increases from 1 to 1 + speedMultiplier
	return 1.0 + d.Level(progress)*d.cfg.Scaling.SpeedMultiplier
}

// RockSpeed returns a wave drift multiplier keyed by game level, for a run
// that starts at startLevel.
func (d *DifficultyManager) RockSpeed(startLevel int) func(level int) float64 {
	return func(level int) float64 {
		return d.Speed(max(0, level-startLevel))
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
