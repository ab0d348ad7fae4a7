package config

import "math"

// Floors applied when the scaling config leaves MinGap or MinSpacing unset.
const (
	defaultMinGap     = 4
	defaultMinSpacing = 15
)

// DifficultyManager calculates dynamic game parameters based on score or
// elapsed ticks. Games create one from their loaded DifficultyConfig and ask
// it for the current speed, gap size, and spacing each step.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
	minGap       int
	minSpacing   int
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	minGap := cfg.Scaling.MinGap
	if minGap <= 0 {
		minGap = defaultMinGap
	}
	minSpacing := cfg.Scaling.MinSpacing
	if minSpacing <= 0 {
		minSpacing = defaultMinSpacing
	}

	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
		minGap:       minGap,
		minSpacing:   minSpacing,
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

// Speed returns the current speed multiplier based on difficulty level.
// Speed rises from base to base * (1 + SpeedMultiplier) at max difficulty.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// GapSize returns the current gap size based on difficulty level. Gaps
// shrink as difficulty rises but never below the configured floor.
func (d *DifficultyManager) GapSize(baseGap int, score int, ticks int) int {
	level := d.Level(score, ticks)
	result := baseGap - int(level*float64(d.cfg.Scaling.GapReduction))
	if result < d.minGap {
		result = d.minGap
	}
	return result
}

// Spacing returns the current obstacle spacing based on difficulty level.
// Spacing shrinks as difficulty rises but never below the configured floor.
func (d *DifficultyManager) Spacing(baseSpacing int, score int, ticks int) int {
	level := d.Level(score, ticks)
	result := baseSpacing - int(level*float64(d.cfg.Scaling.SpacingReduction))
	if result < d.minSpacing {
		result = d.minSpacing
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
