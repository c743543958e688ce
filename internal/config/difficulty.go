package config

import "math"

// Progression types accepted in DifficultyConfig.Progression.Type.
const (
	ProgressByTime  = "time"  // Ticks survived
	ProgressByScore = "score" // Enemies shot down
	ProgressNone    = "none"
)

// minSpawnInterval is the shortest interval difficulty can push spawning to.
const minSpawnInterval = 0.25

// Progress is how far a run has come, measured both ways the difficulty
// curve can follow.
type Progress struct {
	Kills int
	Ticks int
}

// DifficultyManager maps run progress to a difficulty level and scales
// enemy parameters by it.
type DifficultyManager struct {
	cfg     DifficultyConfig
	initial float64
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:     cfg,
		initial: clampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressNone
}

// Level returns the difficulty in [initial, 1]. It rises linearly with
// progress until Progression.MaxAt and stays at 1 afterwards.
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initial
	}

	var n int
	switch d.cfg.Progression.Type {
	case ProgressByScore:
		n = p.Kills
	case ProgressByTime:
		n = p.Ticks
	default:
		return d.initial
	}

	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	t := clampF(float64(n)/maxAt, 0, 1)
	return d.initial + t*(1-d.initial)
}

// Speed scales an enemy's base speed, up to base*(1+SpeedMultiplier).
func (d *DifficultyManager) Speed(base float64, p Progress) float64 {
	return base * (1 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier)
}

// Interval shortens the base spawn interval by up to IntervalReduction
// (capped at 90%). It never drops below minSpawnInterval unless base
// already does.
func (d *DifficultyManager) Interval(base float64, p Progress) float64 {
	cut := clampF(d.cfg.Scaling.IntervalReduction, 0, 0.9)
	interval := base * (1 - d.Level(p)*cut)
	return math.Max(interval, math.Min(base, minSpawnInterval))
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
