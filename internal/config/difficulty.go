package config

import "time"

const (
	easyInterval = 300 * time.Millisecond
	hardInterval = 120 * time.Millisecond
)

// PresetInterval returns the base tick interval for a preset. Normal and
// fixed keep the configured interval.
func PresetInterval(preset DifficultyPreset, configured time.Duration) time.Duration {
	switch preset {
	case DifficultyEasy:
		return easyInterval
	case DifficultyHard:
		return hardInterval
	default:
		return configured
	}
}

// DifficultyManager calculates the simulation tick interval from the score.
type DifficultyManager struct {
	cfg  DifficultyConfig
	base time.Duration
}

// NewDifficultyManager creates a new difficulty manager for a base interval.
func NewDifficultyManager(cfg DifficultyConfig, base time.Duration) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, base: base}
}

// IsEnabled returns whether speed-up progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Preset != DifficultyFixed && d.cfg.SpeedupEvery > 0 && d.cfg.SpeedupStep > 0
}

// Level returns how many speed steps the score has earned.
func (d *DifficultyManager) Level(score int) int {
	if !d.IsEnabled() || score <= 0 {
		return 0
	}
	return score / d.cfg.SpeedupEvery
}

// Interval returns the tick interval for the given score, never below the
// configured minimum (or the base interval, whichever is smaller).
func (d *DifficultyManager) Interval(score int) time.Duration {
	interval := d.base - time.Duration(d.Level(score))*d.cfg.SpeedupStep
	floor := min(d.cfg.MinInterval, d.base)
	if floor <= 0 {
		floor = time.Millisecond
	}
	return max(interval, floor)
}

// FramesPerTick converts an interval into a frame count at the given frame
// rate. The result is at least 1.
func FramesPerTick(interval time.Duration, fps int) int {
	if fps <= 0 {
		return 1
	}
	n := int(interval * time.Duration(fps) / time.Second)
	return max(n, 1)
}
