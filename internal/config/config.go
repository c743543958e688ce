// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ShooterConfig contains all tunables for the side-scrolling shooter.
type ShooterConfig struct {
	Level      LevelConfig      `yaml:"level"`
	Frame      FrameConfig      `yaml:"frame"`
	Player     PlayerConfig     `yaml:"player"`
	Weapon     WeaponConfig     `yaml:"weapon"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LevelConfig defines the scrollable level.
type LevelConfig struct {
	Length float64 `yaml:"length"` // World x at which the level ends
}

// FrameConfig defines the visible viewport. Width and height also size the
// render buffer.
type FrameConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	ScrollSpeed float64 `yaml:"scroll_speed"` // Cells per second
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	X     float64 `yaml:"x"`     // Starting column inside the frame
	Speed float64 `yaml:"speed"` // Cells per second
}

// WeaponConfig defines the player's weapon and its shots.
type WeaponConfig struct {
	ReloadSeconds float64 `yaml:"reload_seconds"`
	ShotSpeed     float64 `yaml:"shot_speed"` // Cells per second, frame-relative
}

// EnemyConfig defines enemies and the spawner that feeds them.
type EnemyConfig struct {
	Speed         float64 `yaml:"speed"`          // Cells per second
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns, 0 disables
	MaxAlive      int     `yaml:"max_alive"`      // 0 means no cap
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Kills/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to enemy speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of the spawn interval removed at max difficulty
}

// ReloadDuration returns the weapon reload time as a duration.
func (c WeaponConfig) ReloadDuration() time.Duration {
	return time.Duration(c.ReloadSeconds * float64(time.Second))
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks that sizes and speeds make a playable level.
func (c ShooterConfig) Validate() error {
	switch {
	case c.Frame.Width <= 0 || c.Frame.Height <= 0:
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalidConfig, c.Frame.Width, c.Frame.Height)
	case c.Level.Length <= 0:
		return fmt.Errorf("%w: level length %v", ErrInvalidConfig, c.Level.Length)
	case c.Frame.ScrollSpeed < 0:
		return fmt.Errorf("%w: negative scroll speed %v", ErrInvalidConfig, c.Frame.ScrollSpeed)
	case c.Player.Speed < 0:
		return fmt.Errorf("%w: negative player speed %v", ErrInvalidConfig, c.Player.Speed)
	case c.Weapon.ReloadSeconds < 0 || c.Weapon.ShotSpeed <= 0:
		return fmt.Errorf("%w: weapon reload %v shot speed %v", ErrInvalidConfig, c.Weapon.ReloadSeconds, c.Weapon.ShotSpeed)
	case c.Enemy.Speed < 0 || c.Enemy.SpawnInterval < 0 || c.Enemy.MaxAlive < 0:
		return fmt.Errorf("%w: enemy speed %v interval %v max %d", ErrInvalidConfig, c.Enemy.Speed, c.Enemy.SpawnInterval, c.Enemy.MaxAlive)
	}
	switch c.Difficulty.Progression.Type {
	case "", ProgressByTime, ProgressByScore, ProgressNone:
	default:
		return fmt.Errorf("%w: progression type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
