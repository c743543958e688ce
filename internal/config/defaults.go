package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
// It mirrors defaults/shooter.yaml and is used if the embedded file is broken.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Level: LevelConfig{
			Length: 1000,
		},
		Frame: FrameConfig{
			Width:       100,
			Height:      30,
			ScrollSpeed: 6,
		},
		Player: PlayerConfig{
			X:     2,
			Speed: 30,
		},
		Weapon: WeaponConfig{
			ReloadSeconds: 0.3,
			ShotSpeed:     40,
		},
		Enemy: EnemyConfig{
			Speed:         30,
			SpawnInterval: 1.5,
			MaxAlive:      8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressByTime,
				MaxAt: 9000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultShooterYAML
}
