package config

import (
	_ "embed"
)

//go:embed defaults/bubblestorm.yaml
var defaultBubblestormYAML []byte

// Default returns the default bubblestorm configuration, matching the
// embedded YAML.
func Default() Config {
	return Config{
		Ship: ShipConfig{
			Accel:    1000.0,
			Friction: 0.98,
			MaxSpeed: 300.0,
			Health:   100.0,
			Radius:   15.0,
		},
		Bubbles: BubbleConfig{
			MinSpeed:    100.0,
			MaxSpeed:    200.0,
			MinRadius:   5.0,
			MaxRadius:   15.0,
			MinLifetime: 1.0,
			MaxLifetime: 2.0,
			Spread:      0.3,
			Recoil:      5.0,
			Saturation:  0.7,
			Lightness:   0.8,
		},
		Enemies: EnemyConfig{
			SpawnInterval:  3.0,
			MaxDrift:       50.0,
			Health:         100.0,
			Radius:         20.0,
			SeekerAccel:    40.0,
			SeekerMaxSpeed: 120.0,
		},
		Border: BorderConfig{
			Width:  50.0,
			Damage: 10.0,
			Bounce: 500.0,
		},
		Combat: CombatConfig{
			HitRadius:    30.0,
			BubbleDamage: 25.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200, // Two minutes at 60 ticks/s
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 1.5,
				SeekerShare:       0.5,
			},
		},
	}
}
