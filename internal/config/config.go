// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// Config contains all tuning for the bubblestorm game.
type Config struct {
	Ship       ShipConfig       `yaml:"ship"`
	Bubbles    BubbleConfig     `yaml:"bubbles"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Border     BorderConfig     `yaml:"border"`
	Combat     CombatConfig     `yaml:"combat"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShipConfig defines ship movement and health parameters.
type ShipConfig struct {
	Accel    float64 `yaml:"accel"`     // Acceleration in units/s^2
	Friction float64 `yaml:"friction"`  // Per-tick velocity multiplier
	MaxSpeed float64 `yaml:"max_speed"` // Speed cap in units/s
	Health   float64 `yaml:"health"`    // Starting health
	Radius   float64 `yaml:"radius"`    // Draw radius in world units
}

// BubbleConfig defines projectile parameters. Speed, radius and lifetime are
// drawn uniformly from [min, max) per shot.
type BubbleConfig struct {
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	MinRadius   float64 `yaml:"min_radius"`
	MaxRadius   float64 `yaml:"max_radius"`
	MinLifetime float64 `yaml:"min_lifetime"` // Seconds
	MaxLifetime float64 `yaml:"max_lifetime"`
	Spread      float64 `yaml:"spread"`     // Aim perturbation in radians, +/-
	Recoil      float64 `yaml:"recoil"`     // Impulse applied back to the ship
	Saturation  float64 `yaml:"saturation"` // HSL saturation of bubble hues
	Lightness   float64 `yaml:"lightness"`  // HSL lightness of bubble hues
}

// EnemyConfig defines enemy spawning and behavior.
type EnemyConfig struct {
	SpawnInterval  float64 `yaml:"spawn_interval"`   // Seconds between spawns
	MaxDrift       float64 `yaml:"max_drift"`        // Velocity components drawn from [-d, d)
	Health         float64 `yaml:"health"`           // Starting health
	Radius         float64 `yaml:"radius"`           // Draw radius in world units
	SeekerAccel    float64 `yaml:"seeker_accel"`     // Homing acceleration, units/s^2
	SeekerMaxSpeed float64 `yaml:"seeker_max_speed"` // Homing speed cap
}

// BorderConfig defines the danger band at the playfield edge.
type BorderConfig struct {
	Width  float64 `yaml:"width"`  // Band inset from each edge, world units
	Damage float64 `yaml:"damage"` // Damage per qualifying tick
	Bounce float64 `yaml:"bounce"` // Inward impulse magnitude
}

// CombatConfig defines collision resolution parameters.
type CombatConfig struct {
	HitRadius    float64 `yaml:"hit_radius"`    // Bubble-enemy hit distance
	BubbleDamage float64 `yaml:"bubble_damage"` // Damage per bubble hit
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
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Enemy drift multiplier at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Seconds shaved off the spawn interval at max
	SeekerShare       float64 `yaml:"seeker_share"`       // Chance of a seeker spawn at max difficulty
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
