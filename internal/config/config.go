// Package config provides YAML-based game configuration loading and
// difficulty management for asteroids.
package config

import "github.com/vovakirdan/tui-asteroids/internal/sim"

// AsteroidsConfig contains all configuration for an asteroids run.
type AsteroidsConfig struct {
	World      AsteroidsWorld    `yaml:"world"`
	Gameplay   AsteroidsGameplay `yaml:"gameplay"`
	Ship       AsteroidsShip     `yaml:"ship"`
	Weapons    AsteroidsWeapons  `yaml:"weapons"`
	Rocks      AsteroidsRocks    `yaml:"rocks"`
	Pickups    AsteroidsPickups  `yaml:"pickups"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// AsteroidsWorld defines the playfield.
type AsteroidsWorld struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

// AsteroidsGameplay defines lives, levels and scoring thresholds.
type AsteroidsGameplay struct {
	Lives          int `yaml:"lives"`
	StartLevel     int `yaml:"start_level"`
	ExtraLifeEvery int `yaml:"extra_life_every"`
	GameOverDelay  int `yaml:"game_over_delay_ms"`
}

// AsteroidsShip defines ship control parameters.
type AsteroidsShip struct {
	PointerAim        bool `yaml:"pointer_aim"`
	AimToggleDebounce int  `yaml:"aim_toggle_debounce_ms"`
}

// AsteroidsWeapons defines fire intervals and shield behaviour.
type AsteroidsWeapons struct {
	Intervals      WeaponIntervals `yaml:"intervals_ms"`
	ShieldDuration int             `yaml:"shield_duration_ms"`
	ShieldSize     float64         `yaml:"shield_size"`
	ShieldAbsorb   int             `yaml:"shield_absorb_ms"`
}

// WeaponIntervals is the minimum time between fire actions, per weapon.
type WeaponIntervals struct {
	Normal   int `yaml:"normal"`
	Shotgun  int `yaml:"shotgun"`
	Shield   int `yaml:"shield"`
	Laser    int `yaml:"laser"`
	Multi    int `yaml:"multi"`
	Shrapnel int `yaml:"shrapnel"`
}

// AsteroidsRocks defines wave spawning.
type AsteroidsRocks struct {
	SpawnRadius      float64 `yaml:"spawn_radius"`
	MaxSpawnFailures int     `yaml:"max_spawn_failures"`
	Drift            float64 `yaml:"drift"`
}

// AsteroidsPickups defines ammo crate drops.
type AsteroidsPickups struct {
	Chance  float64 `yaml:"chance"`
	Lockout int     `yaml:"lockout_ms"`
	Life    int     `yaml:"life_ms"`
	Drift   float64 `yaml:"drift"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score" or "none"
	MaxAt int    `yaml:"max_at"` // levels cleared or points at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to rock drift at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset; unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}

// ToSim converts the YAML config into simulation tunables.
func (c AsteroidsConfig) ToSim() sim.Config {
	iv := c.Weapons.Intervals
	return sim.Config{
		Bounds:            sim.Bounds{HalfW: c.World.HalfWidth, HalfH: c.World.HalfHeight},
		StartLives:        c.Gameplay.Lives,
		StartLevel:        c.Gameplay.StartLevel,
		LifeThreshold:     c.Gameplay.ExtraLifeEvery,
		GameOverDelay:     c.Gameplay.GameOverDelay,
		SpawnRadius:       c.Rocks.SpawnRadius,
		MaxSpawnFailures:  c.Rocks.MaxSpawnFailures,
		RockDrift:         c.Rocks.Drift,
		PickupChance:      c.Pickups.Chance,
		AmmoLockout:       c.Pickups.Lockout,
		PickupLife:        c.Pickups.Life,
		PickupDrift:       c.Pickups.Drift,
		ShieldDuration:    c.Weapons.ShieldDuration,
		ShieldSize:        c.Weapons.ShieldSize,
		ShieldAbsorb:      c.Weapons.ShieldAbsorb,
		Intervals:         [sim.WeaponCount]int{iv.Normal, iv.Shotgun, iv.Shield, iv.Laser, iv.Multi, iv.Shrapnel},
		PointerAim:        c.Ship.PointerAim,
		AimToggleDebounce: c.Ship.AimToggleDebounce,
	}
}
