package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the classic asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: AsteroidsWorld{
			HalfWidth:  28,
			HalfHeight: 21,
		},
		Gameplay: AsteroidsGameplay{
			Lives:          4,
			StartLevel:     5,
			ExtraLifeEvery: 25000,
			GameOverDelay:  3000,
		},
		Ship: AsteroidsShip{
			PointerAim:        true,
			AimToggleDebounce: 300,
		},
		Weapons: AsteroidsWeapons{
			Intervals: WeaponIntervals{
				Normal:   300,
				Shotgun:  600,
				Shield:   10000,
				Laser:    3000,
				Multi:    300,
				Shrapnel: 1500,
			},
			ShieldDuration: 25000,
			ShieldSize:     3.5,
			ShieldAbsorb:   1000,
		},
		Rocks: AsteroidsRocks{
			SpawnRadius:      20,
			MaxSpawnFailures: 5,
			Drift:            4,
		},
		Pickups: AsteroidsPickups{
			Chance:  0.10,
			Lockout: 250,
			Life:    20000,
			Drift:   4,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "asteroids", "asteroids_practice":
		return defaultAsteroidsYAML
	default:
		return nil
	}
}
