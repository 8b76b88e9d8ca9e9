package sim

// Config holds the tunables of a run. DefaultConfig matches the classic game.
type Config struct {
	Bounds Bounds

	StartLives    int
	StartLevel    int
	LifeThreshold int // points per extra life
	GameOverDelay int // milliseconds between game over and BackToMenu

	SpawnRadius      float64 // waves spawn uniformly within ±SpawnRadius on each axis
	MaxSpawnFailures int     // a wave is cut short after more rejected placements than this
	RockDrift        float64 // initial rock velocity is uniform in ±RockDrift per axis

	PickupChance float64 // chance a destroyed small rock drops a pickup
	AmmoLockout  int     // milliseconds between pickup drops
	PickupLife   int
	PickupDrift  float64

	ShieldDuration int
	ShieldSize     float64
	ShieldAbsorb   int // milliseconds lost per absorbed rock

	Intervals [WeaponCount]int // fire spacing per weapon

	PointerAim        bool // ships start aiming at the pointer
	AimToggleDebounce int
}

// DefaultConfig returns the classic tuning.
func DefaultConfig() Config {
	cfg := Config{
		Bounds:            Bounds{HalfW: 28, HalfH: 21},
		StartLives:        4,
		StartLevel:        5,
		LifeThreshold:     25000,
		GameOverDelay:     3000,
		SpawnRadius:       20,
		MaxSpawnFailures:  5,
		RockDrift:         4,
		PickupChance:      0.10,
		AmmoLockout:       250,
		PickupLife:        20000,
		PickupDrift:       4,
		ShieldDuration:    25000,
		ShieldSize:        3.5,
		ShieldAbsorb:      1000,
		PointerAim:        true,
		AimToggleDebounce: 300,
	}
	for i, spec := range Weapons {
		cfg.Intervals[i] = spec.Interval
	}
	return cfg
}
