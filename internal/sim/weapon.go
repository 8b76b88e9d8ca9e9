package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Weapon is the ship's firing mode.
type Weapon int

const (
	WeaponNormal Weapon = iota
	WeaponShotgun
	WeaponShield
	WeaponLaser
	WeaponMulti
	WeaponShrapnel

	WeaponCount = 6
)

// Valid reports whether w is one of the six modes.
func (w Weapon) Valid() bool {
	return w >= WeaponNormal && w < WeaponCount
}

// Special reports whether w consumes ammo.
func (w Weapon) Special() bool {
	return w.Valid() && w != WeaponNormal
}

func (w Weapon) String() string {
	if !w.Valid() {
		return "unknown"
	}
	return Weapons[w].Name
}

// WeaponSpec describes one firing mode.
type WeaponSpec struct {
	Name     string
	Label    string // HUD label, including the trailing colon for special weapons
	Interval int    // minimum milliseconds between fire actions
	Cost     int
	Counted  int       // shots added to the accuracy denominator per fire action
	Spread   []float64 // heading offsets in degrees relative to forward
	Speed    float64
	Shot     ShotParams
	Fired    Cue
	Pickup   Cue
	Grant    int // ammo granted by a pickup of this weapon
}

// Weapons is the fixed weapon table, indexed by Weapon.
var Weapons = [WeaponCount]WeaponSpec{
	WeaponNormal: {
		Name: "normal", Label: "NORMAL", Interval: 300, Cost: 0, Counted: 1,
		Spread: []float64{0}, Speed: 30,
		Shot:  ShotParams{Life: 800, Size: 0.65, Color: core.RGB(1, 0, 1), Destroyable: true, TrailLife: 200},
		Fired: CueGun,
	},
	WeaponShotgun: {
		Name: "shotgun", Label: "SHOTGUN:", Interval: 600, Cost: 1, Counted: 3,
		Spread: []float64{15, -15, 0}, Speed: 75,
		Shot:  ShotParams{Life: 200, Size: 0.9, Color: core.RGB(0, 1, 0), Destroyable: true, TrailLife: 200},
		Fired: CueShotgun, Pickup: CueShotgunPickup, Grant: 8,
	},
	WeaponShield: {
		Name: "shield", Label: "SHIELD:", Interval: 10000, Cost: 1, Counted: 0,
		Fired: CueShieldUp, Pickup: CueShieldPickup, Grant: 1,
	},
	WeaponLaser: {
		Name: "laser", Label: "LASER:", Interval: 3000, Cost: 1, Counted: 1,
		Spread: []float64{0}, Speed: 300,
		Shot:  ShotParams{Life: 150, Size: 3, Color: core.RGB(1, 0, 0), Destroyable: false, TrailLife: 350},
		Fired: CueLaser, Pickup: CueLaserPickup, Grant: 3,
	},
	WeaponMulti: {
		Name: "multi", Label: "MULTI-SHOT:", Interval: 300, Cost: 1, Counted: 4,
		Spread: []float64{90, -90, 0, 180}, Speed: 100,
		Shot:  ShotParams{Life: 150, Size: 1.5, Destroyable: true, TrailLife: 200},
		Fired: CueMulti, Pickup: CueMultiPickup, Grant: 25,
	},
	WeaponShrapnel: {
		Name: "shrapnel", Label: "SHRAPNEL:", Interval: 1500, Cost: 1, Counted: 1,
		Spread: []float64{0}, Speed: 100,
		Shot:  ShotParams{Life: 400, Size: 1.5, Color: core.RGB(0, 0, 1), Destroyable: true, TrailLife: 250, Branch: true},
		Fired: CueShrapnel, Pickup: CueShrapnelPickup, Grant: 4,
	},
}

// multiColors tints each multi-shot barrel: left, right, forward, back.
var multiColors = [4]core.Color{
	core.RGB(0, 1, 0),
	core.RGB(0, 0, 1),
	core.RGB(1, 0, 0),
	core.RGB(1, 1, 0.82),
}

// pickupOdds is the cumulative draw table for pickup weapons.
var pickupOdds = []struct {
	below  float64
	weapon Weapon
}{
	{0.4, WeaponShotgun},
	{0.6, WeaponShield},
	{0.75, WeaponLaser},
	{0.9, WeaponMulti},
	{1.0, WeaponShrapnel},
}

// drawPickupWeapon maps a uniform draw in [0, 1) onto a special weapon.
func drawPickupWeapon(r float64) Weapon {
	for _, o := range pickupOdds {
		if r < o.below {
			return o.weapon
		}
	}
	return WeaponShrapnel
}
