package sim

// Autopilot is a Controls that aims at the nearest rock, keeps the trigger
// held and switches to a stocked special weapon when it has one. It drives
// headless runs and demo mode.
type Autopilot struct {
	w *World
}

// NewAutopilot creates an autopilot flying the ship of w. The ship must be in
// pointer-aim mode for the autopilot to steer.
func NewAutopilot(w *World) *Autopilot {
	return &Autopilot{w: w}
}

// preferred lists weapons in the order the autopilot reaches for them.
var preferred = []Weapon{WeaponShotgun, WeaponMulti, WeaponShrapnel, WeaponLaser}

func (a *Autopilot) Down(c Control) bool {
	switch c {
	case ControlFire:
		return true
	case ControlBrake:
		return true
	}
	ship := a.w.Ship()
	if ship == nil || ship.Weapon() != WeaponNormal {
		return false
	}
	for _, weapon := range preferred {
		if a.w.Ammo(weapon) > 0 {
			return c == weaponControls[weapon]
		}
	}
	return false
}

func (a *Autopilot) Wheel() int { return 0 }

// Pointer returns the position of the closest rock to the ship.
func (a *Autopilot) Pointer() (Vec2, bool) {
	ship := a.w.Ship()
	if ship == nil {
		return Vec2{}, false
	}
	best, found := Vec2{}, false
	bestDist := 0.0
	for _, e := range a.w.Entities() {
		if e.Kind() != KindRock {
			continue
		}
		d := e.Body().Pos.Dist(ship.body.Pos)
		if !found || d < bestDist {
			best, bestDist, found = e.Body().Pos, d, true
		}
	}
	return best, found
}
