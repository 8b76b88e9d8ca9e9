package sim

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/particles"
)

const (
	shipRadius      = 2.0
	turnDivisor     = 5.0   // degrees per millisecond of held turn = 1/turnDivisor
	thrustDivisor   = 50.0  // velocity gained per millisecond of thrust = forward/thrustDivisor
	brakeFactor     = 1.003 // velocity is divided by this each braked frame
	flameOffset     = 2.5
	flameSize       = 0.6
	flameLife       = 150
	engineCapacity  = 100
	engineLife      = 200
	muzzleClearance = 1.0
)

// Ship is the player's craft.
type Ship struct {
	body     Body
	forward  Vec2
	weapon   Weapon
	shotTime int // counts down to the next allowed fire action
	interval int
	shields  int // active shields granting immunity
	aim      bool
	aimTimer int
	engine   *particles.Group
}

// NewShip creates a ship at pos with the normal gun selected.
// pointerAim starts the ship in aim-at-pointer mode.
func NewShip(pos Vec2, pointerAim bool) *Ship {
	return &Ship{
		body:     Body{Pos: pos},
		forward:  core.V(0, 1),
		weapon:   WeaponNormal,
		interval: Weapons[WeaponNormal].Interval,
		aim:      pointerAim,
		engine:   particles.NewGroup(engineCapacity, engineLife, core.RGB(0, 0, 1)),
	}
}

func (s *Ship) Kind() Kind    { return KindShip }
func (s *Ship) Body() *Body   { return &s.body }
func (s *Ship) Size() float64 { return shipRadius }

// Forward returns the unit vector shots and thrust follow.
func (s *Ship) Forward() Vec2 { return s.forward }

// Weapon returns the selected firing mode.
func (s *Ship) Weapon() Weapon { return s.weapon }

// Interval returns the current minimum spacing between fire actions.
func (s *Ship) Interval() int { return s.interval }

// Immune reports whether a shield is protecting the ship.
func (s *Ship) Immune() bool { return s.shields > 0 }

// PointerAim reports whether the ship turns toward the pointer.
func (s *Ship) PointerAim() bool { return s.aim }

func (s *Ship) raiseShield() { s.shields++ }

func (s *Ship) lowerShield() {
	if s.shields > 0 {
		s.shields--
	}
}

// Update runs one frame of ship control. Keyboard turning changes the
// rotation now but the forward vector only at the end of the frame, so
// thrust and shots follow the new heading from the next frame. Pointer aim
// refreshes forward immediately.
func (s *Ship) Update(w *World, delta int) {
	in := w.Controls()

	if d := in.Wheel(); d != 0 {
		s.cycleWeapon(w, d)
	}
	if s.aim {
		if p, ok := in.Pointer(); ok {
			s.aimAt(p)
		}
	}
	if in.Down(ControlTurnLeft) {
		s.body.Turn(float64(delta) / turnDivisor)
	}
	if in.Down(ControlTurnRight) {
		s.body.Turn(-float64(delta) / turnDivisor)
	}
	for i, c := range weaponControls {
		if in.Down(c) {
			s.ChangeWeapon(w, Weapon(i))
		}
	}
	if in.Down(ControlBrake) {
		s.body.Vel = s.body.Vel.Scale(1 / brakeFactor)
	}
	if in.Down(ControlToggleAim) && s.aimTimer <= 0 {
		s.aim = !s.aim
		s.aimTimer = w.cfg.AimToggleDebounce
	}

	s.shotTime -= delta
	s.aimTimer -= delta

	if s.shotTime <= 0 && in.Down(ControlFire) {
		s.fire(w)
		s.shotTime = s.interval
	}

	if in.Down(ControlThrust) {
		s.body.Vel = s.body.Vel.Add(s.forward.Scale(float64(delta) / thrustDivisor))
		flame := s.body.Pos.Sub(s.forward.Scale(flameOffset))
		s.engine.Add(flame.X, flame.Y, flameSize, flameLife)
	}

	s.forward = core.Heading(s.body.Rotation)
	s.body.integrate(delta, w.bounds)
	s.engine.Update(delta)
}

// aimAt turns the ship to face p.
func (s *Ship) aimAt(p Vec2) {
	d := p.Sub(s.body.Pos)
	if d.X == 0 && d.Y == 0 {
		return
	}
	s.body.Face(core.HeadingOf(d))
	s.forward = core.Heading(s.body.Rotation)
}

// cycleWeapon steps the weapon by one slot in the wheel's direction, wrapping.
func (s *Ship) cycleWeapon(w *World, wheel int) {
	next := s.weapon
	if wheel > 0 {
		next = (next + 1) % WeaponCount
	} else {
		next = (next + WeaponCount - 1) % WeaponCount
	}
	s.ChangeWeapon(w, next)
}

// ChangeWeapon selects weapon, resets the fire timer and applies its interval.
// Unknown weapons are ignored.
func (s *Ship) ChangeWeapon(w *World, weapon Weapon) {
	if !weapon.Valid() {
		return
	}
	w.SelectWeapon(weapon)
	s.weapon = weapon
	s.shotTime = 0
	s.interval = w.cfg.Intervals[weapon]
}

// fire performs one fire action with the selected weapon.
func (s *Ship) fire(w *World) {
	weapon := s.weapon
	spec := Weapons[weapon]
	paid := spec.Cost > 0 && !w.Practice()

	if paid && w.Ammo(weapon) < spec.Cost {
		s.ChangeWeapon(w, WeaponNormal)
		w.OutOfAmmo()
		return
	}

	if weapon == WeaponShield {
		w.Add(NewShield(s, w.cfg.ShieldDuration, w.cfg.ShieldSize, w.cfg.ShieldAbsorb))
	} else {
		muzzle := s.body.Pos.Add(s.forward.Scale(muzzleClearance))
		heading := core.HeadingOf(s.forward)
		for i, off := range spec.Spread {
			params := spec.Shot
			if weapon == WeaponMulti && i < len(multiColors) {
				params.Color = multiColors[i]
			}
			vel := core.Heading(heading + off).Scale(spec.Speed)
			w.Add(NewShot(muzzle, vel, params))
		}
	}

	if paid {
		w.AddAmmo(weapon, -spec.Cost, false)
	}
	w.ShotFired(weapon)

	if weapon == WeaponShield {
		s.ChangeWeapon(w, WeaponNormal)
	}
}

func (s *Ship) OnCollide(w *World, other Entity) {
	switch other.Kind() {
	case KindRock:
		rock := other.(*Rock)
		if rock.Destroyed() {
			return
		}
		s.body.Vel = s.body.Pos.Sub(rock.body.Pos)
		rock.Split(w, s)
		if !s.Immune() && !w.Practice() {
			w.PlayerHit()
		}
	case KindPickup:
		s.ChangeWeapon(w, other.(*Pickup).Weapon())
	}
}

// arrows are indexed by octant of the forward vector, counter-clockwise from +X.
var arrows = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

func (s *Ship) Render(c Canvas) {
	s.engine.Render(c)
	// HeadingOf is 0 at -Y; shift so 0 is +X.
	angle := core.WrapDegrees(core.HeadingOf(s.forward) - 90)
	octant := int((angle+22.5)/45) % 8
	color := core.ColorBrightWhite
	if s.Immune() {
		color = core.ColorBrightCyan
	}
	c.Plot(s.body.Pos.X, s.body.Pos.Y, arrows[octant], color)
}
