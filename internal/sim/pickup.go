package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

const pickupRadius = 1.0

// Pickup is a drifting ammo crate for one special weapon.
type Pickup struct {
	body   Body
	weapon Weapon
	life   int
	spin   float64
}

// NewPickup creates a pickup that expires after life milliseconds.
func NewPickup(pos, vel Vec2, weapon Weapon, spin float64, life int) *Pickup {
	return &Pickup{
		body:   Body{Pos: pos, Vel: vel},
		weapon: weapon,
		life:   life,
		spin:   spin,
	}
}

func (p *Pickup) Kind() Kind    { return KindPickup }
func (p *Pickup) Body() *Body   { return &p.body }
func (p *Pickup) Size() float64 { return pickupRadius }

// Weapon returns the weapon this pickup grants ammo for.
func (p *Pickup) Weapon() Weapon { return p.weapon }

// Life returns the remaining lifetime in milliseconds.
func (p *Pickup) Life() int { return p.life }

func (p *Pickup) Update(w *World, delta int) {
	p.life -= delta
	p.body.integrate(delta, w.bounds)
	p.body.Turn(float64(delta) / spinDivisor * p.spin)
	if p.life <= 0 {
		w.Remove(p)
	}
}

func (p *Pickup) OnCollide(w *World, other Entity) {
	if other.Kind() != KindShip {
		return
	}
	w.Remove(p)
	if p.weapon.Special() {
		w.AddAmmo(p.weapon, Weapons[p.weapon].Grant, true)
	}
}

var pickupLook = [WeaponCount]struct {
	glyph rune
	color core.Color
}{
	WeaponNormal:   {'N', core.ColorWhite},
	WeaponShotgun:  {'S', core.ColorBrightGreen},
	WeaponShield:   {'D', core.ColorBrightCyan},
	WeaponLaser:    {'L', core.ColorBrightRed},
	WeaponMulti:    {'M', core.ColorBrightYellow},
	WeaponShrapnel: {'X', core.ColorBrightBlue},
}

func (p *Pickup) Render(c Canvas) {
	if !p.weapon.Valid() {
		return
	}
	look := pickupLook[p.weapon]
	c.Plot(p.body.Pos.X, p.body.Pos.Y, look.glyph, look.color)
}
