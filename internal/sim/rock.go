package sim

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

const (
	// MaxTier is the size of a freshly spawned rock.
	MaxTier = 3

	rockRadiusPerTier = 0.5
	splitOffset       = 0.2
	splitSpeed        = 2.0
	spinDivisor       = 10.0
)

// Rock is an asteroid. Tiers above 1 split in two when destroyed.
type Rock struct {
	body      Body
	tier      int
	spin      float64
	destroyed bool
}

// NewRock creates a rock of the given tier. spin scales the rotation rate;
// its sign sets the direction.
func NewRock(pos, vel Vec2, tier int, spin float64) *Rock {
	return &Rock{
		body: Body{Pos: pos, Vel: vel},
		tier: tier,
		spin: spin,
	}
}

func (r *Rock) Kind() Kind    { return KindRock }
func (r *Rock) Body() *Body   { return &r.body }
func (r *Rock) Size() float64 { return float64(r.tier) * rockRadiusPerTier }

// Tier returns the size class: 3 large, 2 medium, 1 small.
func (r *Rock) Tier() int { return r.tier }

// Spin returns the signed spin rate.
func (r *Rock) Spin() float64 { return r.spin }

// Destroyed reports whether the rock has already been split this run.
func (r *Rock) Destroyed() bool { return r.destroyed }

func (r *Rock) Update(w *World, delta int) {
	r.body.integrate(delta, w.bounds)
	r.body.Turn(float64(delta) / spinDivisor * r.spin)
}

// OnCollide bounces the rock away from whatever touched it and reverses its spin.
func (r *Rock) OnCollide(_ *World, other Entity) {
	r.body.Vel = r.body.Pos.Sub(other.Body().Pos)
	r.spin = -r.spin
}

// Split destroys the rock because of reason. A rock splits at most once;
// later calls in the same tick are ignored.
func (r *Rock) Split(w *World, reason Entity) {
	if r.destroyed {
		return
	}
	r.destroyed = true
	w.Remove(r)
	w.RockDestroyed(r.tier)

	if r.tier > 1 {
		d := r.body.Pos.Sub(reason.Body().Pos)
		if d.X == 0 && d.Y == 0 {
			// Dead-centre hit: pick any direction so the children separate.
			d = core.Heading(w.rng.Range(0, 360))
		}
		off := d.Scale(float64(r.tier) * splitOffset).Perp()
		w.Add(w.newRock(r.body.Pos.Add(off), off.Scale(splitSpeed), r.tier-1))
		w.Add(w.newRock(r.body.Pos.Sub(off), off.Scale(-splitSpeed), r.tier-1))
		return
	}

	roll := w.rng.Float64()
	if roll < w.cfg.PickupChance && w.ReadyToSpawn() {
		w.SpawnPickup(r.body.Pos)
	}
}

var rockGlyphs = map[int]rune{3: 'O', 2: 'o', 1: '•'}

func (r *Rock) Render(c Canvas) {
	glyph, ok := rockGlyphs[r.tier]
	if !ok {
		glyph = '•'
	}
	c.Plot(r.body.Pos.X, r.body.Pos.Y, glyph, core.ColorOrange)
	if r.tier > 1 {
		ring(c, r.body.Pos, r.Size(), r.body.Rotation, 4*r.tier, '#', core.ColorGray)
	}
}
