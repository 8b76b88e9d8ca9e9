package sim

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/particles"
)

const (
	haloCapacity = 250
	haloLife     = 250
	haloPuffLife = 200
)

// Shield surrounds the ship for a limited time, destroying rocks it touches
// and keeping the ship immune. It follows the ship but does not own it.
type Shield struct {
	body      Body
	ship      *Ship
	remaining int
	size      float64
	absorb    int
	halo      *particles.Group
}

// NewShield raises a shield around ship lasting duration milliseconds.
// Each absorbed rock costs absorb milliseconds.
func NewShield(ship *Ship, duration int, size float64, absorb int) *Shield {
	ship.raiseShield()
	return &Shield{
		body:      Body{Pos: ship.body.Pos, Vel: ship.body.Vel},
		ship:      ship,
		remaining: duration,
		size:      size,
		absorb:    absorb,
		halo:      particles.NewGroup(haloCapacity, haloLife, core.RGB(0, 1, 1)),
	}
}

func (s *Shield) Kind() Kind    { return KindShield }
func (s *Shield) Body() *Body   { return &s.body }
func (s *Shield) Size() float64 { return s.size }

// Remaining returns the remaining duration in milliseconds.
func (s *Shield) Remaining() int { return s.remaining }

func (s *Shield) Update(w *World, delta int) {
	s.body.integrate(delta, w.bounds)
	s.remaining -= delta
	w.SetShieldRemaining(s.remaining)
	if s.remaining <= 0 {
		s.ship.lowerShield()
		w.Remove(s)
		w.ClearShieldRemaining()
		w.ShieldDown()
		return
	}
	s.body.Vel = s.ship.body.Vel
	s.halo.Add(s.body.Pos.X, s.body.Pos.Y, s.size, haloPuffLife)
	s.halo.Update(delta)
}

func (s *Shield) OnCollide(w *World, other Entity) {
	if other.Kind() != KindRock {
		return
	}
	rock := other.(*Rock)
	if rock.Destroyed() {
		return
	}
	rock.Split(w, s)
	s.remaining -= s.absorb
}

func (s *Shield) Render(c Canvas) {
	s.halo.Render(c)
	ring(c, s.body.Pos, s.size, 0, 12, '·', core.ColorBrightCyan)
}
