package sim

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/particles"
)

const (
	trailCapacity   = 100
	trailPuffLife   = 200
	branchAngle     = 15.0
	branchSpeed     = 100.0
	branchShrink    = 1.5
	branchMinSize   = 0.5
	branchTrailLife = 350
)

// ShotParams configures a projectile.
type ShotParams struct {
	Life        int // milliseconds
	Size        float64
	Color       core.Color
	Destroyable bool // removed after its first rock hit
	Branch      bool // forks in two on a rock hit while larger than branchMinSize
	TrailLife   int
}

// Shot is a projectile with a particle trail.
type Shot struct {
	body   Body
	params ShotParams
	life   int
	trail  *particles.Group
}

// NewShot creates a projectile at pos moving with vel.
func NewShot(pos, vel Vec2, p ShotParams) *Shot {
	return &Shot{
		body:   Body{Pos: pos, Vel: vel},
		params: p,
		life:   p.Life,
		trail:  particles.NewGroup(trailCapacity, p.TrailLife, p.Color),
	}
}

func (s *Shot) Kind() Kind    { return KindShot }
func (s *Shot) Body() *Body   { return &s.body }
func (s *Shot) Size() float64 { return s.params.Size }

// Life returns the remaining lifetime in milliseconds.
func (s *Shot) Life() int { return s.life }

// Params returns the shot's construction parameters.
func (s *Shot) Params() ShotParams { return s.params }

func (s *Shot) Update(w *World, delta int) {
	s.body.integrate(delta, w.bounds)
	s.life -= delta
	if s.life < 0 {
		w.Remove(s)
		return
	}
	s.trail.Add(s.body.Pos.X, s.body.Pos.Y, s.params.Size, trailPuffLife)
	s.trail.Update(delta)
}

func (s *Shot) OnCollide(w *World, other Entity) {
	if other.Kind() != KindRock {
		return
	}
	rock := other.(*Rock)
	if rock.Destroyed() {
		return
	}
	w.SuccessfulShot()
	rock.Split(w, s)
	if s.params.Branch && s.params.Size > branchMinSize {
		s.fork(w)
	}
	if s.params.Destroyable {
		w.Remove(s)
	}
}

// fork spawns two smaller branching shots either side of the current heading.
func (s *Shot) fork(w *World) {
	heading := core.HeadingOf(s.body.Vel)
	child := ShotParams{
		Life:        s.life,
		Size:        s.params.Size / branchShrink,
		Color:       core.RGB(0, 0, 1),
		Destroyable: true,
		Branch:      true,
		TrailLife:   branchTrailLife,
	}
	for _, off := range []float64{-branchAngle, branchAngle} {
		vel := core.Heading(heading + off).Scale(branchSpeed)
		w.Add(NewShot(s.body.Pos, vel, child))
	}
}

func (s *Shot) Render(c Canvas) {
	s.trail.Render(c)
	c.Plot(s.body.Pos.X, s.body.Pos.Y, '•', s.params.Color)
}
