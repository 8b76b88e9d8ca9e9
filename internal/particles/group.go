// Package particles implements short-lived visual puffs used for ship
// exhaust, shot trails and the shield halo. Particles never interact with
// the simulation; they only age and get drawn.
package particles

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Plotter receives particle draws in world coordinates.
type Plotter interface {
	Plot(x, y float64, glyph rune, color core.Color)
}

// Particle is one puff.
type Particle struct {
	Pos  core.Vec2
	Size float64
	Life int // remaining milliseconds
	Max  int // initial milliseconds
}

// Group is a fixed-capacity ring of particles sharing a color.
// When full, adding a particle overwrites the oldest one.
type Group struct {
	items []Particle
	next  int
	count int
	life  int
	color core.Color
}

// NewGroup creates a group holding at most capacity particles.
// defaultLife is used when Add is called with a non-positive life.
func NewGroup(capacity, defaultLife int, color core.Color) *Group {
	if capacity < 1 {
		capacity = 1
	}
	return &Group{
		items: make([]Particle, capacity),
		life:  defaultLife,
		color: color,
	}
}

// Add emits a particle at (x, y).
func (g *Group) Add(x, y, size float64, life int) {
	if life <= 0 {
		life = g.life
	}
	g.items[g.next] = Particle{Pos: core.V(x, y), Size: size, Life: life, Max: life}
	g.next = (g.next + 1) % len(g.items)
	if g.count < len(g.items) {
		g.count++
	}
}

// Update ages every particle by delta milliseconds.
func (g *Group) Update(delta int) {
	for i := range g.items {
		if g.items[i].Life > 0 {
			g.items[i].Life -= delta
		}
	}
}

// Live reports how many particles are still visible.
func (g *Group) Live() int {
	n := 0
	for i := 0; i < g.count; i++ {
		if g.items[i].Life > 0 {
			n++
		}
	}
	return n
}

// Cap returns the ring capacity.
func (g *Group) Cap() int {
	return len(g.items)
}

// Each calls fn for every live particle, oldest slot first.
func (g *Group) Each(fn func(p Particle)) {
	for i := 0; i < g.count; i++ {
		if g.items[i].Life > 0 {
			fn(g.items[i])
		}
	}
}

// Render draws live particles, fading glyph and color as they age.
func (g *Group) Render(p Plotter) {
	g.Each(func(pt Particle) {
		frac := float64(pt.Life) / float64(pt.Max)
		switch {
		case frac > 0.66:
			p.Plot(pt.Pos.X, pt.Pos.Y, glyphFor(pt.Size), g.color)
		case frac > 0.33:
			p.Plot(pt.Pos.X, pt.Pos.Y, '·', g.color)
		default:
			p.Plot(pt.Pos.X, pt.Pos.Y, '·', g.color.Dim())
		}
	})
}

func glyphFor(size float64) rune {
	switch {
	case size >= 2:
		return '*'
	case size >= 1:
		return '+'
	default:
		return '·'
	}
}
