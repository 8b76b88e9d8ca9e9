// Package sim is the asteroids simulation core: the live entity set, the
// per-tick collide/flush/update cycle, and every reaction between ships,
// rocks, shots, shields and pickups.
//
// The package is single-threaded and never blocks. Rendering, audio and input
// are reached only through the Canvas, CuePlayer and Controls interfaces.
//
// World coordinates are y-up: rotation 0 faces negative Y, and positive
// rotation turns counter-clockwise on screen.
package sim

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Vec2 is a world-space vector.
type Vec2 = core.Vec2

// Kind tags the concrete variant behind an Entity.
type Kind uint8

const (
	KindShip Kind = iota
	KindRock
	KindShot
	KindShield
	KindPickup
)

func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindRock:
		return "rock"
	case KindShot:
		return "shot"
	case KindShield:
		return "shield"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Body is the kinematic state every entity carries.
// Velocity is in world units per second; rotation is in degrees within [0, 360).
type Body struct {
	Pos      Vec2
	Vel      Vec2
	Rotation float64
}

// Turn adds deg to the rotation, keeping it normalised.
func (b *Body) Turn(deg float64) {
	b.Rotation = core.WrapDegrees(b.Rotation + deg)
}

// Face sets the rotation, keeping it normalised.
func (b *Body) Face(deg float64) {
	b.Rotation = core.WrapDegrees(deg)
}

// integrate advances the position by delta milliseconds and wraps it into bounds.
func (b *Body) integrate(delta int, bounds Bounds) {
	b.Pos = b.Pos.Add(b.Vel.Scale(float64(delta) / 1000))
	b.Pos = core.Wrap(b.Pos, bounds.HalfW, bounds.HalfH)
}

// Bounds is the half-extent of the toroidal playfield centred on the origin.
type Bounds struct {
	HalfW float64
	HalfH float64
}

// Entity is anything that lives in the World.
type Entity interface {
	Kind() Kind
	Body() *Body
	// Size is the collision radius.
	Size() float64
	Update(w *World, delta int)
	OnCollide(w *World, other Entity)
	Render(c Canvas)
}

// Canvas receives draw calls in world coordinates.
type Canvas interface {
	Plot(x, y float64, glyph rune, color core.Color)
}

// ring plots n points on a circle of radius r around pos, offset by rot degrees.
func ring(c Canvas, pos Vec2, r, rot float64, n int, glyph rune, color core.Color) {
	for i := range n {
		p := pos.Add(core.Heading(rot + float64(i)*360/float64(n)).Scale(r))
		c.Plot(p.X, p.Y, glyph, color)
	}
}
