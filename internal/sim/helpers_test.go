package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// cueLog records every cue played.
type cueLog struct {
	played []Cue
}

func (c *cueLog) Play(q Cue) { c.played = append(c.played, q) }

func (c *cueLog) count(q Cue) int {
	n := 0
	for _, p := range c.played {
		if p == q {
			n++
		}
	}
	return n
}

// held is a Controls with a fixed set of held inputs.
type held struct {
	down    map[Control]bool
	wheel   int
	pointer *Vec2
}

func hold(cs ...Control) *held {
	h := &held{down: make(map[Control]bool)}
	for _, c := range cs {
		h.down[c] = true
	}
	return h
}

func (h *held) Down(c Control) bool { return h.down[c] }
func (h *held) Wheel() int          { return h.wheel }
func (h *held) Pointer() (Vec2, bool) {
	if h.pointer == nil {
		return Vec2{}, false
	}
	return *h.pointer, true
}

// probe is a minimal entity that counts calls.
type probe struct {
	body      Body
	radius    float64
	updates   int
	collided  []Entity
	onCollide func(w *World, other Entity)
	onUpdate  func(w *World)
}

func newProbe(x, y, radius float64) *probe {
	return &probe{body: Body{Pos: core.V(x, y)}, radius: radius}
}

func (p *probe) Kind() Kind    { return KindShield }
func (p *probe) Body() *Body   { return &p.body }
func (p *probe) Size() float64 { return p.radius }
func (p *probe) Render(Canvas) {}

func (p *probe) Update(w *World, _ int) {
	p.updates++
	if p.onUpdate != nil {
		p.onUpdate(w)
	}
}

func (p *probe) OnCollide(w *World, other Entity) {
	p.collided = append(p.collided, other)
	if p.onCollide != nil {
		p.onCollide(w, other)
	}
}

func newTestWorld(opts ...Option) *World {
	return NewWorld(DefaultConfig(), append([]Option{WithSeed(42)}, opts...)...)
}

// pending returns staged additions of kind k.
func pending(w *World, k Kind) []Entity {
	var out []Entity
	for _, e := range w.pendingAdd {
		if e.Kind() == k {
			out = append(out, e)
		}
	}
	return out
}

func contains(es []Entity, target Entity) bool {
	for _, e := range es {
		if e == target {
			return true
		}
	}
	return false
}
