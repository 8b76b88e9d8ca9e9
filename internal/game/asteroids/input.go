package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

// holdMillis is how long a key press counts as held. Terminals report
// presses and auto-repeats but never releases, so a press keeps its control
// down until the latch runs out or the key repeats.
const holdMillis = 150

var heldControls = map[sim.Control]core.Action{
	sim.ControlTurnLeft:  core.ActionTurnLeft,
	sim.ControlTurnRight: core.ActionTurnRight,
	sim.ControlThrust:    core.ActionThrust,
	sim.ControlBrake:     core.ActionBrake,
	sim.ControlFire:      core.ActionFire,
}

// oneShot controls are down only on the frame their key arrives.
var oneShot = map[sim.Control]core.Action{
	sim.ControlWeapon1:   core.ActionWeapon1,
	sim.ControlWeapon2:   core.ActionWeapon2,
	sim.ControlWeapon3:   core.ActionWeapon3,
	sim.ControlWeapon4:   core.ActionWeapon4,
	sim.ControlWeapon5:   core.ActionWeapon5,
	sim.ControlWeapon6:   core.ActionWeapon6,
	sim.ControlToggleAim: core.ActionToggleAim,
}

// latch turns per-frame InputFrames into the held-button view the ship
// polls. It implements sim.Controls.
type latch struct {
	remaining map[sim.Control]int
	frame     core.InputFrame
	proj      Projection
}

func newLatch() *latch {
	return &latch{
		remaining: make(map[sim.Control]int),
		frame:     core.NewInputFrame(),
	}
}

// feed records the frame's presses before a tick.
func (l *latch) feed(in core.InputFrame) {
	l.frame = in
	for c, a := range heldControls {
		if in.Has(a) {
			l.remaining[c] = holdMillis
		}
	}
}

// decay ages held controls after a tick of delta milliseconds.
func (l *latch) decay(delta int) {
	for c, left := range l.remaining {
		if left -= delta; left <= 0 {
			delete(l.remaining, c)
		} else {
			l.remaining[c] = left
		}
	}
}

// release drops every held control.
func (l *latch) release() {
	clear(l.remaining)
	l.frame = core.NewInputFrame()
}

func (l *latch) Down(c sim.Control) bool {
	if a, ok := oneShot[c]; ok {
		return l.frame.Has(a)
	}
	return l.remaining[c] > 0
}

func (l *latch) Wheel() int { return l.frame.Wheel }

func (l *latch) Pointer() (sim.Vec2, bool) {
	p := l.frame.Pointer
	if !p.Valid {
		return sim.Vec2{}, false
	}
	return l.proj.ToWorld(p.X, p.Y), true
}
