package sim

import (
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

// EntitySnapshot is the kinematic state of one entity.
type EntitySnapshot struct {
	Kind     Kind    `msgpack:"k"`
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	VX       float64 `msgpack:"vx"`
	VY       float64 `msgpack:"vy"`
	Rotation float64 `msgpack:"r"`
	Size     float64 `msgpack:"s"`
	Tier     int     `msgpack:"t,omitempty"`
	Weapon   int     `msgpack:"w,omitempty"`
	Life     int     `msgpack:"l,omitempty"`
}

// Snapshot is a serialisable view of a World, used for dumps and
// determinism checks.
type Snapshot struct {
	Tick       uint64           `msgpack:"tick"`
	Score      int              `msgpack:"score"`
	Lives      int              `msgpack:"lives"`
	Level      int              `msgpack:"level"`
	Weapon     int              `msgpack:"weapon"`
	Ammo       []int            `msgpack:"ammo"`
	ShotsTaken int              `msgpack:"shots"`
	ShotsHit   int              `msgpack:"hits"`
	GameOver   bool             `msgpack:"over"`
	Entities   []EntitySnapshot `msgpack:"ents"`
	RNGState   uint64           `msgpack:"rng"`
}

// Snapshot captures the current world.
func (w *World) Snapshot() Snapshot {
	s := w.state
	snap := Snapshot{
		Tick:       w.ticks,
		Score:      s.Score,
		Lives:      s.Lives,
		Level:      s.Level,
		Weapon:     int(s.Weapon),
		Ammo:       append([]int(nil), s.Ammo[:]...),
		ShotsTaken: s.ShotsTaken,
		ShotsHit:   s.ShotsHit,
		GameOver:   s.GameOver,
		Entities:   make([]EntitySnapshot, 0, len(w.live)),
		RNGState:   w.rng.State(),
	}
	for _, e := range w.live {
		b := e.Body()
		es := EntitySnapshot{
			Kind:     e.Kind(),
			X:        b.Pos.X,
			Y:        b.Pos.Y,
			VX:       b.Vel.X,
			VY:       b.Vel.Y,
			Rotation: b.Rotation,
			Size:     e.Size(),
		}
		switch v := e.(type) {
		case *Rock:
			es.Tier = v.Tier()
		case *Shot:
			es.Life = v.Life()
		case *Shield:
			es.Life = v.Remaining()
		case *Pickup:
			es.Weapon = int(v.Weapon())
			es.Life = v.Life()
		case *Ship:
			es.Weapon = int(v.Weapon())
		}
		snap.Entities = append(snap.Entities, es)
	}
	return snap
}

// Encode serialises the snapshot with msgpack.
func (s Snapshot) Encode() ([]byte, error) {
	b, err := msgpack.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("sim: encode snapshot: %w", err)
	}
	return b, nil
}

// DecodeSnapshot parses a msgpack snapshot.
func DecodeSnapshot(b []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(b, &s); err != nil {
		return Snapshot{}, fmt.Errorf("sim: decode snapshot: %w", err)
	}
	return s, nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := s.Tick
	mix := func(v uint64) { h = h*31 + v }
	mixInt := func(v int) { mix(uint64(v)) } //#nosec G115 -- hash computation
	mixF := func(v float64) { mix(math.Float64bits(v)) }

	mixInt(s.Score)
	mixInt(s.Lives)
	mixInt(s.Level)
	mixInt(s.Weapon)
	for _, a := range s.Ammo {
		mixInt(a)
	}
	mixInt(s.ShotsTaken)
	mixInt(s.ShotsHit)
	if s.GameOver {
		mix(1)
	}
	for _, e := range s.Entities {
		mix(uint64(e.Kind))
		mixF(e.X)
		mixF(e.Y)
		mixF(e.VX)
		mixF(e.VY)
		mixF(e.Rotation)
		mixInt(e.Tier)
		mixInt(e.Life)
	}
	mix(s.RNGState)
	return h
}
