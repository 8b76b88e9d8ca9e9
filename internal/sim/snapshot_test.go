package sim

import (
	"testing"
)

func runAutopilot(seed int64, ticks int) *World {
	w := NewWorld(DefaultConfig(), WithSeed(seed))
	w.SetControls(NewAutopilot(w))
	w.Start()
	for range ticks {
		w.Tick(16)
	}
	return w
}

func TestSameSeedSameRun(t *testing.T) {
	a := runAutopilot(99, 600).Snapshot()
	b := runAutopilot(99, 600).Snapshot()

	if a.Hash() != b.Hash() {
		t.Fatalf("hash mismatch: %d vs %d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || len(a.Entities) != len(b.Entities) {
		t.Errorf("runs diverged: score %d/%d, entities %d/%d",
			a.Score, b.Score, len(a.Entities), len(b.Entities))
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := runAutopilot(1, 10).Snapshot()
	b := runAutopilot(2, 10).Snapshot()
	if a.Hash() == b.Hash() {
		t.Error("different seeds produced identical runs")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap := runAutopilot(5, 200).Snapshot()

	b, err := snap.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	got, err := DecodeSnapshot(b)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error: %v", err)
	}
	if got.Hash() != snap.Hash() {
		t.Errorf("decoded hash %d, expected %d", got.Hash(), snap.Hash())
	}
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	if _, err := DecodeSnapshot([]byte{0xc1}); err == nil {
		t.Error("expected error for invalid msgpack")
	}
}

func TestAutopilot(t *testing.T) {
	w := newTestWorld()
	w.Start()
	ap := NewAutopilot(w)

	if !ap.Down(ControlFire) || !ap.Down(ControlBrake) {
		t.Error("autopilot should hold fire and brake")
	}
	if ap.Down(ControlThrust) {
		t.Error("autopilot should not thrust")
	}
	if ap.Down(ControlWeapon2) {
		t.Error("no stocked weapon, no hotkey")
	}

	w.state.Ammo[WeaponMulti] = 5
	w.state.Ammo[WeaponLaser] = 5
	if !ap.Down(ControlWeapon5) || ap.Down(ControlWeapon4) {
		t.Error("autopilot should prefer multi over laser")
	}

	p, ok := ap.Pointer()
	if !ok {
		t.Fatal("expected a target with rocks on the field")
	}
	best := -1.0
	for _, e := range w.Entities() {
		if e.Kind() != KindRock {
			continue
		}
		if d := e.Body().Pos.Len(); best < 0 || d < best {
			best = d
		}
	}
	if !near(p.Len(), best) {
		t.Errorf("pointer at distance %v, nearest rock at %v", p.Len(), best)
	}
}
