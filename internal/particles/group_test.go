package particles

import (
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

type plotRecorder struct {
	glyphs []rune
	colors []core.Color
}

func (r *plotRecorder) Plot(_, _ float64, glyph rune, color core.Color) {
	r.glyphs = append(r.glyphs, glyph)
	r.colors = append(r.colors, color)
}

func TestGroupLifecycle(t *testing.T) {
	g := NewGroup(10, 200, core.ColorRed)
	g.Add(0, 0, 1, 100)

	g.Update(50)
	if g.Live() != 1 {
		t.Fatalf("particle should survive 50ms of 100ms, live = %d", g.Live())
	}

	g.Update(60)
	if g.Live() != 0 {
		t.Errorf("particle should expire after 110ms, live = %d", g.Live())
	}
}

func TestGroupDefaultLife(t *testing.T) {
	g := NewGroup(4, 300, core.ColorRed)
	g.Add(1, 2, 1, 0)

	var got Particle
	g.Each(func(p Particle) { got = p })
	if got.Life != 300 || got.Max != 300 {
		t.Errorf("non-positive life should use the group default, got %+v", got)
	}
}

func TestGroupRingOverwritesOldest(t *testing.T) {
	g := NewGroup(3, 100, core.ColorRed)
	for i := 0; i < 5; i++ {
		g.Add(float64(i), 0, 1, 100)
	}

	if g.Live() != 3 {
		t.Fatalf("live = %d, expected capacity 3", g.Live())
	}

	seen := map[float64]bool{}
	g.Each(func(p Particle) { seen[p.Pos.X] = true })
	for _, x := range []float64{2, 3, 4} {
		if !seen[x] {
			t.Errorf("expected newest particle at x=%v to survive, got %v", x, seen)
		}
	}
}

func TestGroupRenderFades(t *testing.T) {
	tests := []struct {
		name    string
		elapsed int
		glyph   rune
		color   core.Color
	}{
		{"fresh uses size glyph", 0, '*', core.ColorBrightCyan},
		{"middle age uses dot", 50, '·', core.ColorBrightCyan},
		{"old dims color", 80, '·', core.ColorCyan},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGroup(2, 100, core.ColorBrightCyan)
			g.Add(0, 0, 3, 100)
			g.Update(tc.elapsed)

			var rec plotRecorder
			g.Render(&rec)
			if len(rec.glyphs) != 1 {
				t.Fatalf("expected one plot, got %d", len(rec.glyphs))
			}
			if rec.glyphs[0] != tc.glyph || rec.colors[0] != tc.color {
				t.Errorf("plot = %q/%v, expected %q/%v", rec.glyphs[0], rec.colors[0], tc.glyph, tc.color)
			}
		})
	}
}

func TestNewGroupClampsCapacity(t *testing.T) {
	g := NewGroup(0, 100, core.ColorRed)
	if g.Cap() != 1 {
		t.Errorf("Cap() = %d, expected 1", g.Cap())
	}
}
