package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

// cellAspect is how many columns make up one row's height on a typical
// terminal font.
const cellAspect = 2.0

// Projection maps y-up world coordinates onto screen cells, keeping the
// playfield's aspect ratio and centring it in the area below the HUD.
type Projection struct {
	bounds   sim.Bounds
	originX  float64 // column of world x = -HalfW
	originY  float64 // row of world y = +HalfH
	colsPerU float64
	rowsPerU float64
}

// NewProjection fits bounds into area.
func NewProjection(bounds sim.Bounds, area core.Rect) Projection {
	wU, hU := 2*bounds.HalfW, 2*bounds.HalfH
	rows := math.Min(float64(area.H)/hU, float64(area.W)/(wU*cellAspect))
	if rows <= 0 || math.IsNaN(rows) {
		rows = 0
	}
	cols := rows * cellAspect
	return Projection{
		bounds:   bounds,
		originX:  float64(area.X) + (float64(area.W)-wU*cols)/2,
		originY:  float64(area.Y) + (float64(area.H)-hU*rows)/2,
		colsPerU: cols,
		rowsPerU: rows,
	}
}

// ToCell returns the cell under world point (x, y).
func (p Projection) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor(p.originX + (x+p.bounds.HalfW)*p.colsPerU))
	row = int(math.Floor(p.originY + (p.bounds.HalfH-y)*p.rowsPerU))
	return col, row
}

// ToWorld returns the world point at the centre of a cell.
func (p Projection) ToWorld(col, row int) sim.Vec2 {
	if p.colsPerU == 0 || p.rowsPerU == 0 {
		return sim.Vec2{}
	}
	x := (float64(col)+0.5-p.originX)/p.colsPerU - p.bounds.HalfW
	y := p.bounds.HalfH - (float64(row)+0.5-p.originY)/p.rowsPerU
	return core.V(x, y)
}

// Field returns the cell rectangle the playfield occupies.
func (p Projection) Field() core.Rect {
	x0, y0 := p.ToCell(-p.bounds.HalfW, p.bounds.HalfH)
	w := int(math.Round(2 * p.bounds.HalfW * p.colsPerU))
	h := int(math.Round(2 * p.bounds.HalfH * p.rowsPerU))
	return core.NewRect(x0, y0, w, h)
}

// screenCanvas plots world glyphs onto a screen, dropping anything that
// falls outside the playfield.
type screenCanvas struct {
	dst   *core.Screen
	proj  Projection
	field core.Rect
}

func newScreenCanvas(dst *core.Screen, proj Projection) *screenCanvas {
	return &screenCanvas{dst: dst, proj: proj, field: proj.Field()}
}

func (c *screenCanvas) Plot(x, y float64, glyph rune, color core.Color) {
	col, row := c.proj.ToCell(x, y)
	if !c.field.Contains(col, row) {
		return
	}
	c.dst.SetColored(col, row, glyph, color)
}
