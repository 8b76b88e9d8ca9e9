package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// RGB maps a unit-range tint onto the closest palette color.
// Channels at or above 0.5 count as lit.
func RGB(r, g, b float64) Color {
	lit := func(c float64) bool { return c >= 0.5 }
	switch {
	case lit(r) && lit(g) && lit(b):
		return ColorBrightWhite
	case lit(r) && lit(g):
		return ColorBrightYellow
	case lit(r) && lit(b):
		return ColorBrightMagenta
	case lit(g) && lit(b):
		return ColorBrightCyan
	case lit(r):
		return ColorBrightRed
	case lit(g):
		return ColorBrightGreen
	case lit(b):
		return ColorBrightBlue
	default:
		return ColorGray
	}
}

// Dim returns the darker palette variant of a bright color.
// Colors without a darker variant are returned unchanged.
func (c Color) Dim() Color {
	if c >= ColorBrightRed && c <= ColorBrightWhite {
		return c - (ColorBrightRed - ColorRed)
	}
	return c
}
