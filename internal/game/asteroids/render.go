package asteroids

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Render draws the playfield, the entities and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	field := g.proj.Field()
	dst.DrawBox(core.NewRect(field.X-1, field.Y-1, field.W+2, field.H+2), core.ColorGray)

	g.world.Render(newScreenCanvas(dst, g.proj))
	g.drawHUD(dst)

	switch {
	case g.world.State().GameOver:
		h := g.world.HUD()
		g.drawCenteredMessage(dst, core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Score: %d  %s", h.Score, h.AccuracyLabel()),
			"Press R to restart")
	case g.paused:
		g.drawCenteredMessage(dst, core.ColorBrightYellow, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	h := g.world.HUD()

	left := fmt.Sprintf(" Score: %d  Lives: %d  %s", h.Score, max(0, h.Lives), h.LevelLabel)
	if h.Practice {
		left += "  PRACTICE"
	}
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	ammo := h.AmmoLabel
	if h.AmmoAmount != "" {
		ammo += " " + h.AmmoAmount
	}
	color := core.ColorBrightCyan
	if h.NoAmmo {
		ammo += "  NO AMMO"
		color = core.ColorBrightRed
	}
	dst.DrawTextRight(0, ammo+" ", color)

	if h.ShieldLabel != "" {
		dst.DrawTextCentered(0, h.ShieldLabel, core.ColorBrightCyan)
	}

	help := "←→ turn  ↑ thrust  ↓ brake  space fire  1-6 weapon  tab aim  p pause  q quit"
	if utf8.RuneCountInString(help) > dst.Width() {
		help = "space fire  1-6 weapon  p pause  q quit"
	}
	dst.DrawTextCentered(dst.Height()-1, help, core.ColorGray)
}

// drawCenteredMessage draws a boxed message over the playfield.
func (g *Game) drawCenteredMessage(dst *core.Screen, color core.Color, title string, lines ...string) {
	width := len(title)
	for _, l := range lines {
		width = max(width, len(l))
	}
	width += 4
	height := len(lines) + 4

	x := (dst.Width() - width) / 2
	y := (dst.Height() - height) / 2
	blank := strings.Repeat(" ", width-2)
	for row := y + 1; row < y+height-1; row++ {
		dst.DrawText(x+1, row, blank)
	}
	dst.DrawBox(core.NewRect(x, y, width, height), color)
	dst.DrawTextCentered(y+1, title, color)
	for i, l := range lines {
		dst.DrawTextCentered(y+3+i, l, core.ColorWhite)
	}
}
