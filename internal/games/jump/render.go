package jump

import (
	"fmt"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlatformChar = '▀'
	LaserChar    = '≡'
	BorderHoriz  = '─'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	for x := range dst.Width() {
		dst.Set(x, 1, BorderHoriz)
	}

	rows := dst.Height() - 2
	if rows <= 0 || dst.Width() <= 0 || g.area.Empty() {
		return
	}
	project := func(r core.Rect) core.Rect {
		x1 := r.X * dst.Width() / g.area.W
		y1 := 2 + r.Y*rows/g.area.H
		x2 := (r.Right() - 1) * dst.Width() / g.area.W
		y2 := 2 + (r.Bottom()-1)*rows/g.area.H
		return core.NewRect(x1, y1, x2-x1+1, y2-y1+1)
	}
	fill := func(r core.Rect, ch rune, c core.Color) {
		s := project(r)
		for y := max(s.Y, 2); y < s.Bottom(); y++ {
			for x := s.X; x < s.Right(); x++ {
				dst.SetColored(x, y, ch, c)
			}
		}
	}

	for _, l := range g.lasers {
		fill(l, LaserChar, core.ColorLaser)
	}
	for _, p := range g.platforms.Platforms() {
		fill(p.Rect, PlatformChar, core.ColorPlatform)
	}
	if g.player.Alive {
		fill(g.player.Rect, PlayerChar, core.ColorPlayer)
	}

	switch {
	case !g.player.Alive:
		drawCenteredBox(dst, "GAME OVER", "Press any key to respawn")
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case !g.player.Falling:
		dst.DrawTextCentered(dst.Height()-1, "Press any key to drop")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
