package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar   = '▀'
	BallChar     = '●'
	BrickFull    = '█'
	BrickLone    = '▓' // Cell with no alive neighbour
	BrickTopHalf = '▀'
	BrickLowHalf = '▄'
	BorderHoriz  = '─'
)

// viewport maps world pixels onto a block of screen characters.
// Every character covers two vertically stacked samples so that bricks
// can be drawn with half blocks.
type viewport struct {
	area       core.Rect
	x0, y0     int
	cols, rows int
}

func (v viewport) col(wx int) int {
	return v.x0 + (wx-v.area.X)*v.cols/v.area.W
}

func (v viewport) row(wy int) int {
	return v.y0 + (wy-v.area.Y)*v.rows/v.area.H
}

// sample returns the world point at the center of sub-row s (0 = top half)
// of screen character (c, r), relative to the viewport.
func (v viewport) sample(c, r, s int) (int, int) {
	wx := v.area.X + (2*c+1)*v.area.W/(2*v.cols)
	wy := v.area.Y + (2*(2*r+s)+1)*v.area.H/(4*v.rows)
	return wx, wy
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	v := viewport{area: g.world.Area, x0: 0, y0: 2, cols: dst.Width(), rows: dst.Height() - 2}
	if v.area.Empty() || v.cols <= 0 || v.rows <= 0 {
		return
	}
	renderGrids(dst, v, g.world.Grids)
	renderBodies(dst, v, g.world)

	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	var levelText string
	switch {
	case len(g.levels) == 0:
		levelText = "No level"
	case g.mode == ModeEndless:
		levelText = fmt.Sprintf("Level: %d", g.cycle*len(g.levels)+g.levelIndex+1)
	default:
		levelText = fmt.Sprintf("Level: %d/%d", g.levelIndex+1, len(g.levels))
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	for x := range dst.Width() {
		dst.Set(x, 1, BorderHoriz)
	}
	if name := g.LevelName(); name != "" {
		dst.DrawText(2, 1, " "+name+" ")
	}
}

// renderGrids draws alive cells with half blocks, one sample per half.
func renderGrids(dst *core.Screen, v viewport, grids *GridSet) {
	if grids.Len() == 0 {
		return
	}
	for r := range v.rows {
		for c := range v.cols {
			top, topGrid, tx, ty := sampleCell(v, grids, c, r, 0)
			low, lowGrid, _, _ := sampleCell(v, grids, c, r, 1)

			var glyph rune
			var owner *Grid
			switch {
			case top && low:
				glyph, owner = BrickFull, topGrid
				if topGrid.TileMask(tx, ty) == 0 {
					glyph = BrickLone
				}
			case top:
				glyph, owner = BrickTopHalf, topGrid
			case low:
				glyph, owner = BrickLowHalf, lowGrid
			default:
				continue
			}
			dst.SetColored(v.x0+c, v.y0+r, glyph, core.BrickColor(owner.Environment))
		}
	}
}

// sampleCell finds the alive cell under one sample point.
func sampleCell(v viewport, grids *GridSet, c, r, s int) (bool, *Grid, int, int) {
	wx, wy := v.sample(c, r, s)
	for _, g := range grids.Grids() {
		if !g.Bounds().Contains(wx, wy) {
			continue
		}
		x, y := g.WorldToCell(wx, wy)
		if g.CellAt(x, y).Alive {
			return true, g, x, y
		}
	}
	return false, nil, 0, 0
}

// renderBodies draws power-ups, the paddle and balls.
func renderBodies(dst *core.Screen, v viewport, w *World) {
	for _, p := range w.PowerUps {
		cx, cy := p.Rect.Center()
		dst.SetColored(v.col(cx), v.row(cy), p.Kind.Glyph(), core.ColorPowerUp)
	}

	pr := w.Paddle.Rect
	row := v.row(pr.Y)
	for c := v.col(pr.X); c <= v.col(pr.Right()-1); c++ {
		dst.SetColored(c, row, PaddleChar, core.ColorPaddle)
	}

	for _, b := range w.Balls {
		cx, cy := b.Rect.Center()
		dst.SetColored(v.col(cx), v.row(cy), BallChar, core.ColorBall)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		if g.serveDelay <= 0 {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		} else {
			dst.DrawTextCentered(dst.Height()-1, "Get ready...")
		}

	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))

	case StateWin:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score))
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
