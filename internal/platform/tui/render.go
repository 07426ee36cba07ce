package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

// palette holds the ANSI color of each core.Color role, indexed by value.
var palette = [...]string{
	core.ColorDefault:  "",
	core.ColorHUD:      "245",
	core.ColorPaddle:   "15",
	core.ColorBall:     "15",
	core.ColorPowerUp:  "13",
	core.ColorPlayer:   "11",
	core.ColorPlatform: "12",
	core.ColorLaser:    "9",
	core.ColorBrick0:   "9",
	core.ColorBrick1:   "208",
	core.ColorBrick2:   "11",
	core.ColorBrick3:   "10",
	core.ColorBrick4:   "14",
	core.ColorBrick5:   "12",
	core.ColorBrick6:   "13",
}

var styles = func() []lipgloss.Style {
	s := make([]lipgloss.Style, len(palette))
	for i, c := range palette {
		s[i] = lipgloss.NewStyle()
		if c != "" {
			s[i] = s[i].Foreground(lipgloss.Color(c))
		}
	}
	return s
}()

// styleFor returns the style of c, the default style for unknown colors.
func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(styles) {
		return styles[core.ColorDefault]
	}
	return styles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of same-colored cells share one style to keep escape codes down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
