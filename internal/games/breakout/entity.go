package breakout

import "github.com/vovakirdan/tui-breaker/internal/core"

// Ball is a bouncing body. A stuck ball rides on the paddle until launched.
type Ball struct {
	core.Body
	Stuck bool
	Alive bool
}

// Paddle is the player-controlled body, clamped horizontally to the area.
type Paddle struct {
	core.Body
	Speed int // Pixels per step per unit of input
}

// CenterX returns the exact horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.Rect.CenterX()
}

// PowerUpKind identifies what a caught power-up does.
type PowerUpKind int

const (
	PowerUpWiden     PowerUpKind = iota // Widen the paddle
	PowerUpExtraBall                    // Launch another ball from the paddle
	powerUpKinds
)

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpWiden:
		return 'W'
	case PowerUpExtraBall:
		return 'M'
	default:
		return '?'
	}
}

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpWiden:
		return "Widen"
	case PowerUpExtraBall:
		return "Extra"
	default:
		return "?"
	}
}

// PowerUp is a falling pickup dropped by a destroyed cell.
type PowerUp struct {
	core.Body
	Kind  PowerUpKind
	Alive bool
}
