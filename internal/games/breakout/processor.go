package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
)

// AngleBounce returns the velocity of a ball leaving the top of the paddle.
//
// The hit offset from the paddle center, in half paddle widths, rotates the
// upward normal by up to cfg.MaxAngle degrees toward the hit side and v is
// reflected across it. A rebound flatter than cfg.MinAngle above the
// horizontal falls back to a plain vertical reflection. The result is sped
// up by cfg.SpeedUp and capped at cfg.MaxSpeed.
func AngleBounce(v core.Vec2, ball, paddle core.Rect, cfg config.BreakoutBounce) core.Vec2 {
	offset := 0.0
	if half := float64(paddle.W) / 2; half > 0 {
		offset = core.ClampF((ball.CenterX()-paddle.CenterX())/half, -1, 1)
	}
	rad := offset * cfg.MaxAngle * math.Pi / 180
	out := v.Reflect(core.V(math.Sin(rad), -math.Cos(rad)))

	deg := math.Atan2(-out.Y, out.X) * 180 / math.Pi
	if deg < cfg.MinAngle || deg > 180-cfg.MinAngle {
		out = v.Reflect(core.V(0, -1))
	}
	if cfg.SpeedUp > 0 {
		out = out.Scale(cfg.SpeedUp)
	}
	return out.ClampLen(cfg.MaxSpeed)
}

// rotate turns v by deg degrees (clockwise on screen, y points down).
func rotate(v core.Vec2, deg float64) core.Vec2 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return core.V(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos)
}

// apply runs the queued collisions in order and returns the resulting
// notifications.
func (w *World) apply(events []Collision) []Notification {
	var notes []Notification
	for _, ev := range events {
		switch e := ev.(type) {
		case Bounce:
			e.Body.Bounce(e.Axis)
		case PaddleBounce:
			e.Ball.Velocity = AngleBounce(e.Ball.Velocity, e.Ball.Rect, e.Paddle.Rect, w.cfg.Bounce)
		case GridHit:
			notes = w.destroyCells(e, notes)
		case BallEscaped:
			e.Ball.Alive = false
		case PowerUpCaught:
			notes = w.catchPowerUp(e.PowerUp, notes)
		}
	}
	return notes
}

// destroyCells kills the listed cells that are still alive and runs their
// effects. Cells already killed earlier in the queue are skipped.
func (w *World) destroyCells(hit GridHit, notes []Notification) []Notification {
	for _, pos := range hit.Cells {
		cell, ok := hit.Grid.Kill(pos.X, pos.Y)
		if !ok {
			continue
		}
		rect := hit.Grid.CellRect(pos.X, pos.Y)
		notes = append(notes, CellDestroyed{GridID: hit.Grid.ID, Pos: pos, Rect: rect, Effect: cell.Effect})

		switch cell.Effect {
		case EffectMultiball:
			for _, v := range spreadVelocities(hit.Ball.Velocity, w.cfg.PowerUps.MultiballCount) {
				b := w.newBall(rect, v)
				notes = append(notes, BallCreated{Ball: b})
			}
		case EffectPowerUp:
			kind := PowerUpKind(w.rng.Intn(int(powerUpKinds)))
			p := newPowerUp(kind, rect, w.cfg.PowerUps)
			w.PowerUps = append(w.PowerUps, p)
			notes = append(notes, PowerUpSpawned{PowerUp: p})
		}
	}
	return notes
}

// catchPowerUp applies a power-up touching the paddle.
func (w *World) catchPowerUp(p *PowerUp, notes []Notification) []Notification {
	if !p.Alive {
		return notes
	}
	p.Alive = false

	switch p.Kind {
	case PowerUpWiden:
		w.resizePaddle(w.Paddle.Rect.W + w.cfg.PowerUps.WidenAmount)
	case PowerUpExtraBall:
		b := w.newBall(w.Paddle.Rect, w.launchVelocity)
		b.Rect.Y = w.Paddle.Rect.Y - b.Rect.H
		notes = append(notes, BallCreated{Ball: b})
	}
	return append(notes, PowerUpCollected{Kind: p.Kind})
}
