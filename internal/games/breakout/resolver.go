package breakout

import (
	"github.com/vovakirdan/tui-breaker/internal/core"
)

// Resolver marches bodies one pixel at a time and queues the collisions it
// finds. It never changes velocities or cells; that happens when the queue
// is applied.
type Resolver struct {
	Area      core.Rect
	Paddle    *Paddle
	Grids     *GridSet
	LoseBelow bool // Balls crossing the bottom edge escape instead of bouncing

	queue []Collision
}

// Queue returns the collisions detected since the last Drain.
func (r *Resolver) Queue() []Collision {
	return r.queue
}

// Drain returns the queued collisions and resets the queue.
func (r *Resolver) Drain() []Collision {
	q := r.queue
	r.queue = nil
	return q
}

func (r *Resolver) push(c Collision) {
	r.queue = append(r.queue, c)
}

// MoveBall resolves one step of ball motion, vertical axis first.
func (r *Resolver) MoveBall(b *Ball) {
	for _, axis := range [...]core.Axis{core.AxisY, core.AxisX} {
		b.Move(axis, func(c core.Rect, sign int) bool {
			return r.probeBall(b, axis, c, sign)
		})
	}
}

// probeBall tests a ball candidate rectangle against the paddle, then the
// area boundary, then every grid. Only the first category that hits
// produces events.
func (r *Resolver) probeBall(b *Ball, axis core.Axis, c core.Rect, sign int) bool {
	// A ball already overlapping the paddle is let out.
	if r.Paddle != nil && c.Intersects(r.Paddle.Rect) && !b.Rect.Intersects(r.Paddle.Rect) {
		if axis == core.AxisY {
			r.push(PaddleBounce{Ball: b, Paddle: r.Paddle, Axis: axis})
		} else {
			r.push(Bounce{Body: &b.Body, Axis: axis})
		}
		return true
	}

	if r.leaving(c, axis) {
		if axis == core.AxisY && sign > 0 && r.LoseBelow {
			r.push(BallEscaped{Ball: b})
		} else {
			r.push(Bounce{Body: &b.Body, Axis: axis})
		}
		return true
	}

	if r.Grids == nil {
		return false
	}
	hit := false
	for _, g := range r.Grids.Grids() {
		cells := LeadingCells(g, c, axis, sign)
		if len(cells) == 0 {
			continue
		}
		r.push(GridHit{Ball: b, Axis: axis, Grid: g, Cells: cells})
		hit = true
	}
	if hit {
		r.push(Bounce{Body: &b.Body, Axis: axis})
	}
	return hit
}

// MovePowerUp lets a power-up fall. It is caught by the paddle and rests
// on the bottom edge; grids do not stop it. It reports whether the
// power-up reached the bottom edge.
func (r *Resolver) MovePowerUp(p *PowerUp) (landed bool) {
	p.Move(core.AxisY, func(c core.Rect, sign int) bool {
		if r.Paddle != nil && c.Intersects(r.Paddle.Rect) {
			r.push(PowerUpCaught{PowerUp: p})
			return true
		}
		if sign > 0 && c.Bottom() > r.Area.Bottom() {
			landed = true
			return true
		}
		return false
	})
	return landed
}

// leaving reports whether c crosses the area boundary along axis.
func (r *Resolver) leaving(c core.Rect, axis core.Axis) bool {
	if axis == core.AxisY {
		return c.Y < r.Area.Y || c.Bottom() > r.Area.Bottom()
	}
	return c.X < r.Area.X || c.Right() > r.Area.Right()
}

// LeadingCells returns the alive cells of g under the leading edge of c
// when moving along axis in direction sign. Only the outermost pixel row
// or column in the direction of travel is sampled.
func LeadingCells(g *Grid, c core.Rect, axis core.Axis, sign int) []CellPos {
	if c.Empty() || !c.Intersects(g.Bounds()) {
		return nil
	}

	var x1, y1, x2, y2 int
	if axis == core.AxisY {
		py := c.Y
		if sign > 0 {
			py = c.Bottom() - 1
		}
		x1, y1 = g.WorldToCell(c.X, py)
		x2, y2 = g.WorldToCell(c.Right()-1, py)
	} else {
		px := c.X
		if sign > 0 {
			px = c.Right() - 1
		}
		x1, y1 = g.WorldToCell(px, c.Y)
		x2, y2 = g.WorldToCell(px, c.Bottom()-1)
	}

	var cells []CellPos
	for _, ref := range g.Region(x1, y1, x2, y2) {
		if ref.Cell.Alive {
			cells = append(cells, ref.CellPos)
		}
	}
	return cells
}
