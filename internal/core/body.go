package core

import "math"

// Body is a moving rectangle with a velocity and a sub-pixel remainder.
// Rect always sits on whole pixels; the fractional part of the motion
// accumulates in Remainder until it rounds to a whole pixel.
type Body struct {
	Rect      Rect
	Velocity  Vec2 // Pixels per step
	Remainder Vec2 // Unresolved sub-pixel displacement
}

// CollideFunc tests a candidate rectangle one pixel further along the
// marching axis. sign is +1 or -1. Returning true stops the march.
type CollideFunc func(candidate Rect, sign int) bool

// Move resolves one step of motion along a single axis.
//
// The axis velocity is added to the remainder and the rounded whole part
// (half away from zero) is marched one pixel at a time. Each pixel is offered
// to collide before being committed. On the first hit the march stops and the
// pixels still owed for this step are dropped; the remainder keeps only the
// sub-pixel residue. collide may be nil for free motion.
func (b *Body) Move(axis Axis, collide CollideFunc) (moved int, hit bool) {
	rem := b.Remainder.Get(axis) + b.Velocity.Get(axis)
	move := int(math.Round(rem))
	if move == 0 {
		b.Remainder.Set(axis, rem)
		return 0, false
	}
	b.Remainder.Set(axis, rem-float64(move))

	sign := Sign(move)
	for move != 0 {
		move -= sign
		candidate := b.Rect.Step(axis, sign)
		if collide != nil && collide(candidate, sign) {
			return moved, true
		}
		b.Rect = candidate
		moved += sign
	}
	return moved, false
}

// Bounce reverses the velocity along axis.
func (b *Body) Bounce(axis Axis) {
	b.Velocity.Set(axis, -b.Velocity.Get(axis))
}
