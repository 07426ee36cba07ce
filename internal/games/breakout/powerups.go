package breakout

import (
	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
)

// SimpleRNG is a deterministic pseudo-random number generator.
// Effects and drops must replay identically for a given seed.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	// 64-bit LCG (Knuth MMIX constants)
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// State returns the generator state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// AssignEffects rolls an effect for every alive cell of g.
// Multiball is rolled first, then the power-up drop.
func AssignEffects(g *Grid, rng *SimpleRNG, cfg config.BreakoutPowerUps) {
	for i := range g.Cells {
		c := &g.Cells[i]
		if !c.Alive {
			continue
		}
		switch {
		case rng.Intn(100) < cfg.MultiballChance:
			c.Effect = EffectMultiball
		case rng.Intn(100) < cfg.DropChance:
			c.Effect = EffectPowerUp
		default:
			c.Effect = EffectNone
		}
	}
}

// newPowerUp creates a falling power-up centered on a destroyed cell.
func newPowerUp(kind PowerUpKind, cell core.Rect, cfg config.BreakoutPowerUps) *PowerUp {
	cx, cy := cell.Center()
	p := &PowerUp{Kind: kind, Alive: true}
	p.Rect = core.NewRect(cx-cfg.Width/2, cy-cfg.Height/2, cfg.Width, cfg.Height)
	p.Velocity = core.V(0, cfg.FallSpeed)
	return p
}

// spreadVelocities fans count velocities around v, alternating sides,
// each rotated a further 15 degrees and kept at v's speed.
func spreadVelocities(v core.Vec2, count int) []core.Vec2 {
	out := make([]core.Vec2, 0, count)
	for i := range count {
		deg := float64(i/2+1) * 15
		if i%2 == 1 {
			deg = -deg
		}
		out = append(out, rotate(v, deg))
	}
	return out
}
