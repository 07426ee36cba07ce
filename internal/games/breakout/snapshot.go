package breakout

import "math"

// Snapshot is a flat copy of the game state for determinism checks.
type Snapshot struct {
	Tick       uint64
	WorldTick  uint64
	Score      int
	Lives      int
	LevelIndex int
	Cycle      int
	State      string
	ServeDelay int

	PaddleX     int
	PaddleWidth int

	// Each ball is 7 values: X, Y, VX, VY, RemX, RemY, Stuck
	BallData []float64

	// Each power-up is 3 values: Kind, X, Y
	PowerUpData []int

	// Each grid is ID, X, Y, Width followed by its cells as alive*4+effect
	GridData []int

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	snap := Snapshot{
		Tick:        g.tick,
		WorldTick:   w.Tick(),
		Score:       g.score,
		Lives:       g.lives,
		LevelIndex:  g.levelIndex,
		Cycle:       g.cycle,
		State:       g.state,
		ServeDelay:  g.serveDelay,
		PaddleX:     w.Paddle.Rect.X,
		PaddleWidth: w.Paddle.Rect.W,
		RNGState:    w.rng.State(),
	}

	for _, b := range w.Balls {
		stuck := 0.0
		if b.Stuck {
			stuck = 1
		}
		snap.BallData = append(snap.BallData,
			float64(b.Rect.X), float64(b.Rect.Y),
			b.Velocity.X, b.Velocity.Y,
			b.Remainder.X, b.Remainder.Y,
			stuck)
	}

	for _, p := range w.PowerUps {
		snap.PowerUpData = append(snap.PowerUpData, int(p.Kind), p.Rect.X, p.Rect.Y)
	}

	for _, gr := range w.Grids.Grids() {
		snap.GridData = append(snap.GridData, gr.ID, gr.X, gr.Y, gr.Width)
		for _, c := range gr.Cells {
			v := int(c.Effect)
			if c.Alive {
				v += 4
			}
			snap.GridData = append(snap.GridData, v)
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + snap.WorldTick
	for _, v := range []int{
		snap.Score, snap.Lives, snap.LevelIndex, snap.Cycle, snap.ServeDelay,
		snap.PaddleX, snap.PaddleWidth, len(snap.BallData), len(snap.PowerUpData),
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.PowerUpData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.GridData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h*31 + snap.RNGState
}
