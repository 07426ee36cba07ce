package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
)

// newTestWorld builds a world with the given area and no paddle collisions.
func newTestWorld(width, height int) *World {
	cfg := config.DefaultBreakoutConfig()
	cfg.Area = config.AreaConfig{Width: width, Height: height}
	w := NewWorld(cfg, 1)
	w.resolver.Paddle = nil
	return w
}

func addBall(w *World, r core.Rect, v core.Vec2) *Ball {
	b := &Ball{Alive: true}
	b.Rect = r
	b.Velocity = v
	w.Balls = append(w.Balls, b)
	return b
}

// emptyGrid returns a grid with every cell dead except alive.
func emptyGrid(x, y, width, height, cellW, cellH int, alive ...CellPos) *Grid {
	g := NewGrid(x, y, width, height, cellW, cellH)
	for i := range g.Cells {
		g.Cells[i] = Cell{}
	}
	for _, p := range alive {
		g.Cells[p.X+p.Y*width] = Cell{Alive: true}
	}
	return g
}

func TestFreeFlightMovesWithoutCollision(t *testing.T) {
	w := newTestWorld(160, 240)
	b := addBall(w, core.NewRect(78, 100, 4, 4), core.V(0, -2))

	res := w.Step(Intent{})

	if b.Rect.Y != 98 || b.Rect.X != 78 {
		t.Errorf("ball at (%d, %d), expected (78, 98)", b.Rect.X, b.Rect.Y)
	}
	if b.Velocity != core.V(0, -2) {
		t.Errorf("velocity changed to %+v", b.Velocity)
	}
	if len(res.Collisions) != 0 {
		t.Errorf("unexpected collisions: %v", res.Collisions)
	}
}

func TestWallStopsMarchAndDiscardsRest(t *testing.T) {
	w := newTestWorld(100, 160)
	b := addBall(w, core.NewRect(94, 50, 4, 4), core.V(5, 0))

	w.Step(Intent{})

	if b.Rect.X != 96 {
		t.Errorf("ball x = %d, expected 96 (moved exactly 2)", b.Rect.X)
	}
	if b.Velocity.X != -5 {
		t.Errorf("vx = %f, expected -5", b.Velocity.X)
	}
	if b.Remainder.X != 0 {
		t.Errorf("remainder = %f, discarded pixels must not carry over", b.Remainder.X)
	}
}

func TestBallDestroysCellBelow(t *testing.T) {
	tests := []struct {
		name    string
		originY int
		wantY   int
	}{
		{"overlapping cell", 0, 3},
		{"cell one pixel below", 8, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(160, 240)
			g := w.Grids.Add(NewGrid(0, tt.originY, 1, 1, 16, 8))
			b := addBall(w, core.NewRect(2, 3, 4, 4), core.V(0, 2))

			res := w.Step(Intent{})

			if g.CellAt(0, 0).Alive {
				t.Error("cell (0, 0) should be destroyed")
			}
			if b.Velocity.Y != -2 {
				t.Errorf("vy = %f, expected -2", b.Velocity.Y)
			}
			if b.Rect.Y != tt.wantY {
				t.Errorf("ball y = %d, expected %d", b.Rect.Y, tt.wantY)
			}
			if !hasNotification[LevelCleared](res.Notifications) {
				t.Error("removing the only grid should clear the level")
			}
		})
	}
}

func TestDetectAllThenApply(t *testing.T) {
	w := newTestWorld(160, 240)
	g := w.Grids.Add(emptyGrid(0, 0, 4, 4, 4, 4, CellPos{1, 2}, CellPos{2, 1}))
	b := addBall(w, core.NewRect(4, 4, 4, 4), core.V(1, 1))

	res := w.Step(Intent{})

	if g.AliveCount() != 0 {
		t.Errorf("%d cells left, both should be destroyed in one step", g.AliveCount())
	}
	if b.Velocity != core.V(-1, -1) {
		t.Errorf("velocity = %+v, expected both components flipped", b.Velocity)
	}

	var destroyed []CellPos
	for _, n := range res.Notifications {
		if cd, ok := n.(CellDestroyed); ok {
			destroyed = append(destroyed, cd.Pos)
		}
	}
	if len(destroyed) != 2 || destroyed[0] != (CellPos{1, 2}) || destroyed[1] != (CellPos{2, 1}) {
		t.Errorf("destroyed = %v, expected [(1,2) (2,1)] in detection order", destroyed)
	}
}

func TestLeadingEdgeSpansCellsAndGrids(t *testing.T) {
	area := core.NewRect(0, 0, 160, 240)
	grids := NewGridSet(16, 8)
	tall := grids.Add(NewGrid(16, 0, 1, 2, 16, 8))
	lower := grids.Add(NewGrid(16, 8, 1, 1, 16, 8))

	r := &Resolver{Area: area, Grids: grids}
	b := &Ball{Alive: true}
	b.Rect = core.NewRect(10, 6, 4, 4)
	b.Velocity = core.V(3, 0)

	r.MoveBall(b)
	q := r.Drain()

	if b.Rect.X != 12 {
		t.Errorf("ball x = %d, expected 12", b.Rect.X)
	}
	if len(q) != 3 {
		t.Fatalf("queue = %v, expected two grid hits and one bounce", q)
	}
	first, ok := q[0].(GridHit)
	if !ok || first.Grid != tall || len(first.Cells) != 2 {
		t.Errorf("first event = %#v, expected hit on both rows of the tall grid", q[0])
	}
	second, ok := q[1].(GridHit)
	if !ok || second.Grid != lower || len(second.Cells) != 1 {
		t.Errorf("second event = %#v, expected hit on the lower grid", q[1])
	}
	if bounce, ok := q[2].(Bounce); !ok || bounce.Axis != core.AxisX {
		t.Errorf("third event = %#v, expected x bounce", q[2])
	}
	if !tall.CellAt(0, 0).Alive {
		t.Error("detection must not destroy cells")
	}
	if r.Queue() != nil {
		t.Error("Drain should reset the queue")
	}
}

func TestPaddleTakesPriority(t *testing.T) {
	area := core.NewRect(0, 0, 160, 240)
	grids := NewGridSet(16, 8)
	grids.Add(NewGrid(48, 192, 4, 2, 16, 8)) // Overlaps the paddle row
	paddle := &Paddle{Speed: 2}
	paddle.Rect = core.NewRect(60, 200, 40, 4)

	r := &Resolver{Area: area, Grids: grids, Paddle: paddle}
	b := &Ball{Alive: true}
	b.Rect = core.NewRect(70, 196, 4, 4) // Inside the grid, touching the paddle
	b.Velocity = core.V(0, 3)

	r.MoveBall(b)
	q := r.Drain()

	if len(q) == 0 {
		t.Fatal("expected a collision")
	}
	if _, ok := q[0].(PaddleBounce); !ok {
		t.Errorf("first event = %#v, expected PaddleBounce", q[0])
	}
	for _, ev := range q {
		if _, ok := ev.(GridHit); ok {
			t.Error("grid must not be probed once the paddle hit")
		}
	}
}

func TestBottomEdge(t *testing.T) {
	area := core.NewRect(0, 0, 160, 240)
	for _, loseBelow := range []bool{true, false} {
		r := &Resolver{Area: area, LoseBelow: loseBelow}
		b := &Ball{Alive: true}
		b.Rect = core.NewRect(50, 235, 4, 4)
		b.Velocity = core.V(0, 2)

		r.MoveBall(b)
		q := r.Drain()

		if len(q) != 1 {
			t.Fatalf("loseBelow=%v: queue = %v", loseBelow, q)
		}
		_, escaped := q[0].(BallEscaped)
		if escaped != loseBelow {
			t.Errorf("loseBelow=%v: event = %#v", loseBelow, q[0])
		}
		if b.Rect.Bottom() != 240 {
			t.Errorf("ball bottom = %d, expected resting on the edge", b.Rect.Bottom())
		}
	}
}

func TestAngleBounce(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Bounce
	paddle := core.NewRect(60, 200, 40, 4)

	tests := []struct {
		name string
		ball core.Rect
		v    core.Vec2
		want core.Vec2
	}{
		{"right edge", core.NewRect(98, 196, 4, 4), core.V(1, 2), core.V(2.5645, -1.1116)},
		{"center straight down", core.NewRect(78, 196, 4, 4), core.V(0, 2), core.V(0, -2.5)},
		{"clamped speed", core.NewRect(78, 196, 4, 4), core.V(0, 3), core.V(0, -3)},
		{"too shallow falls back", core.NewRect(98, 196, 4, 4), core.V(2, 0.5), core.V(2.5, -0.625)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleBounce(tt.v, tt.ball, paddle, cfg)
			if math.Abs(got.X-tt.want.X) > 0.001 || math.Abs(got.Y-tt.want.Y) > 0.001 {
				t.Errorf("AngleBounce(%+v) = %+v, expected %+v", tt.v, got, tt.want)
			}
		})
	}
}

func TestPaddleHitBiasesRebound(t *testing.T) {
	w := NewWorld(config.DefaultBreakoutConfig(), 1)
	w.Paddle.Rect = core.NewRect(60, 200, 40, 4)
	b := addBall(w, core.NewRect(98, 195, 4, 4), core.V(1, 2))

	res := w.Step(Intent{})

	if !hasCollision[PaddleBounce](res.Collisions) {
		t.Fatalf("expected a paddle bounce, got %v", res.Collisions)
	}
	if b.Velocity.Y >= 0 {
		t.Errorf("vy = %f, expected upward rebound", b.Velocity.Y)
	}
	if b.Velocity.X <= 1 {
		t.Errorf("vx = %f, expected rightward bias from an off-center hit", b.Velocity.X)
	}
}

func hasNotification[T Notification](notes []Notification) bool {
	for _, n := range notes {
		if _, ok := n.(T); ok {
			return true
		}
	}
	return false
}

func hasCollision[T Collision](events []Collision) bool {
	for _, e := range events {
		if _, ok := e.(T); ok {
			return true
		}
	}
	return false
}
