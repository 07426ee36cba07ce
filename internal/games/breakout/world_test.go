package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/levels"
)

func TestWorldLaunchServesBall(t *testing.T) {
	w := NewWorld(config.DefaultBreakoutConfig(), 1)

	res := w.Step(Intent{Launch: true})

	if len(w.Balls) != 1 {
		t.Fatalf("balls = %d, expected 1", len(w.Balls))
	}
	if !hasNotification[BallCreated](res.Notifications) {
		t.Error("expected BallCreated")
	}
	b := w.Balls[0]
	if b.Stuck {
		t.Error("launched ball should not be stuck")
	}
	if b.Rect.Bottom() >= w.Paddle.Rect.Y {
		t.Errorf("ball bottom %d should be above the paddle at %d", b.Rect.Bottom(), w.Paddle.Rect.Y)
	}
}

func TestWorldStuckBallRidesPaddle(t *testing.T) {
	w := NewWorld(config.DefaultBreakoutConfig(), 1)
	b := w.Serve()
	if b == nil || !b.Stuck {
		t.Fatal("Serve should add a stuck ball")
	}
	if w.Serve() != nil {
		t.Error("Serve with a ball in play should do nothing")
	}

	for range 5 {
		w.Step(Intent{Move: 1})
	}

	cx, _ := w.Paddle.Rect.Center()
	bx, _ := b.Rect.Center()
	if bx != cx {
		t.Errorf("stuck ball center %d, paddle center %d", bx, cx)
	}
	if b.Rect.Bottom() != w.Paddle.Rect.Y {
		t.Errorf("stuck ball should sit on the paddle")
	}
}

func TestWorldPaddleClampedToArea(t *testing.T) {
	w := NewWorld(config.DefaultBreakoutConfig(), 1)
	for range 200 {
		w.Step(Intent{Move: -1})
	}
	if w.Paddle.Rect.X != 0 {
		t.Errorf("paddle x = %d, expected 0", w.Paddle.Rect.X)
	}
	for range 200 {
		w.Step(Intent{Move: 1})
	}
	if w.Paddle.Rect.Right() != w.Area.Right() {
		t.Errorf("paddle right = %d, expected %d", w.Paddle.Rect.Right(), w.Area.Right())
	}
}

func TestWorldClearBalls(t *testing.T) {
	w := NewWorld(config.DefaultBreakoutConfig(), 1)
	addBall(w, core.NewRect(10, 10, 4, 4), core.V(1, 1))
	addBall(w, core.NewRect(30, 10, 4, 4), core.V(1, 1))

	res := w.Step(Intent{ClearBalls: true})

	if len(w.Balls) != 0 {
		t.Errorf("balls = %d, expected 0", len(w.Balls))
	}
	if len(res.Notifications) != 1 || res.Notifications[0] != (BallsCleared{Count: 2}) {
		t.Errorf("notifications = %v", res.Notifications)
	}
}

func TestWorldLastBallLost(t *testing.T) {
	w := NewWorld(config.DefaultBreakoutConfig(), 1)
	a := addBall(w, core.NewRect(2, 236, 4, 4), core.V(0, 2))
	addBall(w, core.NewRect(20, 100, 4, 4), core.V(0, 1))

	res := w.Step(Intent{})
	if len(w.Balls) != 1 {
		t.Fatalf("balls = %d, expected 1", len(w.Balls))
	}
	if !hasNotification[BallLost](res.Notifications) || hasNotification[LastBallLost](res.Notifications) {
		t.Errorf("first loss notifications = %v", res.Notifications)
	}
	if a.Alive {
		t.Error("escaped ball should be dead")
	}

	w.Balls[0].Rect.Y = 236
	res = w.Step(Intent{})
	if !hasNotification[LastBallLost](res.Notifications) {
		t.Errorf("expected LastBallLost, got %v", res.Notifications)
	}
}

func TestWorldMultiballEffect(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	w := NewWorld(cfg, 1)
	w.resolver.Paddle = nil
	g := w.Grids.Add(NewGrid(32, 0, 2, 1, 16, 8))
	g.Cells[0].Effect = EffectMultiball
	addBall(w, core.NewRect(36, 9, 4, 4), core.V(1, -2))

	res := w.Step(Intent{})

	created := 0
	for _, n := range res.Notifications {
		if _, ok := n.(BallCreated); ok {
			created++
		}
	}
	if created != cfg.PowerUps.MultiballCount {
		t.Errorf("created %d balls, expected %d", created, cfg.PowerUps.MultiballCount)
	}
	if len(w.Balls) != 1+cfg.PowerUps.MultiballCount {
		t.Errorf("balls in play = %d", len(w.Balls))
	}
}

func TestWorldPowerUpWidensPaddle(t *testing.T) {
	w := NewWorld(config.DefaultBreakoutConfig(), 1)
	startX, startW := w.Paddle.Rect.X, w.Paddle.Rect.W

	p := &PowerUp{Kind: PowerUpWiden, Alive: true}
	p.Rect = core.NewRect(startX+10, w.Paddle.Rect.Y-5, 8, 4)
	p.Velocity = core.V(0, 2)
	w.PowerUps = append(w.PowerUps, p)

	res := w.Step(Intent{})

	if !hasNotification[PowerUpCollected](res.Notifications) {
		t.Fatalf("expected PowerUpCollected, got %v", res.Notifications)
	}
	if w.Paddle.Rect.W != startW+8 {
		t.Errorf("paddle width = %d, expected %d", w.Paddle.Rect.W, startW+8)
	}
	if w.Paddle.Rect.X != startX-4 {
		t.Errorf("paddle x = %d, expected widening around the center", w.Paddle.Rect.X)
	}
	if len(w.PowerUps) != 0 {
		t.Error("caught power-up should be removed")
	}

	w.ResetPaddle()
	if w.Paddle.Rect.W != startW || w.Paddle.Rect.X != startX {
		t.Error("ResetPaddle should restore the configured paddle")
	}
}

func TestWorldPowerUpLandsAndDisappears(t *testing.T) {
	w := NewWorld(config.DefaultBreakoutConfig(), 1)
	p := &PowerUp{Kind: PowerUpExtraBall, Alive: true}
	p.Rect = core.NewRect(2, 235, 8, 4)
	p.Velocity = core.V(0, 3)
	w.PowerUps = append(w.PowerUps, p)

	w.Step(Intent{})

	if p.Alive || len(w.PowerUps) != 0 {
		t.Error("power-up reaching the bottom should be discarded")
	}
}

func TestWorldLoadLevel(t *testing.T) {
	w := NewWorld(config.DefaultBreakoutConfig(), 1)
	l := levels.Level{
		Name:       "test",
		CellHeight: 10,
		Grids: []levels.Descriptor{
			{X: 0, Y: 0, Width: 3, Cells: []int{0, 0, 0, 0, 1, 1}},
			{X: 80, Y: 0, Width: 1, Cells: []int{0}},
		},
	}

	if err := w.LoadLevel(l); err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if w.Grids.Len() != 1 {
		t.Fatalf("grids = %d, expected the empty grid skipped", w.Grids.Len())
	}
	g := w.Grids.Grids()[0]
	if g.X != 16 || g.Y != 10 || g.Width != 2 || g.CellH != 10 || g.CellW != 16 {
		t.Errorf("grid not trimmed on load: %+v", g)
	}

	saved := w.Level("copy")
	if saved.AliveCount() != 2 || saved.CellHeight != 10 {
		t.Errorf("Level() = %+v", saved)
	}

	bad := levels.Level{Grids: []levels.Descriptor{{Width: 2, Cells: []int{1}}}}
	if err := w.LoadLevel(bad); err == nil {
		t.Error("expected error for ragged grid")
	}
	if w.Grids.Len() != 0 {
		t.Error("failed load should leave no grids")
	}
}

func TestWorldDeterministicEffects(t *testing.T) {
	l := BuiltinLevels(config.DefaultBreakoutConfig())[0]

	effects := func(seed int64) []Effect {
		w := NewWorld(config.DefaultBreakoutConfig(), seed)
		if err := w.LoadLevel(l); err != nil {
			t.Fatal(err)
		}
		var out []Effect
		for _, g := range w.Grids.Grids() {
			for _, c := range g.Cells {
				out = append(out, c.Effect)
			}
		}
		return out
	}

	a, b := effects(42), effects(42)
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("effect counts %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("effect %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
