package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/levels"
)

// Intent is the player input for one step.
type Intent struct {
	Move       int  // Paddle direction: -1, 0 or 1
	Launch     bool // Release stuck balls, serving a new one if none is in play
	ClearBalls bool // Remove every ball in play
}

// StepResult reports what one step did.
type StepResult struct {
	Tick          uint64
	Collisions    []Collision    // Applied collisions, in detection order
	Notifications []Notification // State changes, in the order they happened
}

// World is the complete simulation state of one brick-breaker session.
// It is owned by a single caller and advanced only through Step.
type World struct {
	Area     core.Rect
	Paddle   *Paddle
	Balls    []*Ball
	PowerUps []*PowerUp
	Grids    *GridSet

	cfg            config.BreakoutConfig
	rng            *SimpleRNG
	resolver       Resolver
	launchVelocity core.Vec2
	tick           uint64
}

// NewWorld creates a world with a centered paddle, no balls and no grids.
func NewWorld(cfg config.BreakoutConfig, seed int64) *World {
	area := core.NewRect(0, 0, cfg.Area.Width, cfg.Area.Height)
	paddle := &Paddle{Speed: cfg.Paddle.Speed}
	paddle.Rect = core.NewRect((area.W-cfg.Paddle.Width)/2, cfg.Paddle.Y, cfg.Paddle.Width, cfg.Paddle.Height)

	w := &World{
		Area:           area,
		Paddle:         paddle,
		Grids:          NewGridSet(cfg.Grid.CellWidth, cfg.Grid.CellHeight),
		cfg:            cfg,
		rng:            NewSimpleRNG(seed),
		launchVelocity: core.V(cfg.Ball.LaunchVX, cfg.Ball.LaunchVY),
	}
	w.resolver = Resolver{
		Area:      area,
		Paddle:    paddle,
		Grids:     w.Grids,
		LoseBelow: cfg.Gameplay.LoseBelow,
	}
	return w
}

// Tick returns the number of steps taken.
func (w *World) Tick() uint64 {
	return w.tick
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.BreakoutConfig {
	return w.cfg
}

// SetLaunchVelocity changes the velocity given to launched balls.
func (w *World) SetLaunchVelocity(v core.Vec2) {
	w.launchVelocity = v
}

// LaunchVelocity returns the velocity given to launched balls.
func (w *World) LaunchVelocity() core.Vec2 {
	return w.launchVelocity
}

// LoadLevel replaces all grids and power-ups with the level's grids.
// Grids are trimmed on load and grids without alive cells are skipped.
// On error the world is left with no grids.
func (w *World) LoadLevel(l levels.Level) error {
	w.Grids.Clear()
	w.PowerUps = nil

	cw, ch := w.cfg.Grid.CellWidth, w.cfg.Grid.CellHeight
	if l.CellWidth > 0 {
		cw = l.CellWidth
	}
	if l.CellHeight > 0 {
		ch = l.CellHeight
	}
	w.Grids.CellW, w.Grids.CellH = cw, ch

	loaded := make([]*Grid, 0, len(l.Grids))
	for i, d := range l.Grids {
		g := &Grid{CellW: cw, CellH: ch}
		if err := g.FillWithData(d); err != nil {
			return fmt.Errorf("breakout: level %q grid %d: %w", l.Name, i, err)
		}
		g.Trim()
		if g.AliveCount() == 0 {
			continue
		}
		AssignEffects(g, w.rng, w.cfg.PowerUps)
		loaded = append(loaded, g)
	}
	for _, g := range loaded {
		w.Grids.Add(g)
	}
	return nil
}

// Level serializes the current grids.
func (w *World) Level(name string) levels.Level {
	l := levels.Level{Name: name, CellWidth: w.Grids.CellW, CellHeight: w.Grids.CellH}
	for _, g := range w.Grids.Grids() {
		l.Grids = append(l.Grids, g.Descriptor())
	}
	return l
}

// Serve puts a stuck ball on the paddle if no ball is in play.
func (w *World) Serve() *Ball {
	if len(w.Balls) > 0 {
		return nil
	}
	b := w.newBall(w.Paddle.Rect, core.Vec2{})
	b.Stuck = true
	w.carryStuck()
	return b
}

// ResetPaddle restores the configured paddle width, centered.
func (w *World) ResetPaddle() {
	w.Paddle.Rect.W = w.cfg.Paddle.Width
	w.Paddle.Rect.X = (w.Area.W - w.cfg.Paddle.Width) / 2
	w.Paddle.Remainder = core.Vec2{}
	w.carryStuck()
}

// ClearPowerUps removes every falling power-up.
func (w *World) ClearPowerUps() {
	w.PowerUps = nil
}

// Step advances the simulation by one tick:
// input, paddle, launch, ball and power-up motion, collision effects,
// grid trimming and removal, then dead ball collection.
func (w *World) Step(in Intent) StepResult {
	w.tick++
	var notes []Notification

	if in.ClearBalls && len(w.Balls) > 0 {
		notes = append(notes, BallsCleared{Count: len(w.Balls)})
		w.Balls = nil
	}

	w.movePaddle(in.Move)

	if in.Launch {
		if len(w.Balls) == 0 {
			notes = append(notes, BallCreated{Ball: w.Serve()})
		}
		for _, b := range w.Balls {
			if b.Stuck {
				b.Stuck = false
				b.Velocity = w.launchVelocity
				b.Remainder = core.Vec2{}
			}
		}
	}

	for _, b := range w.Balls {
		if b.Alive && !b.Stuck {
			w.resolver.MoveBall(b)
		}
	}
	for _, p := range w.PowerUps {
		if p.Alive && w.resolver.MovePowerUp(p) {
			p.Alive = false
		}
	}

	events := w.resolver.Drain()
	notes = append(notes, w.apply(events)...)
	notes = append(notes, w.Grids.Collect()...)
	notes = w.collectBalls(notes)
	w.collectPowerUps()

	return StepResult{Tick: w.tick, Collisions: events, Notifications: notes}
}

// movePaddle slides the paddle, stopping at the area edges.
func (w *World) movePaddle(dir int) {
	p := w.Paddle
	p.Velocity = core.V(float64(core.Sign(dir)*p.Speed), 0)
	p.Move(core.AxisX, func(c core.Rect, _ int) bool {
		return c.X < w.Area.X || c.Right() > w.Area.Right()
	})
	p.Velocity = core.Vec2{}
	w.carryStuck()
}

// carryStuck keeps stuck balls centered on top of the paddle.
func (w *World) carryStuck() {
	for _, b := range w.Balls {
		if !b.Stuck {
			continue
		}
		b.Rect.X = w.Paddle.Rect.X + (w.Paddle.Rect.W-b.Rect.W)/2
		b.Rect.Y = w.Paddle.Rect.Y - b.Rect.H
	}
}

// resizePaddle changes the paddle width around its center, bounded by the
// configured maximum and the area.
func (w *World) resizePaddle(width int) {
	limit := min(max(w.cfg.Paddle.MaxWidth, w.cfg.Paddle.Width), w.Area.W)
	width = core.Clamp(width, 1, limit)
	r := w.Paddle.Rect
	r.X -= (width - r.W) / 2
	r.W = width
	w.Paddle.Rect = r.ClampX(w.Area)
	w.carryStuck()
}

// newBall adds a live ball centered on at, kept inside the area.
func (w *World) newBall(at core.Rect, v core.Vec2) *Ball {
	cx, cy := at.Center()
	b := &Ball{Alive: true}
	b.Rect = core.NewRect(cx-w.cfg.Ball.Width/2, cy-w.cfg.Ball.Height/2, w.cfg.Ball.Width, w.cfg.Ball.Height)
	b.Rect = b.Rect.ClampX(w.Area)
	b.Rect.Y = core.Clamp(b.Rect.Y, w.Area.Y, w.Area.Bottom()-b.Rect.H)
	b.Velocity = v
	w.Balls = append(w.Balls, b)
	return b
}

// collectBalls removes dead balls, reporting each and the loss of the last.
func (w *World) collectBalls(notes []Notification) []Notification {
	lost := 0
	kept := w.Balls[:0]
	for _, b := range w.Balls {
		if b.Alive {
			kept = append(kept, b)
			continue
		}
		notes = append(notes, BallLost{Ball: b})
		lost++
	}
	clear(w.Balls[len(kept):])
	w.Balls = kept

	if lost > 0 && len(w.Balls) == 0 {
		notes = append(notes, LastBallLost{})
	}
	return notes
}

func (w *World) collectPowerUps() {
	kept := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		if p.Alive {
			kept = append(kept, p)
		}
	}
	clear(w.PowerUps[len(kept):])
	w.PowerUps = kept
}
