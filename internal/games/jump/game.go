// Package jump implements a vertical platform jumper: the player falls
// under gravity, bounces off rising platforms and must stay between two
// laser bands.
package jump

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/registry"
)

// Settings applied by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names reset it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficulty(preset)
}

// Player is the falling body. Flipped players lie on their side.
type Player struct {
	core.Body
	Flipped bool
	Alive   bool
	Falling bool
}

// Game implements the platform jumper.
type Game struct {
	area      core.Rect
	player    Player
	platforms *PlatformManager
	lasers    [2]core.Rect

	score  int
	paused bool
	tick   uint64

	cfg     config.JumpConfig
	runtime core.RuntimeConfig
}

// New creates a new jumper instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jump"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Jump"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadJump(configPath)
	if err != nil {
		log.Warn("Using default jump config", "err", err)
		cfg = config.DefaultJumpConfig()
	}
	if difficultyPreset != "" {
		config.ApplyJumpPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.area = core.NewRect(0, 0, cfg.Area.Width, cfg.Area.Height)
	l := cfg.Lasers
	g.lasers = [2]core.Rect{
		core.NewRect(0, l.Offset, g.area.W, l.Height),
		core.NewRect(0, g.area.H-l.Offset-l.Height, g.area.W, l.Height),
	}

	if g.platforms == nil {
		g.platforms = NewPlatformManager(runtime.Seed, g.area, cfg.Platforms)
	} else {
		g.platforms.area = g.area
		g.platforms.cfg = cfg.Platforms
		g.platforms.Reset(runtime.Seed)
	}

	g.paused = false
	g.tick = 0
	g.respawn()
}

// respawn puts an upright player back at the spawn height.
func (g *Game) respawn() {
	w, h := g.cfg.Player.Width, g.cfg.Player.Height
	g.player = Player{Alive: true}
	g.player.Rect = core.NewRect(g.area.W/2-w/2, g.cfg.Player.SpawnY, w, h)
	g.score = 0
}

// Player returns the player for renderers and tests.
func (g *Game) Player() *Player {
	return &g.player
}

// Platforms returns the platform manager.
func (g *Game) Platforms() *PlatformManager {
	return g.platforms
}

// Lasers returns the two deadly bands.
func (g *Game) Lasers() [2]core.Rect {
	return g.lasers
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.player.Alive {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	pressed := in.Any(core.ActionPause)
	switch {
	case !g.player.Alive && pressed:
		g.respawn()
		g.platforms.Start()
	case g.player.Alive && !g.player.Falling && pressed:
		g.player.Falling = true
	}

	g.updatePlayer(in.Direction())
	g.platforms.Update()

	return core.StepResult{State: g.State()}
}

// updatePlayer applies lasers, gravity, side movement and the vertical march.
func (g *Game) updatePlayer(dir int) {
	p := &g.player
	if !p.Alive || !p.Falling {
		return
	}

	for _, l := range g.lasers {
		if p.Rect.Intersects(l) {
			g.die()
			return
		}
	}

	p.Velocity.Y = min(p.Velocity.Y+g.cfg.Physics.Gravity, g.cfg.Physics.MaxFallSpeed)

	p.Rect.X += core.Sign(dir) * g.cfg.Physics.SideSpeed
	p.Rect = p.Rect.ClampX(g.area)

	hit := -1
	p.Move(core.AxisY, func(c core.Rect, _ int) bool {
		hit = g.platforms.Hit(c)
		return hit >= 0
	})
	if hit >= 0 {
		g.bounce(hit)
	}
}

// bounce launches the player off platform i, flips it and consumes the
// platform.
func (g *Game) bounce(i int) {
	p := &g.player
	strength := g.cfg.Physics.Bounce
	if p.Flipped {
		strength *= 1 - g.cfg.Physics.BounceModifier
	}
	p.Velocity.Y = -strength
	g.setFlip(!p.Flipped)
	g.platforms.Remove(i)
	g.score++
}

// setFlip swaps the player's width and height, keeping its horizontal
// center and its bottom edge.
func (g *Game) setFlip(flipped bool) {
	p := &g.player
	w, h := g.cfg.Player.Width, g.cfg.Player.Height
	if flipped {
		w, h = h, w
	}
	cx := p.Rect.X + p.Rect.W/2
	bottom := p.Rect.Bottom()
	p.Rect = core.NewRect(cx-w/2, bottom-h, w, h)
	p.Flipped = flipped
}

// die ends the run and clears the field until the next respawn.
func (g *Game) die() {
	g.player.Alive = false
	g.player.Falling = false
	g.platforms.Stop()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: !g.player.Alive,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          "jump",
		Title:       "Jump",
		Description: "Fall, bounce off rising platforms and dodge the lasers",
	}, func() registry.Game { return New() })
}
