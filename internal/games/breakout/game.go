package breakout

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/levels"
	"github.com/vovakirdan/tui-breaker/internal/registry"
)

// GameState constants
const (
	StateServe    = "serve"    // Ball on paddle, waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // All levels completed (campaign only)
	StatePaused   = "paused"   // Game paused
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through levels, win at end
	ModeEndless                  // Cycle levels forever, faster each cycle
)

// Settings applied by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsPath       string
	customLevels     []levels.Level
	startLevel       int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names reset it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficulty(preset)
}

// SetLevelsPath plays the levels of a file or directory instead of the
// built-in campaign.
func SetLevelsPath(path string) {
	levelsPath = path
}

// SetLevels plays the given levels, taking precedence over SetLevelsPath.
// nil restores the default source.
func SetLevels(ls []levels.Level) {
	customLevels = ls
}

// SetStartLevel selects the first level (0-based).
func SetStartLevel(index int) {
	startLevel = max(index, 0)
}

// Game adapts a World to the registry: lives, score, serving and level
// progression on top of the simulation.
type Game struct {
	mode GameMode

	world  *World
	levels []levels.Level

	state      string
	score      int
	lives      int
	levelIndex int
	cycle      int // Completed passes through the levels (endless mode)
	serveDelay int // Ticks before the player may serve again
	tick       uint64

	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new game in campaign mode.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new game in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "breakout_endless"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Breakout (Endless)"
	}
	return "Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		log.Warn("Using default breakout config", "err", err)
		cfg = config.DefaultBreakoutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	switch {
	case customLevels != nil:
		g.levels = customLevels
	case levelsPath != "":
		g.levels = levels.LoadOrEmpty(levelsPath, nil)
	default:
		g.levels = BuiltinLevels(cfg)
	}

	g.minScreenW = 30
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.world = NewWorld(cfg, runtime.Seed)
	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.cycle = 0
	g.tick = 0
	g.serveDelay = 0
	g.levelIndex = 0
	if len(g.levels) > 0 {
		g.levelIndex = min(startLevel, len(g.levels)-1)
	}

	g.loadLevel()
	g.world.Serve()
	g.state = StateServe
}

// World exposes the simulation for renderers and tests.
func (g *Game) World() *World {
	return g.world
}

// LevelCount returns the number of levels in play.
func (g *Game) LevelCount() int {
	return len(g.levels)
}

// LevelName returns the current level's name.
func (g *Game) LevelName() string {
	if g.levelIndex < len(g.levels) {
		return g.levels[g.levelIndex].Name
	}
	return ""
}

// loadLevel fills the world with the current level. A level that cannot be
// used is logged and played as an empty field.
func (g *Game) loadLevel() {
	if g.levelIndex >= len(g.levels) {
		g.world.Grids.Clear()
		return
	}
	l := g.levels[g.levelIndex]
	if err := g.world.LoadLevel(l); err != nil {
		log.Warn("Level rejected, continuing without grids", "level", l.Name, "err", err)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
			g.syncState()
		case StatePlaying, StateServe:
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if g.serveDelay > 0 {
		g.serveDelay--
		return core.StepResult{State: g.State()}
	}

	res := g.world.Step(Intent{
		Move:       in.Direction(),
		Launch:     in.Has(core.ActionJump),
		ClearBalls: in.Has(core.ActionClear),
	})
	g.handle(res.Notifications)

	return core.StepResult{State: g.State()}
}

// handle reacts to the notifications of one world step.
func (g *Game) handle(notes []Notification) {
	var cleared, missed, reserve bool
	for _, n := range notes {
		switch n.(type) {
		case CellDestroyed:
			g.score += g.cfg.Gameplay.CellPoints
		case LevelCleared:
			cleared = true
		case LastBallLost:
			missed = true
		case BallsCleared:
			reserve = true
		}
	}

	switch {
	case cleared:
		g.handleLevelClear()
	case missed:
		g.handleMiss()
	case reserve:
		g.world.Serve()
	}
	if g.state != StateGameOver && g.state != StateWin {
		g.syncState()
	}
}

// syncState derives serve/playing from the balls in play.
func (g *Game) syncState() {
	g.state = StateServe
	for _, b := range g.world.Balls {
		if !b.Stuck {
			g.state = StatePlaying
			return
		}
	}
}

// handleMiss handles the loss of the last ball.
func (g *Game) handleMiss() {
	g.lives--
	if g.lives <= 0 {
		g.state = StateGameOver
		return
	}

	g.world.ClearPowerUps()
	g.world.ResetPaddle()
	g.world.Serve()
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

// handleLevelClear advances to the next level.
func (g *Game) handleLevelClear() {
	g.levelIndex++

	if g.levelIndex >= len(g.levels) {
		if g.mode == ModeCampaign {
			g.state = StateWin
			return
		}
		// Endless mode: cycle through levels, launching faster each pass
		g.levelIndex = 0
		g.cycle++
		base := core.V(g.cfg.Ball.LaunchVX, g.cfg.Ball.LaunchVY)
		g.world.SetLaunchVelocity(base.Scale(1 + 0.1*float64(g.cycle)))
	}

	g.loadLevel()
	g.world.Balls = nil
	g.world.ResetPaddle()
	g.world.Serve()
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Phase returns the internal state name (serve, playing, paused, ...).
func (g *Game) Phase() string {
	return g.state
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          "breakout",
		Title:       "Breakout",
		Description: "Clear every level of the campaign",
	}, func() registry.Game { return New() })
	registry.Register(registry.GameInfo{
		ID:          "breakout_endless",
		Title:       "Breakout (Endless)",
		Description: "Levels loop forever, the ball gets faster each pass",
	}, func() registry.Game { return NewEndless() })
}
