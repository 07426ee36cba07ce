package core

// RuntimeConfig is what the platform tells a game at Reset: the screen it
// draws into, the tick rate and the seed of every random choice.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int // Steps per second
	Seed     int64
}

// WithDefaults fills unset fields with an 80x24 screen at 60 ticks.
// A zero seed is kept; the CLI replaces it with the clock.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = 80
	}
	if c.ScreenH <= 0 {
		c.ScreenH = 24
	}
	if c.TickRate <= 0 {
		c.TickRate = 60
	}
	return c
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by every Game.Step.
type StepResult struct {
	State GameState
}
