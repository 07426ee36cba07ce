package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/jump.yaml
var defaultJumpYAML []byte

// DefaultBreakoutConfig returns the default brick breaker configuration.
// It mirrors defaults/breakout.yaml.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Area: AreaConfig{Width: 160, Height: 240},
		Grid: BreakoutGrid{
			CellWidth:  16,
			CellHeight: 8,
			OriginX:    0,
			OriginY:    24,
		},
		Ball: BreakoutBall{
			Width:    4,
			Height:   4,
			LaunchVX: 1,
			LaunchVY: -2,
		},
		Paddle: BreakoutPaddle{
			Width:    40,
			Height:   4,
			Y:        220,
			Speed:    2,
			MaxWidth: 64,
		},
		Bounce: BreakoutBounce{
			MaxAngle: 20,
			MinAngle: 20,
			SpeedUp:  1.25,
			MaxSpeed: 3,
		},
		PowerUps: BreakoutPowerUps{
			MultiballChance: 4,
			DropChance:      8,
			MultiballCount:  2,
			FallSpeed:       0.75,
			Width:           8,
			Height:          4,
			WidenAmount:     8,
		},
		Gameplay: BreakoutGameplay{
			Lives:      3,
			CellPoints: 10,
			ServeDelay: 60,
			LoseBelow:  true,
		},
	}
}

// DefaultJumpConfig returns the default platform jumper configuration.
// It mirrors defaults/jump.yaml.
func DefaultJumpConfig() JumpConfig {
	return JumpConfig{
		Area: AreaConfig{Width: 160, Height: 240},
		Physics: JumpPhysics{
			Gravity:        0.065,
			MaxFallSpeed:   4,
			Bounce:         3.2,
			BounceModifier: 0.25,
			SideSpeed:      2,
		},
		Player: JumpPlayer{
			Width:  8,
			Height: 24,
			SpawnY: 48,
		},
		Platforms: JumpPlatforms{
			MinWidth:      16,
			MaxWidth:      48,
			Height:        4,
			SpawnInterval: 60,
			SpawnJitter:   32,
		},
		Lasers: JumpLasers{
			Offset: 40,
			Height: 4,
		},
	}
}

// DefaultYAML returns the embedded default YAML for a game.
func DefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML
	case "jump":
		return defaultJumpYAML
	default:
		return nil
	}
}
