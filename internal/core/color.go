package core

// Color is a semantic color role for a screen cell. The platform layer maps
// roles to terminal colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorHUD
	ColorPaddle
	ColorBall
	ColorPowerUp
	ColorPlayer
	ColorPlatform
	ColorLaser

	// Brick tiers, picked by grid environment id.
	ColorBrick0
	ColorBrick1
	ColorBrick2
	ColorBrick3
	ColorBrick4
	ColorBrick5
	ColorBrick6
)

// BrickTiers is the number of brick colors.
const BrickTiers = int(ColorBrick6-ColorBrick0) + 1

// BrickColor returns the brick color for an environment id, wrapping
// around the available tiers.
func BrickColor(env int) Color {
	t := env % BrickTiers
	if t < 0 {
		t += BrickTiers
	}
	return ColorBrick0 + Color(t) //#nosec G115 -- t is in [0, BrickTiers)
}
