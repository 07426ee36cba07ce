// Package config provides YAML-based game configuration loading and
// difficulty presets for the games.
package config

// AreaConfig is the size of the play area in world pixels.
type AreaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BreakoutConfig contains all configuration for the brick breaker.
type BreakoutConfig struct {
	Area     AreaConfig       `yaml:"area"`
	Grid     BreakoutGrid     `yaml:"grid"`
	Ball     BreakoutBall     `yaml:"ball"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Bounce   BreakoutBounce   `yaml:"bounce"`
	PowerUps BreakoutPowerUps `yaml:"powerups"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
}

// BreakoutGrid defines brick cell size and where builtin layouts are placed.
type BreakoutGrid struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	OriginX    int `yaml:"origin_x"`
	OriginY    int `yaml:"origin_y"`
}

// BreakoutBall defines ball size and launch velocity.
type BreakoutBall struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	LaunchVX float64 `yaml:"launch_vx"`
	LaunchVY float64 `yaml:"launch_vy"`
}

// BreakoutPaddle defines paddle geometry and speed.
type BreakoutPaddle struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Y        int `yaml:"y"`
	Speed    int `yaml:"speed"`     // Pixels per step per input direction
	MaxWidth int `yaml:"max_width"` // Upper bound for widen power-ups
}

// BreakoutBounce holds the paddle-angle bounce tuning.
type BreakoutBounce struct {
	MaxAngle float64 `yaml:"max_angle"` // Degrees of normal rotation at the paddle edge
	MinAngle float64 `yaml:"min_angle"` // Shallowest allowed rebound above horizontal
	SpeedUp  float64 `yaml:"speed_up"`  // Velocity multiplier applied on each paddle hit
	MaxSpeed float64 `yaml:"max_speed"` // Magnitude clamp after speed-up
}

// BreakoutPowerUps defines per-cell effect chances and power-up behavior.
type BreakoutPowerUps struct {
	MultiballChance int     `yaml:"multiball_chance"` // Percent of cells that spawn balls
	DropChance      int     `yaml:"drop_chance"`      // Percent of cells that drop a power-up
	MultiballCount  int     `yaml:"multiball_count"`
	FallSpeed       float64 `yaml:"fall_speed"`
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	WidenAmount     int     `yaml:"widen_amount"`
}

// BreakoutGameplay defines scoring and lives.
type BreakoutGameplay struct {
	Lives      int  `yaml:"lives"`
	CellPoints int  `yaml:"cell_points"`
	ServeDelay int  `yaml:"serve_delay"` // Ticks before the next serve after a miss
	LoseBelow  bool `yaml:"lose_below"`  // Balls leaving through the bottom are lost
}

// JumpConfig contains all configuration for the platform jumper.
type JumpConfig struct {
	Area      AreaConfig    `yaml:"area"`
	Physics   JumpPhysics   `yaml:"physics"`
	Player    JumpPlayer    `yaml:"player"`
	Platforms JumpPlatforms `yaml:"platforms"`
	Lasers    JumpLasers    `yaml:"lasers"`
}

// JumpPhysics defines gravity and bounce parameters.
type JumpPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	Bounce         float64 `yaml:"bounce"`
	BounceModifier float64 `yaml:"bounce_modifier"` // Bounce reduction while flipped
	SideSpeed      int     `yaml:"side_speed"`
}

// JumpPlayer defines the player body.
type JumpPlayer struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	SpawnY int `yaml:"spawn_y"`
}

// JumpPlatforms defines platform spawning.
type JumpPlatforms struct {
	MinWidth      int `yaml:"min_width"`
	MaxWidth      int `yaml:"max_width"`
	Height        int `yaml:"height"`
	SpawnInterval int `yaml:"spawn_interval"` // Ticks between spawns
	SpawnJitter   int `yaml:"spawn_jitter"`   // Extra random depth below the area
}

// JumpLasers places the two deadly bands.
type JumpLasers struct {
	Offset int `yaml:"offset"` // Distance from the top and bottom edges
	Height int `yaml:"height"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI value to a preset. Unknown values yield "".
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
