package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads brick breaker configuration.
// Search order: customPath -> ~/.breaker/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load("breakout.yaml", customPath, defaultBreakoutYAML, DefaultBreakoutConfig)
}

// LoadJump loads platform jumper configuration.
// Search order: customPath -> ~/.breaker/configs/jump.yaml -> ./configs/jump.yaml -> embedded default
func LoadJump(customPath string) (JumpConfig, error) {
	return load("jump.yaml", customPath, defaultJumpYAML, DefaultJumpConfig)
}

// load decodes the first readable config in the search order on top of the
// hardcoded defaults, so partial files only override what they name.
func load[T any](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		parsed := defaults()
		if err := yaml.Unmarshal(data, &parsed); err == nil {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breaker", "configs", filename)
}

// ApplyBreakoutPreset adjusts gameplay for a difficulty preset.
// Normal and unknown presets leave the config untouched.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 56
		cfg.Ball.LaunchVX *= 0.75
		cfg.Ball.LaunchVY *= 0.75
		cfg.Bounce.MaxSpeed = 2.5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 28
		cfg.Ball.LaunchVX *= 1.25
		cfg.Ball.LaunchVY *= 1.25
		cfg.Bounce.MaxSpeed = 3.5
	}
	if cfg.Paddle.MaxWidth < cfg.Paddle.Width {
		cfg.Paddle.MaxWidth = cfg.Paddle.Width
	}
}

// ApplyJumpPreset adjusts the jumper for a difficulty preset.
func ApplyJumpPreset(cfg *JumpConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Platforms.MinWidth = 24
		cfg.Platforms.MaxWidth = 56
		cfg.Platforms.SpawnInterval = 45
	case DifficultyHard:
		cfg.Platforms.MinWidth = 12
		cfg.Platforms.MaxWidth = 32
		cfg.Platforms.SpawnInterval = 80
	}
}
