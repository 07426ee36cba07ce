package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var breakout BreakoutConfig
	if err := yaml.Unmarshal(DefaultYAML("breakout"), &breakout); err != nil {
		t.Fatalf("breakout.yaml: %v", err)
	}
	if !reflect.DeepEqual(breakout, DefaultBreakoutConfig()) {
		t.Errorf("embedded breakout defaults drifted:\n%+v\n%+v", breakout, DefaultBreakoutConfig())
	}

	var jump JumpConfig
	if err := yaml.Unmarshal(DefaultYAML("jump"), &jump); err != nil {
		t.Fatalf("jump.yaml: %v", err)
	}
	if !reflect.DeepEqual(jump, DefaultJumpConfig()) {
		t.Errorf("embedded jump defaults drifted:\n%+v\n%+v", jump, DefaultJumpConfig())
	}

	if DefaultYAML("pinball") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadBreakoutCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	data := []byte("paddle:\n  width: 24\ngameplay:\n  lives: 9\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if cfg.Paddle.Width != 24 || cfg.Gameplay.Lives != 9 {
		t.Errorf("overrides not applied: paddle=%d lives=%d", cfg.Paddle.Width, cfg.Gameplay.Lives)
	}
	if cfg.Grid.CellWidth != 16 || cfg.Bounce.SpeedUp != 1.25 {
		t.Error("unspecified fields should keep their defaults")
	}
}

func TestLoadCustomErrors(t *testing.T) {
	if _, err := LoadJump(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadJump(path); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
		width  int
	}{
		{DifficultyEasy, 5, 56},
		{DifficultyNormal, 3, 40},
		{DifficultyHard, 2, 28},
		{"", 3, 40},
	}

	for _, tt := range tests {
		cfg := DefaultBreakoutConfig()
		ApplyBreakoutPreset(&cfg, tt.preset)
		if cfg.Gameplay.Lives != tt.lives || cfg.Paddle.Width != tt.width {
			t.Errorf("%q: lives=%d width=%d, expected %d/%d", tt.preset, cfg.Gameplay.Lives, cfg.Paddle.Width, tt.lives, tt.width)
		}
		if cfg.Paddle.MaxWidth < cfg.Paddle.Width {
			t.Errorf("%q: max width %d below width %d", tt.preset, cfg.Paddle.MaxWidth, cfg.Paddle.Width)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	if ParseDifficulty("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParseDifficulty("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}
