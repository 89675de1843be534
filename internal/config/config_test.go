package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg ArkanoidConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultArkanoidConfig()) {
		t.Errorf("embedded defaults differ from DefaultArkanoidConfig():\n%+v\n%+v", cfg, DefaultArkanoidConfig())
	}
}

func TestLoadArkanoidCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("gameplay:\n  lives: 2\ncourt:\n  width: 640\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArkanoid(path)
	if err != nil {
		t.Fatalf("LoadArkanoid() error = %v", err)
	}
	if cfg.Gameplay.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", cfg.Gameplay.Lives)
	}
	if cfg.Court.Width != 640 {
		t.Errorf("Court.Width = %d, expected 640", cfg.Court.Width)
	}
	// Unset keys keep their defaults
	if cfg.Court.Height != 600 || cfg.Ball.Radius != 5 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadArkanoidErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadArkanoid(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("court: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadArkanoid(bad); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		initial float64
		lives   int
	}{
		{DifficultyEasy, true, 0.0, 9},
		{DifficultyNormal, true, 0.3, 7},
		{DifficultyHard, true, 0.7, 3},
		{DifficultyFixed, false, 0.0, 7},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultArkanoidConfig()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initial)
			}
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
		})
	}

	if ParsePreset("hard") != DifficultyHard || ParsePreset("insane") != "" {
		t.Error("ParsePreset mismatch")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultArkanoidConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if dm.Level(0, 0) != 0 {
		t.Errorf("Level(0) = %v, expected 0", dm.Level(0, 0))
	}
	if dm.Level(1000, 0) != 0.5 {
		t.Errorf("Level(1000) = %v, expected 0.5", dm.Level(1000, 0))
	}
	if dm.Level(999999, 0) != 1 {
		t.Error("Level should clamp at 1")
	}
	if got := dm.Speed(300, 2000, 0); got != 450 {
		t.Errorf("Speed() at max = %v, expected 450", got)
	}
	if got := dm.PaddleWidth(80, 40, 2000, 0); got != 60 {
		t.Errorf("PaddleWidth() at max = %d, expected 60", got)
	}
	if got := dm.PaddleWidth(50, 40, 2000, 0); got != 40 {
		t.Errorf("PaddleWidth() floor = %d, expected 40", got)
	}

	dm.SetEnabled(false)
	dm.SetInitialLevel(0.25)
	if dm.IsEnabled() || dm.Level(2000, 0) != 0.25 {
		t.Error("disabled manager should stay at the initial level")
	}
}

func TestValidateRequired(t *testing.T) {
	fields := map[string]any{"name": "x", "blocks": nil}

	if err := ValidateRequired(fields, []string{"name", "blocks"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := ValidateRequired(fields, []string{"velocities", "name", "paddle_speed"})
	if !errors.Is(err, ErrMissingKeys) {
		t.Fatalf("error = %v, expected ErrMissingKeys", err)
	}
	var ve ValidationError
	if !errors.As(err, &ve) || ve.Message != "paddle_speed, velocities" {
		t.Errorf("error = %v, expected sorted missing keys", err)
	}

	// Each call is independent of the previous ones.
	if err := ValidateRequired(map[string]any{"a": 1}, []string{"a"}); err != nil {
		t.Errorf("unexpected error after failed call: %v", err)
	}
}

const validLevelSet = `
levels:
  - name: Single
    paddle_speed: 480
    paddle_width: 80
    velocities:
      - {angle: 0, speed: 480}
    blocks:
      - {x: 380, y: 200, width: 40, height: 40, hit_points: 1, fills: [red]}
  - name: Pair
    paddle_speed: 300
    paddle_width: 120
    blocks_to_remove: 1
    background: "image(background/night.png)"
    velocities:
      - {angle: 330, speed: 300}
      - {angle: 30, speed: 300}
    blocks:
      - {x: 100, y: 100, width: 50, height: 20, hit_points: 2, fills: [red, blue], stroke: black}
      - {x: 150, y: 100, width: 50, height: 20, hit_points: 1}
`

func TestLoadLevelSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	if err := os.WriteFile(path, []byte(validLevelSet), 0o600); err != nil {
		t.Fatal(err)
	}

	levels, err := LoadLevelSet(path)
	if err != nil {
		t.Fatalf("LoadLevelSet() error = %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("got %d levels, expected 2", len(levels))
	}

	pair := levels[1]
	if pair.Name != "Pair" || pair.BlocksToRemove != 1 || len(pair.Velocities) != 2 {
		t.Errorf("unexpected level: %+v", pair)
	}
	if pair.Blocks[0].Stroke != "black" || len(pair.Blocks[0].Fills) != 2 {
		t.Errorf("unexpected block: %+v", pair.Blocks[0])
	}
	if pair.Velocities[0].Angle != 330 {
		t.Errorf("angle = %v, expected 330", pair.Velocities[0].Angle)
	}
}

func TestParseLevelSetRejects(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		missingKeys bool
	}{
		{
			name:        "missing level key",
			yaml:        "levels:\n  - name: x\n    paddle_speed: 1\n    velocities: []\n    blocks: []\n",
			missingKeys: true,
		},
		{
			name: "missing block key",
			yaml: "levels:\n  - name: x\n    paddle_speed: 1\n    paddle_width: 1\n" +
				"    velocities: [{angle: 0, speed: 1}]\n    blocks: [{x: 1, y: 1, width: 1, height: 1}]\n",
			missingKeys: true,
		},
		{
			name: "missing velocity key",
			yaml: "levels:\n  - name: x\n    paddle_speed: 1\n    paddle_width: 1\n" +
				"    velocities: [{angle: 0}]\n    blocks: []\n",
			missingKeys: true,
		},
		{
			name: "no velocities",
			yaml: "levels:\n  - name: x\n    paddle_speed: 1\n    paddle_width: 1\n" +
				"    velocities: []\n    blocks: []\n",
		},
		{
			name: "zero-size block",
			yaml: "levels:\n  - name: x\n    paddle_speed: 1\n    paddle_width: 1\n" +
				"    velocities: [{angle: 0, speed: 1}]\n    blocks: [{x: 1, y: 1, width: 0, height: 1, hit_points: 1}]\n",
		},
		{
			name: "empty set",
			yaml: "levels: []\n",
		},
		{
			name: "not yaml",
			yaml: "levels: [",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLevelSet([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, ErrMissingKeys); got != tc.missingKeys {
				t.Errorf("errors.Is(ErrMissingKeys) = %v, expected %v (err: %v)", got, tc.missingKeys, err)
			}
		})
	}
}
