package breakout

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/physics"
)

func TestBuiltinLevels(t *testing.T) {
	tests := []struct {
		name   string
		balls  int
		blocks int
	}{
		{"Direct Hit", 1, 1},
		{"Wide Easy", 10, 15},
		{"Green 3", 2, 40},
		{"Final Four", 3, 105},
	}

	levels := BuiltinLevels()
	if len(levels) != len(tests) {
		t.Fatalf("got %d levels, expected %d", len(levels), len(tests))
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := levels[i]
			if l.Name != tc.name {
				t.Errorf("Name = %q, expected %q", l.Name, tc.name)
			}
			if err := l.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if l.NumBalls != tc.balls || len(l.Blocks) != tc.blocks {
				t.Errorf("balls = %d, blocks = %d", l.NumBalls, len(l.Blocks))
			}
			if l.RemainingTarget() != tc.blocks {
				t.Errorf("RemainingTarget() = %d, expected %d", l.RemainingTarget(), tc.blocks)
			}
			// Every block sits between the side bounds and below the top bound
			for _, b := range l.Blocks {
				if b.X < 25 || b.X+b.Width > 775 || b.Y < 45 {
					t.Errorf("block outside the court: %+v", b)
				}
			}
		})
	}
}

func TestWideEasyVelocities(t *testing.T) {
	l := wideEasy()
	angles := []float64{310, 10, 320, 20, 330, 30, 340, 40, 350, 50}
	for i, v := range l.Velocities {
		if math.Abs(v.Speed()-300) > 1e-9 {
			t.Errorf("ball %d speed = %v, expected 300", i, v.Speed())
		}
		if math.Abs(v.Angle()-angles[i]) > 1e-9 {
			t.Errorf("ball %d angle = %v, expected %v", i, v.Angle(), angles[i])
		}
	}
}

func TestParseFill(t *testing.T) {
	tests := []struct {
		def      string
		expected physics.Fill
	}{
		{"red", physics.Fill{Color: "red"}},
		{" color(blue) ", physics.Fill{Color: "blue"}},
		{"image(blocks/brick.png)", physics.Fill{Color: "gray", Image: "blocks/brick.png"}},
	}

	for _, tc := range tests {
		t.Run(tc.def, func(t *testing.T) {
			if got := ParseFill(tc.def); got != tc.expected {
				t.Errorf("ParseFill(%q) = %+v, expected %+v", tc.def, got, tc.expected)
			}
		})
	}
}

func TestNewBlockFills(t *testing.T) {
	single := newBlock(config.BlockSpec{X: 0, Y: 0, Width: 10, Height: 10, HitPoints: 3, Fills: []string{"red"}})
	for hp := 3; hp >= 1; hp-- {
		single.SetHitPoints(hp)
		if single.Fill().Color != "red" {
			t.Errorf("single fill at hp %d = %+v", hp, single.Fill())
		}
	}
	if single.Stroke() != nil {
		t.Error("block without stroke should have none")
	}

	multi := newBlock(config.BlockSpec{
		Width: 10, Height: 10, HitPoints: 2,
		Fills:  []string{"red", "blue"},
		Stroke: "black",
	})
	if multi.Fill().Color != "blue" {
		t.Errorf("fill at 2 hp = %+v, expected blue", multi.Fill())
	}
	multi.SetHitPoints(1)
	if multi.Fill().Color != "red" {
		t.Errorf("fill at 1 hp = %+v, expected red", multi.Fill())
	}
	if s := multi.Stroke(); s == nil || s.Color != "black" {
		t.Errorf("stroke = %+v", s)
	}
}

func TestLoadLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	data := `
levels:
  - name: Corner
    paddle_speed: 300
    paddle_width: 100
    blocks_to_remove: 1
    velocities:
      - {angle: 90, speed: 200}
    blocks:
      - {x: 100, y: 100, width: 50, height: 20, hit_points: 2, fills: [red, blue]}
      - {x: 150, y: 100, width: 50, height: 20, hit_points: 1}
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	levels, err := LoadLevels(path)
	if err != nil {
		t.Fatalf("LoadLevels() error = %v", err)
	}
	if len(levels) != 1 {
		t.Fatalf("got %d levels", len(levels))
	}
	l := levels[0]
	if l.NumBalls != 1 || l.RemainingTarget() != 1 {
		t.Errorf("unexpected level: %+v", l)
	}
	v := l.Velocities[0]
	if math.Abs(v.DX-200) > 1e-9 || math.Abs(v.DY) > 1e-9 {
		t.Errorf("velocity = %+v, expected (200, 0)", v)
	}

	if _, err := LoadLevels(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadLevelsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	data := "levels:\n  - name: x\n    paddle_speed: 1\n    velocities: []\n    blocks: []\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLevels(path); !errors.Is(err, config.ErrMissingKeys) {
		t.Errorf("LoadLevels() = %v, expected ErrMissingKeys", err)
	}
}
