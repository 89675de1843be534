package breakout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/physics"
)

// ErrBallCountMismatch is returned when a level declares a ball count that
// differs from the number of initial velocities it lists.
var ErrBallCountMismatch = errors.New("ball count does not match initial velocities")

// LevelInfo describes one playable level.
type LevelInfo struct {
	Name        string
	Background  string
	PaddleSpeed int
	PaddleWidth int
	// NumBalls must equal len(Velocities); ball i starts with Velocities[i].
	NumBalls   int
	Velocities []physics.Velocity
	Blocks     []config.BlockSpec
	// BlocksToRemove ends the level once that many blocks are gone.
	// Zero or more than len(Blocks) means every block.
	BlocksToRemove int
}

// Validate checks that the level can be built.
func (l LevelInfo) Validate() error {
	if l.NumBalls != len(l.Velocities) {
		return fmt.Errorf("level %q: %d balls, %d velocities: %w",
			l.Name, l.NumBalls, len(l.Velocities), ErrBallCountMismatch)
	}
	if l.NumBalls == 0 {
		return fmt.Errorf("level %q: no balls", l.Name)
	}
	if l.PaddleWidth <= 0 || l.PaddleSpeed <= 0 {
		return fmt.Errorf("level %q: paddle width and speed must be positive", l.Name)
	}
	return nil
}

// RemainingTarget returns how many blocks must be removed to clear the level.
func (l LevelInfo) RemainingTarget() int {
	if l.BlocksToRemove <= 0 || l.BlocksToRemove > len(l.Blocks) {
		return len(l.Blocks)
	}
	return l.BlocksToRemove
}

// LevelFromSpec converts a level loaded from a level set file.
func LevelFromSpec(spec config.LevelSpec) (LevelInfo, error) {
	velocities := make([]physics.Velocity, len(spec.Velocities))
	for i, v := range spec.Velocities {
		velocities[i] = physics.FromAngleAndSpeed(v.Angle, v.Speed)
	}
	l := LevelInfo{
		Name:           spec.Name,
		Background:     spec.Background,
		PaddleSpeed:    spec.PaddleSpeed,
		PaddleWidth:    spec.PaddleWidth,
		NumBalls:       len(velocities),
		Velocities:     velocities,
		Blocks:         spec.Blocks,
		BlocksToRemove: spec.BlocksToRemove,
	}
	if err := l.Validate(); err != nil {
		return LevelInfo{}, err
	}
	return l, nil
}

// LoadLevels reads a level set file and converts every level in it.
func LoadLevels(path string) ([]LevelInfo, error) {
	specs, err := config.LoadLevelSet(path)
	if err != nil {
		return nil, err
	}
	levels := make([]LevelInfo, 0, len(specs))
	for _, spec := range specs {
		l, err := LevelFromSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("level set %s: %w", path, err)
		}
		levels = append(levels, l)
	}
	return levels, nil
}

// ParseFill turns a fill definition into a physics.Fill. A definition is a
// colour name or image(path); images fall back to gray on the terminal.
func ParseFill(def string) physics.Fill {
	def = strings.TrimSpace(def)
	if path, ok := strings.CutPrefix(def, "image("); ok {
		return physics.Fill{Color: "gray", Image: strings.TrimSuffix(path, ")")}
	}
	if inner, ok := strings.CutPrefix(def, "color("); ok {
		def = strings.TrimSuffix(inner, ")")
	}
	return physics.Fill{Color: def}
}

// newBlock builds a pattern block from its definition. A block with one
// fill uses it for every hit point.
func newBlock(spec config.BlockSpec) *physics.Block {
	var fills []physics.Fill
	switch len(spec.Fills) {
	case 0:
		fills = []physics.Fill{{Color: "white"}}
	case 1:
		f := ParseFill(spec.Fills[0])
		for range max(spec.HitPoints, 1) {
			fills = append(fills, f)
		}
	default:
		for _, def := range spec.Fills {
			fills = append(fills, ParseFill(def))
		}
	}

	var stroke *physics.Fill
	if spec.Stroke != "" {
		s := ParseFill(spec.Stroke)
		stroke = &s
	}

	rect := newRect(spec.X, spec.Y, spec.Width, spec.Height)
	return physics.NewBlock(rect, fills, stroke, spec.HitPoints)
}

func blockSpec(x, y, w, h float64, color string) config.BlockSpec {
	return config.BlockSpec{
		X: x, Y: y, Width: w, Height: h,
		HitPoints: 1,
		Fills:     []string{color},
		Stroke:    "black",
	}
}

// BuiltinLevels returns the four standard levels.
func BuiltinLevels() []LevelInfo {
	return []LevelInfo{
		directHit(),
		wideEasy(),
		green3(),
		finalFour(),
	}
}

func directHit() LevelInfo {
	return LevelInfo{
		Name:           "Direct Hit",
		Background:     "black",
		PaddleSpeed:    480,
		PaddleWidth:    80,
		NumBalls:       1,
		Velocities:     []physics.Velocity{physics.NewVelocity(0, -480)},
		Blocks:         []config.BlockSpec{blockSpec(380, 200, 40, 40, "red")},
		BlocksToRemove: 1,
	}
}

func wideEasy() LevelInfo {
	velocities := make([]physics.Velocity, 0, 10)
	for i := range 5 {
		velocities = append(velocities,
			physics.FromAngleAndSpeed(float64(-50+i*10), 300),
			physics.FromAngleAndSpeed(float64(10+i*10), 300),
		)
	}

	colors := []string{
		"red", "red", "orange", "orange", "yellow", "yellow", "green", "green",
		"green", "blue", "blue", "pink", "pink", "cyan", "cyan",
	}
	blocks := make([]config.BlockSpec, 0, len(colors))
	for i, c := range colors {
		blocks = append(blocks, blockSpec(float64(25+i*50), 240, 50, 30, c))
	}

	return LevelInfo{
		Name:           "Wide Easy",
		Background:     "white",
		PaddleSpeed:    240,
		PaddleWidth:    400,
		NumBalls:       len(velocities),
		Velocities:     velocities,
		Blocks:         blocks,
		BlocksToRemove: len(blocks),
	}
}

func green3() LevelInfo {
	colors := []string{"gray", "red", "yellow", "blue", "cyan"}
	var blocks []config.BlockSpec
	for row, c := range colors {
		for col := range 10 - row {
			x := float64(375 + col*40 + row*40)
			y := float64(200 + row*20)
			blocks = append(blocks, blockSpec(x, y, 40, 20, c))
		}
	}

	return LevelInfo{
		Name:        "Green 3",
		Background:  "green",
		PaddleSpeed: 480,
		PaddleWidth: 80,
		NumBalls:    2,
		Velocities: []physics.Velocity{
			physics.NewVelocity(-300, -300),
			physics.NewVelocity(300, -300),
		},
		Blocks:         blocks,
		BlocksToRemove: len(blocks),
	}
}

func finalFour() LevelInfo {
	colors := []string{"gray", "red", "yellow", "green", "orange", "pink", "blue"}
	var blocks []config.BlockSpec
	for row, c := range colors {
		for col := range 15 {
			blocks = append(blocks, blockSpec(float64(25+col*50), float64(100+row*25), 50, 25, c))
		}
	}

	return LevelInfo{
		Name:        "Final Four",
		Background:  "blue",
		PaddleSpeed: 480,
		PaddleWidth: 80,
		NumBalls:    3,
		Velocities: []physics.Velocity{
			physics.NewVelocity(-300, -300),
			physics.NewVelocity(300, -300),
			physics.NewVelocity(0, -300),
		},
		Blocks:         blocks,
		BlocksToRemove: len(blocks),
	}
}
