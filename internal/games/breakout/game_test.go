package breakout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/geom"
	"github.com/vovakirdan/arkanoid/internal/physics"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
}

// useConfig points new games at a config file. Keys left out of overrides
// keep their default values.
func useConfig(t *testing.T, overrides string) {
	t.Helper()
	data := config.DefaultYAML()
	if overrides != "" {
		data = []byte(overrides)
	}
	path := filepath.Join(t.TempDir(), "arkanoid.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func singleBlockLevel(velocity physics.Velocity, block config.BlockSpec) LevelInfo {
	return LevelInfo{
		Name:        "Test",
		PaddleSpeed: 480,
		PaddleWidth: 80,
		NumBalls:    1,
		Velocities:  []physics.Velocity{velocity},
		Blocks:      []config.BlockSpec{block},
	}
}

func stepUntil(t *testing.T, g *Game, limit int, in core.InputFrame, done func() bool) {
	t.Helper()
	for range limit {
		g.Step(in)
		if done() {
			return
		}
	}
	t.Fatalf("condition not reached within %d ticks (state %s)", limit, g.Phase())
}

func TestGameDeterminism(t *testing.T) {
	useConfig(t, "")

	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%7 < 3:
			inputs[i].Set(core.ActionRight)
		case i%7 < 6:
			inputs[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: %+v vs %+v", snap1, snap2)
	}
}

func TestGameReset(t *testing.T) {
	useConfig(t, "")
	g := New()
	g.Reset(testRuntime)

	state := g.State()
	if state.Score != 0 || state.Lives != 7 || state.Level != 1 || state.GameOver {
		t.Errorf("unexpected initial state: %+v", state)
	}
	if g.Phase() != StateCountdown {
		t.Errorf("Phase() = %s, expected %s", g.Phase(), StateCountdown)
	}

	// bounds, death zone, one block, paddle
	if n := g.Environment().Len(); n != 6 {
		t.Errorf("environment has %d collidables, expected 6", n)
	}
	if g.RemainingBlocks() != 1 {
		t.Errorf("RemainingBlocks() = %d, expected 1", g.RemainingBlocks())
	}

	balls := g.Balls()
	if len(balls) != 1 {
		t.Fatalf("got %d balls, expected 1", len(balls))
	}
	if !balls[0].Center().Equals(geom.NewPoint(400, 480)) {
		t.Errorf("ball center = %+v, expected (400, 480)", balls[0].Center())
	}

	ul := g.Paddle().Rectangle().UpperLeft()
	if ul.X != 360 || ul.Y != 580 {
		t.Errorf("paddle upper-left = %+v, expected (360, 580)", ul)
	}
}

func TestCountdownHoldsBalls(t *testing.T) {
	useConfig(t, "")
	g := New()
	g.Reset(testRuntime)
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)

	for range 119 {
		g.Step(in)
	}
	if g.Phase() != StateCountdown {
		t.Fatalf("Phase() = %s after 119 ticks, expected countdown", g.Phase())
	}
	g.Step(in)
	if g.Phase() != StatePlaying {
		t.Fatalf("Phase() = %s after 120 ticks, expected playing", g.Phase())
	}

	if c := g.Balls()[0].Center(); !c.Equals(geom.NewPoint(400, 480)) {
		t.Errorf("ball moved during countdown: %+v", c)
	}
	if x := g.Paddle().Rectangle().UpperLeft().X; x != 360 {
		t.Errorf("paddle moved during countdown: x = %v", x)
	}

	g.Step(core.NewInputFrame())
	if c := g.Balls()[0].Center(); !c.Equals(geom.NewPoint(400, 472)) {
		t.Errorf("ball center = %+v, expected (400, 472)", c)
	}
}

func TestLevelClearAwardsBonus(t *testing.T) {
	useConfig(t, "gameplay:\n  countdown_ticks: 0\n")
	g := NewWithLevels([]LevelInfo{directHit()})
	g.Reset(testRuntime)

	stepUntil(t, g, 200, core.NewInputFrame(), func() bool { return g.State().GameOver })

	state := g.State()
	if !state.Won {
		t.Errorf("expected a win, got %+v", state)
	}
	// 10 for destroying + 5 for the hit + 100 for clearing
	if state.Score != 115 {
		t.Errorf("Score = %d, expected 115", state.Score)
	}
	if g.Phase() != StateWin {
		t.Errorf("Phase() = %s, expected %s", g.Phase(), StateWin)
	}
}

func TestLevelAdvances(t *testing.T) {
	useConfig(t, "gameplay:\n  countdown_ticks: 0\n")
	g := NewWithLevels([]LevelInfo{directHit(), wideEasy()})
	g.Reset(testRuntime)

	var events []string
	for range 200 {
		events = append(events, g.Step(core.NewInputFrame()).Events...)
		if g.State().Level == 2 {
			break
		}
	}

	if g.State().Level != 2 || g.Level().Name != "Wide Easy" {
		t.Fatalf("expected second level, got %+v", g.State())
	}
	if len(g.Balls()) != 10 || g.RemainingBlocks() != 15 {
		t.Errorf("balls = %d, blocks = %d", len(g.Balls()), g.RemainingBlocks())
	}
	if g.Paddle().Width() != 400 {
		t.Errorf("paddle width = %v, expected 400", g.Paddle().Width())
	}
	if !strings.Contains(strings.Join(events, ";"), "level cleared: Direct Hit") {
		t.Errorf("events = %v", events)
	}
}

func TestLosingBallCostsLife(t *testing.T) {
	useConfig(t, "gameplay:\n  countdown_ticks: 0\n  lives: 2\nball:\n  spawn_x: 100\n")
	level := singleBlockLevel(physics.NewVelocity(0, 480), blockSpec(600, 100, 20, 20, "red"))
	g := NewWithLevels([]LevelInfo{level})
	g.Reset(testRuntime)

	stepUntil(t, g, 100, core.NewInputFrame(), func() bool { return g.State().Lives == 1 })

	if g.State().Score != 0 {
		t.Errorf("death zone should not score, got %d", g.State().Score)
	}
	balls := g.Balls()
	if len(balls) != 1 || !balls[0].Center().Equals(geom.NewPoint(100, 480)) {
		t.Fatalf("new turn should respawn the ball, got %d balls", len(balls))
	}

	stepUntil(t, g, 100, core.NewInputFrame(), func() bool { return g.State().GameOver })
	if g.State().Won || g.State().Lives != 0 {
		t.Errorf("unexpected final state: %+v", g.State())
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.State().GameOver || g.State().Lives != 2 {
		t.Errorf("restart should reset the game, got %+v", g.State())
	}
}

func TestGamePause(t *testing.T) {
	useConfig(t, "gameplay:\n  countdown_ticks: 0\n")
	g := New()
	g.Reset(testRuntime)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	before := g.Balls()[0].Center()
	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if !g.Balls()[0].Center().Equals(before) {
		t.Error("ball moved while paused")
	}

	g.Step(pause)
	if g.State().Paused || g.Phase() != StatePlaying {
		t.Errorf("game should resume playing, phase %s", g.Phase())
	}
}

func TestPaddleInput(t *testing.T) {
	useConfig(t, "gameplay:\n  countdown_ticks: 0\n")
	g := New()
	g.Reset(testRuntime)

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right)

	// 480 units/s at 60 ticks/s is 8 units per tick
	if x := g.Paddle().Rectangle().UpperLeft().X; x != 368 {
		t.Errorf("paddle x = %v, expected 368", x)
	}

	for range 200 {
		g.Step(right)
		if g.State().GameOver {
			break
		}
	}
	if x := g.Paddle().Rectangle().UpperLeft().X; x > 775-80 {
		t.Errorf("paddle left the court: x = %v", x)
	}
}

func TestBlocksToRemoveCap(t *testing.T) {
	tests := []struct {
		name     string
		toRemove int
		expected int
	}{
		{"zero means all", 0, 3},
		{"fewer than pattern", 2, 2},
		{"capped at pattern size", 10, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level := LevelInfo{
				Blocks:         make([]config.BlockSpec, 3),
				BlocksToRemove: tc.toRemove,
			}
			if got := level.RemainingTarget(); got != tc.expected {
				t.Errorf("RemainingTarget() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestEndlessCyclesLevels(t *testing.T) {
	useConfig(t, "gameplay:\n  countdown_ticks: 0\n")
	g := NewEndless()
	g.levels = []LevelInfo{directHit()}
	g.Reset(testRuntime)

	stepUntil(t, g, 200, core.NewInputFrame(), func() bool { return g.State().Level == 2 })

	if g.State().GameOver {
		t.Fatal("endless mode should not end on clearing levels")
	}
	if g.Snapshot().Cycle != 1 {
		t.Errorf("Cycle = %d, expected 1", g.Snapshot().Cycle)
	}
	if speed := g.Balls()[0].Velocity().Speed(); speed <= 480 {
		t.Errorf("ball speed = %v, expected it to grow with score", speed)
	}
}

func TestGameRender(t *testing.T) {
	useConfig(t, "")
	g := New()
	g.Reset(testRuntime)

	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") || !strings.Contains(screen.Row(0), "Direct Hit 1/4") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if screen.Get(40, 19) != BallChar {
		t.Errorf("expected ball at (40, 19), got %q", screen.Get(40, 19))
	}
	if c := screen.GetCell(40, 9); c.Rune != BlockChar || c.Color != core.ColorRed {
		t.Errorf("expected red block at (40, 9), got %+v", c)
	}
	if !strings.ContainsRune(screen.Row(23), PaddleChar) {
		t.Errorf("paddle row = %q", screen.Row(23))
	}
	if !strings.Contains(screen.String(), "Direct Hit ... 2") {
		t.Error("countdown overlay missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	useConfig(t, "")
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60})

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("screen = %q", screen.String())
	}

	before := g.Snapshot().Hash()
	g.Step(core.NewInputFrame())
	if g.Snapshot().Hash() != before {
		t.Error("game should not advance on a screen that is too small")
	}
}

func TestBallCountMismatch(t *testing.T) {
	level := LevelInfo{
		Name:        "Broken",
		PaddleSpeed: 1,
		PaddleWidth: 1,
		NumBalls:    2,
		Velocities:  []physics.Velocity{physics.NewVelocity(0, -1)},
	}
	if err := level.Validate(); !errors.Is(err, ErrBallCountMismatch) {
		t.Errorf("Validate() = %v, expected ErrBallCountMismatch", err)
	}
}

func TestStartAtLevel(t *testing.T) {
	useConfig(t, "")

	tests := []struct {
		index int
		name  string
		level int
	}{
		{0, "Direct Hit", 1},
		{2, "Green 3", 3},
		{9, "Final Four", 4},
		{-1, "Direct Hit", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewAtLevel(tc.index)
			g.Reset(testRuntime)
			if g.Level().Name != tc.name {
				t.Errorf("Level() = %q, expected %q", g.Level().Name, tc.name)
			}
			if g.State().Level != tc.level {
				t.Errorf("State().Level = %d, expected %d", g.State().Level, tc.level)
			}
		})
	}
}

func TestResizeKeepsProgress(t *testing.T) {
	useConfig(t, "")
	g := New()
	g.Reset(testRuntime)

	for range 130 {
		g.Step(core.NewInputFrame())
	}
	before := g.Snapshot()

	g.Resize(core.RuntimeConfig{ScreenW: 30, ScreenH: 10})
	g.Step(core.NewInputFrame())
	if g.Snapshot().Hash() != before.Hash() {
		t.Error("game should hold while the screen is too small")
	}

	g.Resize(core.RuntimeConfig{ScreenW: 120, ScreenH: 40})
	g.Step(core.NewInputFrame())
	after := g.Snapshot()
	if after.Tick != before.Tick+1 || after.LevelIndex != before.LevelIndex {
		t.Errorf("resize restarted the game: before %+v, after %+v", before, after)
	}
}

func TestAutopilot(t *testing.T) {
	tests := []struct {
		name   string
		spawnX int
		want   core.Action
	}{
		{"ball left of paddle", 100, core.ActionLeft},
		{"ball right of paddle", 700, core.ActionRight},
		{"ball above paddle", 400, core.ActionNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			useConfig(t, fmt.Sprintf("ball:\n  radius: 5\n  spawn_x: %d\n  spawn_y: 480\n", tc.spawnX))
			g := New()
			g.Reset(testRuntime)

			if in := g.Autopilot(); in.Has(core.ActionLeft) || in.Has(core.ActionRight) {
				t.Error("autopilot should idle during the countdown")
			}
			stepUntil(t, g, 200, core.NewInputFrame(), func() bool { return g.Phase() == StatePlaying })

			in := g.Autopilot()
			for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
				if in.Has(a) != (a == tc.want) {
					t.Errorf("Has(%v) = %v", a, in.Has(a))
				}
			}
		})
	}
}
