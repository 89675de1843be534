// Package breakout runs arkanoid levels on top of the physics engine: it
// builds the court, plays turns, keeps score and renders to a core.Screen.
package breakout

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/geom"
	"github.com/vovakirdan/arkanoid/internal/physics"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BlockChar  = '█'
	BoundChar  = '░'
)

// Game states
const (
	StateCountdown = "countdown" // Balls placed, waiting for the turn to start
	StatePlaying   = "playing"
	StatePaused    = "paused"
	StateGameOver  = "gameover" // No lives left
	StateWin       = "win"      // All levels completed (campaign only)
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through levels, win at end
	ModeEndless                  // Cycle levels forever with rising speed
)

// Smallest terminal the court can be drawn in.
const (
	minScreenW = 40
	minScreenH = 16
)

var (
	configPath       string
	levelSetPath     string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelSetPath makes new games load their levels from a YAML level set
// instead of the built-in levels.
func SetLevelSetPath(path string) {
	levelSetPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by games created afterwards. Nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the arkanoid game flow.
type Game struct {
	mode   GameMode
	levels []LevelInfo
	log    *log.Logger

	// Current level
	env    *physics.Environment
	paddle *physics.Paddle
	balls  []*physics.Ball
	bounds []*physics.Block
	blocks []*physics.Block // pattern blocks, including removed ones
	border geom.Border

	score           *physics.Counter
	remainingBlocks *physics.Counter
	remainingBalls  *physics.Counter

	state       string
	resumeState string
	lives       int
	levelIndex  int
	startLevel  int // level index Reset starts from
	cycle       int // completed passes over the level list (endless mode)
	countdown   int
	tickCount   int
	dt          float64
	events      []string

	runtime        core.RuntimeConfig
	cfg            config.ArkanoidConfig
	difficulty     *config.DifficultyManager
	screenTooSmall bool
}

// New creates a new game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewWithLevels creates a campaign game that plays the given levels.
func NewWithLevels(levels []LevelInfo) *Game {
	return &Game{mode: ModeCampaign, levels: levels}
}

// NewAtLevel creates a campaign game that starts at the given 0-based level
// index. Restarting after game over returns to the same level.
func NewAtLevel(index int) *Game {
	return &Game{mode: ModeCampaign, startLevel: index}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "arkanoid_endless"
	}
	return "arkanoid"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Arkanoid (Endless)"
	}
	return "Arkanoid"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger

	cfg, err := config.LoadArkanoid(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultArkanoidConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	if len(g.levels) == 0 {
		g.levels = g.loadLevels()
	}

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.score = physics.NewCounter(0)
	g.lives = cfg.Gameplay.Lives
	g.levelIndex = min(max(g.startLevel, 0), len(g.levels)-1)
	g.cycle = 0
	g.tickCount = 0
	g.events = nil

	g.loadLevel()
	g.startTurn()
}

// Resize follows a change of the terminal size. The court is sized in world
// units, so only the check for a too small screen changes.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	runtime.TickRate = g.runtime.TickRate
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

func (g *Game) loadLevels() []LevelInfo {
	return activeLevels(g.log)
}

// activeLevels returns the configured level set, or the built-in levels
// when none is set or the set is rejected.
func activeLevels(l *log.Logger) []LevelInfo {
	if levelSetPath == "" {
		return BuiltinLevels()
	}
	levels, err := LoadLevels(levelSetPath)
	if err != nil {
		l.Error("level set rejected, using built-in levels", "path", levelSetPath, "err", err)
		return BuiltinLevels()
	}
	return levels
}

// LevelNames lists the names of the levels new games will play, in order.
func LevelNames() []string {
	levels := activeLevels(logger)
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.Name
	}
	return names
}

// Level returns the level being played.
func (g *Game) Level() LevelInfo {
	return g.levels[g.levelIndex]
}

// loadLevel builds the environment for the current level index: the court
// bounds, the death zone, the block pattern and the paddle, in that order.
func (g *Game) loadLevel() {
	level := g.Level()
	court := g.cfg.Court
	w, h := float64(court.Width), float64(court.Height)
	t := float64(court.BoundThickness)
	top := float64(court.HUDHeight)

	g.env = physics.NewEnvironment()
	g.remainingBlocks = physics.NewCounter(0)
	g.remainingBalls = physics.NewCounter(0)
	g.balls = nil
	g.border = geom.NewBorder(0, 0, w, h+100)

	boundFill := []physics.Fill{{Color: "darkgray"}}
	g.bounds = []*physics.Block{
		physics.NewBlock(newRect(0, top, t, h), boundFill, nil, 0),
		physics.NewBlock(newRect(w-t, top, t, h), boundFill, nil, 0),
		physics.NewBlock(newRect(0, top, w, t), boundFill, nil, 0),
	}
	for _, b := range g.bounds {
		g.env.AddCollidable(b)
	}

	death := physics.NewBlock(newRect(0, h+t, w, t), boundFill, nil, 0)
	death.AddHitListener(physics.NewBallRemover(g, g.remainingBalls))
	g.env.AddCollidable(death)

	scoreTracker := physics.NewScoreTracker(g.score)
	blockRemover := physics.NewBlockRemover(g.env, g.remainingBlocks)
	g.blocks = make([]*physics.Block, 0, len(level.Blocks))
	for _, spec := range level.Blocks {
		b := newBlock(spec)
		b.AddHitListener(scoreTracker)
		b.AddHitListener(blockRemover)
		b.AddHitListener(physics.HitLogger{})
		g.env.AddCollidable(b)
		g.blocks = append(g.blocks, b)
	}
	g.remainingBlocks.Set(level.RemainingTarget())

	width := level.PaddleWidth
	if g.mode == ModeEndless {
		width = g.difficulty.PaddleWidth(width, width/2, g.score.Value(), g.tickCount)
	}
	g.paddle = physics.NewPaddle(
		geom.NewPoint(w/2, float64(g.cfg.Paddle.BottomY)),
		width, g.cfg.Paddle.Height, level.PaddleSpeed,
		t, w-t,
	)
	g.env.AddCollidable(g.paddle)

	g.log.Info("level loaded", "level", level.Name, "blocks", len(g.blocks), "to_remove", g.remainingBlocks.Value())
}

// startTurn centers the paddle, places fresh balls and starts the countdown.
func (g *Game) startTurn() {
	level := g.Level()
	g.paddle.CenterAt(float64(g.cfg.Court.Width) / 2)

	speed := 1.0
	if g.mode == ModeEndless {
		speed = g.difficulty.Speed(1, g.score.Value(), g.tickCount)
	}

	g.balls = g.balls[:0]
	g.remainingBalls.Set(0)
	spawn := geom.NewPoint(float64(g.cfg.Ball.SpawnX), float64(g.cfg.Ball.SpawnY))
	for _, v := range level.Velocities {
		ball, err := physics.NewBall(spawn, g.cfg.Ball.Radius, g.env)
		if err != nil {
			g.log.Error("cannot place ball", "err", err)
			continue
		}
		ball.SetVelocity(v.Scale(speed))
		ball.SetBorder(&g.border)
		g.balls = append(g.balls, ball)
		g.remainingBalls.Increase(1)
	}

	g.countdown = g.cfg.Gameplay.CountdownTicks
	if g.countdown > 0 {
		g.state = StateCountdown
	} else {
		g.state = StatePlaying
	}
}

// RemoveBall takes a ball out of play. It reports false if the ball is not
// in play.
func (g *Game) RemoveBall(b *physics.Ball) bool {
	i := slices.Index(g.balls, b)
	if i < 0 {
		return false
	}
	g.balls = slices.Delete(g.balls, i, i+1)
	g.event("ball lost")
	return true
}

// Balls returns the balls in play.
func (g *Game) Balls() []*physics.Ball {
	return slices.Clone(g.balls)
}

// Paddle returns the current paddle.
func (g *Game) Paddle() *physics.Paddle {
	return g.paddle
}

// Environment returns the obstacle set of the current level.
func (g *Game) Environment() *physics.Environment {
	return g.env
}

// RemainingBlocks returns how many blocks are left to clear the level.
func (g *Game) RemainingBlocks() int {
	return g.remainingBlocks.Value()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.screenTooSmall {
		return g.result()
	}

	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return g.result()
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = g.resumeState
		case StatePlaying, StateCountdown:
			g.resumeState = g.state
			g.state = StatePaused
		}
	}

	switch g.state {
	case StateCountdown:
		g.tickCount++
		g.countdown--
		if g.countdown <= 0 {
			g.state = StatePlaying
		}
	case StatePlaying:
		g.tickCount++
		g.playFrame(in)
	}

	return g.result()
}

// playFrame moves the paddle, then every ball, then checks whether the turn
// is over.
func (g *Game) playFrame(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.paddle.MoveLeft(g.dt)
	}
	if in.Has(core.ActionRight) {
		g.paddle.MoveRight(g.dt)
	}

	// Balls can be removed while stepping.
	for _, b := range slices.Clone(g.balls) {
		b.TimePassed(g.dt)
	}

	g.checkTurnEnd()
}

func (g *Game) checkTurnEnd() {
	if g.remainingBlocks.Value() == 0 {
		g.score.Increase(g.cfg.Gameplay.ClearBonus)
		g.event("level cleared: " + g.Level().Name)
		g.nextLevel()
		return
	}

	if g.remainingBalls.Value() == 0 {
		g.lives--
		g.event(fmt.Sprintf("turn lost, %d lives left", g.lives))
		if g.lives <= 0 {
			g.state = StateGameOver
			g.event("game over")
			return
		}
		g.startTurn()
	}
}

func (g *Game) nextLevel() {
	g.levelIndex++
	if g.levelIndex >= len(g.levels) {
		if g.mode == ModeCampaign {
			g.levelIndex = len(g.levels) - 1
			g.state = StateWin
			g.event("all levels cleared")
			return
		}
		g.levelIndex = 0
		g.cycle++
	}
	g.loadLevel()
	g.startTurn()
}

func (g *Game) event(msg string) {
	g.events = append(g.events, msg)
	g.log.Debug(msg, "tick", g.tickCount, "score", g.score.Value())
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: slices.Clone(g.events)}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Value(),
		Lives:    g.lives,
		Level:    g.cycle*len(g.levels) + g.levelIndex + 1,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Phase returns the state name (countdown, playing, paused, gameover, win).
func (g *Game) Phase() string {
	return g.state
}

func newRect(x, y, w, h float64) *geom.Rectangle {
	return geom.NewRectangle(geom.NewPoint(x, y), w, h)
}

// Register the games with the registry
func init() {
	registry.Register("arkanoid", func() registry.Game {
		return New()
	})
	registry.Register("arkanoid_endless", func() registry.Game {
		return NewEndless()
	})
}
