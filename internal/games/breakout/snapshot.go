package breakout

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a copy of the game state for determinism checks and headless
// runs. Ball and block data are flattened into plain numbers.
type Snapshot struct {
	Tick            uint64
	State           string
	Mode            int // 0=Campaign, 1=Endless
	Cycle           int
	LevelIndex      int
	Score           int
	Lives           int
	Countdown       int
	RemainingBlocks int
	RemainingBalls  int
	PaddleX         float64
	PaddleWidth     float64

	// Each ball is 4 values: X, Y, DX, DY
	BallData []float64

	// Hit points of every pattern block in level order; removed blocks are 0
	BlockHP []int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	ballData := make([]float64, 0, len(g.balls)*4)
	for _, b := range g.balls {
		c, v := b.Center(), b.Velocity()
		ballData = append(ballData, c.X, c.Y, v.DX, v.DY)
	}

	blockHP := make([]int, len(g.blocks))
	for i, b := range g.blocks {
		blockHP[i] = b.HitPoints()
	}

	return Snapshot{
		Tick:            uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:           g.state,
		Mode:            int(g.mode),
		Cycle:           g.cycle,
		LevelIndex:      g.levelIndex,
		Score:           g.score.Value(),
		Lives:           g.lives,
		Countdown:       g.countdown,
		RemainingBlocks: g.remainingBlocks.Value(),
		RemainingBalls:  g.remainingBalls.Value(),
		PaddleX:         g.paddle.Rectangle().UpperLeft().X,
		PaddleWidth:     g.paddle.Width(),
		BallData:        ballData,
		BlockHP:         blockHP,
	}
}

// Hash returns an FNV-1a hash of every field of the snapshot.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeUint := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	writeInt := func(v int) { writeUint(uint64(v)) } //#nosec G115 -- hash computation
	writeFloat := func(v float64) { writeUint(math.Float64bits(v)) }

	writeUint(snap.Tick)
	_, _ = h.Write([]byte(snap.State))
	for _, v := range []int{
		snap.Mode, snap.Cycle, snap.LevelIndex, snap.Score, snap.Lives,
		snap.Countdown, snap.RemainingBlocks, snap.RemainingBalls,
	} {
		writeInt(v)
	}
	writeFloat(snap.PaddleX)
	writeFloat(snap.PaddleWidth)

	writeInt(len(snap.BallData))
	for _, v := range snap.BallData {
		writeFloat(v)
	}
	writeInt(len(snap.BlockHP))
	for _, v := range snap.BlockHP {
		writeInt(v)
	}

	return h.Sum64()
}
