package physics

// HitListener is notified whenever a block is struck.
type HitListener interface {
	HitEvent(beingHit *Block, hitter *Ball)
}

// HitNotifier accepts hit listeners.
type HitNotifier interface {
	AddHitListener(hl HitListener)
	RemoveHitListener(hl HitListener) bool
}

// Score values awarded by ScoreTracker.
const (
	HitScore     = 5
	DestroyBonus = 10
)

// Counter is a shared integer tally.
type Counter struct {
	value int
}

// NewCounter creates a counter starting at v.
func NewCounter(v int) *Counter {
	return &Counter{value: v}
}

// Increase adds n.
func (c *Counter) Increase(n int) { c.value += n }

// Decrease subtracts n.
func (c *Counter) Decrease(n int) { c.value -= n }

// Set replaces the value.
func (c *Counter) Set(v int) { c.value = v }

// Value returns the current value.
func (c *Counter) Value() int { return c.value }

// ScoreTracker adds HitScore for every hit and DestroyBonus when the block
// has no hit points left.
type ScoreTracker struct {
	score *Counter
}

// NewScoreTracker creates a tracker that accumulates into score.
func NewScoreTracker(score *Counter) *ScoreTracker {
	return &ScoreTracker{score: score}
}

func (s *ScoreTracker) HitEvent(beingHit *Block, _ *Ball) {
	if beingHit.HitPoints() == 0 {
		s.score.Increase(DestroyBonus)
	}
	s.score.Increase(HitScore)
}

// BlockRemover takes a block out of play once it has no hit points left.
type BlockRemover struct {
	target    CollidableRemover
	remaining *Counter
}

// NewBlockRemover creates a remover that drops blocks from target and
// decrements remaining for each one removed.
func NewBlockRemover(target CollidableRemover, remaining *Counter) *BlockRemover {
	return &BlockRemover{target: target, remaining: remaining}
}

func (r *BlockRemover) HitEvent(beingHit *Block, _ *Ball) {
	if beingHit.HitPoints() != 0 {
		return
	}
	beingHit.RemoveHitListener(r)
	if r.target.RemoveCollidable(beingHit) {
		r.remaining.Decrease(1)
	}
}

// BallRemover takes the hitting ball out of play. It is attached to the
// death zone below the court.
type BallRemover struct {
	target    BallReleaser
	remaining *Counter
}

// NewBallRemover creates a remover that drops balls from target and
// decrements remaining for each one removed.
func NewBallRemover(target BallReleaser, remaining *Counter) *BallRemover {
	return &BallRemover{target: target, remaining: remaining}
}

func (r *BallRemover) HitEvent(_ *Block, hitter *Ball) {
	if r.target.RemoveBall(hitter) {
		r.remaining.Decrease(1)
	}
}

// HitLogger logs every hit at debug level.
type HitLogger struct{}

func (HitLogger) HitEvent(beingHit *Block, hitter *Ball) {
	c := beingHit.Center()
	kv := []any{"block_x", c.X, "block_y", c.Y, "hp", beingHit.HitPoints()}
	if hitter != nil {
		v := hitter.Velocity()
		kv = append(kv, "dx", v.DX, "dy", v.DY)
	}
	logger.Debug("block hit", kv...)
}
