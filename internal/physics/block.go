package physics

import (
	"slices"

	"github.com/vovakirdan/arkanoid/internal/geom"
)

// Fill is how a block face is painted: a named colour, or an image
// reference with the colour as its fallback.
type Fill struct {
	Color string
	Image string
}

// IsImage reports whether the fill refers to an image.
func (f Fill) IsImage() bool {
	return f.Image != ""
}

// Block is a breakable rectangular obstacle.
type Block struct {
	rect      *geom.Rectangle
	fills     []Fill
	stroke    *Fill
	hitPoints int
	listeners []HitListener
}

// NewBlock creates a block. fills[i] is used while the block has i+1 hit
// points left; stroke may be nil. Negative hit points are stored as 0.
func NewBlock(rect *geom.Rectangle, fills []Fill, stroke *Fill, hitPoints int) *Block {
	b := &Block{
		rect:   rect,
		fills:  slices.Clone(fills),
		stroke: stroke,
	}
	b.SetHitPoints(hitPoints)
	return b
}

// CollisionRectangle returns the block's shape.
func (b *Block) CollisionRectangle() *geom.Rectangle {
	return b.rect
}

// Hit takes a hit point, notifies listeners and reflects the velocity
// according to where the block was struck: both axes on a corner, Y on the
// upper or lower edge, X on the left or right edge.
func (b *Block) Hit(hitter *Ball, collisionPoint geom.Point, current Velocity) Velocity {
	if b.hitPoints > 0 {
		b.hitPoints--
	}
	b.notifyHit(hitter)

	r := b.rect
	switch {
	case r.IsPointOnCorner(collisionPoint):
		return current.Reflect()
	case collisionPoint.OnHorizontalLine(r.UpperEdge()), collisionPoint.OnHorizontalLine(r.LowerEdge()):
		return current.ReflectY()
	case collisionPoint.OnVerticalLine(r.LeftEdge()), collisionPoint.OnVerticalLine(r.RightEdge()):
		return current.ReflectX()
	}

	ul := r.UpperLeft()
	logger.Warn("block hit off its edges",
		"x", collisionPoint.X, "y", collisionPoint.Y,
		"block_x", ul.X, "block_y", ul.Y,
		"width", r.Width(), "height", r.Height())
	return current
}

// HitPoints returns the remaining hit points.
func (b *Block) HitPoints() int {
	return b.hitPoints
}

// SetHitPoints sets the remaining hit points, floored at 0.
func (b *Block) SetHitPoints(hp int) {
	b.hitPoints = max(hp, 0)
}

// Fill returns the fill for the current hit points. Blocks with no fills
// report the zero Fill.
func (b *Block) Fill() Fill {
	if len(b.fills) == 0 {
		return Fill{}
	}
	i := min(max(b.hitPoints-1, 0), len(b.fills)-1)
	return b.fills[i]
}

// Stroke returns the outline fill, or nil.
func (b *Block) Stroke() *Fill {
	return b.stroke
}

// Center returns the middle of the block.
func (b *Block) Center() geom.Point {
	return b.rect.Center()
}

// AddHitListener registers hl for hit events.
func (b *Block) AddHitListener(hl HitListener) {
	b.listeners = append(b.listeners, hl)
}

// RemoveHitListener unregisters hl. It reports false if hl was not registered.
func (b *Block) RemoveHitListener(hl HitListener) bool {
	i := slices.Index(b.listeners, hl)
	if i < 0 {
		return false
	}
	b.listeners = slices.Delete(b.listeners, i, i+1)
	return true
}

// Listeners returns a copy of the registered listeners.
func (b *Block) Listeners() []HitListener {
	return slices.Clone(b.listeners)
}

func (b *Block) notifyHit(hitter *Ball) {
	for _, hl := range b.Listeners() {
		hl.HitEvent(b, hitter)
	}
}
