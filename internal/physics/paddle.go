package physics

import (
	"github.com/vovakirdan/arkanoid/internal/geom"
)

// PaddleZones is the number of equal-width zones the paddle's top edge is
// split into, left to right.
const PaddleZones = 5

// Paddle angles, in degrees.
const (
	paddleLeftCornerAngle  = 300
	paddleRightCornerAngle = 60
	paddleZoneStep         = 30
)

// Paddle is the player-controlled collidable. Where the ball lands on its
// top edge decides the outgoing angle.
type Paddle struct {
	rect      *geom.Rectangle
	collision *geom.Rectangle
	speed     int
	minX      float64
	maxX      float64
	fill      Fill
}

// NewPaddle creates a paddle whose bottom edge is centered on
// lowestCentral. The paddle moves speed units per second and is kept
// within [minX, maxX].
func NewPaddle(lowestCentral geom.Point, width, height, speed int, minX, maxX float64) *Paddle {
	ul := geom.NewPoint(lowestCentral.X-float64(width/2), lowestCentral.Y-float64(height))
	p := &Paddle{
		rect:  geom.NewRectangle(ul, float64(width), float64(height)),
		speed: speed,
		minX:  minX,
		maxX:  maxX,
		fill:  Fill{Color: "orange"},
	}
	p.collision = geom.NewRectangle(ul, float64(width), 0)
	return p
}

// CollisionRectangle returns the top edge of the paddle as a zero-height
// rectangle. Balls are only caught from above.
func (p *Paddle) CollisionRectangle() *geom.Rectangle {
	return p.collision
}

// Rectangle returns the full paddle shape.
func (p *Paddle) Rectangle() *geom.Rectangle {
	return p.rect
}

// Speed returns the movement speed in units per second.
func (p *Paddle) Speed() int {
	return p.speed
}

// Width returns the paddle width.
func (p *Paddle) Width() float64 {
	return p.rect.Width()
}

// ZoneWidth returns the width of one reflection zone.
func (p *Paddle) ZoneWidth() float64 {
	return p.rect.Width() / PaddleZones
}

// Fill returns the paddle colour.
func (p *Paddle) Fill() Fill {
	return p.fill
}

// SetFill sets the paddle colour.
func (p *Paddle) SetFill(f Fill) {
	p.fill = f
}

// MoveLeft moves the paddle left for dt seconds. Movement is whole units.
func (p *Paddle) MoveLeft(dt float64) {
	step := float64(int(float64(p.speed) * dt))
	p.SetLeftX(p.rect.UpperLeft().X - step)
}

// MoveRight moves the paddle right for dt seconds. Movement is whole units.
func (p *Paddle) MoveRight(dt float64) {
	step := float64(int(float64(p.speed) * dt))
	p.SetLeftX(p.rect.UpperLeft().X + step)
}

// SetLeftX places the paddle's left side at x, clamped to its bounds.
func (p *Paddle) SetLeftX(x float64) {
	x = min(max(x, p.minX), p.maxX-p.rect.Width())
	p.rect.SetUpperLeftX(x)
	p.collision.SetUpperLeftX(x)
}

// CenterAt centers the paddle horizontally on x.
func (p *Paddle) CenterAt(x float64) {
	p.SetLeftX(x - float64(int(p.rect.Width())/2))
}

// Hit picks the outgoing velocity, keeping the incoming speed. Corners of
// the top edge send the ball out at fixed angles; the rest of the top edge
// maps zone i to 300+30*i degrees. A hit on the bottom edge reflects Y.
func (p *Paddle) Hit(_ *Ball, collisionPoint geom.Point, current Velocity) Velocity {
	speed := current.Speed()
	r := p.rect

	if collisionPoint.Equals(r.UpperLeft()) {
		return FromAngleAndSpeed(paddleLeftCornerAngle, speed)
	}
	if collisionPoint.Equals(r.UpperRight()) {
		return FromAngleAndSpeed(paddleRightCornerAngle, speed)
	}
	if collisionPoint.OnHorizontalLine(r.UpperEdge()) {
		return FromAngleAndSpeed(p.zoneAngle(collisionPoint.X), speed)
	}
	if collisionPoint.OnHorizontalLine(r.LowerEdge()) {
		return current.ReflectY()
	}

	logger.Warn("paddle hit off its edges", "x", collisionPoint.X, "y", collisionPoint.Y)
	return current
}

func (p *Paddle) zoneAngle(x float64) float64 {
	left := p.rect.UpperLeft().X
	zone := p.ZoneWidth()

	for i := range PaddleZones {
		if x < left+zone*float64(i+1) {
			return float64(paddleLeftCornerAngle + paddleZoneStep*i)
		}
	}
	return float64(paddleLeftCornerAngle + paddleZoneStep*(PaddleZones-1))
}
