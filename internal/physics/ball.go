package physics

import (
	"errors"

	"github.com/vovakirdan/arkanoid/internal/geom"
)

// ErrInvalidRadius is returned when a ball is created with a non-positive radius.
var ErrInvalidRadius = errors.New("ball radius must be positive")

// Ball is a moving circle simulated one frame at a time.
type Ball struct {
	center   geom.Point
	radius   int
	velocity Velocity
	border   *geom.Border
	env      *Environment
}

// Feelers are the four axis-aligned probes used to detect the court border
// one frame ahead. Each runs from the center to the ball's edge on that
// side, extended by the frame displacement along the probe's axis.
type Feelers struct {
	Left, Right, Up, Down geom.Line
}

// NewBall creates a stationary ball that collides with env.
func NewBall(center geom.Point, radius int, env *Environment) (*Ball, error) {
	if radius <= 0 {
		return nil, ErrInvalidRadius
	}
	if env == nil {
		env = NewEnvironment()
	}
	return &Ball{center: center, radius: radius, env: env}, nil
}

// Center returns a copy of the ball's center.
func (b *Ball) Center() geom.Point {
	return b.center
}

// MoveTo places the ball at p without simulating the movement.
func (b *Ball) MoveTo(p geom.Point) {
	b.center = p
}

// Radius returns the ball radius.
func (b *Ball) Radius() int {
	return b.radius
}

// Velocity returns the current velocity.
func (b *Ball) Velocity() Velocity {
	return b.velocity
}

// SetVelocity replaces the current velocity.
func (b *Ball) SetVelocity(v Velocity) {
	b.velocity = v
}

// Border returns the court border, or nil when none is set.
func (b *Ball) Border() *geom.Border {
	return b.border
}

// SetBorder sets the court border the ball bounces off. Nil disables it.
func (b *Ball) SetBorder(border *geom.Border) {
	b.border = border
}

// Environment returns the obstacle set the ball collides with.
func (b *Ball) Environment() *Environment {
	return b.env
}

// Trajectory returns the segment the ball would cover in dt seconds.
func (b *Ball) Trajectory(dt float64) geom.Line {
	return geom.Line{
		Start: b.center,
		End:   b.velocity.Decouple(dt).ApplyToPoint(b.center),
	}
}

// Feelers returns the border probes for a frame of dt seconds.
func (b *Ball) Feelers(dt float64) Feelers {
	d := b.velocity.Decouple(dt)
	c := b.center
	r := float64(b.radius)

	return Feelers{
		Left:  geom.NewLine(c.X, c.Y, c.X-r+d.DX, c.Y),
		Right: geom.NewLine(c.X, c.Y, c.X+r+d.DX, c.Y),
		Up:    geom.NewLine(c.X, c.Y, c.X, c.Y-r+d.DY),
		Down:  geom.NewLine(c.X, c.Y, c.X, c.Y+r+d.DY),
	}
}

// MoveOneStep advances the ball by dt seconds.
//
// Border bounces are applied first and change this frame's trajectory.
// If the trajectory then reaches an obstacle, the obstacle decides the new
// velocity and the ball stays where it is until the next frame. Otherwise
// the ball moves to the end of the trajectory.
func (b *Ball) MoveOneStep(dt float64) {
	if b.border != nil {
		b.bounceOffBorder(dt)
	}

	trajectory := b.Trajectory(dt)

	hit, ok := b.env.ClosestCollision(trajectory)
	if !ok {
		b.center = trajectory.End
		return
	}

	logger.Debug("ball collision", "x", hit.Point.X, "y", hit.Point.Y, "dx", b.velocity.DX, "dy", b.velocity.DY)
	b.velocity = hit.Object.Hit(b, hit.Point, b.velocity)
}

// TimePassed advances the ball by dt seconds.
func (b *Ball) TimePassed(dt float64) {
	b.MoveOneStep(dt)
}

func (b *Ball) bounceOffBorder(dt float64) {
	f := b.Feelers(dt)

	if b.border.Left().Intersects(f.Left) || b.border.Right().Intersects(f.Right) {
		b.velocity = b.velocity.ReflectX()
	}
	if b.border.Upper().Intersects(f.Up) || b.border.Lower().Intersects(f.Down) {
		b.velocity = b.velocity.ReflectY()
	}
}
