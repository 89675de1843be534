package physics

import (
	"math"

	"github.com/vovakirdan/arkanoid/internal/geom"
)

// Velocity is a rate of change in units per second.
type Velocity struct {
	DX, DY float64
}

// NewVelocity creates a velocity from its components.
func NewVelocity(dx, dy float64) Velocity {
	return Velocity{DX: dx, DY: dy}
}

// FromAngleAndSpeed converts a heading to a velocity. The angle is in
// degrees, taken modulo 360; 0 points straight up and angles grow clockwise.
func FromAngleAndSpeed(angle, speed float64) Velocity {
	rad := math.Mod(angle, 360) * math.Pi / 180
	return Velocity{
		DX: speed * math.Sin(rad),
		DY: -speed * math.Cos(rad),
	}
}

// Speed returns the magnitude of the velocity.
func (v Velocity) Speed() float64 {
	return math.Hypot(v.DX, v.DY)
}

// Angle returns the heading in degrees within [0, 360), using the same
// convention as FromAngleAndSpeed. A zero velocity reports 0.
func (v Velocity) Angle() float64 {
	if v.IsZero() {
		return 0
	}
	deg := math.Atan2(v.DX, -v.DY) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// IsZero reports whether the body is stationary.
func (v Velocity) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// Decouple returns the displacement covered in dt seconds.
func (v Velocity) Decouple(dt float64) Velocity {
	return Velocity{DX: v.DX * dt, DY: v.DY * dt}
}

// ApplyToPoint translates p by the velocity taken as a displacement.
func (v Velocity) ApplyToPoint(p geom.Point) geom.Point {
	return geom.Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// ReflectX negates the horizontal component.
func (v Velocity) ReflectX() Velocity {
	return Velocity{DX: -v.DX, DY: v.DY}
}

// ReflectY negates the vertical component.
func (v Velocity) ReflectY() Velocity {
	return Velocity{DX: v.DX, DY: -v.DY}
}

// Reflect negates both components.
func (v Velocity) Reflect() Velocity {
	return Velocity{DX: -v.DX, DY: -v.DY}
}

// Scale multiplies the velocity by f, keeping its heading.
func (v Velocity) Scale(f float64) Velocity {
	return Velocity{DX: v.DX * f, DY: v.DY * f}
}
