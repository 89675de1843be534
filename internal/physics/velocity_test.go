package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/arkanoid/internal/geom"
)

const tolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestFromAngleAndSpeed(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		speed  float64
		dx, dy float64
	}{
		{"straight up", 0, 10, 0, -10},
		{"right", 90, 10, 10, 0},
		{"down", 180, 10, 0, 10},
		{"left", 270, 10, -10, 0},
		{"full turn", 360, 10, 0, -10},
		{"wraps past 360", 450, 10, 10, 0},
		{"negative angle", -90, 10, -10, 0},
		{"zero speed", 45, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := FromAngleAndSpeed(tc.angle, tc.speed)
			if !approxEqual(v.DX, tc.dx) || !approxEqual(v.DY, tc.dy) {
				t.Errorf("FromAngleAndSpeed(%v, %v) = %+v, expected (%v, %v)", tc.angle, tc.speed, v, tc.dx, tc.dy)
			}
		})
	}
}

func TestVelocityAngleRoundTrip(t *testing.T) {
	for _, angle := range []float64{0, 30, 60, 135, 210, 300, 330, 359} {
		v := FromAngleAndSpeed(angle, 300)
		if !approxEqual(v.Angle(), angle) {
			t.Errorf("Angle() of %v degrees = %v", angle, v.Angle())
		}
		if !approxEqual(v.Speed(), 300) {
			t.Errorf("Speed() of %v degrees = %v, expected 300", angle, v.Speed())
		}
	}

	if (Velocity{}).Angle() != 0 {
		t.Error("zero velocity should report angle 0")
	}
}

func TestVelocityOperations(t *testing.T) {
	v := NewVelocity(3, -4)

	if v.Speed() != 5 {
		t.Errorf("Speed() = %v, expected 5", v.Speed())
	}
	if got := v.ReflectX(); got != NewVelocity(-3, -4) {
		t.Errorf("ReflectX() = %+v", got)
	}
	if got := v.ReflectY(); got != NewVelocity(3, 4) {
		t.Errorf("ReflectY() = %+v", got)
	}
	if got := v.Reflect(); got != NewVelocity(-3, 4) {
		t.Errorf("Reflect() = %+v", got)
	}
	if got := v.Decouple(0.5); got != NewVelocity(1.5, -2) {
		t.Errorf("Decouple(0.5) = %+v", got)
	}
	if got := v.Scale(2); got != NewVelocity(6, -8) {
		t.Errorf("Scale(2) = %+v", got)
	}

	p := v.ApplyToPoint(geom.NewPoint(10, 10))
	if !p.Equals(geom.NewPoint(13, 6)) {
		t.Errorf("ApplyToPoint() = %v, expected (13, 6)", p)
	}

	if !(Velocity{}).IsZero() || v.IsZero() {
		t.Error("IsZero() mismatch")
	}
}
