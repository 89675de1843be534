// Package geom provides the floating-point geometry used by the collision
// engine: points, line segments, axis-aligned rectangles and court borders.
package geom

import "math"

// Point is a 2D coordinate. It is a value type: copy it to "modify" it.
type Point struct {
	X, Y float64
}

// NewPoint creates a point at (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance to other.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Equals reports whether both coordinates match exactly. Intersection
// points are quantized (see Precision) before they are compared.
func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// SetX relocates the point horizontally.
func (p *Point) SetX(x float64) {
	p.X = x
}

// SetY relocates the point vertically.
func (p *Point) SetY(y float64) {
	p.Y = y
}

// OnHorizontalLine reports whether p lies on the horizontal segment l.
// Returns false if l is not horizontal.
func (p Point) OnHorizontalLine(l Line) bool {
	if !l.IsHorizontal() {
		return false
	}
	return p.Y == l.Start.Y && l.InXProjection(p)
}

// OnVerticalLine reports whether p lies on the vertical segment l.
// Returns false if l is not vertical.
func (p Point) OnVerticalLine(l Line) bool {
	if !l.IsVertical() {
		return false
	}
	return p.X == l.Start.X && l.InYProjection(p)
}
