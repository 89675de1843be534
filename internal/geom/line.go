package geom

import "math"

// Epsilon is the slope tolerance under which two non-vertical lines are
// treated as parallel.
const Epsilon = 0.00001

// Precision is the number of decimal digits intersection coordinates are
// rounded to.
const Precision = 2

// Line is a directed segment from Start to End.
type Line struct {
	Start, End Point
}

// NewLine creates a segment from (x1, y1) to (x2, y2).
func NewLine(x1, y1, x2, y2 float64) Line {
	return Line{Start: Point{X: x1, Y: y1}, End: Point{X: x2, Y: y2}}
}

// Length returns the distance between the endpoints.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Middle returns the midpoint of the segment.
func (l Line) Middle() Point {
	return Point{
		X: (l.Start.X + l.End.X) / 2,
		Y: (l.Start.Y + l.End.Y) / 2,
	}
}

// IsVertical reports whether both endpoints share the same X.
func (l Line) IsVertical() bool {
	return l.Start.X == l.End.X
}

// IsHorizontal reports whether both endpoints share the same Y.
func (l Line) IsHorizontal() bool {
	return l.Start.Y == l.End.Y
}

// Equals reports whether l and other have the same endpoints, in either order.
func (l Line) Equals(other Line) bool {
	return (l.Start.Equals(other.Start) && l.End.Equals(other.End)) ||
		(l.Start.Equals(other.End) && l.End.Equals(other.Start))
}

// slope must only be called on non-vertical lines.
func (l Line) slope() float64 {
	return (l.End.Y - l.Start.Y) / (l.End.X - l.Start.X)
}

// yIntercept must only be called on non-vertical lines.
func (l Line) yIntercept() float64 {
	return l.Start.Y - l.slope()*l.Start.X
}

// yAt evaluates the line equation at x. Non-vertical lines only.
func (l Line) yAt(x float64) float64 {
	return l.slope()*(x-l.Start.X) + l.Start.Y
}

// InXProjection reports whether p.X lies within the closed X range of l.
func (l Line) InXProjection(p Point) bool {
	return inClosedRange(p.X, l.Start.X, l.End.X)
}

// InYProjection reports whether p.Y lies within the closed Y range of l.
func (l Line) InYProjection(p Point) bool {
	return inClosedRange(p.Y, l.Start.Y, l.End.Y)
}

// Intersects reports whether the two segments intersect.
func (l Line) Intersects(other Line) bool {
	_, ok := l.IntersectionWith(other)
	return ok
}

// IntersectionWith returns the intersection point of two segments.
// Two vertical segments never intersect, even when collinear, and neither do
// two segments whose slopes differ by less than Epsilon (identical lines
// included). Coordinates are rounded to Precision decimals.
func (l Line) IntersectionWith(other Line) (Point, bool) {
	switch {
	case l.IsVertical() && other.IsVertical():
		return Point{}, false
	case l.IsVertical():
		return verticalIntersection(l, other)
	case other.IsVertical():
		return verticalIntersection(other, l)
	case math.Abs(l.slope()-other.slope()) < Epsilon:
		return Point{}, false
	}

	p := slopedIntersection(l, other)
	if l.InXProjection(p) && other.InXProjection(p) {
		return p, true
	}
	return Point{}, false
}

// ClosestIntersectionToStart returns the intersection of l with r's edges
// that lies nearest to l.Start. On equal distances the first point found
// (in edge order) wins.
func (l Line) ClosestIntersectionToStart(r *Rectangle) (Point, bool) {
	points := r.IntersectionPoints(l)
	if len(points) == 0 {
		return Point{}, false
	}

	closest := points[0]
	best := l.Start.Distance(closest)
	for _, p := range points[1:] {
		if d := l.Start.Distance(p); d < best {
			closest, best = p, d
		}
	}
	return closest, true
}

// verticalIntersection intersects a vertical segment with a non-vertical one.
func verticalIntersection(vert, nonVert Line) (Point, bool) {
	x := vert.Start.X
	candidate := Point{X: x, Y: nonVert.yAt(x)}

	if !nonVert.InXProjection(candidate) || !vert.InYProjection(candidate) {
		return Point{}, false
	}
	return Point{X: round(candidate.X), Y: round(candidate.Y)}, true
}

// slopedIntersection solves the two line equations. Both lines must be
// non-vertical with distinct slopes.
func slopedIntersection(a, b Line) Point {
	ma, mb := a.slope(), b.slope()
	ba, bb := a.yIntercept(), b.yIntercept()

	x := (bb - ba) / (ma - mb)
	y := (ma*bb - mb*ba) / (ma - mb)
	return Point{X: round(x), Y: round(y)}
}

// round quantizes v to Precision decimals, rounding halves up.
func round(v float64) float64 {
	scale := math.Pow(10, Precision)
	return math.Floor(v*scale+0.5) / scale
}

func inClosedRange(v, a, b float64) bool {
	return (a <= v && v <= b) || (b <= v && v <= a)
}
