package geom

// Edge indices, in the fixed order intersection queries walk them.
const (
	EdgeUpper = iota
	EdgeLower
	EdgeLeft
	EdgeRight

	NumEdges
)

// Rectangle is an axis-aligned rectangle anchored at its upper-left corner.
// Its edges are derived from the corner and always regenerated together;
// there is no way to update one edge without the others.
type Rectangle struct {
	upperLeft Point
	width     float64
	height    float64
	edges     [NumEdges]Line
}

// NewRectangle creates a rectangle with the given upper-left corner and size.
func NewRectangle(upperLeft Point, width, height float64) *Rectangle {
	r := &Rectangle{
		upperLeft: upperLeft,
		width:     width,
		height:    height,
	}
	r.updateEdges()
	return r
}

// Clone returns an independent copy of r.
func (r *Rectangle) Clone() *Rectangle {
	c := *r
	return &c
}

// MoveTo relocates the rectangle and regenerates all four edges.
func (r *Rectangle) MoveTo(upperLeft Point) {
	r.upperLeft = upperLeft
	r.updateEdges()
}

// SetUpperLeftX moves the rectangle horizontally, keeping its Y.
func (r *Rectangle) SetUpperLeftX(x float64) {
	r.MoveTo(Point{X: x, Y: r.upperLeft.Y})
}

func (r *Rectangle) updateEdges() {
	ul, ur := r.UpperLeft(), r.UpperRight()
	ll, lr := r.LowerLeft(), r.LowerRight()

	r.edges[EdgeUpper] = Line{Start: ul, End: ur}
	r.edges[EdgeLower] = Line{Start: ll, End: lr}
	r.edges[EdgeLeft] = Line{Start: ul, End: ll}
	r.edges[EdgeRight] = Line{Start: ur, End: lr}
}

// Width returns the rectangle width.
func (r *Rectangle) Width() float64 {
	return r.width
}

// Height returns the rectangle height.
func (r *Rectangle) Height() float64 {
	return r.height
}

// UpperLeft returns the upper-left corner.
func (r *Rectangle) UpperLeft() Point {
	return r.upperLeft
}

// UpperRight returns the upper-right corner.
func (r *Rectangle) UpperRight() Point {
	return Point{X: r.upperLeft.X + r.width, Y: r.upperLeft.Y}
}

// LowerLeft returns the lower-left corner.
func (r *Rectangle) LowerLeft() Point {
	return Point{X: r.upperLeft.X, Y: r.upperLeft.Y + r.height}
}

// LowerRight returns the lower-right corner.
func (r *Rectangle) LowerRight() Point {
	return Point{X: r.upperLeft.X + r.width, Y: r.upperLeft.Y + r.height}
}

// Center returns the center point of the rectangle.
func (r *Rectangle) Center() Point {
	return Point{X: r.upperLeft.X + r.width/2, Y: r.upperLeft.Y + r.height/2}
}

// Edges returns a copy of the four edges in edge order.
func (r *Rectangle) Edges() [NumEdges]Line {
	return r.edges
}

// UpperEdge returns the top edge, left to right.
func (r *Rectangle) UpperEdge() Line {
	return r.edges[EdgeUpper]
}

// LowerEdge returns the bottom edge, left to right.
func (r *Rectangle) LowerEdge() Line {
	return r.edges[EdgeLower]
}

// LeftEdge returns the left edge, top to bottom.
func (r *Rectangle) LeftEdge() Line {
	return r.edges[EdgeLeft]
}

// RightEdge returns the right edge, top to bottom.
func (r *Rectangle) RightEdge() Line {
	return r.edges[EdgeRight]
}

// IntersectionPoints returns every intersection of l with the rectangle's
// edges, walked in edge order (upper, lower, left, right).
func (r *Rectangle) IntersectionPoints(l Line) []Point {
	var points []Point
	for _, edge := range r.edges {
		if p, ok := l.IntersectionWith(edge); ok {
			points = append(points, p)
		}
	}
	return points
}

// IsPointOnCorner reports whether p is exactly one of the four corners.
func (r *Rectangle) IsPointOnCorner(p Point) bool {
	return p.Equals(r.UpperLeft()) || p.Equals(r.UpperRight()) ||
		p.Equals(r.LowerLeft()) || p.Equals(r.LowerRight())
}

// Contains reports whether p lies inside or on the boundary of r.
func (r *Rectangle) Contains(p Point) bool {
	return p.X >= r.upperLeft.X && p.X <= r.upperLeft.X+r.width &&
		p.Y >= r.upperLeft.Y && p.Y <= r.upperLeft.Y+r.height
}
