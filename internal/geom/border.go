package geom

// Border is the four boundary lines of a court. It is read-only once built
// and is only used for crossing tests.
type Border struct {
	left, right, upper, lower Line
}

// NewBorder builds a border from explicit extents.
func NewBorder(xMin, yMin, xMax, yMax float64) Border {
	return Border{
		left:  NewLine(xMin, yMin, xMin, yMax),
		right: NewLine(xMax, yMin, xMax, yMax),
		upper: NewLine(xMin, yMin, xMax, yMin),
		lower: NewLine(xMin, yMax, xMax, yMax),
	}
}

// BorderFromRectangle builds a border along the edges of r.
func BorderFromRectangle(r *Rectangle) Border {
	ul, lr := r.UpperLeft(), r.LowerRight()
	return NewBorder(ul.X, ul.Y, lr.X, lr.Y)
}

// Left returns the left boundary line.
func (b Border) Left() Line { return b.left }

// Right returns the right boundary line.
func (b Border) Right() Line { return b.right }

// Upper returns the top boundary line.
func (b Border) Upper() Line { return b.upper }

// Lower returns the bottom boundary line.
func (b Border) Lower() Line { return b.lower }

func (b Border) MinX() float64 { return b.left.Start.X }
func (b Border) MaxX() float64 { return b.right.Start.X }
func (b Border) MinY() float64 { return b.upper.Start.Y }
func (b Border) MaxY() float64 { return b.lower.Start.Y }

// Width returns the horizontal extent.
func (b Border) Width() float64 {
	return b.upper.Length()
}

// Height returns the vertical extent.
func (b Border) Height() float64 {
	return b.left.Length()
}

// Contains reports whether p lies within the border (inclusive).
func (b Border) Contains(p Point) bool {
	return p.X >= b.MinX() && p.X <= b.MaxX() && p.Y >= b.MinY() && p.Y <= b.MaxY()
}
