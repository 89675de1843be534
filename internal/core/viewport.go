// Package core provides fundamental types and utilities shared by the game
// and the platform layer. It has no Bubble Tea dependency so game logic stays
// pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps continuous world coordinates onto a rectangle of cells.
type Viewport struct {
	worldW, worldH float64
	area           Rect
}

// NewViewport maps a world of worldW x worldH units onto area.
func NewViewport(worldW, worldH float64, area Rect) Viewport {
	return Viewport{worldW: worldW, worldH: worldH, area: area}
}

// Area returns the cell rectangle the world is drawn into.
func (v Viewport) Area() Rect {
	return v.area
}

// ToCell returns the cell that contains world point (x, y).
func (v Viewport) ToCell(x, y float64) (int, int) {
	return v.area.X + int(math.Floor(v.scaleX(x))), v.area.Y + int(math.Floor(v.scaleY(y)))
}

// RectToCells returns the cells covered by a world rectangle. Anything with
// a positive size covers at least one cell.
func (v Viewport) RectToCells(x, y, w, h float64) Rect {
	x0 := int(math.Floor(v.scaleX(x)))
	y0 := int(math.Floor(v.scaleY(y)))
	x1 := int(math.Ceil(v.scaleX(x + w)))
	y1 := int(math.Ceil(v.scaleY(y + h)))
	return Rect{
		X: v.area.X + x0,
		Y: v.area.Y + y0,
		W: max(x1-x0, 1),
		H: max(y1-y0, 1),
	}
}

func (v Viewport) scaleX(x float64) float64 {
	if v.worldW <= 0 {
		return 0
	}
	return x * float64(v.area.W) / v.worldW
}

func (v Viewport) scaleY(y float64) float64 {
	if v.worldH <= 0 {
		return 0
	}
	return y * float64(v.area.H) / v.worldH
}
