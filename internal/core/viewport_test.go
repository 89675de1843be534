package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestViewportToCell(t *testing.T) {
	v := NewViewport(800, 600, NewRect(0, 1, 80, 24))

	tests := []struct {
		name   string
		x, y   float64
		cx, cy int
	}{
		{"origin", 0, 0, 0, 1},
		{"centre", 400, 300, 40, 13},
		{"just inside first cell", 9.99, 24.9, 0, 1},
		{"far corner", 799, 599, 79, 24},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy := v.ToCell(tc.x, tc.y)
			if cx != tc.cx || cy != tc.cy {
				t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, cx, cy, tc.cx, tc.cy)
			}
		})
	}
}

func TestViewportRectToCells(t *testing.T) {
	v := NewViewport(800, 600, NewRect(0, 0, 80, 24))

	tests := []struct {
		name       string
		x, y, w, h float64
		expected   Rect
	}{
		{"top bound", 0, 20, 800, 25, NewRect(0, 0, 80, 2)},
		{"block", 100, 100, 50, 25, NewRect(10, 4, 5, 1)},
		{"thin paddle edge", 360, 580, 80, 0, NewRect(36, 23, 8, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := v.RectToCells(tc.x, tc.y, tc.w, tc.h)
			if got != tc.expected {
				t.Errorf("RectToCells() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestViewportEmptyWorld(t *testing.T) {
	v := NewViewport(0, 0, NewRect(3, 4, 10, 10))
	if x, y := v.ToCell(50, 50); x != 3 || y != 4 {
		t.Errorf("ToCell on empty world = (%d, %d), expected area origin", x, y)
	}
}

func TestColorByName(t *testing.T) {
	if c, ok := ColorByName(" Red "); !ok || c != ColorRed {
		t.Errorf("ColorByName(Red) = %v, %v", c, ok)
	}
	if _, ok := ColorByName("chartreuse"); ok {
		t.Error("unknown colour should not resolve")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionRight.String() != "Right" {
		t.Error("paddle actions have wrong names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("out-of-range action should be Unknown")
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionLeft)
	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should drop actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}
}
