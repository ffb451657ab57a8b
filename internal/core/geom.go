// Package core holds the types shared by the tetris engine and the terminal
// platform: the cell screen, the color palette, input actions and runtime
// settings. It imports nothing outside the standard library so the engine
// can be tested without a terminal.
package core

// Rect is a box of screen cells; (X, Y) is the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect builds a Rect from its corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the box.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the box.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies inside the box.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
