// Package core provides the terminal-agnostic building blocks shared by the
// game and the platform layer: a colored screen buffer, semantic input
// actions and runtime configuration. It has no Bubble Tea dependency so game
// logic stays pure and testable.
package core

// Rect represents an axis-aligned area on the screen.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n on every side. The result never has a
// negative size.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: Max(r.W-2*n, 0),
		H: Max(r.H-2*n, 0),
	}
}

// Centered returns a w×h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: w,
		H: h,
	}
}

// Wrap maps val into [0, n) with toroidal semantics, so -1 becomes n-1 and
// n becomes 0. n must be positive.
func Wrap(val, n int) int {
	val %= n
	if val < 0 {
		val += n
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
