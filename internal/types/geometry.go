// Package types holds the small geometry values shared by the canvas model,
// the core controllers and the terminal adapter. All values are in pixels
// unless a name says otherwise.
package types

import "fmt"

// Point is a pixel coordinate.
type Point struct {
	X int
	Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Size is a pixel extent.
type Size struct {
	W int
	H int
}

// Rect is an axis-aligned pixel rectangle. The right and bottom edges are
// exclusive.
type Rect struct {
	X, Y, W, H int
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle's extent.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Clamp bounds v to [0, limit]. When limit is negative (the element is larger
// than the canvas) the result is 0.
func Clamp(v, limit int) int {
	return max(0, min(v, limit))
}
