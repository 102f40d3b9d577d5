// Package core provides fundamental value types shared by the runner engine and
// its hosts. It has no third-party dependencies so the simulation stays pure and
// testable.
package core

import "math"

// Vec2 is a point or direction on the track plane.
// X runs along the direction of travel, Y across the lanes.
type Vec2 struct {
	X, Y float64
}

// Left is the unit vector segments travel along.
var Left = Vec2{X: -1}

// V2 is shorthand for constructing a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Box is an axis-aligned bounding box in world units, described by its center.
type Box struct {
	Center Vec2
	Half   Vec2 // Half extents
}

// NewBox creates a box centered at c with the given full size.
func NewBox(c Vec2, size Vec2) Box {
	return Box{Center: c, Half: size.Scale(0.5)}
}

// Overlaps returns true if two boxes intersect. Touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	if math.Abs(b.Center.X-o.Center.X) >= b.Half.X+o.Half.X {
		return false
	}
	return math.Abs(b.Center.Y-o.Center.Y) < b.Half.Y+o.Half.Y
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates between a and b by t without clamping t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
