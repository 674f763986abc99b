// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an integer rectangle in screen cells, used for drawing.
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

// Box is an axis-aligned bounding box in simulation units.
// The simulation runs on a logical play field that is scaled to the
// terminal only when rendering, so positions are fractional.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Expand grows the box by margin on every side.
func (b Box) Expand(margin float64) Box {
	return Box{
		X: b.X - margin,
		Y: b.Y - margin,
		W: b.W + 2*margin,
		H: b.H + 2*margin,
	}
}

// Touches reports whether two boxes overlap or share an edge.
// Only a strict gap on some axis separates them.
func (b Box) Touches(other Box) bool {
	if b.Right() < other.X || b.X > other.Right() {
		return false
	}
	if b.Bottom() < other.Y || b.Y > other.Bottom() {
		return false
	}
	return true
}

// Overlaps reports whether a and b collide once both are expanded by tolerance.
// A positive tolerance biases toward registering a hit: boxes separated by a gap
// of up to 2*tolerance still collide.
func Overlaps(a, b Box, tolerance float64) bool {
	return a.Expand(tolerance).Touches(b.Expand(tolerance))
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
