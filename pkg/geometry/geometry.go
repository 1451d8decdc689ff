// Package geometry provides the integer value types used by the arrangement
// engine: Size, Offset, Region and Spacing. All types are immutable; every
// operation returns a new value.
//
// Coordinates are terminal cells. Region sizes are kept non-negative by every
// operation that could otherwise produce a negative extent.
package geometry

import "fmt"

// Size is a non-negative width and height in cells.
type Size struct {
	Width, Height int
}

// NewSize creates a Size, clamping negative dimensions to zero.
func NewSize(width, height int) Size {
	return Size{Width: max(width, 0), Height: max(height, 0)}
}

// Area returns the number of cells covered by this size.
func (s Size) Area() int {
	return s.Width * s.Height
}

// IsZero returns true if either dimension is zero.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Region returns a Region of this size anchored at the origin.
func (s Size) Region() Region {
	return Region{Width: s.Width, Height: s.Height}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Offset is a displacement in cells. Unlike Size it may be negative.
type Offset struct {
	X, Y int
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// IsZero returns true if both components are zero.
func (o Offset) IsZero() bool {
	return o.X == 0 && o.Y == 0
}

// Clamped returns the offset with negative components replaced by zero.
func (o Offset) Clamped() Offset {
	return Offset{X: max(o.X, 0), Y: max(o.Y, 0)}
}
