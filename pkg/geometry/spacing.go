package geometry

import "fmt"

// Spacing holds insets for the four sides of a box, in CSS order.
type Spacing struct {
	Top, Right, Bottom, Left int
}

// SpacingAll creates a Spacing with the same value on every side.
func SpacingAll(n int) Spacing {
	return Spacing{Top: n, Right: n, Bottom: n, Left: n}
}

// SpacingVH creates a Spacing with vertical (top/bottom) and horizontal
// (left/right) values.
func SpacingVH(vert, horiz int) Spacing {
	return Spacing{Top: vert, Right: horiz, Bottom: vert, Left: horiz}
}

// Width returns the horizontal extent of the spacing (left + right).
func (s Spacing) Width() int {
	return s.Left + s.Right
}

// Height returns the vertical extent of the spacing (top + bottom).
func (s Spacing) Height() int {
	return s.Top + s.Bottom
}

// IsZero returns true if every side is zero.
func (s Spacing) IsZero() bool {
	return s == Spacing{}
}

// Add returns the side-wise sum of two spacings.
func (s Spacing) Add(other Spacing) Spacing {
	return Spacing{
		Top:    s.Top + other.Top,
		Right:  s.Right + other.Right,
		Bottom: s.Bottom + other.Bottom,
		Left:   s.Left + other.Left,
	}
}

// GrowMaximum returns the side-wise maximum of two spacings.
func (s Spacing) GrowMaximum(other Spacing) Spacing {
	return Spacing{
		Top:    max(s.Top, other.Top),
		Right:  max(s.Right, other.Right),
		Bottom: max(s.Bottom, other.Bottom),
		Left:   max(s.Left, other.Left),
	}
}

func (s Spacing) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", s.Top, s.Right, s.Bottom, s.Left)
}
