package geometry

import "fmt"

// Region is a rectangle: an origin plus a size.
// X and Y are the top-left corner; Width and Height are never negative when
// the region was produced by one of the methods in this package.
type Region struct {
	X, Y          int
	Width, Height int
}

// NewRegion creates a Region with the given position and dimensions.
func NewRegion(x, y, width, height int) Region {
	return Region{X: x, Y: y, Width: width, Height: height}
}

// Offset returns the region's origin.
func (r Region) Offset() Offset {
	return Offset{X: r.X, Y: r.Y}
}

// Size returns the region's dimensions.
func (r Region) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Region) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Region) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty returns true if the region has zero area.
func (r Region) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) lies within the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate returns the region moved by offset.
func (r Region) Translate(offset Offset) Region {
	return Region{X: r.X + offset.X, Y: r.Y + offset.Y, Width: r.Width, Height: r.Height}
}

// Shrink returns the region inset by spacing. Dimensions are clamped at zero.
func (r Region) Shrink(s Spacing) Region {
	return Region{
		X:      r.X + s.Left,
		Y:      r.Y + s.Top,
		Width:  max(0, r.Width-s.Width()),
		Height: max(0, r.Height-s.Height()),
	}
}

// Grow returns the region expanded outward by spacing.
func (r Region) Grow(s Spacing) Region {
	return Region{
		X:      r.X - s.Left,
		Y:      r.Y - s.Top,
		Width:  max(0, r.Width+s.Width()),
		Height: max(0, r.Height+s.Height()),
	}
}

// SplitHorizontal cuts the region with a horizontal line and returns the
// parts above and below it. A positive cut is measured from the top, a
// negative cut from the bottom. The cut is clamped to the region's height.
func (r Region) SplitHorizontal(cut int) (top, bottom Region) {
	if cut < 0 {
		cut += r.Height
	}
	cut = min(max(cut, 0), r.Height)
	top = Region{X: r.X, Y: r.Y, Width: r.Width, Height: cut}
	bottom = Region{X: r.X, Y: r.Y + cut, Width: r.Width, Height: r.Height - cut}
	return top, bottom
}

// SplitVertical cuts the region with a vertical line and returns the parts
// to the left and right of it. A positive cut is measured from the left, a
// negative cut from the right. The cut is clamped to the region's width.
func (r Region) SplitVertical(cut int) (left, right Region) {
	if cut < 0 {
		cut += r.Width
	}
	cut = min(max(cut, 0), r.Width)
	left = Region{X: r.X, Y: r.Y, Width: cut, Height: r.Height}
	right = Region{X: r.X + cut, Y: r.Y, Width: r.Width - cut, Height: r.Height}
	return left, right
}

// Intersect returns the overlap of two regions, or an empty Region if they
// do not overlap.
func (r Region) Intersect(other Region) Region {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Region{}
	}
	return Region{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Union returns the smallest region containing both regions.
func (r Region) Union(other Region) Region {
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.Right(), other.Right())
	y2 := max(r.Bottom(), other.Bottom())
	return Region{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

func (r Region) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", r.X, r.Y, r.Width, r.Height)
}
