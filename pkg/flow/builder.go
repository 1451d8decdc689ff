package flow

import "gitlab.com/tinyland/lab/arrange/pkg/geometry"

// SplitVertical splits area top-to-bottom according to the constraints.
func SplitVertical(area geometry.Region, constraints ...Constraint) []geometry.Region {
	return NewLayout(Vertical, constraints...).Split(area)
}

// SplitHorizontal splits area left-to-right according to the constraints.
func SplitHorizontal(area geometry.Region, constraints ...Constraint) []geometry.Region {
	return NewLayout(Horizontal, constraints...).Split(area)
}

// Builder provides a fluent API for constructing layouts.
type Builder struct {
	layout *Layout
}

// NewBuilder creates a horizontal builder with no constraints.
func NewBuilder() *Builder {
	return &Builder{layout: &Layout{direction: Horizontal}}
}

// Direction sets the split direction.
func (b *Builder) Direction(d Direction) *Builder {
	b.layout.direction = d
	return b
}

// Constraints sets the constraint list.
func (b *Builder) Constraints(cs ...Constraint) *Builder {
	b.layout.constraints = cs
	return b
}

// Repeat sets n copies of c as the constraint list.
func (b *Builder) Repeat(n int, c Constraint) *Builder {
	cs := make([]Constraint, max(n, 0))
	for i := range cs {
		cs[i] = c
	}
	b.layout.constraints = cs
	return b
}

// Flex sets the flex mode.
func (b *Builder) Flex(f Flex) *Builder {
	b.layout.flex = f
	return b
}

// Spacing sets the gap between regions.
func (b *Builder) Spacing(s int) *Builder {
	b.layout.WithSpacing(s)
	return b
}

// Margin sets the outer margin.
func (b *Builder) Margin(m int) *Builder {
	b.layout.WithMargin(m)
	return b
}

// Split runs the solver on area.
func (b *Builder) Split(area geometry.Region) []geometry.Region {
	return b.layout.Split(area)
}

// Build returns the underlying Layout for reuse.
func (b *Builder) Build() *Layout {
	return b.layout
}
