package flow

import (
	"math/big"

	"gitlab.com/tinyland/lab/arrange/pkg/arrange"
	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
	"gitlab.com/tinyland/lab/arrange/pkg/style"
)

// Stack places children one after another along Direction. A child's size
// on that axis comes from its box model; fr dimensions, and auto dimensions
// with no content to measure, share the space left over in proportion to
// their fr value (auto counts as 1fr). On the cross axis each child keeps its
// box model size. The container's Gutter separates children.
type Stack struct {
	Direction Direction
	Flex      Flex
	// Cache, when set, memoizes the constraint solve.
	Cache *Cache
}

// Arrange implements arrange.FlowLayout.
func (s Stack) Arrange(container arrange.Widget, children []arrange.Widget, size, viewport geometry.Size) []arrange.Placement {
	if len(children) == 0 {
		return nil
	}

	basisWidth, basisHeight := style.Rat(size.Width), style.Rat(size.Height)
	boxes := make([]style.BoxModel, len(children))
	constraints := make([]Constraint, len(children))
	fills := make([]*big.Rat, len(children))

	for i, child := range children {
		boxes[i] = arrange.BoxModelOf(child, size, viewport, basisWidth, basisHeight)
		main := s.mainScalar(child.Styles())
		switch {
		case main.IsFraction():
			fills[i] = main.Value()
		case main.IsAuto() && !measurable(child):
			fills[i] = big.NewRat(1, 1)
		case s.Direction == Vertical:
			constraints[i] = Length{boxes[i].OuterHeight()}
		default:
			constraints[i] = Length{boxes[i].OuterWidth()}
		}
	}
	for i, w := range fillWeights(fills) {
		if fills[i] != nil {
			constraints[i] = Fill{w}
		}
	}

	gutter := 0
	if container != nil {
		gutter = container.Styles().Gutter
	}
	layout := NewLayout(s.Direction, constraints...).WithSpacing(gutter).WithFlex(s.Flex)
	slots := s.Cache.Split(layout, size.Region())

	placements := make([]arrange.Placement, len(children))
	for i, child := range children {
		box, slot := boxes[i], slots[i]
		cell := geometry.NewRegion(slot.X, slot.Y, box.OuterWidth(), slot.Height)
		if s.Direction == Horizontal {
			cell = geometry.NewRegion(slot.X, slot.Y, slot.Width, box.OuterHeight())
		}
		placements[i] = arrange.Placement{
			Region:   cell.Shrink(box.Margin),
			Margin:   box.Margin,
			Widget:   child,
			Layering: arrange.Flow(0),
		}
	}
	return placements
}

func (s Stack) mainScalar(st *style.Styles) style.Scalar {
	if s.Direction == Vertical {
		return st.Height
	}
	return st.Width
}

func measurable(w arrange.Widget) bool {
	switch w.(type) {
	case style.ContentMeasurer, arrange.BoxModeler:
		return true
	}
	return false
}

// fillWeights scales rational fr values to integer weights over a common
// denominator, so 1/3fr and 2/3fr become 1 and 2. Nil entries get zero.
func fillWeights(fills []*big.Rat) []int {
	lcm := big.NewInt(1)
	for _, f := range fills {
		if f == nil {
			continue
		}
		d := f.Denom()
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Quo(d, g))
	}

	weights := make([]int, len(fills))
	for i, f := range fills {
		if f == nil {
			continue
		}
		w := new(big.Int).Mul(f.Num(), new(big.Int).Quo(lcm, f.Denom()))
		weights[i] = int(w.Int64())
	}
	return weights
}
