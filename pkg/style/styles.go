package style

import (
	"math"
	"math/big"

	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
)

// Styles holds the resolved style values of one widget. The arrangement
// engine only reads them.
type Styles struct {
	Visibility Visibility
	// Layer is the z-stacking bucket. The empty string is the default layer.
	Layer string
	Dock  Edge
	Split Edge

	// AlignHorizontal and AlignVertical position a container's flow
	// content, and a docked widget inside its edge strip.
	AlignHorizontal AlignHorizontal
	AlignVertical   AlignVertical

	Width, Height       Scalar
	MinWidth, MinHeight Scalar
	MaxWidth, MaxHeight Scalar
	Margin              geometry.Spacing

	// Gutter is the gap in cells between flow children of a container.
	Gutter int
	// GridColumns is the column count used by the grid flow layout.
	GridColumns int
}

// IsVisible reports whether the widget takes part in arrangement.
func (s *Styles) IsVisible() bool { return s.Visibility != Hidden }

// IsDocked reports whether the widget is anchored to an edge by dock.
func (s *Styles) IsDocked() bool { return s.Dock.IsSet() }

// IsSplit reports whether the widget is anchored to an edge by split.
func (s *Styles) IsSplit() bool { return s.Split.IsSet() }

// HasDefaultAlign reports whether content is aligned top-left.
func (s *Styles) HasDefaultAlign() bool {
	return s.AlignHorizontal == AlignLeft && s.AlignVertical == AlignTop
}

// AlignSize aligns content inside container using this widget's alignment.
func (s *Styles) AlignSize(content, container geometry.Size) geometry.Offset {
	return AlignSize(s.AlignHorizontal, s.AlignVertical, content, container)
}

// ContentMeasurer is implemented by widgets that know the size of their
// content. It is consulted for auto dimensions.
type ContentMeasurer interface {
	ContentWidth(container, viewport geometry.Size) int
	ContentHeight(container, viewport geometry.Size, width int) int
}

// BoxModel is the computed size of a widget before integer truncation.
// Width and Height exclude the margin.
type BoxModel struct {
	Width, Height *big.Rat
	Margin        geometry.Spacing
}

// OuterWidth returns the truncated width plus horizontal margin.
func (b BoxModel) OuterWidth() int {
	return Floor(b.Width) + b.Margin.Width()
}

// OuterHeight returns the truncated height plus vertical margin.
func (b BoxModel) OuterHeight() int {
	return Floor(b.Height) + b.Margin.Height()
}

// Size returns the truncated content size.
func (b BoxModel) Size() geometry.Size {
	return geometry.NewSize(Floor(b.Width), Floor(b.Height))
}

// MaxCells bounds every floored dimension so that adding margins and
// offsets to it cannot overflow an int.
const MaxCells = math.MaxInt32

// Floor truncates a rational to the integer at or below it, clamped to
// [-MaxCells, MaxCells]. A nil rational is zero.
func Floor(r *big.Rat) int {
	if r == nil {
		return 0
	}
	q := new(big.Int).Div(r.Num(), r.Denom())
	switch {
	case q.Cmp(maxCells) > 0:
		return MaxCells
	case q.Cmp(minCells) < 0:
		return -MaxCells
	}
	return int(q.Int64())
}

var (
	maxCells = big.NewInt(MaxCells)
	minCells = big.NewInt(-MaxCells)
)

// Rat returns n as a rational.
func Rat(n int) *big.Rat {
	return new(big.Rat).SetInt64(int64(n))
}

// BoxModel computes the widget's width, height and margin. container is the
// space the widget is laid out in, viewport the outermost surface, and
// basisWidth/basisHeight the extents that relative units resolve against.
// content may be nil.
func (s *Styles) BoxModel(container, viewport geometry.Size, basisWidth, basisHeight *big.Rat, content ContentMeasurer) BoxModel {
	margin := s.Margin
	availWidth := Rat(max(0, container.Width-margin.Width()))
	availHeight := Rat(max(0, container.Height-margin.Height()))

	var width *big.Rat
	if s.Width.IsAuto() && content != nil {
		width = Rat(content.ContentWidth(container, viewport))
	} else {
		width = s.Width.Resolve(basisWidth, basisWidth, basisHeight, viewport, availWidth)
	}
	width = s.clamp(width, s.MinWidth, s.MaxWidth, basisWidth, basisWidth, basisHeight, viewport, availWidth)

	var height *big.Rat
	if s.Height.IsAuto() && content != nil {
		height = Rat(content.ContentHeight(container, viewport, Floor(width)))
	} else {
		height = s.Height.Resolve(basisHeight, basisWidth, basisHeight, viewport, availHeight)
	}
	height = s.clamp(height, s.MinHeight, s.MaxHeight, basisHeight, basisWidth, basisHeight, viewport, availHeight)

	return BoxModel{Width: width, Height: height, Margin: margin}
}

// clamp applies optional min and max bounds. Auto bounds are unset.
func (s *Styles) clamp(v *big.Rat, lo, hi Scalar, axis, bw, bh *big.Rat, viewport geometry.Size, avail *big.Rat) *big.Rat {
	if !hi.IsAuto() {
		if m := hi.Resolve(axis, bw, bh, viewport, avail); v.Cmp(m) > 0 {
			v = m
		}
	}
	if !lo.IsAuto() {
		if m := lo.Resolve(axis, bw, bh, viewport, avail); v.Cmp(m) < 0 {
			v = m
		}
	}
	if v.Sign() < 0 {
		return new(big.Rat)
	}
	return v
}
