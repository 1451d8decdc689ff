package arrange

import (
	"fmt"
	"slices"

	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
)

type layerKind uint8

const (
	kindFlow layerKind = iota
	kindSplit
	kindDock
)

// Layering classifies a placement for paint order. Flow placements carry
// their own z; every flow placement paints below every split placement, and
// every split placement below every dock placement.
type Layering struct {
	kind layerKind
	z    int
}

// Flow returns the layering of an in-flow placement with the given z.
func Flow(z int) Layering { return Layering{kind: kindFlow, z: z} }

// SplitLayering is the layering of every split placement.
var SplitLayering = Layering{kind: kindSplit}

// DockLayering is the layering of every dock placement.
var DockLayering = Layering{kind: kindDock}

// IsFlow reports whether the layering is an in-flow one.
func (l Layering) IsFlow() bool { return l.kind == kindFlow }

// IsSplit reports whether the layering belongs to a split widget.
func (l Layering) IsSplit() bool { return l.kind == kindSplit }

// IsDock reports whether the layering belongs to a dock widget.
func (l Layering) IsDock() bool { return l.kind == kindDock }

// Z returns the z of a flow layering, and zero otherwise.
func (l Layering) Z() int {
	if l.kind == kindFlow {
		return l.z
	}
	return 0
}

// Compare orders layerings from bottom to top. It returns a negative number
// when l paints below other, zero when they tie, and a positive number when
// l paints above.
func (l Layering) Compare(other Layering) int {
	if l.kind != other.kind {
		return int(l.kind) - int(other.kind)
	}
	if l.kind != kindFlow {
		return 0
	}
	switch {
	case l.z < other.z:
		return -1
	case l.z > other.z:
		return 1
	}
	return 0
}

func (l Layering) String() string {
	switch l.kind {
	case kindSplit:
		return "split"
	case kindDock:
		return "dock"
	}
	return fmt.Sprintf("flow(%d)", l.z)
}

// Placement is the resolved position of one widget.
type Placement struct {
	Region geometry.Region
	// Margin is extra spacing around Region that the widget still owns.
	Margin   geometry.Spacing
	Widget   Widget
	Layering Layering
	// Absolute is true for placements outside normal flow.
	Absolute bool
}

// Bounds returns the smallest region containing every placement, or an empty
// region at the origin when there are none.
func Bounds(placements []Placement) geometry.Region {
	if len(placements) == 0 {
		return geometry.Region{}
	}
	bounds := placements[0].Region
	for _, p := range placements[1:] {
		bounds = bounds.Union(p.Region)
	}
	return bounds
}

// Translate returns copies of placements moved by offset. The input slice
// is not modified, so layouts may hand back slices they keep.
func Translate(placements []Placement, offset geometry.Offset) []Placement {
	moved := slices.Clone(placements)
	if offset.IsZero() {
		return moved
	}
	for i := range moved {
		moved[i].Region = moved[i].Region.Translate(offset)
	}
	return moved
}

// SortForPaint returns a copy of placements ordered bottom to top. Ties keep
// their relative order.
func SortForPaint(placements []Placement) []Placement {
	sorted := slices.Clone(placements)
	slices.SortStableFunc(sorted, func(a, b Placement) int {
		return a.Layering.Compare(b.Layering)
	})
	return sorted
}
