package arrange

import (
	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
)

// Result is the arrangement of one container.
type Result struct {
	// Placements holds split, dock and flow placements for each layer in
	// turn, layers in first-seen order.
	Placements []Placement
	// Visible is the set of children that were not hidden, whether or not
	// they received a placement.
	Visible map[Widget]struct{}
	// ScrollSpacing is the space docks reserve around scrollable flow
	// content: the edge-wise maximum over layers that have flow widgets.
	ScrollSpacing geometry.Spacing
}

// IsVisible reports whether w is in the visible set.
func (r Result) IsVisible(w Widget) bool {
	_, ok := r.Visible[w]
	return ok
}

// Bounds returns the region covering every placement.
func (r Result) Bounds() geometry.Region {
	return Bounds(r.Placements)
}

// PaintOrder returns the placements ordered bottom to top, with list
// position breaking ties.
func (r Result) PaintOrder() []Placement {
	return SortForPaint(r.Placements)
}

// Arrange places the visible children of container within size.
// viewport is the outermost rendering surface, used for viewport-relative
// dimensions. It panics if a child has a dock or split edge outside the
// declared Edge values.
func Arrange(container Container, children []Widget, size, viewport geometry.Size) Result {
	layers := GroupByLayer(children)
	result := Result{Visible: make(map[Widget]struct{}, len(children))}

	var layout FlowLayout
	if container != nil {
		layout = container.Layout()
	}

	for _, layer := range layers {
		for _, w := range layer.Widgets {
			result.Visible[w] = struct{}{}
		}

		nonSplit, split := partition(layer.Widgets, isSplit)
		dockRegion := size.Region()
		if len(split) > 0 {
			var placements []Placement
			placements, dockRegion = arrangeSplit(split, dockRegion, viewport)
			result.Placements = append(result.Placements, placements...)
		}

		flow, docked := partition(nonSplit, isDocked)
		var dockSpacing geometry.Spacing
		if len(docked) > 0 {
			var placements []Placement
			placements, dockSpacing = arrangeDock(docked, dockRegion, viewport)
			result.Placements = append(result.Placements, placements...)
		}

		region := dockRegion.Shrink(dockSpacing)
		if len(flow) == 0 {
			continue
		}
		result.ScrollSpacing = result.ScrollSpacing.GrowMaximum(dockSpacing)
		if layout == nil {
			continue
		}

		placements := layout.Arrange(container, flow, region.Size(), viewport)
		offset := region.Offset()
		if styles := container.Styles(); !styles.HasDefaultAlign() {
			bounds := Bounds(placements)
			offset = offset.Add(styles.AlignSize(bounds.Size(), region.Size()).Clamped())
		}
		result.Placements = append(result.Placements, Translate(placements, offset)...)
	}

	return result
}
