package arrange

import (
	"fmt"

	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
	"gitlab.com/tinyland/lab/arrange/pkg/style"
)

// arrangeDock places dock widgets against the edges of region. Widgets on
// the same edge overlap, so the returned spacing holds the thickest widget
// per edge rather than a sum. A bottom or right dock thicker than region
// starts before the region's origin; it is not clamped.
func arrangeDock(widgets []Widget, region geometry.Region, viewport geometry.Size) ([]Placement, geometry.Spacing) {
	placements := make([]Placement, 0, len(widgets))
	size := region.Size()
	basisWidth, basisHeight := style.Rat(size.Width), style.Rat(size.Height)

	var reserved geometry.Spacing
	for _, w := range widgets {
		styles := w.Styles()
		box := BoxModelOf(w, size, viewport, basisWidth, basisHeight)
		width, height := box.OuterWidth(), box.OuterHeight()

		// strip spans the whole region along the docked edge.
		var strip geometry.Region
		switch edge := styles.Dock; edge {
		case style.EdgeTop:
			strip = geometry.NewRegion(0, 0, size.Width, height)
			reserved.Top = max(reserved.Top, height)
		case style.EdgeBottom:
			strip = geometry.NewRegion(0, size.Height-height, size.Width, height)
			reserved.Bottom = max(reserved.Bottom, height)
		case style.EdgeLeft:
			strip = geometry.NewRegion(0, 0, width, size.Height)
			reserved.Left = max(reserved.Left, width)
		case style.EdgeRight:
			strip = geometry.NewRegion(size.Width-width, 0, width, size.Height)
			reserved.Right = max(reserved.Right, width)
		default:
			panic(fmt.Sprintf("arrange: invalid dock edge %v", edge))
		}

		outer := geometry.Size{Width: width, Height: height}
		offset := styles.AlignSize(outer, strip.Size())
		dockRegion := geometry.NewRegion(strip.X, strip.Y, width, height).
			Shrink(box.Margin).
			Translate(offset).
			Translate(region.Offset())

		placements = append(placements, Placement{
			Region:   dockRegion,
			Widget:   w,
			Layering: DockLayering,
			Absolute: true,
		})
	}
	return placements, reserved
}
