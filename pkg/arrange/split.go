package arrange

import (
	"fmt"

	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
	"gitlab.com/tinyland/lab/arrange/pkg/style"
)

// arrangeSplit places split widgets in order. Each one cuts its strip off
// the region left by the widgets before it; the final remainder is returned
// with the placements.
func arrangeSplit(widgets []Widget, region geometry.Region, viewport geometry.Size) ([]Placement, geometry.Region) {
	placements := make([]Placement, 0, len(widgets))
	view := region

	for _, w := range widgets {
		size := view.Size()
		box := BoxModelOf(w, size, viewport, style.Rat(size.Width), style.Rat(size.Height))

		var strip geometry.Region
		switch edge := w.Styles().Split; edge {
		case style.EdgeTop:
			strip, view = view.SplitHorizontal(box.OuterHeight())
		case style.EdgeBottom:
			view, strip = view.SplitHorizontal(-box.OuterHeight())
		case style.EdgeLeft:
			strip, view = view.SplitVertical(box.OuterWidth())
		case style.EdgeRight:
			view, strip = view.SplitVertical(-box.OuterWidth())
		default:
			panic(fmt.Sprintf("arrange: invalid split edge %v", edge))
		}

		placements = append(placements, Placement{
			Region:   strip,
			Widget:   w,
			Layering: SplitLayering,
			Absolute: true,
		})
	}
	return placements, view
}
