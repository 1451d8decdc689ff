package flow

import (
	"gitlab.com/tinyland/lab/arrange/pkg/arrange"
	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
	"gitlab.com/tinyland/lab/arrange/pkg/style"
)

// Grid places children row by row into equal cells. The column count is the
// container's GridColumns, or Columns when the container does not set one.
// A child fills its cell unless its box model is smaller.
type Grid struct {
	Columns int
}

// Arrange implements arrange.FlowLayout.
func (g Grid) Arrange(container arrange.Widget, children []arrange.Widget, size, viewport geometry.Size) []arrange.Placement {
	if len(children) == 0 {
		return nil
	}

	columns, gutter := g.Columns, 0
	if container != nil {
		st := container.Styles()
		if st.GridColumns > 0 {
			columns = st.GridColumns
		}
		gutter = st.Gutter
	}
	columns = min(max(columns, 1), len(children))
	rows := (len(children) + columns - 1) / columns

	rowRegions := NewBuilder().
		Direction(Vertical).
		Repeat(rows, Fill{1}).
		Spacing(gutter).
		Split(size.Region())
	cols := NewBuilder().Repeat(columns, Fill{1}).Spacing(gutter).Build()

	placements := make([]arrange.Placement, 0, len(children))
	for r, row := range rowRegions {
		cells := cols.Split(row)
		for c, cell := range cells {
			i := r*columns + c
			if i >= len(children) {
				break
			}
			child := children[i]
			cellSize := cell.Size()
			box := arrange.BoxModelOf(child, cellSize, viewport, style.Rat(cellSize.Width), style.Rat(cellSize.Height))
			region := geometry.NewRegion(cell.X, cell.Y,
				min(box.OuterWidth(), cell.Width),
				min(box.OuterHeight(), cell.Height))
			placements = append(placements, arrange.Placement{
				Region:   region.Shrink(box.Margin),
				Margin:   box.Margin,
				Widget:   child,
				Layering: arrange.Flow(0),
			})
		}
	}
	return placements
}
