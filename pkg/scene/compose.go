package scene

import (
	"io"

	"github.com/charmbracelet/log"

	"gitlab.com/tinyland/lab/arrange/pkg/arrange"
	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
)

// Item is one element placed in absolute screen space.
type Item struct {
	Element  *Element
	Region   geometry.Region
	Layering arrange.Layering
	// Depth is the nesting level; the root is 0.
	Depth int
}

// Composer arranges an element tree recursively.
type Composer struct {
	Viewport geometry.Size
	// Logger receives debug output for every container arranged. Nil
	// discards it.
	Logger *log.Logger
}

// Compose arranges root into size and then every container inside it,
// translating each child result into absolute coordinates. Items are
// returned in paint order: a container precedes its children, and siblings
// follow the engine's paint order.
func (c Composer) Compose(root *Element, size geometry.Size) []Item {
	if root == nil {
		return nil
	}
	logger := c.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	viewport := c.Viewport
	if viewport.IsZero() {
		viewport = size
	}

	items := []Item{{Element: root, Region: size.Region(), Layering: arrange.Flow(0)}}
	return c.compose(items, root, size.Region(), viewport, 1, logger)
}

func (c Composer) compose(items []Item, e *Element, region geometry.Region, viewport geometry.Size, depth int, logger *log.Logger) []Item {
	if len(e.Children) == 0 {
		return items
	}

	children := make([]arrange.Widget, len(e.Children))
	for i, child := range e.Children {
		children[i] = child.widget()
	}
	res := arrange.Arrange(e, children, region.Size(), viewport)
	logger.Debug("arranged container",
		"id", e.ID,
		"region", region,
		"placements", len(res.Placements),
		"scroll", res.ScrollSpacing,
	)

	for _, p := range res.PaintOrder() {
		child := elementOf(p.Widget)
		if child == nil {
			continue
		}
		abs := p.Region.Translate(region.Offset())
		items = append(items, Item{Element: child, Region: abs, Layering: p.Layering, Depth: depth})
		items = c.compose(items, child, abs, viewport, depth+1, logger)
	}
	return items
}

// HitTest returns the topmost item containing the cell (x, y).
func HitTest(items []Item, x, y int) (Item, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Region.Contains(x, y) {
			return items[i], true
		}
	}
	return Item{}, false
}
