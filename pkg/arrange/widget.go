// Package arrange computes the placement of a container's visible children
// for one layout pass.
//
// Children are grouped into layers in first-seen order. Within each layer:
//  1. Split widgets cut strips off the region, one after another.
//  2. Dock widgets are placed against the edges of what is left; widgets on
//     the same edge overlap, so each edge reserves only its thickest widget.
//  3. The remaining flow widgets are handed to the container's FlowLayout and
//     the result is aligned inside the space not reserved by docks.
//
// Box model values stay exact rationals until a placement region is built.
// Arrange has no state of its own and is safe to call concurrently for
// independent containers.
package arrange

import (
	"math/big"

	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
	"gitlab.com/tinyland/lab/arrange/pkg/style"
)

// Widget is anything that can be arranged. Implementations are used as map
// keys in Result.Visible and must be comparable; pointer types are typical.
type Widget interface {
	Styles() *style.Styles
}

// Container is a widget that lays out its flow children.
type Container interface {
	Widget
	// Layout returns the strategy for flow children. A nil layout leaves
	// flow children unplaced.
	Layout() FlowLayout
}

// FlowLayout arranges in-flow widgets within size. Returned placements are
// relative to (0, 0); Arrange translates them.
type FlowLayout interface {
	Arrange(container Widget, children []Widget, size, viewport geometry.Size) []Placement
}

// FlowLayoutFunc adapts a function to the FlowLayout interface.
type FlowLayoutFunc func(container Widget, children []Widget, size, viewport geometry.Size) []Placement

// Arrange calls f.
func (f FlowLayoutFunc) Arrange(container Widget, children []Widget, size, viewport geometry.Size) []Placement {
	return f(container, children, size, viewport)
}

// BoxModeler is implemented by widgets that compute their own box model
// instead of deriving it from their styles.
type BoxModeler interface {
	BoxModel(container, viewport geometry.Size, basisWidth, basisHeight *big.Rat) style.BoxModel
}

// BoxModelOf returns the box model of w. Widgets implementing BoxModeler
// decide for themselves; others use their styles, measuring content when w
// implements style.ContentMeasurer.
func BoxModelOf(w Widget, container, viewport geometry.Size, basisWidth, basisHeight *big.Rat) style.BoxModel {
	if bm, ok := w.(BoxModeler); ok {
		return bm.BoxModel(container, viewport, basisWidth, basisHeight)
	}
	content, _ := w.(style.ContentMeasurer)
	return w.Styles().BoxModel(container, viewport, basisWidth, basisHeight, content)
}
