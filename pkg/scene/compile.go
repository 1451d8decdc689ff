package scene

import (
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/tinyland/lab/arrange/pkg/arrange"
	"gitlab.com/tinyland/lab/arrange/pkg/flow"
	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
	"gitlab.com/tinyland/lab/arrange/pkg/style"
)

// Element is a compiled node. It implements arrange.Container.
type Element struct {
	ID       string
	Children []*Element

	styles  style.Styles
	layout  arrange.FlowLayout
	content *Content
}

// Styles implements arrange.Widget.
func (e *Element) Styles() *style.Styles { return &e.styles }

// Layout implements arrange.Container.
func (e *Element) Layout() arrange.FlowLayout { return e.layout }

// widget returns the value handed to the arrangement engine. Elements with
// a content size are wrapped so auto dimensions measure that content.
func (e *Element) widget() arrange.Widget {
	if e.content != nil {
		return measuredElement{e}
	}
	return e
}

// Find returns the element with the given id in the subtree rooted at e.
func (e *Element) Find(id string) *Element {
	if e.ID == id {
		return e
	}
	for _, c := range e.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

type measuredElement struct {
	*Element
}

func (m measuredElement) ContentWidth(_, _ geometry.Size) int { return m.content.Width }

func (m measuredElement) ContentHeight(_, _ geometry.Size, _ int) int { return m.content.Height }

// elementOf recovers the element behind a widget returned by the engine.
func elementOf(w arrange.Widget) *Element {
	switch v := w.(type) {
	case *Element:
		return v
	case measuredElement:
		return v.Element
	}
	return nil
}

// Compile validates every node of the scene and builds the element tree.
// Stacks share cache, which may be nil.
func Compile(s Scene, cache *flow.Cache) (*Element, error) {
	seen := make(map[string]bool)
	return compileNode(&s.Root, cache, seen)
}

func compileNode(n *Node, cache *flow.Cache, seen map[string]bool) (*Element, error) {
	if n.ID == "" {
		return nil, fmt.Errorf("scene: node: %w", ErrMissingName)
	}
	if seen[n.ID] {
		return nil, fmt.Errorf("scene: node %q: %w", n.ID, ErrDuplicateID)
	}
	seen[n.ID] = true

	styles, err := n.Style.Styles()
	if err != nil {
		return nil, fmt.Errorf("scene: node %q: %w", n.ID, err)
	}
	layout, err := flow.ByName(n.Layout, cache)
	if err != nil {
		return nil, fmt.Errorf("scene: node %q: %w", n.ID, err)
	}

	e := &Element{ID: n.ID, styles: styles, layout: layout, content: n.Content}
	for i := range n.Children {
		child, err := compileNode(&n.Children[i], cache, seen)
		if err != nil {
			return nil, err
		}
		e.Children = append(e.Children, child)
	}
	return e, nil
}

// Styles parses the spec into engine styles.
func (s StyleSpec) Styles() (style.Styles, error) {
	var st style.Styles
	var err error

	if st.Visibility, err = style.ParseVisibility(s.Visibility); err != nil {
		return st, err
	}
	st.Layer = s.Layer
	if st.Dock, err = style.ParseEdge(s.Dock); err != nil {
		return st, err
	}
	if st.Split, err = style.ParseEdge(s.Split); err != nil {
		return st, err
	}
	if st.Dock.IsSet() && st.Split.IsSet() {
		return st, ErrConflictingPlacement
	}
	if st.AlignHorizontal, err = style.ParseAlignHorizontal(s.AlignHorizontal); err != nil {
		return st, err
	}
	if st.AlignVertical, err = style.ParseAlignVertical(s.AlignVertical); err != nil {
		return st, err
	}

	scalars := []struct {
		dst  *style.Scalar
		text string
	}{
		{&st.Width, s.Width},
		{&st.Height, s.Height},
		{&st.MinWidth, s.MinWidth},
		{&st.MinHeight, s.MinHeight},
		{&st.MaxWidth, s.MaxWidth},
		{&st.MaxHeight, s.MaxHeight},
	}
	for _, sc := range scalars {
		if *sc.dst, err = style.ParseScalar(sc.text); err != nil {
			return st, err
		}
	}

	if st.Margin, err = ParseSpacing(s.Margin); err != nil {
		return st, err
	}
	st.Gutter = max(s.Gutter, 0)
	st.GridColumns = max(s.Columns, 0)
	return st, nil
}

// ParseSpacing reads CSS shorthand: "1" for all sides, "1 2" for vertical
// and horizontal, "1 2 3 4" for top, right, bottom and left.
func ParseSpacing(text string) (geometry.Spacing, error) {
	fields := strings.Fields(text)
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return geometry.Spacing{}, fmt.Errorf("scene: margin %q: %w", text, ErrInvalidSpacing)
		}
		values[i] = v
	}

	switch len(values) {
	case 0:
		return geometry.Spacing{}, nil
	case 1:
		return geometry.SpacingAll(values[0]), nil
	case 2:
		return geometry.SpacingVH(values[0], values[1]), nil
	case 4:
		return geometry.Spacing{Top: values[0], Right: values[1], Bottom: values[2], Left: values[3]}, nil
	}
	return geometry.Spacing{}, fmt.Errorf("scene: margin %q: %w", text, ErrInvalidSpacing)
}
