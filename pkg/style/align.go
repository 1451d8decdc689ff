package style

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
)

// AlignHorizontal positions content along the x axis of its container.
type AlignHorizontal int

const (
	// AlignLeft is the default.
	AlignLeft AlignHorizontal = iota
	AlignCenter
	AlignRight
)

// AlignVertical positions content along the y axis of its container.
type AlignVertical int

const (
	// AlignTop is the default.
	AlignTop AlignVertical = iota
	AlignMiddle
	AlignBottom
)

func (a AlignHorizontal) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

func (a AlignVertical) String() string {
	switch a {
	case AlignMiddle:
		return "middle"
	case AlignBottom:
		return "bottom"
	}
	return "top"
}

// ParseAlignHorizontal parses "left", "center" or "right".
func ParseAlignHorizontal(s string) (AlignHorizontal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("style: horizontal %q: %w", s, ErrInvalidAlign)
}

// ParseAlignVertical parses "top", "middle" or "bottom".
func ParseAlignVertical(s string) (AlignVertical, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "top":
		return AlignTop, nil
	case "middle":
		return AlignMiddle, nil
	case "bottom":
		return AlignBottom, nil
	}
	return AlignTop, fmt.Errorf("style: vertical %q: %w", s, ErrInvalidAlign)
}

// AlignSize returns the offset that positions content of the given size
// inside container according to the alignment pair. The result is never
// negative: content larger than its container stays at the origin.
func AlignSize(h AlignHorizontal, v AlignVertical, content, container geometry.Size) geometry.Offset {
	var off geometry.Offset
	switch h {
	case AlignCenter:
		off.X = (container.Width - content.Width) / 2
	case AlignRight:
		off.X = container.Width - content.Width
	}
	switch v {
	case AlignMiddle:
		off.Y = (container.Height - content.Height) / 2
	case AlignBottom:
		off.Y = container.Height - content.Height
	}
	return off.Clamped()
}
