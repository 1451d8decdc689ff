// Package style defines the per-widget style values read by the arrangement
// engine and the box model computed from them.
//
// Values are parsed and validated here, upstream of arrangement: the engine
// itself treats an out-of-range enum as a programming error.
package style

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors. Callers can match them with errors.Is.
var (
	ErrInvalidEdge       = errors.New("invalid edge")
	ErrInvalidAlign      = errors.New("invalid alignment")
	ErrInvalidVisibility = errors.New("invalid visibility")
	ErrInvalidScalar     = errors.New("invalid scalar")
)

// Edge names one side of a container. It is the domain of both the dock and
// the split style.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeLeft
)

var edgeNames = [...]string{
	EdgeNone:   "none",
	EdgeTop:    "top",
	EdgeRight:  "right",
	EdgeBottom: "bottom",
	EdgeLeft:   "left",
}

// String returns the CSS keyword for the edge.
func (e Edge) String() string {
	if e.Valid() {
		return edgeNames[e]
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

// Valid reports whether e is one of the declared edges, including EdgeNone.
func (e Edge) Valid() bool {
	return e >= EdgeNone && int(e) < len(edgeNames)
}

// IsSet reports whether e anchors a widget to a side.
func (e Edge) IsSet() bool {
	return e != EdgeNone
}

// ParseEdge parses a CSS edge keyword. The empty string means EdgeNone.
func ParseEdge(s string) (Edge, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return EdgeNone, nil
	}
	for i, name := range edgeNames {
		if name == s {
			return Edge(i), nil
		}
	}
	return EdgeNone, fmt.Errorf("style: %q: %w", s, ErrInvalidEdge)
}

// Visibility controls whether a widget takes part in arrangement at all.
type Visibility int

const (
	Visible Visibility = iota
	Hidden
)

// String returns the CSS keyword for the visibility.
func (v Visibility) String() string {
	if v == Hidden {
		return "hidden"
	}
	return "visible"
}

// ParseVisibility parses "visible" or "hidden". The empty string means Visible.
func ParseVisibility(s string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "visible":
		return Visible, nil
	case "hidden":
		return Hidden, nil
	}
	return Visible, fmt.Errorf("style: %q: %w", s, ErrInvalidVisibility)
}
