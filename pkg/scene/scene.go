// Package scene defines declarative widget trees that can be arranged
// without a running UI. Scenes are loaded from TOML or YAML, compiled into
// arrangeable elements and composed recursively into absolute regions.
package scene

import (
	"errors"
	"sort"
)

var (
	// ErrUnknownScene is returned by Lookup for an unregistered name.
	ErrUnknownScene = errors.New("unknown scene")
	// ErrMissingName is returned when a scene or node has no name or id.
	ErrMissingName = errors.New("missing name")
	// ErrDuplicateID is returned when two nodes in a scene share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrConflictingPlacement is returned for a node that is both docked and split.
	ErrConflictingPlacement = errors.New("dock and split are mutually exclusive")
	// ErrInvalidSpacing is returned for a margin that is not 1, 2 or 4
	// non-negative integers.
	ErrInvalidSpacing = errors.New("invalid spacing")
)

// Scene is a named widget tree.
type Scene struct {
	Name        string `toml:"name" yaml:"name"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
	Root        Node   `toml:"root" yaml:"root"`
}

// Node is one widget in a scene. A node with children is a container whose
// flow children are placed by Layout.
type Node struct {
	ID       string    `toml:"id" yaml:"id"`
	Layout   string    `toml:"layout,omitempty" yaml:"layout,omitempty"` // vertical, horizontal, grid
	Style    StyleSpec `toml:"style,omitempty" yaml:"style,omitempty"`
	Content  *Content  `toml:"content,omitempty" yaml:"content,omitempty"`
	Children []Node    `toml:"children,omitempty" yaml:"children,omitempty"`
}

// StyleSpec is the textual form of style.Styles. Empty fields take their
// defaults: visible, default layer, no dock or split, left/top alignment,
// auto dimensions and no margin.
type StyleSpec struct {
	Visibility      string `toml:"visibility,omitempty" yaml:"visibility,omitempty"`
	Layer           string `toml:"layer,omitempty" yaml:"layer,omitempty"`
	Dock            string `toml:"dock,omitempty" yaml:"dock,omitempty"`
	Split           string `toml:"split,omitempty" yaml:"split,omitempty"`
	AlignHorizontal string `toml:"align_horizontal,omitempty" yaml:"align_horizontal,omitempty"`
	AlignVertical   string `toml:"align_vertical,omitempty" yaml:"align_vertical,omitempty"`
	Width           string `toml:"width,omitempty" yaml:"width,omitempty"`
	Height          string `toml:"height,omitempty" yaml:"height,omitempty"`
	MinWidth        string `toml:"min_width,omitempty" yaml:"min_width,omitempty"`
	MinHeight       string `toml:"min_height,omitempty" yaml:"min_height,omitempty"`
	MaxWidth        string `toml:"max_width,omitempty" yaml:"max_width,omitempty"`
	MaxHeight       string `toml:"max_height,omitempty" yaml:"max_height,omitempty"`
	Margin          string `toml:"margin,omitempty" yaml:"margin,omitempty"` // "1", "1 2" or "1 2 3 4"
	Gutter          int    `toml:"gutter,omitempty" yaml:"gutter,omitempty"`
	Columns         int    `toml:"columns,omitempty" yaml:"columns,omitempty"`
}

// Content is the intrinsic size of a leaf, used for auto dimensions.
type Content struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
}

// builtins maps scene names to their definitions.
var builtins map[string]func() Scene

func init() {
	builtins = map[string]func() Scene{
		"holy-grail":  holyGrailScene,
		"split-panes": splitPanesScene,
		"layers":      layersScene,
		"centered":    centeredScene,
		"dashboard":   dashboardScene,
	}
}

// Lookup returns a fresh copy of the named builtin scene.
func Lookup(name string) (Scene, bool) {
	mk, ok := builtins[name]
	if !ok {
		return Scene{}, false
	}
	return mk(), true
}

// Names returns all builtin scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for k := range builtins {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Walk calls fn for n and every descendant, depth first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for i := range n.Children {
		n.Children[i].Walk(fn)
	}
}
