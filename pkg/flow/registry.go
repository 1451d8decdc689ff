package flow

import (
	"errors"
	"fmt"
	"sort"

	"gitlab.com/tinyland/lab/arrange/pkg/arrange"
)

// ErrUnknownLayout is returned by ByName for an unregistered name.
var ErrUnknownLayout = errors.New("unknown layout")

var builtins = map[string]func(*Cache) arrange.FlowLayout{
	"vertical":   func(c *Cache) arrange.FlowLayout { return Stack{Direction: Vertical, Cache: c} },
	"horizontal": func(c *Cache) arrange.FlowLayout { return Stack{Direction: Horizontal, Cache: c} },
	"grid":       func(*Cache) arrange.FlowLayout { return Grid{Columns: 2} },
}

// ByName returns the named flow layout. The empty name is "vertical".
// Stacks share cache, which may be nil.
func ByName(name string, cache *Cache) (arrange.FlowLayout, error) {
	if name == "" {
		name = "vertical"
	}
	mk, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("flow: %q: %w", name, ErrUnknownLayout)
	}
	return mk(cache), nil
}

// Names returns the registered layout names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for k := range builtins {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
