// Package theme provides the colour palettes used to draw arrangements.
// Themes are registered by name; custom themes load from TOML files.
package theme

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// DefaultName is the theme used when none is configured.
const DefaultName = "default"

var (
	// ErrUnknownTheme is returned when a theme name is not registered.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrInvalidColor is returned for a colour that is neither a hex triplet
	// nor an ANSI colour number.
	ErrInvalidColor = errors.New("invalid color")
)

// Theme colours regions by how they were placed.
type Theme struct {
	Name string `toml:"name"`
	// Depth colours flow regions, cycled by nesting depth.
	Depth    []string `toml:"depth"`
	Split    string   `toml:"split"`
	Dock     string   `toml:"dock"`
	Selected string   `toml:"selected"`
	Status   string   `toml:"status"`
}

// DepthColor returns the flow colour for a nesting depth.
func (t Theme) DepthColor(depth int) lipgloss.Color {
	if len(t.Depth) == 0 {
		return ""
	}
	return lipgloss.Color(t.Depth[depth%len(t.Depth)])
}

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{6}|[0-9]{1,3})$`)

// Validate checks the name and every colour.
func (t Theme) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("theme: name is required")
	}
	if len(t.Depth) == 0 {
		return fmt.Errorf("theme %q: depth needs at least one color", t.Name)
	}
	colors := append([]string{t.Split, t.Dock, t.Selected, t.Status}, t.Depth...)
	for _, c := range colors {
		if !colorPattern.MatchString(c) {
			return fmt.Errorf("theme %q: %q: %w", t.Name, c, ErrInvalidColor)
		}
	}
	return nil
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	for _, t := range builtins {
		registry[t.Name] = t
	}
}

// Register adds or replaces a theme after validating it.
func Register(t Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
	return nil
}

// Lookup returns the theme registered under name, ignoring case.
func Lookup(name string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()
	if name == "" {
		name = DefaultName
	}
	t, ok := registry[strings.ToLower(name)]
	if !ok {
		return Theme{}, fmt.Errorf("theme %q: %w", name, ErrUnknownTheme)
	}
	return t, nil
}

// Get returns the named theme, or the default theme when it is unknown.
func Get(name string) Theme {
	if t, err := Lookup(name); err == nil {
		return t
	}
	return Default()
}

// Default returns the default theme.
func Default() Theme {
	mu.RLock()
	defer mu.RUnlock()
	return registry[DefaultName]
}

// Names returns every registered theme name, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LoadFromTOML parses and validates a theme definition.
func LoadFromTOML(data []byte) (Theme, error) {
	var t Theme
	if _, err := toml.Decode(string(data), &t); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadFile reads a theme file and registers it.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return Theme{}, err
	}
	return t, Register(t)
}
