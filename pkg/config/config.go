// Package config provides TOML-based configuration for arrange.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
	"gitlab.com/tinyland/lab/arrange/pkg/terminal"
	"gitlab.com/tinyland/lab/arrange/pkg/theme"
)

// ErrInvalid is wrapped by every Validate error.
var ErrInvalid = errors.New("invalid config")

// Formats lists the accepted output formats.
var Formats = []string{"canvas", "table", "json", "yaml"}

// Config is the complete configuration file.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Viewport ViewportConfig `toml:"viewport"`
	Output   OutputConfig   `toml:"output"`
	Scene    SceneConfig    `toml:"scene"`
	Preview  PreviewConfig  `toml:"preview"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"` // debug, info, warn, error
}

// ViewportConfig fixes the arrangement size. Zero values are detected from
// the terminal.
type ViewportConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// OutputConfig controls how arrangements are printed.
type OutputConfig struct {
	Format string `toml:"format"` // canvas, table, json, yaml
	Color  string `toml:"color"`  // auto, always, never
	// Theme names a registered colour theme. ThemeFile, when set, is a
	// TOML theme registered before the name is looked up.
	Theme     string `toml:"theme"`
	ThemeFile string `toml:"theme_file"`
}

// SceneConfig selects the scene to arrange.
type SceneConfig struct {
	// Name is a builtin scene name or a path to a TOML or YAML scene file.
	Name string `toml:"name"`
}

// PreviewConfig controls the interactive preview.
type PreviewConfig struct {
	// Reload is how often the scene is re-read from disk. Zero disables it.
	Reload Duration `toml:"reload"`
}

// Size returns the configured viewport, or false when it should be detected.
func (v ViewportConfig) Size() (geometry.Size, bool) {
	if v.Width <= 0 || v.Height <= 0 {
		return geometry.Size{}, false
	}
	return geometry.NewSize(v.Width, v.Height), true
}

// Level returns the parsed log level, defaulting to info.
func (g GeneralConfig) Level() log.Level {
	lvl, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// ResolveTheme loads the configured theme file, if any, and returns the configured
// theme.
func (o OutputConfig) ResolveTheme() (theme.Theme, error) {
	if o.ThemeFile != "" {
		t, err := theme.LoadFile(o.ThemeFile)
		if err != nil {
			return theme.Theme{}, fmt.Errorf("config: output.theme_file: %w", err)
		}
		if o.Theme == "" || o.Theme == theme.DefaultName {
			return t, nil
		}
	}
	t, err := theme.Lookup(o.Theme)
	if err != nil {
		return theme.Theme{}, fmt.Errorf("config: output.theme: %w: %w", ErrInvalid, err)
	}
	return t, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.General.LogLevel != "" {
		if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
			return fmt.Errorf("config: general.log_level %q: %w", c.General.LogLevel, ErrInvalid)
		}
	}
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return fmt.Errorf("config: viewport %dx%d: %w", c.Viewport.Width, c.Viewport.Height, ErrInvalid)
	}
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("config: output.format %q: %w", c.Output.Format, ErrInvalid)
	}
	if _, err := terminal.ParseColorMode(c.Output.Color); err != nil {
		return fmt.Errorf("config: output.color: %w: %w", ErrInvalid, err)
	}
	if c.Scene.Name == "" {
		return fmt.Errorf("config: scene.name is empty: %w", ErrInvalid)
	}
	return nil
}
