package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/arrange/pkg/terminal"
	"gitlab.com/tinyland/lab/arrange/pkg/theme"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/arrange/config.toml
//  2. ~/.config/arrange/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return cfg, applyEnvOverrides(cfg)
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader. Unset keys keep
// their defaults and env overrides are applied last.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: parse TOML: %w", err)
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{LogLevel: "info"},
		Output: OutputConfig{
			Format: "canvas",
			Color:  string(terminal.ColorAuto),
			Theme:  theme.DefaultName,
		},
		Scene:   SceneConfig{Name: "holy-grail"},
		Preview: PreviewConfig{Reload: Duration{2 * time.Second}},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("ARRANGE_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
	if v := os.Getenv("ARRANGE_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("ARRANGE_THEME"); v != "" {
		cfg.Output.Theme = v
	}
	if v := os.Getenv("ARRANGE_SCENE"); v != "" {
		cfg.Scene.Name = v
	}
	if v := os.Getenv("ARRANGE_VIEWPORT"); v != "" {
		size, err := terminal.ParseViewport(v)
		if err != nil {
			return fmt.Errorf("config: ARRANGE_VIEWPORT: %w", err)
		}
		cfg.Viewport = ViewportConfig{Width: size.Width, Height: size.Height}
	}
	return nil
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "arrange", "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "arrange", "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
