package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
	"gitlab.com/tinyland/lab/arrange/pkg/terminal"
)

// clearEnv unsets every variable applyEnvOverrides reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{"ARRANGE_LOG_LEVEL", "ARRANGE_FORMAT", "ARRANGE_SCENE", "ARRANGE_THEME", "ARRANGE_VIEWPORT"} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Scene.Name != "holy-grail" {
		t.Errorf("default scene = %q, want holy-grail", cfg.Scene.Name)
	}
	if cfg.Preview.Reload.Duration != 2*time.Second {
		t.Errorf("default reload = %v, want 2s", cfg.Preview.Reload)
	}
	if _, ok := cfg.Viewport.Size(); ok {
		t.Error("default viewport should be detected, not fixed")
	}
}

func TestLoadFromReader(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromReader(strings.NewReader(`
[general]
log_level = "debug"

[viewport]
width = 120
height = 40

[output]
format = "table"

[preview]
reload = "500ms"
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.Level() != log.DebugLevel {
		t.Errorf("level = %v, want debug", cfg.General.Level())
	}
	if size, ok := cfg.Viewport.Size(); !ok || size != geometry.NewSize(120, 40) {
		t.Errorf("viewport = %v, %v", size, ok)
	}
	if cfg.Output.Format != "table" || cfg.Output.Color != "auto" {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Scene.Name != "holy-grail" {
		t.Errorf("unset scene should keep default, got %q", cfg.Scene.Name)
	}
	if cfg.Preview.Reload.Duration != 500*time.Millisecond {
		t.Errorf("reload = %v, want 500ms", cfg.Preview.Reload)
	}
}

func TestLoadFromReaderErrors(t *testing.T) {
	clearEnv(t)
	tests := map[string]string{
		"syntax":            "[general\n",
		"negative duration": "[preview]\nreload = \"-1s\"\n",
		"bad duration":      "[preview]\nreload = \"soon\"\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadFromReader(strings.NewReader(data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARRANGE_LOG_LEVEL", "warn")
	t.Setenv("ARRANGE_FORMAT", "json")
	t.Setenv("ARRANGE_SCENE", "layers")
	t.Setenv("ARRANGE_VIEWPORT", "100x30")

	cfg, err := LoadFromReader(strings.NewReader(`[output]
format = "table"
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.LogLevel != "warn" || cfg.Output.Format != "json" || cfg.Scene.Name != "layers" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if size, _ := cfg.Viewport.Size(); size != geometry.NewSize(100, 30) {
		t.Errorf("viewport = %v, want 100x30", size)
	}
}

func TestResolveTheme(t *testing.T) {
	tests := map[string]struct {
		out     OutputConfig
		want    string
		wantErr error
	}{
		"default": {out: OutputConfig{Theme: "default"}, want: "default"},
		"empty":   {out: OutputConfig{}, want: "default"},
		"named":   {out: OutputConfig{Theme: "Nord"}, want: "nord"},
		"unknown": {out: OutputConfig{Theme: "sepia"}, wantErr: ErrInvalid},
		"missing file": {
			out:     OutputConfig{Theme: "default", ThemeFile: filepath.Join(t.TempDir(), "none.toml")},
			wantErr: os.ErrNotExist,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tt.out.ResolveTheme()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.Name != tt.want {
				t.Errorf("theme = %q, want %q", got.Name, tt.want)
			}
		})
	}
}

func TestEnvOverrideTheme(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARRANGE_THEME", "mono")
	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Theme != "mono" {
		t.Errorf("theme = %q, want mono", cfg.Output.Theme)
	}
}

func TestEnvOverrideBadViewport(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARRANGE_VIEWPORT", "huge")
	_, err := LoadFromReader(strings.NewReader(""))
	if !errors.Is(err, terminal.ErrInvalidViewport) {
		t.Errorf("err = %v, want ErrInvalidViewport", err)
	}
}

func TestLoadFromFileMissingReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Format != "canvas" {
		t.Errorf("format = %q, want canvas", cfg.Output.Format)
	}
}

func TestLoadSearchesXDG(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "arrange"), 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("[scene]\nname = \"dashboard\"\n")
	if err := os.WriteFile(filepath.Join(dir, "arrange", "config.toml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scene.Name != "dashboard" {
		t.Errorf("scene = %q, want dashboard", cfg.Scene.Name)
	}
}

func TestConfigSearchPaths(t *testing.T) {
	home, _ := os.UserHomeDir()
	t.Setenv("XDG_CONFIG_HOME", "/custom")
	paths := configSearchPaths()
	want := []string{
		filepath.Join("/custom", "arrange", "config.toml"),
		filepath.Join(home, ".config", "arrange", "config.toml"),
	}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"log level": func(c *Config) { c.General.LogLevel = "loud" },
		"viewport":  func(c *Config) { c.Viewport.Width = -1 },
		"format":    func(c *Config) { c.Output.Format = "svg" },
		"color":     func(c *Config) { c.Output.Color = "sometimes" },
		"scene":     func(c *Config) { c.Scene.Name = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLevelFallsBackToInfo(t *testing.T) {
	if got := (GeneralConfig{LogLevel: "nonsense"}).Level(); got != log.InfoLevel {
		t.Errorf("level = %v, want info", got)
	}
}

func TestDurationMarshalText(t *testing.T) {
	d := Duration{90 * time.Second}
	b, err := d.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "1m30s" {
		t.Errorf("MarshalText = %q, want 1m30s", b)
	}
	var back Duration
	if err := back.UnmarshalText(b); err != nil || back != d {
		t.Errorf("UnmarshalText = %v, %v", back, err)
	}
}

func TestDurationOff(t *testing.T) {
	tests := map[string]time.Duration{
		"off": 0,
		"OFF": 0,
		"":    0,
		" 2s": 2 * time.Second,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			var d Duration
			if err := d.UnmarshalText([]byte(in)); err != nil {
				t.Fatal(err)
			}
			if d.Duration != want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", in, d.Duration, want)
			}
		})
	}

	if b, _ := (Duration{}).MarshalText(); string(b) != "off" {
		t.Errorf("zero MarshalText = %q, want off", b)
	}
	var d Duration
	if err := d.UnmarshalText([]byte("-1s")); !errors.Is(err, ErrInvalid) {
		t.Errorf("negative err = %v, want ErrInvalid", err)
	}
}
