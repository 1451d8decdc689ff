package scene

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestTOMLRoundTrip(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			orig, _ := Lookup(name)
			data, err := SaveToTOML(orig)
			if err != nil {
				t.Fatalf("SaveToTOML: %v", err)
			}
			got, err := LoadFromTOML(data)
			if err != nil {
				t.Fatalf("LoadFromTOML: %v\n%s", err, data)
			}
			if !reflect.DeepEqual(got, orig) {
				t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, orig)
			}
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			orig, _ := Lookup(name)
			data, err := SaveToYAML(orig)
			if err != nil {
				t.Fatalf("SaveToYAML: %v", err)
			}
			got, err := LoadFromYAML(data)
			if err != nil {
				t.Fatalf("LoadFromYAML: %v\n%s", err, data)
			}
			if !reflect.DeepEqual(got, orig) {
				t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, orig)
			}
		})
	}
}

func TestLoadFromTOMLDocument(t *testing.T) {
	data := []byte(`
name = "custom"

[root]
id = "app"
layout = "horizontal"

[root.style]
gutter = 1

[[root.children]]
id = "menu"
[root.children.style]
dock = "top"
height = "1"

[[root.children]]
id = "list"
[root.children.style]
width = "1fr"

[[root.children]]
id = "detail"
[root.children.style]
width = "2fr"
`)
	s, err := LoadFromTOML(data)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "custom" || s.Root.Layout != "horizontal" || s.Root.Style.Gutter != 1 {
		t.Errorf("unexpected scene header: %+v", s)
	}
	if len(s.Root.Children) != 3 || s.Root.Children[0].Style.Dock != "top" {
		t.Errorf("unexpected children: %+v", s.Root.Children)
	}
}

func TestLoadFromYAMLDocument(t *testing.T) {
	data := []byte(`
name: custom
root:
  id: app
  children:
    - id: sidebar
      style:
        split: left
        width: "25%"
    - id: body
      content:
        width: 10
        height: 4
`)
	s, err := LoadFromYAML(data)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Root.Children[0].Style.Width; got != "25%" {
		t.Errorf("sidebar width = %q, want 25%%", got)
	}
	if c := s.Root.Children[1].Content; c == nil || c.Width != 10 || c.Height != 4 {
		t.Errorf("body content = %+v", c)
	}
}

func TestLoadMissingName(t *testing.T) {
	tests := map[string]func() error{
		"toml scene": func() error { _, err := LoadFromTOML([]byte("[root]\nid = \"a\"\n")); return err },
		"toml root":  func() error { _, err := LoadFromTOML([]byte("name = \"x\"\n")); return err },
		"yaml scene": func() error { _, err := LoadFromYAML([]byte("root:\n  id: a\n")); return err },
	}
	for name, run := range tests {
		t.Run(name, func(t *testing.T) {
			if err := run(); !errors.Is(err, ErrMissingName) {
				t.Errorf("err = %v, want ErrMissingName", err)
			}
		})
	}
}

func TestLoadInvalidSyntax(t *testing.T) {
	if _, err := LoadFromTOML([]byte("name = ")); err == nil || !strings.Contains(err.Error(), "scene: parse TOML") {
		t.Errorf("err = %v, want parse TOML error", err)
	}
	if _, err := LoadFromYAML([]byte("name: [")); err == nil || !strings.Contains(err.Error(), "scene: parse YAML") {
		t.Errorf("err = %v, want parse YAML error", err)
	}
}

func TestLoadRef(t *testing.T) {
	dir := t.TempDir()
	orig, _ := Lookup("split-panes")

	tomlData, err := SaveToTOML(orig)
	if err != nil {
		t.Fatal(err)
	}
	yamlData, err := SaveToYAML(orig)
	if err != nil {
		t.Fatal(err)
	}
	tomlPath := filepath.Join(dir, "panes.toml")
	yamlPath := filepath.Join(dir, "panes.yml")
	if err := os.WriteFile(tomlPath, tomlData, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(yamlPath, yamlData, 0o644); err != nil {
		t.Fatal(err)
	}

	for _, ref := range []string{"split-panes", tomlPath, yamlPath} {
		s, err := Load(ref)
		if err != nil {
			t.Errorf("Load(%q): %v", ref, err)
			continue
		}
		if s.Name != "split-panes" {
			t.Errorf("Load(%q).Name = %q", ref, s.Name)
		}
	}

	if _, err := Load("not-a-scene"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("err = %v, want ErrUnknownScene", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}
