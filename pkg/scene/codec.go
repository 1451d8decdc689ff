package scene

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFromTOML parses a scene from TOML data.
func LoadFromTOML(data []byte) (Scene, error) {
	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("scene: parse TOML: %w", err)
	}
	return s, validate(s)
}

// LoadFromYAML parses a scene from YAML data.
func LoadFromYAML(data []byte) (Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("scene: parse YAML: %w", err)
	}
	return s, validate(s)
}

// SaveToTOML serializes a scene to TOML.
func SaveToTOML(s Scene) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return nil, fmt.Errorf("scene: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveToYAML serializes a scene to YAML.
func SaveToYAML(s Scene) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("scene: encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("scene: encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// Load resolves ref as a builtin scene name, or else as a path to a .toml,
// .yaml or .yml file.
func Load(ref string) (Scene, error) {
	if s, ok := Lookup(ref); ok {
		return s, nil
	}

	ext := strings.ToLower(filepath.Ext(ref))
	if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
		return Scene{}, fmt.Errorf("scene: %q: %w", ref, ErrUnknownScene)
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: read: %w", err)
	}
	if ext == ".toml" {
		return LoadFromTOML(data)
	}
	return LoadFromYAML(data)
}

func validate(s Scene) error {
	if s.Name == "" {
		return fmt.Errorf("scene: missing required field 'name': %w", ErrMissingName)
	}
	if s.Root.ID == "" {
		return fmt.Errorf("scene: missing required field 'root.id': %w", ErrMissingName)
	}
	return nil
}
