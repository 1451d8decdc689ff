package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
	"gitlab.com/tinyland/lab/arrange/pkg/scene"
)

// Record is the serialized form of one composed item.
type Record struct {
	ID       string `json:"id" yaml:"id"`
	Layering string `json:"layering" yaml:"layering"`
	Depth    int    `json:"depth" yaml:"depth"`
	X        int    `json:"x" yaml:"x"`
	Y        int    `json:"y" yaml:"y"`
	Width    int    `json:"width" yaml:"width"`
	Height   int    `json:"height" yaml:"height"`
}

// Document is a whole arrangement as written by EncodeJSON and EncodeYAML.
type Document struct {
	Scene      string   `json:"scene" yaml:"scene"`
	Width      int      `json:"width" yaml:"width"`
	Height     int      `json:"height" yaml:"height"`
	Placements []Record `json:"placements" yaml:"placements"`
}

// Records converts items to records, keeping their order.
func Records(items []scene.Item) []Record {
	out := make([]Record, len(items))
	for i, it := range items {
		out[i] = Record{
			ID:       it.Element.ID,
			Layering: it.Layering.String(),
			Depth:    it.Depth,
			X:        it.Region.X,
			Y:        it.Region.Y,
			Width:    it.Region.Width,
			Height:   it.Region.Height,
		}
	}
	return out
}

// NewDocument builds the document for a composed scene.
func NewDocument(name string, size geometry.Size, items []scene.Item) Document {
	return Document{Scene: name, Width: size.Width, Height: size.Height, Placements: Records(items)}
}

// EncodeJSON writes doc as indented JSON.
func EncodeJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("render: encode JSON: %w", err)
	}
	return nil
}

// EncodeYAML writes doc as YAML.
func EncodeYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("render: encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("render: encode YAML: %w", err)
	}
	return nil
}
