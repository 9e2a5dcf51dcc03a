package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kk-code-lab/mdtree/internal/markdown"
	"gopkg.in/yaml.v3"
)

// JSON writes doc as indented JSON.
func JSON(w io.Writer, doc *markdown.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewTree(doc)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// YAML writes doc as YAML.
func YAML(w io.Writer, doc *markdown.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewTree(doc)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}

// ReadJSON decodes a tree written by JSON back into a document.
func ReadJSON(r io.Reader) (*markdown.Document, error) {
	var tree Tree
	if err := json.NewDecoder(r).Decode(&tree); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return tree.Document()
}

// ReadYAML decodes a tree written by YAML back into a document.
func ReadYAML(r io.Reader) (*markdown.Document, error) {
	var tree Tree
	if err := yaml.NewDecoder(r).Decode(&tree); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return tree.Document()
}
