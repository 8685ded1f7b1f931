package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteJSON serializes the catalog as JSON, optionally indented.
func (c *Catalog) WriteJSON(w io.Writer, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding catalog JSON: %w", err)
	}
	return nil
}

// WriteYAML serializes the catalog as YAML.
func (c *Catalog) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding catalog YAML: %w", err)
	}
	return enc.Close()
}
