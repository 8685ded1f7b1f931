package catalog

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleCatalog() *Catalog {
	return &Catalog{
		GeneratedAt: "2026-08-31T12:00:00Z",
		FilesCount:  1,
		Files: []Record{{
			Category:           "Phones",
			Name:               "Pixel 8 Pro",
			HasShadow:          true,
			Slug:               "pixel-8-pro-bezel",
			RelativePath:       "devices/Phones/Pixel 8 Pro/bezel.png",
			ImageDimensions:    Dimensions{Width: 100, Height: 100},
			ViewportDimensions: Dimensions{Width: 20, Height: 20},
			ViewportOrigin:     Point{X: 40, Y: 40},
			SizeBytes:          1234,
		}},
	}
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// The serialized field names are a compatibility contract for downstream
// consumers; both encodings must produce exactly the same key set.
func TestOutputFieldNames(t *testing.T) {
	wantTop := []string{"generated_at", "files_count", "files"}
	wantFile := []string{
		"category", "name", "has_shadow", "slug", "relative_path",
		"image_dimensions", "viewport_dimensions", "viewport_origin", "size_bytes",
	}

	var buf bytes.Buffer
	require.NoError(t, sampleCatalog().WriteJSON(&buf, true))
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))

	assert.ElementsMatch(t, wantTop, keysOf(fromJSON))
	jsonFile := fromJSON["files"].([]any)[0].(map[string]any)
	assert.ElementsMatch(t, wantFile, keysOf(jsonFile))
	assert.ElementsMatch(t, []string{"width", "height"}, keysOf(jsonFile["image_dimensions"].(map[string]any)))
	assert.ElementsMatch(t, []string{"x", "y"}, keysOf(jsonFile["viewport_origin"].(map[string]any)))

	buf.Reset()
	require.NoError(t, sampleCatalog().WriteYAML(&buf))
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))

	assert.ElementsMatch(t, wantTop, keysOf(fromYAML))
	yamlFile := fromYAML["files"].([]any)[0].(map[string]any)
	assert.ElementsMatch(t, wantFile, keysOf(yamlFile))
}
