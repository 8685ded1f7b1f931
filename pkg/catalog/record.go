// Package catalog assembles bezel asset metadata into one flattened
// catalog structure.
package catalog

// Dimensions is a width/height pair in pixels.
type Dimensions struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Point is an x/y pixel coordinate.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Record is the flattened metadata for a single bezel asset. The field
// names and nesting are a compatibility contract with downstream consumers
// of the serialized catalog.
type Record struct {
	Category           string     `json:"category" yaml:"category"`
	Name               string     `json:"name" yaml:"name"`
	HasShadow          bool       `json:"has_shadow" yaml:"has_shadow"`
	Slug               string     `json:"slug" yaml:"slug"`
	RelativePath       string     `json:"relative_path" yaml:"relative_path"`
	ImageDimensions    Dimensions `json:"image_dimensions" yaml:"image_dimensions"`
	ViewportDimensions Dimensions `json:"viewport_dimensions" yaml:"viewport_dimensions"`
	ViewportOrigin     Point      `json:"viewport_origin" yaml:"viewport_origin"`
	SizeBytes          int64      `json:"size_bytes" yaml:"size_bytes"`
}

// Catalog wraps all asset records. Files are sorted by
// (category, name, relative_path); that ordering is a published invariant.
type Catalog struct {
	GeneratedAt string   `json:"generated_at" yaml:"generated_at"`
	FilesCount  int      `json:"files_count" yaml:"files_count"`
	Files       []Record `json:"files" yaml:"files"`
}
