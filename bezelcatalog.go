// Package bezelcatalog extracts structured metadata for trees of device
// bezel raster images.
//
// A bezel asset is a PNG (or WebP) of a device frame whose screen area is
// cut out as fully transparent pixels. The hard part is finding that screen
// "viewport" automatically, purely from pixel transparency, without any
// hand-authored coordinates.
//
// Basic usage:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//		"os"
//
//		bezelcatalog "github.com/menta2k/bezel-catalog"
//	)
//
//	func main() {
//		bc := bezelcatalog.New()
//
//		// Detect the screen viewport of a single bezel image
//		vp, err := bc.DetectViewportFile("bezels/devices/phones/Pixel 8/bezel.png")
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("viewport: %dx%d at (%d,%d)\n", vp.Width, vp.Height, vp.X, vp.Y)
//
//		// Build the full catalog for a devices tree
//		cat, err := bc.BuildCatalog(context.Background(), "bezels/devices", ".")
//		if err != nil {
//			log.Fatal(err)
//		}
//		if err := cat.WriteJSON(os.Stdout, true); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The package consists of three main components:
//
// 1. Viewport (pkg/viewport): alpha-mask classification and aperture detection
// 2. Catalog (pkg/catalog): per-asset metadata assembly and catalog building
// 3. Discovery (pkg/discovery): devices-tree traversal and asset filtering
//
// Detection classifies every alpha sample into near-transparent and
// near-solid masks, crops the transparent mask to the bezel silhouette,
// removes edge-touching transparent regions with a border flood fill, and
// remaps the surviving enclosed region back to original image coordinates.
// Images with no alpha channel, no solid silhouette or no enclosed aperture
// all degrade to the full image bounds; detection never fails.
package bezelcatalog

import (
	"context"
	"image"

	"github.com/menta2k/bezel-catalog/pkg/catalog"
	"github.com/menta2k/bezel-catalog/pkg/decode"
	"github.com/menta2k/bezel-catalog/pkg/viewport"
)

// Version of the bezel catalog library
const Version = "1.0.0"

// BezelCatalog provides a high-level interface for viewport detection and
// catalog generation
type BezelCatalog struct {
	detector *viewport.Detector
	builder  *catalog.Builder
}

// New creates a new BezelCatalog with default configuration
func New() *BezelCatalog {
	return NewWithConfig(catalog.DefaultBuilderConfig())
}

// NewWithConfig creates a new BezelCatalog with custom configuration
func NewWithConfig(config catalog.BuilderConfig) *BezelCatalog {
	return &BezelCatalog{
		detector: viewport.NewWithConfig(config.Detector),
		builder:  catalog.NewBuilderWithConfig(config),
	}
}

// DetectViewport returns the screen viewport of a decoded bezel image
func (bc *BezelCatalog) DetectViewport(img image.Image) viewport.Viewport {
	return bc.detector.Detect(img)
}

// DetectViewportFile loads the image at path and returns its viewport
func (bc *BezelCatalog) DetectViewportFile(path string) (viewport.Viewport, error) {
	img, err := decode.Open(path)
	if err != nil {
		return viewport.Viewport{}, err
	}
	return bc.detector.Detect(img), nil
}

// BuildCatalog discovers every asset under devicesRoot and returns the
// sorted metadata catalog, with record paths relative to repoRoot
func (bc *BezelCatalog) BuildCatalog(ctx context.Context, devicesRoot, repoRoot string) (*catalog.Catalog, error) {
	return bc.builder.Build(ctx, devicesRoot, repoRoot)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
