// Package viewport locates the screen aperture of a device bezel image.
//
// A bezel asset is an opaque device silhouette with a fully transparent
// cut-out where the screen content gets composited. The detector classifies
// the alpha channel into near-transparent and near-solid masks, crops to the
// device silhouette, strips transparent regions touching the silhouette edge
// with a border flood fill, and reports the bounding rectangle of the
// remaining enclosed region in original image coordinates.
package viewport

import (
	"image"
	"math"

	"github.com/menta2k/bezel-catalog/pkg/mask"
)

// Config holds the detection thresholds and limits.
type Config struct {
	// TransparentMax classifies alpha samples at or below it as
	// near-transparent, tolerating compression noise in the cut-out.
	TransparentMax uint8
	// SolidMin classifies alpha samples at or above it as near-solid bezel,
	// tolerating anti-aliased silhouette edges.
	SolidMin uint8
	// MaxMaskDim caps the larger dimension of the mask the flood fill runs
	// on. Larger masks are downscaled with nearest-neighbor resampling and
	// the result is remapped back to original coordinates.
	MaxMaskDim int
}

// DefaultConfig returns the detection defaults for 8-bit alpha.
func DefaultConfig() Config {
	return Config{
		TransparentMax: 10,
		SolidMin:       200,
		MaxMaskDim:     2000,
	}
}

// Detector finds the screen viewport of a bezel image.
type Detector struct {
	config Config
}

// New creates a Detector with default configuration.
func New() *Detector {
	return &Detector{config: DefaultConfig()}
}

// NewWithConfig creates a Detector with custom configuration.
func NewWithConfig(config Config) *Detector {
	return &Detector{config: config}
}

// Viewport is the detected screen rectangle in image coordinates.
type Viewport struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// fullBounds is the degenerate result when no enclosed aperture exists.
func fullBounds(img image.Image) Viewport {
	b := img.Bounds()
	return Viewport{X: 0, Y: 0, Width: b.Dx(), Height: b.Dy()}
}

// Detect returns the viewport of img. It is a total function: images with
// no alpha channel, no solid silhouette, or no enclosed transparent region
// all degrade to the full image bounds, never an error.
func (d *Detector) Detect(img image.Image) Viewport {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return fullBounds(img)
	}

	alpha := alphaPlane(img)
	if alpha == nil {
		return fullBounds(img)
	}

	transparent := mask.Transparent(alpha, width, height, d.config.TransparentMax)
	solid := mask.Solid(alpha, width, height, d.config.SolidMin)

	deviceBounds, ok := solid.BBox()
	if !ok {
		// No solid bezel at all; fall back to anything with visible alpha.
		deviceBounds, ok = mask.Solid(alpha, width, height, 1).BBox()
		if !ok {
			return fullBounds(img)
		}
	}

	cropped := transparent.Crop(deviceBounds)

	// Downscale oversized masks to bound the flood fill cost.
	scale := 1.0
	if maxDim := max(cropped.Width, cropped.Height); maxDim > d.config.MaxMaskDim {
		scale = float64(d.config.MaxMaskDim) / float64(maxDim)
		w := max(1, int(math.Ceil(float64(cropped.Width)*scale)))
		h := max(1, int(math.Ceil(float64(cropped.Height)*scale)))
		cropped = cropped.ResizeNearest(w, h)
	}

	cropped.ClearBorderRegions()

	aperture, ok := cropped.BBox()
	if !ok {
		return fullBounds(img)
	}

	// Remap to original coordinates. Rounding is half away from zero
	// (math.Round); the inverse-scale remap is the only lossy step besides
	// the mask resample itself.
	inverse := 1.0
	if scale != 1.0 {
		inverse = 1.0 / scale
	}
	left := deviceBounds.Min.X + int(math.Round(float64(aperture.Min.X)*inverse))
	top := deviceBounds.Min.Y + int(math.Round(float64(aperture.Min.Y)*inverse))
	right := deviceBounds.Min.X + int(math.Round(float64(aperture.Max.X)*inverse))
	bottom := deviceBounds.Min.Y + int(math.Round(float64(aperture.Max.Y)*inverse))

	// Ceil-sized resampling can push the remapped edges a pixel past the
	// device bounds; the viewport must stay inside the image.
	left = max(0, left)
	top = max(0, top)
	right = min(width, right)
	bottom = min(height, bottom)

	return Viewport{
		X:      left,
		Y:      top,
		Width:  right - left,
		Height: bottom - top,
	}
}
