package catalog

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/menta2k/bezel-catalog/internal/utils"
	"github.com/menta2k/bezel-catalog/pkg/discovery"
	"github.com/menta2k/bezel-catalog/pkg/viewport"
)

// Assembler combines a detected viewport, file attributes and path-derived
// facts into one Record per asset.
type Assembler struct {
	detector   *viewport.Detector
	shadowDirs map[string]bool
}

// NewAssembler creates an Assembler using the given detector. A nil or
// empty shadowDirNames falls back to DefaultShadowDirNames.
func NewAssembler(detector *viewport.Detector, shadowDirNames []string) *Assembler {
	if len(shadowDirNames) == 0 {
		shadowDirNames = DefaultShadowDirNames
	}
	dirs := make(map[string]bool, len(shadowDirNames))
	for _, name := range shadowDirNames {
		dirs[strings.ToLower(name)] = true
	}
	return &Assembler{detector: detector, shadowDirs: dirs}
}

// Describe produces the metadata record for one decoded asset. The caller
// owns img and may release it as soon as Describe returns. repoRoot anchors
// the record's relative path.
func (a *Assembler) Describe(asset discovery.Asset, img image.Image, repoRoot string) (Record, error) {
	info, err := os.Stat(asset.Path)
	if err != nil {
		return Record{}, fmt.Errorf("stat %s: %w", asset.Path, err)
	}

	bounds := img.Bounds()
	vp := a.detector.Detect(img)

	stem := strings.TrimSuffix(filepath.Base(asset.Path), filepath.Ext(asset.Path))

	return Record{
		Category:     asset.Category,
		Name:         asset.Device,
		HasShadow:    hasShadow(filepath.Dir(asset.Path), a.shadowDirs),
		Slug:         Slugify(asset.Device + "-" + stem),
		RelativePath: utils.RelativePath(asset.Path, repoRoot),
		ImageDimensions: Dimensions{
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		},
		ViewportDimensions: Dimensions{
			Width:  vp.Width,
			Height: vp.Height,
		},
		ViewportOrigin: Point{X: vp.X, Y: vp.Y},
		SizeBytes:      info.Size(),
	}, nil
}
