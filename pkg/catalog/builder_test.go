package catalog

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menta2k/bezel-catalog/pkg/decode"
	"github.com/menta2k/bezel-catalog/pkg/discovery"
	"github.com/menta2k/bezel-catalog/pkg/viewport"
)

// writeBezelPNG writes a 100x100 bezel with a solid frame from (10,10) to
// (90,90) and a transparent 20x20 hole at (40,40).
func writeBezelPNG(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))

	frame := image.Rect(10, 10, 90, 90)
	hole := image.Rect(40, 40, 60, 60)
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			p := image.Pt(x, y)
			a := uint8(0)
			if p.In(frame) && !p.In(hole) {
				a = 255
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 40, G: 40, B: 40, A: a})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func buildTestTree(t *testing.T) (devicesRoot, repoRoot string) {
	t.Helper()
	repoRoot = t.TempDir()
	devicesRoot = filepath.Join(repoRoot, "devices")

	writeBezelPNG(t, filepath.Join(devicesRoot, "Phones", "Pixel 8 Pro", "Device With Shadow", "bezel@2x.png"))
	writeBezelPNG(t, filepath.Join(devicesRoot, "Phones", "Pixel 8 Pro", "bezel.png"))
	writeBezelPNG(t, filepath.Join(devicesRoot, "Phones", "Pixel 8 Pro", "device-with-shadow", "bezel.png"))
	writeBezelPNG(t, filepath.Join(devicesRoot, "Tablets", "iPad Pro 13", "bezel.png"))
	return devicesRoot, repoRoot
}

func TestBuildCatalog(t *testing.T) {
	devicesRoot, repoRoot := buildTestTree(t)

	cat, err := NewBuilder().Build(context.Background(), devicesRoot, repoRoot)
	require.NoError(t, err)

	require.Equal(t, 4, cat.FilesCount)
	require.Len(t, cat.Files, 4)
	assert.NotEmpty(t, cat.GeneratedAt)

	// Published ordering: (category, name, relative_path) ascending.
	for i := 1; i < len(cat.Files); i++ {
		prev, cur := cat.Files[i-1], cat.Files[i]
		prevKey := []string{prev.Category, prev.Name, prev.RelativePath}
		curKey := []string{cur.Category, cur.Name, cur.RelativePath}
		assert.True(t, less(prevKey, curKey), "files[%d] %v not before files[%d] %v", i-1, prevKey, i, curKey)
	}

	first := cat.Files[0]
	assert.Equal(t, "Phones", first.Category)
	assert.Equal(t, "Pixel 8 Pro", first.Name)
	assert.Equal(t, "devices/Phones/Pixel 8 Pro/Device With Shadow/bezel@2x.png", first.RelativePath)
	assert.True(t, first.HasShadow)
	assert.Equal(t, "pixel-8-pro-bezel-2x", first.Slug)
	assert.Equal(t, Dimensions{Width: 100, Height: 100}, first.ImageDimensions)
	assert.Equal(t, Dimensions{Width: 20, Height: 20}, first.ViewportDimensions)
	assert.Equal(t, Point{X: 40, Y: 40}, first.ViewportOrigin)
	assert.Positive(t, first.SizeBytes)

	// The hyphenated directory name is not an exact segment match.
	for _, r := range cat.Files {
		if r.RelativePath == "devices/Phones/Pixel 8 Pro/device-with-shadow/bezel.png" {
			assert.False(t, r.HasShadow)
		}
	}
}

func less(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func TestBuildCatalogWorkerCountsAgree(t *testing.T) {
	devicesRoot, repoRoot := buildTestTree(t)

	serial := NewBuilderWithConfig(BuilderConfig{Detector: viewport.DefaultConfig(), Workers: 1})
	parallel := NewBuilderWithConfig(BuilderConfig{Detector: viewport.DefaultConfig(), Workers: 4})

	catSerial, err := serial.Build(context.Background(), devicesRoot, repoRoot)
	require.NoError(t, err)
	catParallel, err := parallel.Build(context.Background(), devicesRoot, repoRoot)
	require.NoError(t, err)

	assert.Equal(t, catSerial.Files, catParallel.Files)
}

func TestBuildCatalogRootNotFound(t *testing.T) {
	_, err := NewBuilder().Build(context.Background(), filepath.Join(t.TempDir(), "missing"), ".")
	require.Error(t, err)
	assert.ErrorIs(t, err, discovery.ErrRootNotFound)
}

func TestBuildCatalogAbortsOnDecodeFailure(t *testing.T) {
	// One corrupt asset fails the whole build; no partial catalog.
	devicesRoot, repoRoot := buildTestTree(t)
	corrupt := filepath.Join(devicesRoot, "Phones", "Pixel 8 Pro", "broken.png")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a png"), 0644))

	cat, err := NewBuilder().Build(context.Background(), devicesRoot, repoRoot)
	require.Error(t, err)
	assert.ErrorIs(t, err, decode.ErrDecode)
	assert.Nil(t, cat)
}

func TestBuildCatalogCanceledContext(t *testing.T) {
	devicesRoot, repoRoot := buildTestTree(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBuilder().Build(ctx, devicesRoot, repoRoot)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDescribeAssetFields(t *testing.T) {
	repoRoot := t.TempDir()
	path := filepath.Join(repoRoot, "devices", "Phones", "Pixel 8 Pro", "bezel.png")
	writeBezelPNG(t, path)

	img, err := decode.Open(path)
	require.NoError(t, err)

	assembler := NewAssembler(viewport.New(), nil)

	record, err := assembler.Describe(discovery.Asset{
		Category: "Phones",
		Device:   "Pixel 8 Pro",
		Path:     path,
	}, img, repoRoot)
	require.NoError(t, err)

	assert.Equal(t, "pixel-8-pro-bezel", record.Slug)
	assert.Equal(t, "devices/Phones/Pixel 8 Pro/bezel.png", record.RelativePath)
	assert.False(t, record.HasShadow)
	assert.Equal(t, Point{X: 40, Y: 40}, record.ViewportOrigin)
}
