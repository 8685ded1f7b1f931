// Package decode loads bezel raster images from disk.
package decode

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// ErrDecode marks images that cannot be decoded (unsupported format,
// truncated file, unreadable). Check with errors.Is.
var ErrDecode = errors.New("decode failed")

// Open loads the image at path. PNG and JPEG come through the registered
// stdlib decoders; WebP is handled by the registered decoder with an
// explicit fallback for files the registration rejects.
func Open(path string) (image.Image, error) {
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	defer f.Close()

	if img, err := webp.Decode(f); err == nil {
		return img, nil
	}
	if _, err := f.Seek(0, 0); err == nil {
		if img, _, err := image.Decode(f); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("%w: unknown image format for %s", ErrDecode, path)
}
