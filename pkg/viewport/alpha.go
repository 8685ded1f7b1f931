package viewport

import "image"

// alphaPlane extracts the 8-bit alpha channel of img as a linear buffer,
// or returns nil when the image carries no alpha channel at all (its color
// model has no transparency to inspect).
func alphaPlane(img image.Image) []uint8 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.NRGBA:
		out := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			row := src.Pix[(y+b.Min.Y-src.Rect.Min.Y)*src.Stride:]
			for x := 0; x < w; x++ {
				out[y*w+x] = row[(x+b.Min.X-src.Rect.Min.X)*4+3]
			}
		}
		return out
	case *image.RGBA:
		out := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			row := src.Pix[(y+b.Min.Y-src.Rect.Min.Y)*src.Stride:]
			for x := 0; x < w; x++ {
				out[y*w+x] = row[(x+b.Min.X-src.Rect.Min.X)*4+3]
			}
		}
		return out
	case *image.Alpha:
		out := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out[y*w+x] = src.AlphaAt(x+b.Min.X, y+b.Min.Y).A
			}
		}
		return out
	case *image.NRGBA64:
		out := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out[y*w+x] = uint8(src.NRGBA64At(x+b.Min.X, y+b.Min.Y).A >> 8)
			}
		}
		return out
	case *image.RGBA64:
		out := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out[y*w+x] = uint8(src.RGBA64At(x+b.Min.X, y+b.Min.Y).A >> 8)
			}
		}
		return out
	case *image.Paletted:
		if !paletteHasAlpha(src) {
			return nil
		}
		out := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				_, _, _, a := src.At(x+b.Min.X, y+b.Min.Y).RGBA()
				out[y*w+x] = uint8(a >> 8)
			}
		}
		return out
	case *image.Gray, *image.Gray16, *image.YCbCr, *image.CMYK:
		// Opaque color models by construction.
		return nil
	}

	// Generic fallback for third-party image types.
	out := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x+b.Min.X, y+b.Min.Y).RGBA()
			out[y*w+x] = uint8(a >> 8)
		}
	}
	return out
}

func paletteHasAlpha(img *image.Paletted) bool {
	for _, c := range img.Palette {
		if _, _, _, a := c.RGBA(); a < 0xffff {
			return true
		}
	}
	return false
}
