package mask

import (
	"image"

	"github.com/disintegration/imaging"
)

// Marked is the value of a set mask pixel. Every other value is clear.
const Marked = 255

// Mask is a binary bitmap over a linear pixel buffer. The mask owns its
// buffer exclusively; operations that mutate it (ClearBorderRegions) must
// not be shared across goroutines.
type Mask struct {
	Pix    []uint8
	Width  int
	Height int
}

// New creates an empty (all clear) mask.
func New(width, height int) *Mask {
	return &Mask{
		Pix:    make([]uint8, width*height),
		Width:  width,
		Height: height,
	}
}

// Transparent builds a mask marking every alpha sample at or below max.
func Transparent(alpha []uint8, width, height int, max uint8) *Mask {
	m := New(width, height)
	for i, a := range alpha {
		if a <= max {
			m.Pix[i] = Marked
		}
	}
	return m
}

// Solid builds a mask marking every alpha sample at or above min.
func Solid(alpha []uint8, width, height int, min uint8) *Mask {
	m := New(width, height)
	for i, a := range alpha {
		if a >= min {
			m.Pix[i] = Marked
		}
	}
	return m
}

// At reports whether the pixel at (x, y) is marked.
func (m *Mask) At(x, y int) bool {
	return m.Pix[y*m.Width+x] == Marked
}

// Set marks the pixel at (x, y).
func (m *Mask) Set(x, y int) {
	m.Pix[y*m.Width+x] = Marked
}

// BBox returns the tight bounding box of all marked pixels. The second
// return value is false when no pixel is marked.
func (m *Mask) BBox() (image.Rectangle, bool) {
	minX, minY := m.Width, m.Height
	maxX, maxY := -1, -1
	for y := 0; y < m.Height; y++ {
		row := m.Pix[y*m.Width : (y+1)*m.Width]
		for x, v := range row {
			if v != Marked {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// Crop returns a new mask holding the pixels inside r. The rectangle is
// clamped to the mask bounds.
func (m *Mask) Crop(r image.Rectangle) *Mask {
	r = r.Intersect(image.Rect(0, 0, m.Width, m.Height))
	out := New(r.Dx(), r.Dy())
	for y := 0; y < out.Height; y++ {
		src := (r.Min.Y+y)*m.Width + r.Min.X
		copy(out.Pix[y*out.Width:(y+1)*out.Width], m.Pix[src:src+out.Width])
	}
	return out
}

// ResizeNearest resamples the mask to width x height with nearest-neighbor
// interpolation and re-binarizes the result, so the resampled mask stays
// strictly binary.
func (m *Mask) ResizeNearest(width, height int) *Mask {
	gray := &image.Gray{
		Pix:    m.Pix,
		Stride: m.Width,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
	resized := imaging.Resize(gray, width, height, imaging.NearestNeighbor)

	out := New(width, height)
	b := resized.Bounds()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// NRGBA output of imaging; the gray value lands in R.
			if resized.Pix[resized.PixOffset(b.Min.X+x, b.Min.Y+y)] >= 128 {
				out.Pix[y*width+x] = Marked
			}
		}
	}
	return out
}

// ClearBorderRegions flood-clears every marked region that touches one of
// the four mask edges. The fill is 4-connected and exact-match: only pixels
// currently marked are cleared. Implemented with an explicit frontier stack
// over linear offsets.
func (m *Mask) ClearBorderRegions() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	var frontier []int
	seed := func(i int) {
		if m.Pix[i] == Marked {
			frontier = append(frontier, i)
		}
	}
	last := m.Height - 1
	for x := 0; x < m.Width; x++ {
		seed(x)
		seed(last*m.Width + x)
	}
	for y := 0; y < m.Height; y++ {
		seed(y * m.Width)
		seed(y*m.Width + m.Width - 1)
	}

	for len(frontier) > 0 {
		i := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if m.Pix[i] != Marked {
			continue
		}
		m.Pix[i] = 0

		x := i % m.Width
		if x > 0 && m.Pix[i-1] == Marked {
			frontier = append(frontier, i-1)
		}
		if x < m.Width-1 && m.Pix[i+1] == Marked {
			frontier = append(frontier, i+1)
		}
		if i >= m.Width && m.Pix[i-m.Width] == Marked {
			frontier = append(frontier, i-m.Width)
		}
		if i < len(m.Pix)-m.Width && m.Pix[i+m.Width] == Marked {
			frontier = append(frontier, i+m.Width)
		}
	}
}
