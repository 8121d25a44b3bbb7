package atlas

import (
	"fmt"
	"image"
)

// Image is the CPU-side mirror of the atlas texture: a square
// single-channel (coverage) pixel buffer. All writes go through Blit at
// offsets handed out by the packer; nothing else mutates the buffer.
type Image struct {
	pix  []byte
	size int
}

// NewImage creates an empty (all-zero coverage) size x size canvas.
func NewImage(size int) (*Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCanvasSize, size)
	}
	return &Image{
		pix:  make([]byte, size*size),
		size: size,
	}, nil
}

// Size returns the canvas dimension in pixels.
func (m *Image) Size() int { return m.size }

// Pix returns the backing pixel buffer, row-major, one byte per pixel,
// size*size bytes. The caller must treat it as read-only; it is handed
// directly to the GPU queue for texture uploads.
func (m *Image) Pix() []byte { return m.pix }

// Blit copies a width*height coverage bitmap into the given region.
// src is row-major top-to-bottom, exactly region.Width*region.Height
// bytes. Degenerate regions are a no-op.
func (m *Image) Blit(region Region, src []byte) error {
	if region.Empty() {
		return nil
	}
	if region.X < 0 || region.Y < 0 ||
		region.MaxX() > m.size || region.MaxY() > m.size {
		return fmt.Errorf("%w: %v on %dx%d canvas",
			ErrRegionOutOfBounds, region, m.size, m.size)
	}
	if len(src) != region.Width*region.Height {
		return fmt.Errorf("%w: got %d bytes for %v",
			ErrSizeMismatch, len(src), region)
	}

	for row := 0; row < region.Height; row++ {
		dst := (region.Y+row)*m.size + region.X
		copy(m.pix[dst:dst+region.Width], src[row*region.Width:(row+1)*region.Width])
	}
	return nil
}

// At returns the coverage value at (x, y). Out-of-bounds reads return 0.
func (m *Image) At(x, y int) byte {
	if x < 0 || y < 0 || x >= m.size || y >= m.size {
		return 0
	}
	return m.pix[y*m.size+x]
}

// Snapshot returns the canvas as a standalone image.Alpha, useful for
// debugging atlas contents.
func (m *Image) Snapshot() *image.Alpha {
	out := image.NewAlpha(image.Rect(0, 0, m.size, m.size))
	copy(out.Pix, m.pix)
	return out
}
