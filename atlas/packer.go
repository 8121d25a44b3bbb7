package atlas

import (
	"fmt"
	"image"
)

// Region is a rectangular placement in atlas pixel coordinates.
type Region struct {
	// X is the left edge of the region.
	X int
	// Y is the top edge of the region.
	Y int
	// Width is the region width in pixels.
	Width int
	// Height is the region height in pixels.
	Height int
}

// MaxX returns the exclusive right edge of the region.
func (r Region) MaxX() int { return r.X + r.Width }

// MaxY returns the exclusive bottom edge of the region.
func (r Region) MaxY() int { return r.Y + r.Height }

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Rect returns the region as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Overlaps reports whether two regions share any pixel.
func (r Region) Overlaps(other Region) bool {
	return r.X < other.MaxX() && other.X < r.MaxX() &&
		r.Y < other.MaxY() && other.Y < r.MaxY()
}

// String returns a string representation of the region.
func (r Region) String() string {
	return fmt.Sprintf("Region(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// ShelfPacker allocates rectangular regions on a fixed square canvas
// using shelf packing: rectangles are placed left-to-right in rows, and
// when a rectangle does not fit in the current row a new row is started
// below it. The row height is the tallest rectangle placed in that row
// so far.
//
// The write cursor only ever moves forward: cursor.Y is non-decreasing
// across allocations and no returned region is ever overlapped by a
// later one. Nothing is ever freed.
//
// ShelfPacker is not safe for concurrent use; the owning orchestrator
// serializes access.
type ShelfPacker struct {
	size    int // canvas is size x size pixels
	padding int // spacing between placed regions

	cursor    image.Point // next write position
	rowHeight int         // tallest region in the current row

	// Statistics.
	allocCount int
	usedArea   int
}

// NewShelfPacker creates a packer over a size x size pixel canvas.
// Padding is the spacing inserted after each placed region; zero is
// valid and keeps placements byte-adjacent.
func NewShelfPacker(size, padding int) (*ShelfPacker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCanvasSize, size)
	}
	if padding < 0 {
		padding = 0
	}
	return &ShelfPacker{size: size, padding: padding}, nil
}

// Allocate places a width x height rectangle and returns its region.
//
// Zero-size requests (whitespace glyphs rasterize to 0x0 bitmaps) return
// a degenerate region at the current cursor without mutating any packer
// state.
//
// Returns ErrAtlasFull when the rectangle cannot be placed within the
// canvas; the packer state is left untouched so smaller rectangles may
// still succeed.
func (p *ShelfPacker) Allocate(width, height int) (Region, error) {
	if width <= 0 || height <= 0 {
		return Region{X: p.cursor.X, Y: p.cursor.Y}, nil
	}
	if width > p.size {
		return Region{}, fmt.Errorf("%w: %dx%d exceeds canvas width %d",
			ErrAtlasFull, width, height, p.size)
	}

	x, y := p.cursor.X, p.cursor.Y
	rowHeight := p.rowHeight

	// Start a new row when the current one cannot fit the width.
	if x+width > p.size {
		x = 0
		y += rowHeight + p.padding
		rowHeight = 0
	}

	if y+height > p.size {
		return Region{}, fmt.Errorf("%w: %dx%d does not fit below row y=%d",
			ErrAtlasFull, width, height, y)
	}

	region := Region{X: x, Y: y, Width: width, Height: height}

	p.cursor = image.Point{X: x + width + p.padding, Y: y}
	p.rowHeight = max(rowHeight, height)
	p.allocCount++
	p.usedArea += width * height

	return region, nil
}

// Size returns the canvas dimension in pixels.
func (p *ShelfPacker) Size() int { return p.size }

// Cursor returns the current write position.
func (p *ShelfPacker) Cursor() image.Point { return p.cursor }

// AllocCount returns the number of non-degenerate allocations.
func (p *ShelfPacker) AllocCount() int { return p.allocCount }

// Utilization returns the fraction of canvas area covered by allocated
// regions, in [0, 1].
func (p *ShelfPacker) Utilization() float64 {
	total := p.size * p.size
	if total == 0 {
		return 0
	}
	return float64(p.usedArea) / float64(total)
}
