package atlas

import "errors"

// Atlas errors.
var (
	// ErrAtlasFull is returned when the canvas cannot fit the requested
	// region. The atlas never evicts, so this is a permanent condition
	// for regions of that size or larger.
	ErrAtlasFull = errors.New("atlas: canvas is full")

	// ErrRegionOutOfBounds is returned when a blit target lies outside
	// the canvas.
	ErrRegionOutOfBounds = errors.New("atlas: region is outside canvas bounds")

	// ErrSizeMismatch is returned when source pixel data does not match
	// the region it is blitted into.
	ErrSizeMismatch = errors.New("atlas: pixel data does not match region size")

	// ErrInvalidCanvasSize is returned when constructing an atlas with a
	// non-positive canvas size.
	ErrInvalidCanvasSize = errors.New("atlas: invalid canvas size")
)
