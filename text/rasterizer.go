package text

// Metrics describes the placement of one rasterized glyph relative to
// the baseline origin, in raster convention (y grows downward).
type Metrics struct {
	// XMin, YMin locate the top-left corner of the coverage bitmap
	// relative to the baseline origin. YMin is typically negative for
	// glyphs extending above the baseline.
	XMin, YMin int

	// Width, Height are the coverage bitmap dimensions in pixels.
	// Both are zero for glyphs with no coverage (whitespace).
	Width, Height int

	// Bounds is the sub-pixel outline bounding box, before snapping to
	// the integer bitmap grid.
	Bounds Rect

	// Advance is the horizontal advance width in pixels.
	Advance float64
}

// GlyphBitmap is a rasterized glyph: placement metrics plus a
// single-channel coverage buffer of Metrics.Width*Metrics.Height bytes,
// row-major, top-to-bottom. Pix is nil for zero-coverage glyphs.
type GlyphBitmap struct {
	Metrics Metrics
	Pix     []byte
}

// Rasterizer converts a glyph identity and pixel size into a coverage
// bitmap and layout metrics. Implementations must be deterministic: the
// same (id, size) pair always yields the same output. DynamicFont's
// cache relies on this, keying only by id because its pixel size is
// fixed after construction.
type Rasterizer interface {
	Rasterize(id GlyphID, size float64) (GlyphBitmap, error)
}
