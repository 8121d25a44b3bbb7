package text

import (
	"image"

	"github.com/gogpu/textatlas/atlas"
)

// GlyphID is a glyph index scoped to one loaded font. It is not a
// Unicode codepoint: ligatures and cluster shaping mean one rendered
// glyph may correspond to zero, one, or many source codepoints, and one
// codepoint may produce several glyphs. IDs from different fonts are
// unrelated.
type GlyphID uint16

// Rect is a floating-point rectangle for sub-pixel glyph bounds.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool { return r.MinX >= r.MaxX || r.MinY >= r.MaxY }

// Glyph is the shaped and rasterized record for one glyph identity.
// It is immutable once inserted into a DynamicFont's cache: in
// particular Region never changes and is never reused for a different
// identity.
//
// Coordinates use raster convention (y grows downward) relative to the
// text baseline, so Layout.Min.Y is typically negative for glyphs that
// extend above the baseline. The mesh builder can position a quad from
// Layout and sample the atlas through Region without any axis flip.
type Glyph struct {
	// ID is the font-scoped glyph identity.
	ID GlyphID

	// Layout is the integer pixel bounding box relative to the baseline
	// origin, used to position the glyph quad.
	Layout image.Rectangle

	// Bounds is the sub-pixel outline bounding box from the rasterizer,
	// retained for precise quad sizing.
	Bounds Rect

	// Region is the glyph's location in the shared atlas canvas, in
	// atlas pixel coordinates. Degenerate (zero-size) for glyphs with no
	// coverage, such as spaces.
	Region atlas.Region

	// Advance is the horizontal advance width in pixels: how far the pen
	// moves after this glyph.
	Advance float64
}
