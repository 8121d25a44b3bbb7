package text

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// SfntRasterizer rasterizes glyphs by loading their outlines with
// x/image/font/sfnt and filling them with x/image/vector's scanline
// rasterizer. Output is an 8-bit coverage bitmap in the same y-down
// space the atlas and texture use.
//
// SfntRasterizer is NOT safe for concurrent use: the sfnt buffer is
// reused across calls. DynamicFont serializes all rasterization behind
// its own mutex.
type SfntRasterizer struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

// NewSfntRasterizer creates a rasterizer over the source's parsed font.
func NewSfntRasterizer(source *FontSource) *SfntRasterizer {
	return &SfntRasterizer{font: source.SFNT()}
}

// Rasterize implements the Rasterizer interface.
//
// Glyphs with no outline (whitespace) return zero-size metrics, a nil
// bitmap, and a valid advance. Unknown glyph indices return an error.
func (r *SfntRasterizer) Rasterize(id GlyphID, size float64) (GlyphBitmap, error) {
	ppem := floatToFixed(size)
	gid := sfnt.GlyphIndex(id)

	segments, err := r.font.LoadGlyph(&r.buf, gid, ppem, nil)
	if err != nil {
		return GlyphBitmap{}, fmt.Errorf("text: load glyph %d: %w", id, err)
	}

	advance := r.glyphAdvance(gid, ppem)

	if len(segments) == 0 {
		return GlyphBitmap{Metrics: Metrics{Advance: advance}}, nil
	}

	bounds := segmentBounds(segments)

	// Snap the sub-pixel outline box outward to the pixel grid.
	minX := int(math.Floor(bounds.MinX))
	minY := int(math.Floor(bounds.MinY))
	maxX := int(math.Ceil(bounds.MaxX))
	maxY := int(math.Ceil(bounds.MaxY))

	width := maxX - minX
	height := maxY - minY
	if width <= 0 || height <= 0 {
		return GlyphBitmap{Metrics: Metrics{Bounds: bounds, Advance: advance}}, nil
	}

	// Fill the outline, translated so the bitmap origin is (minX, minY).
	rast := vector.NewRasterizer(width, height)
	dx := float32(-minX)
	dy := float32(-minY)
	started := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			// Each MoveTo starts a new contour; the previous one must be
			// closed or the fill winding leaks.
			if started {
				rast.ClosePath()
			}
			started = true
			rast.MoveTo(
				fixedToFloat32(seg.Args[0].X)+dx, fixedToFloat32(seg.Args[0].Y)+dy)
		case sfnt.SegmentOpLineTo:
			rast.LineTo(
				fixedToFloat32(seg.Args[0].X)+dx, fixedToFloat32(seg.Args[0].Y)+dy)
		case sfnt.SegmentOpQuadTo:
			rast.QuadTo(
				fixedToFloat32(seg.Args[0].X)+dx, fixedToFloat32(seg.Args[0].Y)+dy,
				fixedToFloat32(seg.Args[1].X)+dx, fixedToFloat32(seg.Args[1].Y)+dy)
		case sfnt.SegmentOpCubeTo:
			rast.CubeTo(
				fixedToFloat32(seg.Args[0].X)+dx, fixedToFloat32(seg.Args[0].Y)+dy,
				fixedToFloat32(seg.Args[1].X)+dx, fixedToFloat32(seg.Args[1].Y)+dy,
				fixedToFloat32(seg.Args[2].X)+dx, fixedToFloat32(seg.Args[2].Y)+dy)
		}
	}
	if started {
		rast.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return GlyphBitmap{
		Metrics: Metrics{
			XMin:    minX,
			YMin:    minY,
			Width:   width,
			Height:  height,
			Bounds:  bounds,
			Advance: advance,
		},
		Pix: mask.Pix,
	}, nil
}

// glyphAdvance returns the advance width for a glyph in pixels.
func (r *SfntRasterizer) glyphAdvance(gid sfnt.GlyphIndex, ppem fixed.Int26_6) float64 {
	advance, err := r.font.GlyphAdvance(&r.buf, gid, ppem, 0)
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

// segmentBounds computes the sub-pixel bounding box of an outline.
// sfnt segments are already scaled to the requested ppem, with y growing
// downward and the baseline at y=0.
func segmentBounds(segments []sfnt.Segment) Rect {
	b := Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	grow := func(p fixed.Point26_6) {
		x := fixedToFloat(p.X)
		y := fixedToFloat(p.Y)
		b.MinX = math.Min(b.MinX, x)
		b.MinY = math.Min(b.MinY, y)
		b.MaxX = math.Max(b.MaxX, x)
		b.MaxY = math.Max(b.MaxY, y)
	}

	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo, sfnt.SegmentOpLineTo:
			grow(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			grow(seg.Args[0])
			grow(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			grow(seg.Args[0])
			grow(seg.Args[1])
			grow(seg.Args[2])
		}
	}
	return b
}

// fixedToFloat32 converts a fixed.Int26_6 value to float32.
func fixedToFloat32(v fixed.Int26_6) float32 {
	return float32(v) / 64.0
}
