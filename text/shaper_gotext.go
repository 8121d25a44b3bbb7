package text

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GoTextShaper provides HarfBuzz-level text shaping using
// go-text/typesetting. It supports advanced OpenType features including
// ligature substitution (fi, ffi, ...), kerning pairs, contextual
// alternates, right-to-left text, and complex scripts.
//
// GoTextShaper is NOT safe for concurrent use: both the font.Face glyph
// caches and the HarfbuzzShaper buffer are mutable. DynamicFont
// serializes all shaping calls behind its own mutex.
type GoTextShaper struct {
	// face wraps the thread-safe *font.Font with per-shaper glyph caches.
	face *font.Face

	// hb holds the shaping buffer, reused across Shape calls.
	hb shaping.HarfbuzzShaper

	// size is the fixed pixel size all shaping happens at.
	size float64
}

// NewGoTextShaper creates a shaper for the given source at a fixed pixel
// size. The source must already be parsed; font errors surface at
// FontSource construction, not here.
func NewGoTextShaper(source *FontSource, size float64) *GoTextShaper {
	return &GoTextShaper{
		face: font.NewFace(source.ShapingFont()),
		size: size,
	}
}

// Shape implements the Shaper interface. It returns the glyph identity
// sequence for text in visual order.
func (s *GoTextShaper) Shape(text string) []GlyphID {
	if text == "" {
		return nil
	}

	runes := []rune(text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: detectDirection(text),
		Face:      s.face,
		Size:      floatToFixed(s.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	output := s.hb.Shape(input)
	if len(output.Glyphs) == 0 {
		return nil
	}

	ids := make([]GlyphID, len(output.Glyphs))
	for i, g := range output.Glyphs {
		ids[i] = GlyphID(uint16(g.GlyphID)) //nolint:gosec // glyph indices are uint16 in sfnt fonts
	}
	return ids
}
