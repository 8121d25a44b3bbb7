package text

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Shaper converts a Unicode string into an ordered sequence of glyph
// identities, handling ligatures, clustering, and script-specific
// reordering. The returned sequence is in visual/render order, which for
// right-to-left scripts differs from source character order.
//
// Shape is a pure function of the text and the loaded font: it must not
// mutate any state observable by the caller. An empty string yields an
// empty sequence.
type Shaper interface {
	Shape(text string) []GlyphID
}

// detectDirection resolves the paragraph direction of text using the
// Unicode bidirectional algorithm. Mixed-direction text resolves to the
// direction of its first strong character; anything unresolvable
// (empty, neutral-only, bidi errors) falls back to left-to-right.
func detectDirection(text string) di.Direction {
	if text == "" {
		return di.DirectionLTR
	}
	p := bidi.Paragraph{}
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	// The ordering must be computed before any direction query.
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	if ordering.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; for mixed-script text,
// callers should split runs by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 pixel size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
