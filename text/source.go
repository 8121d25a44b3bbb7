package text

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// Font source errors.
var (
	// ErrEmptyFontData is returned when constructing a source from an
	// empty byte slice.
	ErrEmptyFontData = errors.New("text: font data is empty")
)

// FontSource holds one parsed font file (TrueType/OpenType container).
// The same font data is parsed twice: once with x/image/font/sfnt for
// glyph outline loading and once with go-text/typesetting for shaping.
// Both parsed forms are read-only after construction.
//
// A malformed font fails here, at load time; shaping and rasterization
// assume a valid source.
type FontSource struct {
	data []byte

	sfntFont *sfnt.Font
	gtFont   *gtfont.Font

	name string
}

// NewFontSource parses font data (TTF or OTF). The data slice is copied
// internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	sf, err := sfnt.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}

	gtFace, err := gtfont.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}

	s := &FontSource{
		data:     dataCopy,
		sfntFont: sf,
		gtFont:   gtFace.Font,
	}

	var buf sfnt.Buffer
	if name, err := sf.Name(&buf, sfnt.NameIDFull); err == nil {
		s.name = name
	}

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font's full name, or "" if the name table is absent.
func (s *FontSource) Name() string { return s.name }

// NumGlyphs returns the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int { return s.sfntFont.NumGlyphs() }

// SFNT returns the parsed sfnt font used for rasterization.
func (s *FontSource) SFNT() *sfnt.Font { return s.sfntFont }

// ShapingFont returns the parsed go-text font used for shaping.
// The returned *font.Font is read-only and safe for concurrent use.
func (s *FontSource) ShapingFont() *gtfont.Font { return s.gtFont }
