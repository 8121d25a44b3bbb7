package text

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/gogpu/textatlas"
	"github.com/gogpu/textatlas/atlas"
)

// Defaults for DynamicFont construction.
const (
	// DefaultSize is the default rasterization pixel size.
	DefaultSize = 24

	// DefaultAtlasSize is the default atlas canvas dimension in pixels.
	DefaultAtlasSize = 2096
)

// DynamicFont errors.
var (
	// ErrTextureBound is returned when binding a texture to a font that
	// already has one. The atlas texture is created once, at load time,
	// and never replaced or resized.
	ErrTextureBound = errors.New("text: atlas texture already bound")
)

// AtlasTexture receives whole-canvas pixel uploads. It is the boundary
// to the GPU collaborator: the gpu subpackage provides the wgpu-backed
// implementation, and tests substitute a recorder.
type AtlasTexture interface {
	// Write replaces the texture contents with pix, a size*size
	// single-channel buffer in atlas row order.
	Write(pix []byte) error
}

// DynamicFont renders strings into cached atlas-resident glyphs.
//
// It exclusively owns its packer, glyph cache, atlas image, dirty flag,
// and bound GPU texture; the rest of the engine interacts with that
// state only through GetGlyphs and Upload. Those four pieces form one
// atomic unit, guarded by a single mutex so a DynamicFont may be shared
// across goroutines, although the intended use is one instance driven by
// one render/update step per frame.
//
// The cache never evicts and the canvas never grows, so a long-running
// process rendering unboundedly many distinct glyph identities will
// eventually exhaust the atlas; GetGlyphs then fails with
// atlas.ErrAtlasFull rather than overwrite placed glyphs.
type DynamicFont struct {
	mu sync.Mutex

	source *FontSource
	shaper Shaper
	rast   Rasterizer

	// size is the rasterization pixel size, fixed after construction.
	// Glyph cache keys omit it for exactly that reason.
	size float64

	packer  *atlas.ShelfPacker
	image   *atlas.Image
	texture AtlasTexture

	cache map[GlyphID]Glyph
	dirty bool
}

// Option configures a DynamicFont.
type Option func(*fontConfig)

type fontConfig struct {
	size      float64
	atlasSize int
	padding   int
	shaper    Shaper
	rast      Rasterizer
	texture   AtlasTexture
}

// WithSize sets the rasterization pixel size. The size is fixed for the
// lifetime of the font.
func WithSize(size float64) Option {
	return func(c *fontConfig) {
		if size > 0 {
			c.size = size
		}
	}
}

// WithAtlasSize sets the atlas canvas dimension in pixels.
func WithAtlasSize(size int) Option {
	return func(c *fontConfig) {
		if size > 0 {
			c.atlasSize = size
		}
	}
}

// WithPadding sets the spacing between packed glyphs. Zero (the default)
// packs glyphs byte-adjacent; one pixel avoids bleeding under bilinear
// sampling at non-integer positions.
func WithPadding(padding int) Option {
	return func(c *fontConfig) {
		if padding >= 0 {
			c.padding = padding
		}
	}
}

// WithShaper substitutes the shaping implementation.
func WithShaper(s Shaper) Option {
	return func(c *fontConfig) { c.shaper = s }
}

// WithRasterizer substitutes the rasterization implementation.
func WithRasterizer(r Rasterizer) Option {
	return func(c *fontConfig) { c.rast = r }
}

// WithTexture binds the GPU atlas texture at construction time. The
// texture must cover the full atlas canvas.
func WithTexture(t AtlasTexture) Option {
	return func(c *fontConfig) { c.texture = t }
}

// NewDynamicFont parses font data and builds a ready DynamicFont with an
// empty atlas and an empty glyph cache. Malformed font data is a fatal
// load error; no DynamicFont is constructed.
func NewDynamicFont(data []byte, opts ...Option) (*DynamicFont, error) {
	start := time.Now()

	cfg := fontConfig{
		size:      DefaultSize,
		atlasSize: DefaultAtlasSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	source, err := NewFontSource(data)
	if err != nil {
		return nil, err
	}

	packer, err := atlas.NewShelfPacker(cfg.atlasSize, cfg.padding)
	if err != nil {
		return nil, err
	}
	img, err := atlas.NewImage(cfg.atlasSize)
	if err != nil {
		return nil, err
	}

	shaper := cfg.shaper
	if shaper == nil {
		shaper = NewGoTextShaper(source, cfg.size)
	}
	rast := cfg.rast
	if rast == nil {
		rast = NewSfntRasterizer(source)
	}

	f := &DynamicFont{
		source:  source,
		shaper:  shaper,
		rast:    rast,
		size:    cfg.size,
		packer:  packer,
		image:   img,
		texture: cfg.texture,
		cache:   make(map[GlyphID]Glyph),
	}

	textatlas.Logger().Info("font loaded",
		"name", source.Name(),
		"glyphs", source.NumGlyphs(),
		"size", cfg.size,
		"atlas", cfg.atlasSize,
		"elapsed", time.Since(start))

	return f, nil
}

// BindTexture attaches the GPU atlas texture. The binding happens once;
// a second call returns ErrTextureBound. Fonts constructed through
// gpu.LoadDynamicFont arrive already bound.
func (f *DynamicFont) BindTexture(t AtlasTexture) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.texture != nil {
		return ErrTextureBound
	}
	f.texture = t
	return nil
}

// GetGlyphs shapes text and returns its glyphs in visual order, placing
// any previously unseen glyph into the atlas.
//
// Cache hits return the stored record untouched: no packer, image, or
// dirty-flag mutation, which is what makes repeated text cheap. Repeated
// identical calls are idempotent and return identical Glyph values.
//
// A glyph that cannot be placed (atlas exhausted) fails the whole call;
// partially placed glyphs from earlier in the string remain cached and
// valid.
func (f *DynamicFont) GetGlyphs(text string) ([]Glyph, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := f.shaper.Shape(text)
	if len(ids) == 0 {
		return nil, nil
	}

	glyphs := make([]Glyph, 0, len(ids))
	for _, id := range ids {
		if g, ok := f.cache[id]; ok {
			glyphs = append(glyphs, g)
			continue
		}
		g, err := f.insertGlyph(id)
		if err != nil {
			return nil, err
		}
		glyphs = append(glyphs, g)
	}
	return glyphs, nil
}

// insertGlyph rasterizes, places, and caches one glyph.
// Caller holds f.mu.
func (f *DynamicFont) insertGlyph(id GlyphID) (Glyph, error) {
	bm, err := f.rast.Rasterize(id, f.size)
	if err != nil {
		return Glyph{}, fmt.Errorf("text: rasterize glyph %d: %w", id, err)
	}
	m := bm.Metrics

	region, err := f.packer.Allocate(m.Width, m.Height)
	if err != nil {
		return Glyph{}, fmt.Errorf("text: place glyph %d: %w", id, err)
	}

	if !region.Empty() {
		if err := f.image.Blit(region, bm.Pix); err != nil {
			return Glyph{}, fmt.Errorf("text: write glyph %d: %w", id, err)
		}
		f.dirty = true

		textatlas.Logger().Debug("glyph placed",
			"id", id, "region", region.String())
	}

	g := Glyph{
		ID:      id,
		Layout:  image.Rect(m.XMin, m.YMin, m.XMin+m.Width, m.YMin+m.Height),
		Bounds:  m.Bounds,
		Region:  region,
		Advance: m.Advance,
	}
	f.cache[id] = g
	return g, nil
}

// Upload synchronizes the atlas image to the bound GPU texture. It is a
// no-op while the atlas is clean, so calling it once per frame costs
// nothing on frames that introduced no new glyphs.
//
// Callers must invoke Upload after all GetGlyphs calls for the frame and
// before any draw call samples the atlas texture.
func (f *DynamicFont) Upload() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.dirty {
		return nil
	}

	if f.texture != nil {
		// TODO: upload only the bounding box of regions written since the
		// last upload instead of the whole canvas.
		if err := f.texture.Write(f.image.Pix()); err != nil {
			return fmt.Errorf("text: upload atlas: %w", err)
		}
	}
	f.dirty = false
	return nil
}

// Size returns the rasterization pixel size.
func (f *DynamicFont) Size() float64 { return f.size }

// AtlasSize returns the atlas canvas dimension in pixels.
func (f *DynamicFont) AtlasSize() int {
	return f.image.Size()
}

// Dirty reports whether the atlas image holds writes not yet uploaded.
func (f *DynamicFont) Dirty() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dirty
}

// GlyphCount returns the number of cached glyphs.
func (f *DynamicFont) GlyphCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cache)
}

// Source returns the font source backing this font.
func (f *DynamicFont) Source() *FontSource { return f.source }

// AtlasSnapshot returns a copy of the current atlas contents, useful for
// debugging glyph placement.
func (f *DynamicFont) AtlasSnapshot() *image.Alpha {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.image.Snapshot()
}
