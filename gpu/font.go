package gpu

import (
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/textatlas/text"
)

// Font bundles a DynamicFont with its GPU atlas resources. The embedded
// DynamicFont exposes GetGlyphs and Upload directly; Upload pushes the
// atlas through the bundled texture.
type Font struct {
	*text.DynamicFont

	texture *AtlasTexture
	binding *SpriteBinding
}

// LoadDynamicFont parses font data and creates the full GPU-backed
// stack: dynamic font, atlas texture sized to the font's canvas, and the
// sprite binding objects. The returned font is ready for GetGlyphs and
// Upload; no separate BindTexture step is needed.
//
// Options are forwarded to text.NewDynamicFont. Do not pass
// text.WithTexture here; the loader owns the texture binding.
func LoadDynamicFont(device hal.Device, queue Queue, data []byte, opts ...text.Option) (*Font, error) {
	font, err := text.NewDynamicFont(data, opts...)
	if err != nil {
		return nil, err
	}

	texture, err := NewAtlasTexture(device, queue, font.AtlasSize())
	if err != nil {
		return nil, err
	}
	if err := font.BindTexture(texture); err != nil {
		texture.Destroy()
		return nil, err
	}

	binding, err := NewSpriteBinding(device)
	if err != nil {
		texture.Destroy()
		return nil, err
	}

	return &Font{
		DynamicFont: font,
		texture:     texture,
		binding:     binding,
	}, nil
}

// Texture returns the GPU atlas texture.
func (f *Font) Texture() *AtlasTexture { return f.texture }

// Binding returns the shared layout and sampler for drawing this font.
func (f *Font) Binding() *SpriteBinding { return f.binding }

// Destroy releases all GPU resources. The CPU-side glyph cache stays
// intact, but Upload fails once the texture is gone.
func (f *Font) Destroy() {
	if f.binding != nil {
		f.binding.Destroy()
	}
	if f.texture != nil {
		f.texture.Destroy()
	}
}
