package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/textatlas"
)

// Texture errors.
var (
	// ErrInvalidTextureSize is returned for a non-positive atlas dimension.
	ErrInvalidTextureSize = errors.New("gpu: texture size must be positive")

	// ErrUploadSizeMismatch is returned when the uploaded buffer does not
	// cover the texture exactly.
	ErrUploadSizeMismatch = errors.New("gpu: upload size does not match texture")

	// ErrTextureDestroyed is returned when writing to a destroyed texture.
	ErrTextureDestroyed = errors.New("gpu: texture destroyed")
)

// Queue is the subset of hal.Queue the atlas needs for uploads.
type Queue interface {
	WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D)
}

// AtlasTexture owns the GPU-side copy of a glyph atlas: a square
// single-channel R8Unorm texture plus its 2D view. Glyph coverage maps
// directly onto the red channel; shaders read it as the alpha of the
// rendered text.
//
// AtlasTexture implements text.AtlasTexture, so it plugs straight into
// DynamicFont.BindTexture.
type AtlasTexture struct {
	device hal.Device
	queue  Queue

	texture hal.Texture
	view    hal.TextureView
	size    int
}

// NewAtlasTexture creates the atlas texture and its view on device.
// size is the canvas dimension in pixels; the texture is always square.
func NewAtlasTexture(device hal.Device, queue Queue, size int) (*AtlasTexture, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTextureSize, size)
	}

	tex, err := device.CreateTexture(atlasTextureDescriptor(size))
	if err != nil {
		return nil, fmt.Errorf("gpu: create atlas texture: %w", err)
	}

	view, err := device.CreateTextureView(tex, atlasViewDescriptor())
	if err != nil {
		device.DestroyTexture(tex)
		return nil, fmt.Errorf("gpu: create atlas texture view: %w", err)
	}

	textatlas.Logger().Info("atlas texture created",
		"size", size, "format", "r8unorm")

	return &AtlasTexture{
		device:  device,
		queue:   queue,
		texture: tex,
		view:    view,
		size:    size,
	}, nil
}

// atlasTextureDescriptor describes the atlas texture: one 8-bit channel,
// sampled by fragment shaders, written by queue uploads.
func atlasTextureDescriptor(size int) *hal.TextureDescriptor {
	s := uint32(size) //nolint:gosec // size is validated positive and small
	return &hal.TextureDescriptor{
		Label:         "glyph_atlas",
		Size:          hal.Extent3D{Width: s, Height: s, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatR8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}

func atlasViewDescriptor() *hal.TextureViewDescriptor {
	return &hal.TextureViewDescriptor{
		Label:         "glyph_atlas_view",
		Format:        gputypes.TextureFormatR8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	}
}

// Write replaces the whole texture with pix, a size*size byte buffer in
// atlas row order. Tightly packed rows: one byte per pixel, no padding.
func (t *AtlasTexture) Write(pix []byte) error {
	if t.texture == nil {
		return ErrTextureDestroyed
	}
	if len(pix) != t.size*t.size {
		return fmt.Errorf("%w: got %d bytes, want %d",
			ErrUploadSizeMismatch, len(pix), t.size*t.size)
	}

	s := uint32(t.size) //nolint:gosec // validated at construction
	t.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  t.texture,
			MipLevel: 0,
		},
		pix,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  s,
			RowsPerImage: s,
		},
		&hal.Extent3D{Width: s, Height: s, DepthOrArrayLayers: 1},
	)

	textatlas.Logger().Debug("atlas uploaded", "bytes", len(pix))
	return nil
}

// Size returns the texture dimension in pixels.
func (t *AtlasTexture) Size() int { return t.size }

// View returns the texture view for bind group construction.
func (t *AtlasTexture) View() hal.TextureView { return t.view }

// Texture returns the underlying hal texture.
func (t *AtlasTexture) Texture() hal.Texture { return t.texture }

// Destroy releases the texture and its view. Safe to call more than once.
func (t *AtlasTexture) Destroy() {
	if t.view != nil {
		t.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.texture != nil {
		t.device.DestroyTexture(t.texture)
		t.texture = nil
	}
}
