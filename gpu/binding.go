package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Sprite bind group bindings, matching the text fragment shader:
//
//	@group(_) @binding(0) var atlas_tex: texture_2d<f32>;
//	@group(_) @binding(1) var atlas_samp: sampler;
const (
	SpriteBindingTexture = 0
	SpriteBindingSampler = 1
)

// SpriteBinding holds the shared GPU objects every textured-quad draw of
// the atlas needs: the bind group layout describing the texture+sampler
// pair and a bilinear clamp-to-edge sampler. Both live for the lifetime
// of the pipeline; render code combines them with an atlas texture view
// into its per-frame bind groups.
type SpriteBinding struct {
	device hal.Device

	layout  hal.BindGroupLayout
	sampler hal.Sampler
}

// NewSpriteBinding creates the layout and sampler on device.
func NewSpriteBinding(device hal.Device) (*SpriteBinding, error) {
	layout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   "glyph_atlas_layout",
		Entries: spriteLayoutEntries(),
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create atlas bind group layout: %w", err)
	}

	// Linear filtering keeps glyphs readable when quads land on
	// non-integer positions; clamp-to-edge stops border texels from
	// wrapping around the atlas.
	sampler, err := device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "glyph_atlas_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		device.DestroyBindGroupLayout(layout)
		return nil, fmt.Errorf("gpu: create atlas sampler: %w", err)
	}

	return &SpriteBinding{
		device:  device,
		layout:  layout,
		sampler: sampler,
	}, nil
}

func spriteLayoutEntries() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    SpriteBindingTexture,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		},
		{
			Binding:    SpriteBindingSampler,
			Visibility: gputypes.ShaderStageFragment,
			Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
		},
	}
}

// Layout returns the bind group layout for pipeline layout construction.
func (b *SpriteBinding) Layout() hal.BindGroupLayout { return b.layout }

// Sampler returns the shared atlas sampler.
func (b *SpriteBinding) Sampler() hal.Sampler { return b.sampler }

// Destroy releases the layout and sampler. Safe to call more than once.
func (b *SpriteBinding) Destroy() {
	if b.sampler != nil {
		b.device.DestroySampler(b.sampler)
		b.sampler = nil
	}
	if b.layout != nil {
		b.device.DestroyBindGroupLayout(b.layout)
		b.layout = nil
	}
}
