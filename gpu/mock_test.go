package gpu

import (
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// mockDevice is a test double for hal.Device. Texture-related calls are
// tracked and overridable; everything else is a no-op.
type mockDevice struct {
	createTextureFunc         func(*hal.TextureDescriptor) (hal.Texture, error)
	createTextureViewFunc     func(hal.Texture, *hal.TextureViewDescriptor) (hal.TextureView, error)
	createSamplerFunc         func(*hal.SamplerDescriptor) (hal.Sampler, error)
	createBindGroupLayoutFunc func(*hal.BindGroupLayoutDescriptor) (hal.BindGroupLayout, error)

	texturesCreated   int
	texturesDestroyed int
	viewsCreated      int
	viewsDestroyed    int

	lastTextureDesc *hal.TextureDescriptor
	lastViewDesc    *hal.TextureViewDescriptor
	lastSamplerDesc *hal.SamplerDescriptor
	lastLayoutDesc  *hal.BindGroupLayoutDescriptor
}

//nolint:nilnil // Mock: intentionally returns nil for unused interface methods.
func (d *mockDevice) CreateBuffer(_ *hal.BufferDescriptor) (hal.Buffer, error) {
	return nil, nil
}

func (d *mockDevice) DestroyBuffer(_ hal.Buffer) {}

func (d *mockDevice) MapBuffer(_ hal.Buffer, _, _ uint64) (hal.BufferMapping, error) {
	return hal.BufferMapping{}, nil
}
func (d *mockDevice) UnmapBuffer(_ hal.Buffer) error { return nil }

func (d *mockDevice) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	d.texturesCreated++
	d.lastTextureDesc = desc
	if d.createTextureFunc != nil {
		return d.createTextureFunc(desc)
	}
	return &mockTexture{
		width:  desc.Size.Width,
		height: desc.Size.Height,
		format: desc.Format,
	}, nil
}

func (d *mockDevice) DestroyTexture(_ hal.Texture) {
	d.texturesDestroyed++
}

func (d *mockDevice) CreateTextureView(texture hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error) {
	d.viewsCreated++
	d.lastViewDesc = desc
	if d.createTextureViewFunc != nil {
		return d.createTextureViewFunc(texture, desc)
	}
	return &mockTextureView{texture: texture, label: desc.Label}, nil
}

func (d *mockDevice) DestroyTextureView(_ hal.TextureView) {
	d.viewsDestroyed++
}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockDevice) CreateSampler(desc *hal.SamplerDescriptor) (hal.Sampler, error) {
	d.lastSamplerDesc = desc
	if d.createSamplerFunc != nil {
		return d.createSamplerFunc(desc)
	}
	return nil, nil
}
func (d *mockDevice) DestroySampler(_ hal.Sampler) {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockDevice) CreateBindGroupLayout(desc *hal.BindGroupLayoutDescriptor) (hal.BindGroupLayout, error) {
	d.lastLayoutDesc = desc
	if d.createBindGroupLayoutFunc != nil {
		return d.createBindGroupLayoutFunc(desc)
	}
	return nil, nil
}
func (d *mockDevice) DestroyBindGroupLayout(_ hal.BindGroupLayout) {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockDevice) CreateBindGroup(_ *hal.BindGroupDescriptor) (hal.BindGroup, error) {
	return nil, nil
}
func (d *mockDevice) DestroyBindGroup(_ hal.BindGroup) {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockDevice) CreatePipelineLayout(_ *hal.PipelineLayoutDescriptor) (hal.PipelineLayout, error) {
	return nil, nil
}
func (d *mockDevice) DestroyPipelineLayout(_ hal.PipelineLayout) {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockDevice) CreateShaderModule(_ *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	return nil, nil
}
func (d *mockDevice) DestroyShaderModule(_ hal.ShaderModule) {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockDevice) CreateRenderPipeline(_ *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error) {
	return nil, nil
}
func (d *mockDevice) DestroyRenderPipeline(_ hal.RenderPipeline) {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockDevice) CreateComputePipeline(_ *hal.ComputePipelineDescriptor) (hal.ComputePipeline, error) {
	return nil, nil
}
func (d *mockDevice) DestroyComputePipeline(_ hal.ComputePipeline) {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockDevice) CreateQuerySet(_ *hal.QuerySetDescriptor) (hal.QuerySet, error) {
	return nil, nil
}
func (d *mockDevice) DestroyQuerySet(_ hal.QuerySet) {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockDevice) CreateRenderBundleEncoder(_ *hal.RenderBundleEncoderDescriptor) (hal.RenderBundleEncoder, error) {
	return nil, nil
}
func (d *mockDevice) DestroyRenderBundle(_ hal.RenderBundle) {}
func (d *mockDevice) FreeCommandBuffer(_ hal.CommandBuffer)  {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockDevice) CreateCommandEncoder(_ *hal.CommandEncoderDescriptor) (hal.CommandEncoder, error) {
	return nil, nil
}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockDevice) CreateFence() (hal.Fence, error) { return nil, nil }
func (d *mockDevice) DestroyFence(_ hal.Fence)        {}
func (d *mockDevice) Wait(_ hal.Fence, _ uint64, _ time.Duration) (bool, error) {
	return true, nil
}
func (d *mockDevice) ResetFence(_ hal.Fence) error             { return nil }
func (d *mockDevice) GetFenceStatus(_ hal.Fence) (bool, error) { return true, nil }
func (d *mockDevice) WaitIdle() error                          { return nil }
func (d *mockDevice) Destroy()                                 {}

// mockTexture is a test double for hal.Texture.
type mockTexture struct {
	width  uint32
	height uint32
	format gputypes.TextureFormat
}

func (t *mockTexture) Destroy()                            {}
func (t *mockTexture) NativeHandle() uintptr               { return 0 }
func (t *mockTexture) CurrentUsage() gputypes.TextureUsage { return 0 }
func (t *mockTexture) AddPendingRef()                      {}
func (t *mockTexture) DecPendingRef()                      {}

// mockTextureView is a test double for hal.TextureView.
type mockTextureView struct {
	texture hal.Texture
	label   string
}

func (v *mockTextureView) Destroy()              {}
func (v *mockTextureView) NativeHandle() uintptr { return 0 }

// textureWrite records one WriteTexture call.
type textureWrite struct {
	dst    *hal.ImageCopyTexture
	data   []byte
	layout *hal.ImageDataLayout
	size   *hal.Extent3D
}

// recordingQueue captures WriteTexture calls for verification.
type recordingQueue struct {
	writes []textureWrite
}

func (q *recordingQueue) WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) {
	buf := make([]byte, len(data))
	copy(buf, data)
	q.writes = append(q.writes, textureWrite{dst: dst, data: buf, layout: layout, size: size})
}
