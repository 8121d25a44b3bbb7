// Package gpu holds the wgpu-facing half of the glyph atlas: the
// R8Unorm atlas texture, the bind group layout and sampler text
// pipelines sample it with, and a loader that wires a text.DynamicFont
// to its GPU resources in one call.
//
// The package talks to the GPU exclusively through the hal abstraction,
// so it runs against any wgpu backend. Nothing here issues draw calls;
// render pipelines combine the texture view, layout, and sampler into
// their own per-frame bind groups.
package gpu
