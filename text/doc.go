// Package text turns Unicode strings into cached, atlas-resident glyphs.
//
// DynamicFont is the orchestrator and the only mutable entry point: it
// shapes text into font-scoped glyph identities, rasterizes cache misses
// into coverage bitmaps, packs them into a shared atlas canvas, and
// synchronizes the canvas to a GPU texture once per frame via Upload.
//
// Shaping and rasterization are capability-typed: any implementation of
// the Shaper and Rasterizer interfaces can be substituted without
// touching packer, cache, or orchestrator logic. The defaults are a
// HarfBuzz-level shaper backed by go-text/typesetting and a scanline
// rasterizer backed by x/image's sfnt and vector packages.
package text
