// Package atlas provides the CPU side of a glyph texture atlas: a
// shelf-packing region allocator over a fixed-size square canvas and a
// single-channel pixel buffer mirroring the packed texture contents.
//
// The packer only ever grows. Regions are never freed or reused, which
// keeps every previously returned Region valid for the lifetime of the
// atlas at the cost of a hard capacity bound (see ErrAtlasFull).
package atlas
