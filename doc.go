// Package pixfmt provides type-safe, zero-cost representations of single
// pixels in multiple memory layouts.
//
// Packed 32-bit formats (RGBA8888, ABGR8888, BGRA8888), a packed 16-bit
// RGB565 format and a planar four-float FloatRGBA format all satisfy one
// storage contract (Raw plus RawPtr), so generic code can manipulate any of
// them without runtime format tags. Every format is a fixed-size value type
// with no padding and a stable byte layout, which makes bulk
// reinterpretation of raw buffers valid (see RawBytes and RawPixels).
//
// The library performs no I/O and no allocation; it defines single-pixel
// representations only. Bulk operations are left to callers composing over
// the contract.
package pixfmt
