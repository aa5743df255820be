package pixfmt

import "github.com/gogpu/gputypes"

// GPUFormat is implemented by formats whose in-memory byte layout matches a
// wgpu texture format, so buffers of them can be uploaded to textures
// directly (see RawBytes).
//
// ABGR8888 and RGB565 have no wgpu equivalent and do not implement it.
type GPUFormat interface {
	// TextureFormat reports the wgpu texture format with the same byte
	// layout.
	TextureFormat() gputypes.TextureFormat
}

// TextureFormat reports rgba8unorm: bytes R, G, B, A.
func (RGBA8888) TextureFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// TextureFormat reports bgra8unorm: bytes B, G, R, A.
func (BGRA8888) TextureFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

// TextureFormat reports rgba32float: four consecutive float32 channels.
func (FloatRGBA) TextureFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA32Float
}

// Interface checks.
var (
	_ GPUFormat = RGBA8888(0)
	_ GPUFormat = BGRA8888(0)
	_ GPUFormat = FloatRGBA{}
)
