package pixfmt

import "golang.org/x/image/math/f32"

// FloatRGBA is a planar pixel with four 32-bit float channels in R, G, B, A
// order, one array element per channel. There is no packing and no value
// range: any float32 is a valid channel value, so checked setters can only
// fail on a bad index.
//
// The in-memory layout is four consecutive host-endian float32 values
// (16 bytes, no padding).
type FloatRGBA f32.Vec4

// NewFloatRGBA builds a pixel from four float channels.
func NewFloatRGBA(r, g, b, a float32) FloatRGBA {
	return FloatRGBA{r, g, b, a}
}

// Vec4 returns the storage as an x/image vector, for interop with code
// built on golang.org/x/image/math/f32.
func (p FloatRGBA) Vec4() f32.Vec4 { return f32.Vec4(p) }

// ChannelCount reports the number of channels.
func (FloatRGBA) ChannelCount() int { return rgbaChannels }

// Channel returns the value of channel i.
func (p FloatRGBA) Channel(i int) (float32, error) {
	if i < 0 || i >= rgbaChannels {
		return 0, channelIndexErr(i, rgbaChannels)
	}

	return p[i], nil
}

// ChannelUnchecked returns the value of channel i without bounds checks.
// An invalid index panics.
func (p FloatRGBA) ChannelUnchecked(i int) float32 { return p[i] }

// SetChannel sets channel i to v.
func (p *FloatRGBA) SetChannel(i int, v float32) error {
	if i < 0 || i >= rgbaChannels {
		return channelIndexErr(i, rgbaChannels)
	}

	p[i] = v

	return nil
}

// SetChannelUnchecked sets channel i to v without bounds checks.
func (p *FloatRGBA) SetChannelUnchecked(i int, v float32) { p[i] = v }

// R returns the red channel.
func (p FloatRGBA) R() float32 { return p[0] }

// G returns the green channel.
func (p FloatRGBA) G() float32 { return p[1] }

// B returns the blue channel.
func (p FloatRGBA) B() float32 { return p[2] }

// A returns the alpha channel.
func (p FloatRGBA) A() float32 { return p[3] }

// SetR sets the red channel.
func (p *FloatRGBA) SetR(v float32) { p[0] = v }

// SetG sets the green channel.
func (p *FloatRGBA) SetG(v float32) { p[1] = v }

// SetB sets the blue channel.
func (p *FloatRGBA) SetB(v float32) { p[2] = v }

// SetA sets the alpha channel.
func (p *FloatRGBA) SetA(v float32) { p[3] = v }
