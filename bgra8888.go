package pixfmt

// BGRA8888 is a packed 32-bit pixel with 8-bit channels in the byte order
// used by common GPU swapchain surfaces: blue occupies the least
// significant byte, then green, red and alpha. The word for channels
// (r, g, b, a) is b | g<<8 | r<<16 | a<<24. On a little-endian host the
// in-memory byte order is B, G, R, A.
//
// Channel indices are logical: 0=R, 1=G, 2=B, 3=A.
type BGRA8888 uint32

// Per-index bit shifts, reflecting the byte order documented above.
var bgra8888Shifts = [rgbaChannels]uint{16, 8, 0, 24}

// NewBGRA8888 packs four 8-bit channels into a word. Arguments are in
// logical R, G, B, A order.
func NewBGRA8888(r, g, b, a uint8) BGRA8888 {
	return BGRA8888(b) | BGRA8888(g)<<8 | BGRA8888(r)<<16 | BGRA8888(a)<<24
}

// ChannelCount reports the number of channels.
func (BGRA8888) ChannelCount() int { return rgbaChannels }

// Channel returns the value of channel i.
func (p BGRA8888) Channel(i int) (uint8, error) {
	if i < 0 || i >= rgbaChannels {
		return 0, channelIndexErr(i, rgbaChannels)
	}

	return p.ChannelUnchecked(i), nil
}

// ChannelUnchecked returns the value of channel i without bounds checks.
// An invalid index panics.
func (p BGRA8888) ChannelUnchecked(i int) uint8 {
	return uint8(p >> bgra8888Shifts[i])
}

// SetChannel sets channel i to v. Channels are 8 bits wide, so any uint8
// value fits.
func (p *BGRA8888) SetChannel(i int, v uint8) error {
	if i < 0 || i >= rgbaChannels {
		return channelIndexErr(i, rgbaChannels)
	}

	p.SetChannelUnchecked(i, v)

	return nil
}

// SetChannelUnchecked sets channel i to v without bounds checks. Bits of
// other channels are not disturbed.
func (p *BGRA8888) SetChannelUnchecked(i int, v uint8) {
	shift := bgra8888Shifts[i]
	*p = *p&^(0xFF<<shift) | BGRA8888(v)<<shift
}

// R returns the red channel.
func (p BGRA8888) R() uint8 { return uint8(p >> 16) }

// G returns the green channel.
func (p BGRA8888) G() uint8 { return uint8(p >> 8) }

// B returns the blue channel.
func (p BGRA8888) B() uint8 { return uint8(p) }

// A returns the alpha channel.
func (p BGRA8888) A() uint8 { return uint8(p >> 24) }

// SetR sets the red channel.
func (p *BGRA8888) SetR(v uint8) { p.SetChannelUnchecked(0, v) }

// SetG sets the green channel.
func (p *BGRA8888) SetG(v uint8) { p.SetChannelUnchecked(1, v) }

// SetB sets the blue channel.
func (p *BGRA8888) SetB(v uint8) { p.SetChannelUnchecked(2, v) }

// SetA sets the alpha channel.
func (p *BGRA8888) SetA(v uint8) { p.SetChannelUnchecked(3, v) }
