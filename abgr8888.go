package pixfmt

// ABGR8888 is a packed 32-bit pixel with 8-bit channels in the byte order
// opposite to RGBA8888: alpha occupies the least significant byte and red
// the most significant. The word for channels (r, g, b, a) is
// a | b<<8 | g<<16 | r<<24. On a little-endian host the in-memory byte
// order is A, B, G, R.
//
// Channel indices are logical: 0=R, 1=G, 2=B, 3=A.
type ABGR8888 uint32

// Per-index bit shifts, reflecting the byte order documented above.
var abgr8888Shifts = [rgbaChannels]uint{24, 16, 8, 0}

// NewABGR8888 packs four 8-bit channels into a word. Arguments are in
// logical R, G, B, A order.
func NewABGR8888(r, g, b, a uint8) ABGR8888 {
	return ABGR8888(a) | ABGR8888(b)<<8 | ABGR8888(g)<<16 | ABGR8888(r)<<24
}

// ChannelCount reports the number of channels.
func (ABGR8888) ChannelCount() int { return rgbaChannels }

// Channel returns the value of channel i.
func (p ABGR8888) Channel(i int) (uint8, error) {
	if i < 0 || i >= rgbaChannels {
		return 0, channelIndexErr(i, rgbaChannels)
	}

	return p.ChannelUnchecked(i), nil
}

// ChannelUnchecked returns the value of channel i without bounds checks.
// An invalid index panics.
func (p ABGR8888) ChannelUnchecked(i int) uint8 {
	return uint8(p >> abgr8888Shifts[i])
}

// SetChannel sets channel i to v. Channels are 8 bits wide, so any uint8
// value fits.
func (p *ABGR8888) SetChannel(i int, v uint8) error {
	if i < 0 || i >= rgbaChannels {
		return channelIndexErr(i, rgbaChannels)
	}

	p.SetChannelUnchecked(i, v)

	return nil
}

// SetChannelUnchecked sets channel i to v without bounds checks. Bits of
// other channels are not disturbed.
func (p *ABGR8888) SetChannelUnchecked(i int, v uint8) {
	shift := abgr8888Shifts[i]
	*p = *p&^(0xFF<<shift) | ABGR8888(v)<<shift
}

// R returns the red channel.
func (p ABGR8888) R() uint8 { return uint8(p >> 24) }

// G returns the green channel.
func (p ABGR8888) G() uint8 { return uint8(p >> 16) }

// B returns the blue channel.
func (p ABGR8888) B() uint8 { return uint8(p >> 8) }

// A returns the alpha channel.
func (p ABGR8888) A() uint8 { return uint8(p) }

// SetR sets the red channel.
func (p *ABGR8888) SetR(v uint8) { p.SetChannelUnchecked(0, v) }

// SetG sets the green channel.
func (p *ABGR8888) SetG(v uint8) { p.SetChannelUnchecked(1, v) }

// SetB sets the blue channel.
func (p *ABGR8888) SetB(v uint8) { p.SetChannelUnchecked(2, v) }

// SetA sets the alpha channel.
func (p *ABGR8888) SetA(v uint8) { p.SetChannelUnchecked(3, v) }
