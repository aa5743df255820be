package pixfmt

const rgbaChannels = 4

// RGBA8888 is a packed 32-bit pixel with 8-bit red, green, blue and alpha
// channels. Red occupies the least significant byte of the word and alpha
// the most significant: the word for channels (r, g, b, a) is
// r | g<<8 | b<<16 | a<<24. On a little-endian host the in-memory byte
// order is R, G, B, A.
//
// Channel indices are logical: 0=R, 1=G, 2=B, 3=A.
type RGBA8888 uint32

// Per-index bit shifts, reflecting the byte order documented above.
var rgba8888Shifts = [rgbaChannels]uint{0, 8, 16, 24}

// NewRGBA8888 packs four 8-bit channels into a word.
func NewRGBA8888(r, g, b, a uint8) RGBA8888 {
	return RGBA8888(r) | RGBA8888(g)<<8 | RGBA8888(b)<<16 | RGBA8888(a)<<24
}

// ChannelCount reports the number of channels.
func (RGBA8888) ChannelCount() int { return rgbaChannels }

// Channel returns the value of channel i.
func (p RGBA8888) Channel(i int) (uint8, error) {
	if i < 0 || i >= rgbaChannels {
		return 0, channelIndexErr(i, rgbaChannels)
	}

	return p.ChannelUnchecked(i), nil
}

// ChannelUnchecked returns the value of channel i without bounds checks.
// An invalid index panics.
func (p RGBA8888) ChannelUnchecked(i int) uint8 {
	return uint8(p >> rgba8888Shifts[i])
}

// SetChannel sets channel i to v. Channels are 8 bits wide, so any uint8
// value fits.
func (p *RGBA8888) SetChannel(i int, v uint8) error {
	if i < 0 || i >= rgbaChannels {
		return channelIndexErr(i, rgbaChannels)
	}

	p.SetChannelUnchecked(i, v)

	return nil
}

// SetChannelUnchecked sets channel i to v without bounds checks. Bits of
// other channels are not disturbed.
func (p *RGBA8888) SetChannelUnchecked(i int, v uint8) {
	shift := rgba8888Shifts[i]
	*p = *p&^(0xFF<<shift) | RGBA8888(v)<<shift
}

// R returns the red channel.
func (p RGBA8888) R() uint8 { return uint8(p) }

// G returns the green channel.
func (p RGBA8888) G() uint8 { return uint8(p >> 8) }

// B returns the blue channel.
func (p RGBA8888) B() uint8 { return uint8(p >> 16) }

// A returns the alpha channel.
func (p RGBA8888) A() uint8 { return uint8(p >> 24) }

// SetR sets the red channel.
func (p *RGBA8888) SetR(v uint8) { p.SetChannelUnchecked(0, v) }

// SetG sets the green channel.
func (p *RGBA8888) SetG(v uint8) { p.SetChannelUnchecked(1, v) }

// SetB sets the blue channel.
func (p *RGBA8888) SetB(v uint8) { p.SetChannelUnchecked(2, v) }

// SetA sets the alpha channel.
func (p *RGBA8888) SetA(v uint8) { p.SetChannelUnchecked(3, v) }
