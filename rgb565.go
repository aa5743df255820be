package pixfmt

const rgb565Channels = 3

// RGB565 is a packed 16-bit pixel with a 5-bit red, 6-bit green and 5-bit
// blue channel and no alpha: the word for channels (r, g, b) is
// r<<11 | g<<5 | b.
//
// Channel indices are logical: 0=R, 1=G, 2=B. Channel values are uint8, but
// red and blue hold at most 31 and green at most 63; checked setters return
// ErrChannelValue for anything wider, unchecked setters mask.
type RGB565 uint16

// Per-index bit shifts and widths.
var (
	rgb565Shifts = [rgb565Channels]uint{11, 5, 0}
	rgb565Widths = [rgb565Channels]uint{5, 6, 5}
)

// NewRGB565 packs three channels into a word, masking each to its width.
func NewRGB565(r, g, b uint8) RGB565 {
	return RGB565(r&0x1F)<<11 | RGB565(g&0x3F)<<5 | RGB565(b&0x1F)
}

// ChannelCount reports the number of channels.
func (RGB565) ChannelCount() int { return rgb565Channels }

// Channel returns the value of channel i.
func (p RGB565) Channel(i int) (uint8, error) {
	if i < 0 || i >= rgb565Channels {
		return 0, channelIndexErr(i, rgb565Channels)
	}

	return p.ChannelUnchecked(i), nil
}

// ChannelUnchecked returns the value of channel i without bounds checks.
// An invalid index panics.
func (p RGB565) ChannelUnchecked(i int) uint8 {
	return uint8(p>>rgb565Shifts[i]) & uint8(1<<rgb565Widths[i]-1)
}

// SetChannel sets channel i to v. It returns ErrChannelValue when v does
// not fit the channel's bit width; the word is unchanged on error.
func (p *RGB565) SetChannel(i int, v uint8) error {
	if i < 0 || i >= rgb565Channels {
		return channelIndexErr(i, rgb565Channels)
	}

	if uint(v) >= 1<<rgb565Widths[i] {
		return channelValueErr(i, v)
	}

	p.SetChannelUnchecked(i, v)

	return nil
}

// SetChannelUnchecked sets channel i to v masked to the channel width,
// without bounds checks. Bits of other channels are not disturbed.
func (p *RGB565) SetChannelUnchecked(i int, v uint8) {
	shift, width := rgb565Shifts[i], rgb565Widths[i]
	mask := RGB565(1)<<width - 1
	*p = *p&^(mask<<shift) | (RGB565(v)&mask)<<shift
}

// R returns the red channel (0-31).
func (p RGB565) R() uint8 { return uint8(p>>11) & 0x1F }

// G returns the green channel (0-63).
func (p RGB565) G() uint8 { return uint8(p>>5) & 0x3F }

// B returns the blue channel (0-31).
func (p RGB565) B() uint8 { return uint8(p) & 0x1F }

// SetR sets the red channel, masked to 5 bits.
func (p *RGB565) SetR(v uint8) { p.SetChannelUnchecked(0, v) }

// SetG sets the green channel, masked to 6 bits.
func (p *RGB565) SetG(v uint8) { p.SetChannelUnchecked(1, v) }

// SetB sets the blue channel, masked to 5 bits.
func (p *RGB565) SetB(v uint8) { p.SetChannelUnchecked(2, v) }
