package pixfmt

// Pixel wraps exactly one raw storage value of a statically chosen format
// and gives every format the same construction surface. It adds no storage
// of its own: a Pixel has the size and layout of its Raw field, and its
// zero value is the zeroed pixel.
//
// The three type parameters follow the pointer-constraint idiom: R is the
// storage type, PR its pointer type and C the channel type, for example
// Pixel[RGBA8888, *RGBA8888, uint8]. The aliases below cover the formats
// defined in this package.
type Pixel[R Raw[C], PR RawPtr[R, C], C Channel] struct {
	// Raw is the wrapped storage. Read it directly for raw interop, take
	// its address to mutate in place.
	Raw R
}

// Wrapper aliases for the formats defined in this package.
type (
	RGBAPixel   = Pixel[RGBA8888, *RGBA8888, uint8]
	ABGRPixel   = Pixel[ABGR8888, *ABGR8888, uint8]
	BGRAPixel   = Pixel[BGRA8888, *BGRA8888, uint8]
	RGB565Pixel = Pixel[RGB565, *RGB565, uint8]
	FloatPixel  = Pixel[FloatRGBA, *FloatRGBA, float32]
)

// New wraps an existing storage value.
func New[R Raw[C], PR RawPtr[R, C], C Channel](raw R) Pixel[R, PR, C] {
	return Pixel[R, PR, C]{Raw: raw}
}

// Zeroed returns a pixel with every channel at zero.
func Zeroed[R Raw[C], PR RawPtr[R, C], C Channel]() Pixel[R, PR, C] {
	return Pixel[R, PR, C]{}
}

// NewFromChannels builds a pixel from one value per channel; it validates
// like FromChannels.
func NewFromChannels[R Raw[C], PR RawPtr[R, C], C Channel](vals ...C) (Pixel[R, PR, C], error) {
	raw, err := FromChannels[R, PR, C](vals...)
	if err != nil {
		return Pixel[R, PR, C]{}, err
	}

	return Pixel[R, PR, C]{Raw: raw}, nil
}

// ChannelCount reports the number of channels of the wrapped format.
func (p Pixel[R, PR, C]) ChannelCount() int { return p.Raw.ChannelCount() }

// Channel returns the value of channel i.
func (p Pixel[R, PR, C]) Channel(i int) (C, error) { return p.Raw.Channel(i) }

// ChannelUnchecked returns the value of channel i without validation.
func (p Pixel[R, PR, C]) ChannelUnchecked(i int) C { return p.Raw.ChannelUnchecked(i) }

// SetChannel sets channel i to v in place. The pixel is unchanged on error.
func (p *Pixel[R, PR, C]) SetChannel(i int, v C) error {
	return PR(&p.Raw).SetChannel(i, v)
}

// SetChannelUnchecked sets channel i to v in place without validation.
func (p *Pixel[R, PR, C]) SetChannelUnchecked(i int, v C) {
	PR(&p.Raw).SetChannelUnchecked(i, v)
}

// WithChannel returns a copy of the pixel with channel i set to v; the
// receiver is unchanged.
func (p Pixel[R, PR, C]) WithChannel(i int, v C) (Pixel[R, PR, C], error) {
	raw, err := WithChannel[R, PR, C](p.Raw, i, v)
	if err != nil {
		return p, err
	}

	return Pixel[R, PR, C]{Raw: raw}, nil
}
