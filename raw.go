package pixfmt

import (
	"errors"
	"fmt"
)

// Channel is the set of scalar types a raw pixel stores per channel.
type Channel interface {
	~uint8 | ~float32
}

// Errors returned by checked channel operations. Details are wrapped, so
// match with errors.Is.
var (
	// ErrChannelIndex reports a channel index outside [0, ChannelCount).
	ErrChannelIndex = errors.New("channel index out of range")

	// ErrChannelValue reports a channel value that does not fit the
	// channel's bit width. Only formats whose channels are narrower than
	// their value type can return it.
	ErrChannelValue = errors.New("channel value out of range")
)

func channelIndexErr(i, n int) error {
	return fmt.Errorf("%w: %d of %d", ErrChannelIndex, i, n)
}

func channelValueErr[C Channel](i int, v C) error {
	return fmt.Errorf("%w: %v in channel %d", ErrChannelValue, v, i)
}

// Raw is the read side of the pixel storage contract. A Raw value is one
// complete pixel in one concrete memory layout.
//
// Implementations must be fixed-size value types with no padding, and their
// Go zero value must hold zero in every channel.
type Raw[C Channel] interface {
	// ChannelCount reports how many channels the format has.
	ChannelCount() int

	// Channel returns the value of channel i, or ErrChannelIndex when i is
	// outside [0, ChannelCount).
	Channel(i int) (C, error)

	// ChannelUnchecked returns the value of channel i without validating i.
	ChannelUnchecked(i int) C
}

// RawPtr is the mutable side of the pixel storage contract, satisfied by
// pointers to Raw implementations. It exists as a constraint so generic
// code can mutate storage in place.
type RawPtr[R Raw[C], C Channel] interface {
	*R

	// SetChannel sets channel i to v. It returns ErrChannelIndex when i is
	// outside [0, ChannelCount) and ErrChannelValue when v does not fit the
	// channel's bit width. The receiver is unchanged on error.
	SetChannel(i int, v C) error

	// SetChannelUnchecked sets channel i to v without validating i, masking
	// v to the channel's bit width.
	SetChannelUnchecked(i int, v C)
}

// Zero returns the pixel with every channel at zero.
func Zero[R Raw[C], C Channel]() R {
	var r R

	return r
}

// FromChannels builds a pixel from one value per channel, given in the
// format's logical channel order. It fails when the number of values
// differs from the channel count or a value does not fit its channel.
func FromChannels[R Raw[C], PR RawPtr[R, C], C Channel](vals ...C) (R, error) {
	var r R

	if len(vals) != r.ChannelCount() {
		return r, fmt.Errorf("%w: %d values for %d channels", ErrChannelIndex, len(vals), r.ChannelCount())
	}

	p := PR(&r)
	for i, v := range vals {
		if err := p.SetChannel(i, v); err != nil {
			var zero R

			return zero, err
		}
	}

	return r, nil
}

// FromChannelsUnchecked is FromChannels without validation. The caller must
// pass exactly ChannelCount values that fit their channels; values are
// masked to the channel width. For valid input the result is bit-identical
// to FromChannels.
func FromChannelsUnchecked[R Raw[C], PR RawPtr[R, C], C Channel](vals ...C) R {
	var r R

	p := PR(&r)
	for i, v := range vals {
		p.SetChannelUnchecked(i, v)
	}

	return r
}

// Splat builds a pixel with every channel set to v.
func Splat[R Raw[C], PR RawPtr[R, C], C Channel](v C) (R, error) {
	var r R

	p := PR(&r)
	for i := 0; i < r.ChannelCount(); i++ {
		if err := p.SetChannel(i, v); err != nil {
			var zero R

			return zero, err
		}
	}

	return r, nil
}

// WithChannel returns a copy of r with channel i set to v; r itself is
// unchanged. On error the copy equals r.
func WithChannel[R Raw[C], PR RawPtr[R, C], C Channel](r R, i int, v C) (R, error) {
	if err := PR(&r).SetChannel(i, v); err != nil {
		return r, err
	}

	return r, nil
}
