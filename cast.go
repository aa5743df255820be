package pixfmt

import (
	"fmt"
	"unsafe"
)

// RawBytes reinterprets a pixel slice as its backing bytes without copying.
// T must be a fixed-size pixel storage or Pixel type with no padding, which
// holds for every format in this package. Byte order within each element is
// the host's; on little-endian hosts byte k of a packed word is the channel
// stored at bit shift 8*k.
func RawBytes[T any](px []T) []byte {
	if len(px) == 0 {
		return nil
	}

	size := int(unsafe.Sizeof(px[0]))

	return unsafe.Slice((*byte)(unsafe.Pointer(&px[0])), len(px)*size)
}

// RawPixels reinterprets a byte slice as a pixel slice without copying. The
// length of b must be a multiple of the element size and b must be aligned
// for T. Writes through the returned slice are visible in b.
func RawPixels[T any](b []byte) ([]T, error) {
	if len(b) == 0 {
		return nil, nil
	}

	var zero T

	size := int(unsafe.Sizeof(zero))
	if len(b)%size != 0 {
		return nil, fmt.Errorf("buffer length %d is not a multiple of pixel size %d", len(b), size)
	}

	p := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(p)%unsafe.Alignof(zero) != 0 {
		return nil, fmt.Errorf("buffer is not aligned for pixel size %d", size)
	}

	return unsafe.Slice((*T)(p), len(b)/size), nil
}
