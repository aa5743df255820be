package pixfmt_test

import (
	"fmt"

	"github.com/vearutop/pixfmt"
)

func ExampleNewFromChannels() {
	p, err := pixfmt.NewFromChannels[pixfmt.RGBA8888, *pixfmt.RGBA8888, uint8](0x11, 0x22, 0x33, 0x44)
	if err != nil {
		return
	}

	fmt.Printf("0x%08X\n", uint32(p.Raw))

	c, _ := p.Channel(2)
	fmt.Printf("0x%02X\n", c)
	// Output:
	// 0x44332211
	// 0x33
}

func ExamplePixel_SetChannel() {
	var p pixfmt.RGBAPixel

	p.Raw = pixfmt.NewRGBA8888(0xFF, 0x00, 0x00, 0xFF)

	_ = p.SetChannel(1, 0x88)
	_ = p.SetChannel(2, 0x44)

	fmt.Printf("0x%08X\n", uint32(p.Raw))
	// Output:
	// 0xFF4488FF
}

func ExampleRawBytes() {
	buf := []pixfmt.RGBA8888{pixfmt.NewRGBA8888(1, 2, 3, 4)}

	fmt.Println(len(pixfmt.RawBytes(buf)))
	// Output:
	// 4
}
