package pixfmt

import "image/color"

// Color models converting arbitrary colors into the formats of this
// package. Converting a value that is already in the target format returns
// it unchanged.
var (
	RGBA8888Model  color.Model = color.ModelFunc(rgba8888Model)
	ABGR8888Model  color.Model = color.ModelFunc(abgr8888Model)
	BGRA8888Model  color.Model = color.ModelFunc(bgra8888Model)
	RGB565Model    color.Model = color.ModelFunc(rgb565Model)
	FloatRGBAModel color.Model = color.ModelFunc(floatRGBAModel)
)

// Channel values of the 8888 formats are not alpha-premultiplied;
// conversion to color.Color's premultiplied 16-bit space follows
// color.NRGBA.
func nrgba8ToRGBA(cr, cg, cb, ca uint8) (r, g, b, a uint32) {
	r = uint32(cr)
	r |= r << 8
	r *= uint32(ca)
	r /= 0xFF
	g = uint32(cg)
	g |= g << 8
	g *= uint32(ca)
	g /= 0xFF
	b = uint32(cb)
	b |= b << 8
	b *= uint32(ca)
	b /= 0xFF
	a = uint32(ca)
	a |= a << 8

	return r, g, b, a
}

// RGBA implements color.Color.
func (p RGBA8888) RGBA() (r, g, b, a uint32) {
	return nrgba8ToRGBA(p.R(), p.G(), p.B(), p.A())
}

// RGBA implements color.Color.
func (p ABGR8888) RGBA() (r, g, b, a uint32) {
	return nrgba8ToRGBA(p.R(), p.G(), p.B(), p.A())
}

// RGBA implements color.Color.
func (p BGRA8888) RGBA() (r, g, b, a uint32) {
	return nrgba8ToRGBA(p.R(), p.G(), p.B(), p.A())
}

// RGBA implements color.Color. The pixel is opaque; 5- and 6-bit channels
// are expanded by replicating their high bits.
func (p RGB565) RGBA() (r, g, b, a uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each
	// component, then duplicate the high bits in the low bits.
	r = (uint32(p) & 0xF800) >> 8
	g = (uint32(p) & 0x07E0) >> 3
	b = (uint32(p) & 0x001F) << 3
	r |= r >> 5
	g |= g >> 6
	b |= b >> 5
	r |= r << 8
	g |= g << 8
	b |= b << 8

	return r, g, b, 0xFFFF
}

// RGBA implements color.Color. Channels are clamped to [0, 1] and scaled;
// color values are premultiplied by alpha as the interface requires.
func (p FloatRGBA) RGBA() (r, g, b, a uint32) {
	fa := clamp01(p[3])
	r = uint32(clamp01(p[0])*fa*0xFFFF + 0.5)
	g = uint32(clamp01(p[1])*fa*0xFFFF + 0.5)
	b = uint32(clamp01(p[2])*fa*0xFFFF + 0.5)
	a = uint32(fa*0xFFFF + 0.5)

	return r, g, b, a
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}

func rgba8888Model(c color.Color) color.Color {
	if p, ok := c.(RGBA8888); ok {
		return p
	}

	n := color.NRGBAModel.Convert(c).(color.NRGBA)

	return NewRGBA8888(n.R, n.G, n.B, n.A)
}

func abgr8888Model(c color.Color) color.Color {
	if p, ok := c.(ABGR8888); ok {
		return p
	}

	n := color.NRGBAModel.Convert(c).(color.NRGBA)

	return NewABGR8888(n.R, n.G, n.B, n.A)
}

func bgra8888Model(c color.Color) color.Color {
	if p, ok := c.(BGRA8888); ok {
		return p
	}

	n := color.NRGBAModel.Convert(c).(color.NRGBA)

	return NewBGRA8888(n.R, n.G, n.B, n.A)
}

func rgb565Model(c color.Color) color.Color {
	if p, ok := c.(RGB565); ok {
		return p
	}

	r, g, b, _ := c.RGBA()

	return RGB565(r&0xF800 | (g&0xFC00)>>5 | (b&0xF800)>>11)
}

func floatRGBAModel(c color.Color) color.Color {
	if p, ok := c.(FloatRGBA); ok {
		return p
	}

	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)

	return FloatRGBA{
		float32(n.R) / 0xFFFF,
		float32(n.G) / 0xFFFF,
		float32(n.B) / 0xFFFF,
		float32(n.A) / 0xFFFF,
	}
}

// Interface checks.
var (
	_ color.Color = RGBA8888(0)
	_ color.Color = ABGR8888(0)
	_ color.Color = BGRA8888(0)
	_ color.Color = RGB565(0)
	_ color.Color = FloatRGBA{}
)
