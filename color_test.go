package pixfmt

import (
	"image/color"
	"testing"
)

func TestColorExpansion(t *testing.T) {
	// Opaque mid-gray in every 8888 order reports the same 16-bit color.
	want := color.NRGBA{R: 0x80, G: 0x40, B: 0x20, A: 0xFF}
	wr, wg, wb, wa := want.RGBA()

	for name, c := range map[string]color.Color{
		"rgba8888": NewRGBA8888(0x80, 0x40, 0x20, 0xFF),
		"abgr8888": NewABGR8888(0x80, 0x40, 0x20, 0xFF),
		"bgra8888": NewBGRA8888(0x80, 0x40, 0x20, 0xFF),
	} {
		r, g, b, a := c.RGBA()
		if r != wr || g != wg || b != wb || a != wa {
			t.Fatalf("%s: got %04X %04X %04X %04X, want %04X %04X %04X %04X", name, r, g, b, a, wr, wg, wb, wa)
		}
	}
}

func TestRGB565Color(t *testing.T) {
	r, g, b, a := RGB565(0xFFFF).RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Fatalf("white: %04X %04X %04X %04X", r, g, b, a)
	}

	r, g, b, a = RGB565(0).RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xFFFF {
		t.Fatalf("black: %04X %04X %04X %04X", r, g, b, a)
	}

	if got := RGB565Model.Convert(color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}); got.(RGB565) != 0xFFFF {
		t.Fatalf("model white: 0x%04X", uint16(got.(RGB565)))
	}
}

func TestFloatRGBAColor(t *testing.T) {
	r, g, b, a := NewFloatRGBA(1, 0, 0.5, 1).RGBA()
	if r != 0xFFFF || g != 0 || b != 0x8000 || a != 0xFFFF {
		t.Fatalf("got %04X %04X %04X %04X", r, g, b, a)
	}

	// Out-of-range channels clamp only at the color.Color boundary; the
	// stored values stay untouched.
	p := NewFloatRGBA(2, -1, 0, 1)

	r, g, b, _ = p.RGBA()
	if r != 0xFFFF || g != 0 || b != 0 {
		t.Fatalf("clamped: %04X %04X %04X", r, g, b)
	}

	if p.R() != 2 || p.G() != -1 {
		t.Fatalf("storage clamped: %v", p)
	}
}

func TestModelsRoundTrip(t *testing.T) {
	src := color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}

	if got := RGBA8888Model.Convert(src).(RGBA8888); got != NewRGBA8888(0x11, 0x22, 0x33, 0xFF) {
		t.Fatalf("rgba8888 model: 0x%08X", uint32(got))
	}

	if got := ABGR8888Model.Convert(src).(ABGR8888); got != NewABGR8888(0x11, 0x22, 0x33, 0xFF) {
		t.Fatalf("abgr8888 model: 0x%08X", uint32(got))
	}

	if got := BGRA8888Model.Convert(src).(BGRA8888); got != NewBGRA8888(0x11, 0x22, 0x33, 0xFF) {
		t.Fatalf("bgra8888 model: 0x%08X", uint32(got))
	}

	// A value already in the target format converts to itself.
	p := NewRGBA8888(1, 2, 3, 4)
	if got := RGBA8888Model.Convert(p).(RGBA8888); got != p {
		t.Fatalf("identity: 0x%08X", uint32(got))
	}

	f := FloatRGBAModel.Convert(src).(FloatRGBA)
	if f.A() != 1 {
		t.Fatalf("float alpha: %v", f.A())
	}

	if f.R() < 0.06 || f.R() > 0.07 {
		t.Fatalf("float red: %v", f.R())
	}
}

func TestConvertBetweenPackedOrders(t *testing.T) {
	// Repacking a word between byte orders preserves channels.
	src := NewRGBA8888(0x11, 0x22, 0x33, 0x44)

	got := ABGR8888Model.Convert(src).(ABGR8888)
	if uint32(got) != 0x11223344 {
		t.Fatalf("rgba->abgr: 0x%08X", uint32(got))
	}

	back := RGBA8888Model.Convert(got).(RGBA8888)
	if back != src {
		t.Fatalf("abgr->rgba: 0x%08X", uint32(back))
	}
}
