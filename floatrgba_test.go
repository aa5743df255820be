package pixfmt

import (
	"testing"

	"golang.org/x/image/math/f32"
)

func TestFloatRGBANoClamping(t *testing.T) {
	p, err := FromChannels[FloatRGBA, *FloatRGBA, float32](0.0, 0.5, 1.0, -1.0)
	if err != nil {
		t.Fatal(err)
	}

	got, err := p.Channel(3)
	if err != nil {
		t.Fatal(err)
	}

	if got != -1.0 {
		t.Fatalf("channel 3: %v, want -1", got)
	}

	if p != NewFloatRGBA(0.0, 0.5, 1.0, -1.0) {
		t.Fatalf("NewFloatRGBA disagrees with FromChannels")
	}
}

func TestFloatRGBASetGet(t *testing.T) {
	var p FloatRGBA

	if err := p.SetChannel(1, 0.25); err != nil {
		t.Fatal(err)
	}

	if p != (FloatRGBA{0, 0.25, 0, 0}) {
		t.Fatalf("after set: %v", p)
	}

	p.SetR(1)
	p.SetA(0.5)

	if p.R() != 1 || p.G() != 0.25 || p.B() != 0 || p.A() != 0.5 {
		t.Fatalf("accessors: %v", p)
	}

	if p.Vec4() != (f32.Vec4{1, 0.25, 0, 0.5}) {
		t.Fatalf("vec4: %v", p.Vec4())
	}
}
