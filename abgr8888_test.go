package pixfmt

import "testing"

func TestABGR8888Layout(t *testing.T) {
	// Reversed byte order: A in byte 0 through R in byte 3. The same
	// logical channels that pack RGBA8888 to 0x44332211 pack here to
	// 0x11223344.
	p, err := FromChannels[ABGR8888, *ABGR8888, uint8](0x11, 0x22, 0x33, 0x44)
	if err != nil {
		t.Fatal(err)
	}

	if uint32(p) != 0x11223344 {
		t.Fatalf("raw word: 0x%08X, want 0x11223344", uint32(p))
	}

	got, err := p.Channel(0)
	if err != nil {
		t.Fatal(err)
	}

	if got != 0x11 {
		t.Fatalf("channel 0: 0x%02X, want 0x11", got)
	}

	if p != NewABGR8888(0x11, 0x22, 0x33, 0x44) {
		t.Fatalf("NewABGR8888 disagrees with FromChannels")
	}
}

func TestABGR8888BitIsolation(t *testing.T) {
	for i := 0; i < rgbaChannels; i++ {
		p := ABGR8888(0xDDCCBBAA)

		before := [rgbaChannels]uint8{}
		for j := range before {
			before[j] = p.ChannelUnchecked(j)
		}

		if err := p.SetChannel(i, 0x5E); err != nil {
			t.Fatal(err)
		}

		for j := range before {
			want := before[j]
			if j == i {
				want = 0x5E
			}

			if got := p.ChannelUnchecked(j); got != want {
				t.Fatalf("set channel %d: channel %d is 0x%02X, want 0x%02X", i, j, got, want)
			}
		}
	}
}

func TestABGR8888Accessors(t *testing.T) {
	p := NewABGR8888(0x11, 0x22, 0x33, 0x44)

	if p.R() != 0x11 || p.G() != 0x22 || p.B() != 0x33 || p.A() != 0x44 {
		t.Fatalf("accessors: %02X %02X %02X %02X", p.R(), p.G(), p.B(), p.A())
	}

	p.SetR(0x01)
	p.SetA(0x04)

	if p.R() != 0x01 || p.A() != 0x04 || p.G() != 0x22 || p.B() != 0x33 {
		t.Fatalf("after set: %02X %02X %02X %02X", p.R(), p.G(), p.B(), p.A())
	}
}
