package raster

import (
	"errors"
	"testing"
)

func TestNormalizeGray8ReplicatesChannels(t *testing.T) {
	buf, err := Normalize(Raster{
		Encoding: Gray8,
		Width:    2,
		Height:   1,
		Pix:      []uint8{0x40, 0xC0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.Sample(0, 0, 1.0); got != (Pixel{0x40, 0x40, 0x40}) {
		t.Fatalf("pixel 0 = %v", got)
	}
	if got := buf.Sample(1, 0, 1.0); got != (Pixel{0xC0, 0xC0, 0xC0}) {
		t.Fatalf("pixel 1 = %v", got)
	}
}

func TestNormalizeGrayAlpha8ZeroAlphaIsBlack(t *testing.T) {
	// Alpha 0 composites to black regardless of the gray value.
	for _, v := range []uint8{0, 1, 127, 254, 255} {
		buf, err := Normalize(Raster{
			Encoding: GrayAlpha8,
			Width:    1,
			Height:   1,
			Pix:      []uint8{v, 0},
		})
		if err != nil {
			t.Fatalf("gray %d: unexpected error: %v", v, err)
		}
		if got := buf.Sample(0, 0, 1.0); got != (Pixel{}) {
			t.Fatalf("gray %d: got %v, want black", v, got)
		}
	}
}

func TestNormalizeGrayAlpha8Truncates(t *testing.T) {
	// 200 * 128 / 255 = 100.39..., integer truncation gives 100.
	buf, err := Normalize(Raster{
		Encoding: GrayAlpha8,
		Width:    1,
		Height:   1,
		Pix:      []uint8{200, 128},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.Sample(0, 0, 1.0); got != (Pixel{100, 100, 100}) {
		t.Fatalf("got %v, want (100,100,100)", got)
	}
}

func TestNormalizeRGB8PassesThrough(t *testing.T) {
	buf, err := Normalize(Raster{
		Encoding: RGB8,
		Width:    1,
		Height:   1,
		Pix:      []uint8{10, 20, 30},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.Sample(0, 0, 1.0); got != (Pixel{10, 20, 30}) {
		t.Fatalf("got %v", got)
	}
}

func TestNormalizeRGBA8ZeroAlphaIsBlack(t *testing.T) {
	buf, err := Normalize(Raster{
		Encoding: RGBA8,
		Width:    1,
		Height:   1,
		Pix:      []uint8{255, 255, 255, 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.Sample(0, 0, 1.0); got != (Pixel{}) {
		t.Fatalf("got %v, want black", got)
	}
}

func TestQuantize16TakesHighByte(t *testing.T) {
	cases := []struct {
		in   uint16
		want uint8
	}{
		{0xFFFF, 0xFF},
		{0x0100, 0x01},
		{0x00FF, 0x00},
		{0x0000, 0x00},
		{0x8040, 0x80},
	}
	for _, c := range cases {
		if got := quantize16(c.in); got != c.want {
			t.Fatalf("quantize16(%#04x) = %#02x, want %#02x", c.in, got, c.want)
		}
	}
}

func TestNormalizeRGB16KeepsHighBytes(t *testing.T) {
	buf, err := Normalize(Raster{
		Encoding: RGB16,
		Width:    1,
		Height:   1,
		Pix16:    []uint16{0xFFFF, 0x0100, 0x00FF},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.Sample(0, 0, 1.0); got != (Pixel{0xFF, 0x01, 0x00}) {
		t.Fatalf("got %v", got)
	}
}

func TestNormalizeGrayAlpha16CompositesBeforeQuantizing(t *testing.T) {
	// 0x8000 * 0x8000 / 65535 = 0x4000 (and a bit), high byte 0x40.
	buf, err := Normalize(Raster{
		Encoding: GrayAlpha16,
		Width:    1,
		Height:   1,
		Pix16:    []uint16{0x8000, 0x8000},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.Sample(0, 0, 1.0); got != (Pixel{0x40, 0x40, 0x40}) {
		t.Fatalf("got %v", got)
	}
}

func TestNormalizeRGBA16ZeroAlphaIsBlack(t *testing.T) {
	buf, err := Normalize(Raster{
		Encoding: RGBA16,
		Width:    1,
		Height:   1,
		Pix16:    []uint16{0xFFFF, 0xFFFF, 0xFFFF, 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.Sample(0, 0, 1.0); got != (Pixel{}) {
		t.Fatalf("got %v, want black", got)
	}
}

func TestQuantizeFloatClamps(t *testing.T) {
	cases := []struct {
		in   float32
		want uint8
	}{
		{-1.5, 0},
		{-0.001, 0},
		{0, 0},
		{0.5, 127},
		{1.0, 255},
		{1.5, 255},
		{100, 255},
	}
	for _, c := range cases {
		if got := quantizeFloat(c.in); got != c.want {
			t.Fatalf("quantizeFloat(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNormalizeRGBAFloatPremultiplies(t *testing.T) {
	buf, err := Normalize(Raster{
		Encoding: RGBAFloat,
		Width:    1,
		Height:   1,
		PixF:     []float32{1.0, 0.5, 2.0, 0.5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (1.0*0.5)*255 = 127.5 -> 127, (0.5*0.5)*255 = 63.75 -> 63,
	// (2.0*0.5)*255 = 255 -> 255.
	if got := buf.Sample(0, 0, 1.0); got != (Pixel{127, 63, 255}) {
		t.Fatalf("got %v", got)
	}
}

func TestNormalizeRejectsUnknownEncoding(t *testing.T) {
	_, err := Normalize(Raster{Encoding: Encoding(99), Width: 1, Height: 1, Pix: []uint8{0}})
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("got %v, want ErrUnsupported", err)
	}
}

func TestNormalizeRejectsShortPlane(t *testing.T) {
	_, err := Normalize(Raster{Encoding: RGB8, Width: 2, Height: 2, Pix: []uint8{1, 2, 3}})
	if err == nil {
		t.Fatal("expected error for short pixel plane")
	}
}

func TestNormalizeRejectsInvalidDimensions(t *testing.T) {
	_, err := Normalize(Raster{Encoding: Gray8, Width: 0, Height: 3})
	if err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestEncodingChannels(t *testing.T) {
	cases := []struct {
		enc  Encoding
		want int
	}{
		{Gray8, 1},
		{GrayAlpha8, 2},
		{RGB8, 3},
		{RGBA8, 4},
		{GrayAlpha16, 2},
		{RGBAFloat, 4},
	}
	for _, c := range cases {
		if got := c.enc.Channels(); got != c.want {
			t.Fatalf("%s channels = %d, want %d", c.enc, got, c.want)
		}
	}
}
