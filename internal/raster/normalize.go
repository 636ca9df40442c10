package raster

import "fmt"

// applyAlpha composites an 8-bit channel over black, truncating.
func applyAlpha(v, a uint8) uint8 {
	return uint8(uint32(v) * uint32(a) / 255)
}

// applyAlpha16 composites a 16-bit channel over black, truncating.
func applyAlpha16(v, a uint16) uint16 {
	return uint16(uint32(v) * uint32(a) / 65535)
}

// quantize16 reduces a 16-bit channel to 8 bits by taking the high byte.
// Never rounds: 0x00FF maps to 0x00.
func quantize16(v uint16) uint8 {
	return uint8(v >> 8)
}

// quantizeFloat maps a nominal 0.0-1.0 channel to 0-255, truncating toward
// zero and clamping out-of-range input.
func quantizeFloat(v float32) uint8 {
	v *= 255.0
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Normalize converts a raster in any supported encoding into a canonical
// buffer of 8-bit RGB pixels. Alpha is composited over black and then
// discarded; 16-bit channels keep their high byte; float channels are
// scaled and clamped. Returns ErrUnsupported for encodings outside the
// supported set and an error when the pixel plane does not match the
// declared dimensions.
func Normalize(r Raster) (*Buffer, error) {
	l, ok := layouts[r.Encoding]
	if !ok {
		return nil, fmt.Errorf("%w: encoding %d", ErrUnsupported, r.Encoding)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("raster: invalid dimensions %dx%d", r.Width, r.Height)
	}

	n := r.Width * r.Height
	stride := r.Encoding.Channels()

	var plane int
	switch l.depth {
	case Depth8:
		plane = len(r.Pix)
	case Depth16:
		plane = len(r.Pix16)
	case DepthFloat:
		plane = len(r.PixF)
	}
	if plane != n*stride {
		return nil, fmt.Errorf("raster: %s plane has %d samples, want %d", r.Encoding, plane, n*stride)
	}

	pixels := make([]Pixel, n)
	for i := 0; i < n; i++ {
		base := i * stride
		var c [3]uint8
		switch l.depth {
		case Depth8:
			a := uint8(255)
			if l.alpha {
				a = r.Pix[base+l.colors]
			}
			for ch := 0; ch < l.colors; ch++ {
				v := r.Pix[base+ch]
				if l.alpha {
					v = applyAlpha(v, a)
				}
				c[ch] = v
			}
		case Depth16:
			a := uint16(65535)
			if l.alpha {
				a = r.Pix16[base+l.colors]
			}
			for ch := 0; ch < l.colors; ch++ {
				v := r.Pix16[base+ch]
				if l.alpha {
					v = applyAlpha16(v, a)
				}
				c[ch] = quantize16(v)
			}
		case DepthFloat:
			a := float32(1.0)
			if l.alpha {
				a = r.PixF[base+l.colors]
			}
			for ch := 0; ch < l.colors; ch++ {
				v := r.PixF[base+ch]
				if l.alpha {
					v *= a
				}
				c[ch] = quantizeFloat(v)
			}
		}
		if l.colors == 1 {
			c[1] = c[0]
			c[2] = c[0]
		}
		pixels[i] = Pixel{R: c[0], G: c[1], B: c[2]}
	}

	return &Buffer{pixels: pixels, width: r.Width, height: r.Height}, nil
}
