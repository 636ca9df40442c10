package raster

import "errors"

// ErrUnsupported is returned when a decoded image uses a pixel encoding
// outside the supported set.
var ErrUnsupported = errors.New("unsupported pixel encoding")

// Pixel is one normalized 8-bit RGB color. The zero value doubles as the
// sentinel for samples outside the image.
type Pixel struct {
	R uint8
	G uint8
	B uint8
}

// Encoding identifies a supported source pixel layout.
type Encoding uint8

const (
	Gray8 Encoding = iota
	GrayAlpha8
	RGB8
	RGBA8
	Gray16
	GrayAlpha16
	RGB16
	RGBA16
	RGBFloat
	RGBAFloat
)

// Depth classifies the per-channel storage of an encoding.
type Depth uint8

const (
	Depth8 Depth = iota
	Depth16
	DepthFloat
)

// layout describes how an encoding stores its samples. Every encoding is
// fully characterized by color channel count, alpha presence and depth;
// normalization is driven by this table rather than per-encoding code.
type layout struct {
	colors int
	alpha  bool
	depth  Depth
}

var layouts = map[Encoding]layout{
	Gray8:       {colors: 1, alpha: false, depth: Depth8},
	GrayAlpha8:  {colors: 1, alpha: true, depth: Depth8},
	RGB8:        {colors: 3, alpha: false, depth: Depth8},
	RGBA8:       {colors: 3, alpha: true, depth: Depth8},
	Gray16:      {colors: 1, alpha: false, depth: Depth16},
	GrayAlpha16: {colors: 1, alpha: true, depth: Depth16},
	RGB16:       {colors: 3, alpha: false, depth: Depth16},
	RGBA16:      {colors: 3, alpha: true, depth: Depth16},
	RGBFloat:    {colors: 3, alpha: false, depth: DepthFloat},
	RGBAFloat:   {colors: 3, alpha: true, depth: DepthFloat},
}

// Channels returns the number of stored channels per pixel, alpha included.
func (e Encoding) Channels() int {
	l, ok := layouts[e]
	if !ok {
		return 0
	}
	n := l.colors
	if l.alpha {
		n++
	}
	return n
}

// HasAlpha reports whether the encoding carries an alpha channel.
func (e Encoding) HasAlpha() bool {
	return layouts[e].alpha
}

// Depth returns the per-channel storage class.
func (e Encoding) Depth() Depth {
	return layouts[e].depth
}

func (e Encoding) String() string {
	switch e {
	case Gray8:
		return "gray8"
	case GrayAlpha8:
		return "graya8"
	case RGB8:
		return "rgb8"
	case RGBA8:
		return "rgba8"
	case Gray16:
		return "gray16"
	case GrayAlpha16:
		return "graya16"
	case RGB16:
		return "rgb16"
	case RGBA16:
		return "rgba16"
	case RGBFloat:
		return "rgbf32"
	case RGBAFloat:
		return "rgbaf32"
	}
	return "unknown"
}

// Raster is a decoded image in one of the supported encodings, before
// normalization. Exactly one of the pixel planes is populated, matching
// the encoding's depth: Pix for 8-bit, Pix16 for 16-bit, PixF for float.
// Samples are row-major, channels interleaved.
type Raster struct {
	Encoding Encoding
	Width    int
	Height   int
	Pix      []uint8
	Pix16    []uint16
	PixF     []float32
}
