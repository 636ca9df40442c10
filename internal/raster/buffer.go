package raster

// Buffer is the canonical image: a row-major slice of 8-bit RGB pixels.
// It is created once by Normalize and never mutated afterwards.
type Buffer struct {
	pixels []Pixel
	width  int
	height int
}

// NewBuffer wraps a row-major pixel slice as a canonical buffer.
// len(pixels) must equal width*height.
func NewBuffer(pixels []Pixel, width, height int) *Buffer {
	if len(pixels) != width*height {
		panic("raster: pixel count does not match dimensions")
	}
	return &Buffer{pixels: pixels, width: width, height: height}
}

// Width returns the image width in source pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the image height in source pixels.
func (b *Buffer) Height() int { return b.height }

// ScaledSize returns the image dimensions at the given zoom factor,
// truncated to whole logical pixels.
func (b *Buffer) ScaledSize(zoom float64) (int, int) {
	return int(float64(b.width) * zoom), int(float64(b.height) * zoom)
}

// Sample maps a logical (zoomed) coordinate to a source pixel using
// nearest-neighbor lookup. Coordinates past the image edge return the
// zero pixel. Callers only pass non-negative coordinates.
func (b *Buffer) Sample(x, y int, zoom float64) Pixel {
	sx := int(float64(x) / zoom)
	sy := int(float64(y) / zoom)
	if sx >= b.width || sy >= b.height {
		return Pixel{}
	}
	return b.pixels[sy*b.width+sx]
}
