package media

import (
	"fmt"
	"image"
	"image/color"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/olivier-w/climg/internal/raster"
)

// Load decodes the image file at path into a normalized canonical buffer.
// Container decode failures and unsupported pixel encodings are distinct:
// the latter wraps raster.ErrUnsupported.
func Load(path string) (*raster.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	r, err := Rasterize(img)
	if err != nil {
		return nil, err
	}
	return raster.Normalize(r)
}

// Rasterize maps a decoded image onto one of the supported raster
// encodings. Premultiplied formats (RGBA, RGBA64) drop their alpha plane:
// premultiplied color channels are already composited over black. Unknown
// concrete types yield raster.ErrUnsupported.
func Rasterize(img image.Image) (raster.Raster, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch im := img.(type) {
	case *image.Gray:
		pix := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			off := im.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pix[y*w:(y+1)*w], im.Pix[off:off+w])
		}
		return raster.Raster{Encoding: raster.Gray8, Width: w, Height: h, Pix: pix}, nil

	case *image.Gray16:
		pix := make([]uint16, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := im.Gray16At(b.Min.X+x, b.Min.Y+y)
				pix[y*w+x] = c.Y
			}
		}
		return raster.Raster{Encoding: raster.Gray16, Width: w, Height: h, Pix16: pix}, nil

	case *image.NRGBA:
		pix := make([]uint8, w*h*4)
		for y := 0; y < h; y++ {
			off := im.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pix[y*w*4:(y+1)*w*4], im.Pix[off:off+w*4])
		}
		return raster.Raster{Encoding: raster.RGBA8, Width: w, Height: h, Pix: pix}, nil

	case *image.NRGBA64:
		pix := make([]uint16, w*h*4)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := im.NRGBA64At(b.Min.X+x, b.Min.Y+y)
				i := (y*w + x) * 4
				pix[i] = c.R
				pix[i+1] = c.G
				pix[i+2] = c.B
				pix[i+3] = c.A
			}
		}
		return raster.Raster{Encoding: raster.RGBA16, Width: w, Height: h, Pix16: pix}, nil

	case *image.RGBA:
		pix := make([]uint8, w*h*3)
		for y := 0; y < h; y++ {
			off := im.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < w; x++ {
				i := (y*w + x) * 3
				pix[i] = im.Pix[off+x*4]
				pix[i+1] = im.Pix[off+x*4+1]
				pix[i+2] = im.Pix[off+x*4+2]
			}
		}
		return raster.Raster{Encoding: raster.RGB8, Width: w, Height: h, Pix: pix}, nil

	case *image.RGBA64:
		pix := make([]uint16, w*h*3)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := im.RGBA64At(b.Min.X+x, b.Min.Y+y)
				i := (y*w + x) * 3
				pix[i] = c.R
				pix[i+1] = c.G
				pix[i+2] = c.B
			}
		}
		return raster.Raster{Encoding: raster.RGB16, Width: w, Height: h, Pix16: pix}, nil

	case *image.YCbCr:
		pix := make([]uint8, w*h*3)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := im.YCbCrAt(b.Min.X+x, b.Min.Y+y)
				r, g, bl := color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
				i := (y*w + x) * 3
				pix[i] = r
				pix[i+1] = g
				pix[i+2] = bl
			}
		}
		return raster.Raster{Encoding: raster.RGB8, Width: w, Height: h, Pix: pix}, nil

	case *image.NYCbCrA:
		pix := make([]uint8, w*h*4)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := im.NYCbCrAAt(b.Min.X+x, b.Min.Y+y)
				r, g, bl := color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
				i := (y*w + x) * 4
				pix[i] = r
				pix[i+1] = g
				pix[i+2] = bl
				pix[i+3] = c.A
			}
		}
		return raster.Raster{Encoding: raster.RGBA8, Width: w, Height: h, Pix: pix}, nil

	case *image.CMYK:
		pix := make([]uint8, w*h*3)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := im.CMYKAt(b.Min.X+x, b.Min.Y+y)
				r, g, bl := color.CMYKToRGB(c.C, c.M, c.Y, c.K)
				i := (y*w + x) * 3
				pix[i] = r
				pix[i+1] = g
				pix[i+2] = bl
			}
		}
		return raster.Raster{Encoding: raster.RGB8, Width: w, Height: h, Pix: pix}, nil

	case *image.Paletted:
		pix := make([]uint8, w*h*4)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := color.NRGBAModel.Convert(im.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				i := (y*w + x) * 4
				pix[i] = c.R
				pix[i+1] = c.G
				pix[i+2] = c.B
				pix[i+3] = c.A
			}
		}
		return raster.Raster{Encoding: raster.RGBA8, Width: w, Height: h, Pix: pix}, nil
	}

	return raster.Raster{}, fmt.Errorf("%w: %T", raster.ErrUnsupported, img)
}
