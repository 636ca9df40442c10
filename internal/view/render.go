package view

import (
	"strings"

	"github.com/olivier-w/climg/internal/raster"
)

// halfBlock is the upper-half block glyph: the foreground paints the top
// half of the cell and the background the bottom half, packing two pixel
// rows into one terminal row.
const halfBlock = '▀'

// CellWriter receives one styled cell per terminal grid position.
type CellWriter interface {
	SetCell(x, y int, glyph rune, fg, bg raster.Pixel)
}

// Render emits the full cols x rows terminal grid for the given buffer
// and viewport state. Cells left of or above the centering offset are
// blank; every other cell carries two vertically adjacent samples as a
// half-block pair.
func Render(w CellWriter, buf *raster.Buffer, s State, cols, rows int) {
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if x < s.OffsetX || y < s.OffsetY {
				w.SetCell(x, y, ' ', raster.Pixel{}, raster.Pixel{})
				continue
			}
			lx := (x - s.OffsetX) + s.PanX
			ly := (y-s.OffsetY)*2 + s.PanY
			upper := buf.Sample(lx, ly, s.Zoom)
			lower := buf.Sample(lx, ly+1, s.Zoom)
			w.SetCell(x, y, halfBlock, upper, lower)
		}
	}
}

type cell struct {
	glyph rune
	fg    raster.Pixel
	bg    raster.Pixel
}

// Renderer builds terminal frame strings from a buffer and viewport
// state. The cell grid and string builder are reused across frames to
// limit per-frame allocation. Not safe for concurrent use; the UI drives
// it from a single loop.
type Renderer struct {
	mode  colorMode
	cols  int
	rows  int
	cells []cell
	sb    strings.Builder
}

// NewRenderer creates a renderer using the current terminal's color
// capabilities.
func NewRenderer() *Renderer {
	return &Renderer{mode: detectColorMode()}
}

// SetCell implements CellWriter over the renderer's internal grid.
func (r *Renderer) SetCell(x, y int, glyph rune, fg, bg raster.Pixel) {
	if x < 0 || x >= r.cols || y < 0 || y >= r.rows {
		return
	}
	r.cells[y*r.cols+x] = cell{glyph: glyph, fg: fg, bg: bg}
}

// Frame renders one complete frame as a terminal string. All cells are
// assembled before anything is returned, so the caller flushes a whole
// frame at a time.
func (r *Renderer) Frame(buf *raster.Buffer, s State, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	if cols != r.cols || rows != r.rows {
		r.cols = cols
		r.rows = rows
		r.cells = make([]cell, cols*rows)
	}
	Render(r, buf, s, cols, rows)

	if r.mode == colorOff {
		return r.assembleASCII()
	}
	return r.assembleColor()
}

// assembleColor writes the grid as half-block cells with fg/bg escapes,
// skipping escapes that repeat the previous cell's colors.
func (r *Renderer) assembleColor() string {
	r.sb.Reset()
	// Worst case ~40 bytes per cell for two truecolor escapes.
	r.sb.Grow(r.cols*r.rows*44 + r.rows)

	for y := 0; y < r.rows; y++ {
		var lastFg, lastBg string
		for x := 0; x < r.cols; x++ {
			c := r.cells[y*r.cols+x]
			fg := fgColorSeq(r.mode, c.fg)
			bg := bgColorSeq(r.mode, c.bg)
			if fg != lastFg {
				r.sb.WriteString(fg)
				lastFg = fg
			}
			if bg != lastBg {
				r.sb.WriteString(bg)
				lastBg = bg
			}
			r.sb.WriteRune(c.glyph)
		}
		r.sb.WriteString(ansiReset)
		if y < r.rows-1 {
			r.sb.WriteByte('\n')
		}
	}
	return r.sb.String()
}

// assembleASCII maps each half-block cell to a brightness character using
// the mean luminance of its two samples.
func (r *Renderer) assembleASCII() string {
	r.sb.Reset()
	r.sb.Grow(r.cols*r.rows + r.rows)

	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			c := r.cells[y*r.cols+x]
			if c.glyph != halfBlock {
				r.sb.WriteRune(c.glyph)
				continue
			}
			lum := uint8((int(luminance(c.fg)) + int(luminance(c.bg))) / 2)
			r.sb.WriteByte(brightnessChar(lum))
		}
		if y < r.rows-1 {
			r.sb.WriteByte('\n')
		}
	}
	return r.sb.String()
}
