package view

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivier-w/climg/internal/raster"
)

// ASCII brightness ramp from darkest to brightest, used when color output
// is disabled entirely.
const asciiRamp = " .:-=+*#%@"

// colorMode describes how cell colors are emitted.
type colorMode uint8

const (
	colorOff     colorMode = iota // NO_COLOR or dumb terminal
	colorANSI16                   // basic 16-color
	colorANSI256                  // 256-color
	colorTrue                     // 24-bit truecolor
)

var (
	detectOnce sync.Once
	termColor  colorMode
)

// detectColorMode checks terminal capabilities once.
func detectColorMode() colorMode {
	detectOnce.Do(func() {
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			termColor = colorOff
			return
		}
		term := strings.ToLower(os.Getenv("TERM"))
		ct := strings.ToLower(os.Getenv("COLORTERM"))
		switch {
		case strings.Contains(ct, "truecolor"), strings.Contains(ct, "24bit"):
			termColor = colorTrue
		case strings.Contains(term, "256color"):
			termColor = colorANSI256
		case term == "dumb":
			termColor = colorOff
		case term == "" && runtime.GOOS == "windows":
			termColor = colorANSI16
		case term == "":
			termColor = colorOff
		default:
			termColor = colorANSI16
		}
	})
	return termColor
}

const ansiReset = "\x1b[0m"

// fgColorSeq returns an ANSI foreground color escape for the given pixel.
// Returns empty string if colors are disabled.
func fgColorSeq(mode colorMode, p raster.Pixel) string {
	switch mode {
	case colorTrue:
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", p.R, p.G, p.B)
	case colorANSI256:
		return fmt.Sprintf("\x1b[38;5;%dm", cube256(p))
	case colorANSI16:
		idx := ansi16Index(p)
		if idx < 8 {
			return fmt.Sprintf("\x1b[%dm", 30+idx)
		}
		return fmt.Sprintf("\x1b[%dm", 90+idx-8)
	default:
		return ""
	}
}

// bgColorSeq returns an ANSI background color escape for the given pixel.
func bgColorSeq(mode colorMode, p raster.Pixel) string {
	switch mode {
	case colorTrue:
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", p.R, p.G, p.B)
	case colorANSI256:
		return fmt.Sprintf("\x1b[48;5;%dm", cube256(p))
	case colorANSI16:
		idx := ansi16Index(p)
		if idx < 8 {
			return fmt.Sprintf("\x1b[%dm", 40+idx)
		}
		return fmt.Sprintf("\x1b[%dm", 100+idx-8)
	default:
		return ""
	}
}

// cube256 maps a pixel onto the 6x6x6 color cube of the xterm 256 palette.
func cube256(p raster.Pixel) int {
	ri := int(p.R) * 5 / 255
	gi := int(p.G) * 5 / 255
	bi := int(p.B) * 5 / 255
	return 16 + 36*ri + 6*gi + bi
}

// ansi16Index returns the index of the perceptually nearest color in the
// standard 16-color palette, using Lab distance.
func ansi16Index(p raster.Pixel) int {
	c := colorful.Color{R: float64(p.R) / 255, G: float64(p.G) / 255, B: float64(p.B) / 255}
	best := 0
	bestDist := -1.0
	for i, pal := range ansi16Palette {
		d := c.DistanceLab(pal)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// brightnessChar maps a 0-255 luminance to an ASCII ramp character.
func brightnessChar(lum uint8) byte {
	idx := int(lum) * (len(asciiRamp) - 1) / 255
	return asciiRamp[idx]
}

// luminance computes perceived brightness (ITU-R BT.601).
func luminance(p raster.Pixel) uint8 {
	return uint8((299*int(p.R) + 587*int(p.G) + 114*int(p.B)) / 1000)
}

// ansi16Palette holds the reference RGB values of the standard 16 ANSI
// colors (VS Code terminal defaults), pre-converted for Lab comparison.
var ansi16Palette = func() [16]colorful.Color {
	rgb := [16][3]uint8{
		{0, 0, 0},       // black
		{205, 49, 49},   // red
		{13, 188, 121},  // green
		{229, 229, 16},  // yellow
		{36, 114, 200},  // blue
		{188, 63, 188},  // magenta
		{17, 168, 205},  // cyan
		{229, 229, 229}, // white
		{102, 102, 102}, // bright black
		{241, 76, 76},   // bright red
		{35, 209, 139},  // bright green
		{245, 245, 67},  // bright yellow
		{59, 142, 234},  // bright blue
		{214, 112, 214}, // bright magenta
		{41, 184, 219},  // bright cyan
		{255, 255, 255}, // bright white
	}
	var pal [16]colorful.Color
	for i, c := range rgb {
		pal[i] = colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
	}
	return pal
}()
