package view

// minZoom is the hard floor for the zoom factor; below it the coordinate
// division degenerates.
const minZoom = 0.01

// zoomStep is the zoom change applied per key press.
const zoomStep = 0.01

// State holds the viewport navigation state. Pan is the image-space
// coordinate aligned to the viewport origin after the centering offset.
// OffsetX is in terminal columns; OffsetY is computed in logical pixel
// rows but consumed in cell rows, which halves its visual effect (kept
// from the original behavior).
type State struct {
	PanX    int
	PanY    int
	OffsetX int
	OffsetY int
	Zoom    float64
}

// scaledSize returns the image dimensions at the given zoom, truncated.
func scaledSize(imgW, imgH int, zoom float64) (int, int) {
	return int(float64(imgW) * zoom), int(float64(imgH) * zoom)
}

// fitZoom returns the per-axis minimum scale that fits a scaled image of
// iw x ih into a w x h viewport.
func fitZoom(iw, ih, w, h int) float64 {
	z1 := float64(w) / float64(iw)
	z2 := float64(h) / float64(ih)
	if z1 < z2 {
		return z1
	}
	return z2
}

// NewState builds the initial viewport state for an imgW x imgH image in
// a terminal of w columns and h logical pixel rows (cell rows times two).
// The image starts at 1:1 zoom, shrunk to fit if oversized, and centered
// when smaller than the viewport.
func NewState(imgW, imgH, w, h int) State {
	s := State{Zoom: 1.0}
	iw, ih := scaledSize(imgW, imgH, s.Zoom)
	if iw > w || ih > h {
		s.Zoom = fitZoom(iw, ih, w, h)
		iw, ih = scaledSize(imgW, imgH, s.Zoom)
	}
	if iw < w {
		s.OffsetX = (w - iw) / 2
	}
	if ih < h {
		s.OffsetY = (h - ih) / 4
	}
	return s
}

// Reset restores the fit-to-window state: zoom back to 1.0 (or the fit
// ratio when oversized) with pan and offset cleared. Offsets are filled
// back in by the Reclamp that follows every event.
func (s *State) Reset(imgW, imgH, w, h int) {
	s.Zoom = 1.0
	s.PanX, s.PanY = 0, 0
	s.OffsetX, s.OffsetY = 0, 0
	iw, ih := scaledSize(imgW, imgH, s.Zoom)
	if iw > w || ih > h {
		s.Zoom = fitZoom(iw, ih, w, h)
	}
}

// Reclamp re-centers after any event. On each axis where the scaled image
// fits inside the viewport the pan is cleared and the centering offset
// recomputed; where it does not fit, pan and offset are left alone.
func (s *State) Reclamp(imgW, imgH, w, h int) {
	iw, ih := scaledSize(imgW, imgH, s.Zoom)
	if iw < w {
		s.PanX = 0
		s.OffsetX = (w - iw) / 2
	}
	if ih < h {
		s.PanY = 0
		s.OffsetY = (h - ih) / 4
	}
}

// ZoomIn increases the zoom by one step.
func (s *State) ZoomIn() {
	s.Zoom += zoomStep
}

// ZoomOut decreases the zoom by one step, clamped at the floor.
func (s *State) ZoomOut() {
	s.Zoom -= zoomStep
	if s.Zoom < minZoom {
		s.Zoom = minZoom
	}
}

// PanLeft moves the view left; a no-op at the left edge.
func (s *State) PanLeft() {
	if s.PanX > 0 {
		s.PanX--
	}
}

// PanRight moves the view right, unbounded: panning past the image edge
// samples zero pixels.
func (s *State) PanRight() {
	s.PanX++
}

// PanUp moves the view up, unbounded.
func (s *State) PanUp() {
	s.PanY++
}

// PanDown moves the view down; a no-op at the top edge.
func (s *State) PanDown() {
	if s.PanY > 0 {
		s.PanY--
	}
}
