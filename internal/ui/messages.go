package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/climg/internal/media"
	"github.com/olivier-w/climg/internal/raster"
)

// imageLoadedMsg carries the result of an async sibling image decode.
type imageLoadedMsg struct {
	index int
	path  string
	buf   *raster.Buffer
	err   error
}

type clearErrorMsg struct{}

// loadImageCmd decodes the image at path off the Update loop.
func loadImageCmd(index int, path string) tea.Cmd {
	return func() tea.Msg {
		buf, err := media.Load(path)
		return imageLoadedMsg{index: index, path: path, buf: buf, err: err}
	}
}

// clearErrorCmd expires a transient error line.
func clearErrorCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}
