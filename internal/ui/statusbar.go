package ui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// barVisible reports whether the bottom row is claimed by the info bar:
// toggled explicitly, or forced by a load in flight or a transient error.
func (m Model) barVisible() bool {
	return m.showInfo || m.loading || m.errMsg != ""
}

func (m Model) renderBar() string {
	var s string
	switch {
	case m.errMsg != "":
		s = errorStyle.Render("Error: " + m.errMsg)
	case m.loading:
		s = m.spin.View() + " loading"
	default:
		hasSiblings := m.q != nil && m.q.Len() > 1
		info := fmt.Sprintf("%s  %dx%d  %d%%",
			filepath.Base(m.path), m.buf.Width(), m.buf.Height(), int(m.st.Zoom*100+0.5))
		if m.st.PanX != 0 || m.st.PanY != 0 {
			info += fmt.Sprintf("  pan %d,%d", m.st.PanX, m.st.PanY)
		}
		if hasSiblings {
			info += fmt.Sprintf("  [%d/%d]", m.q.CurrentIndex()+1, m.q.Len())
		}
		s = infoStyle.Render(info) + "  " + helpStyle.Render(helpText(hasSiblings))
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(s)
}
