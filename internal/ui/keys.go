package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText(hasSiblings bool) string {
	s := "+/- zoom  h/j/k/l pan  space fit"
	if hasSiblings {
		s += "  n/p image"
	}
	s += "  i info  q quit"
	return s
}
