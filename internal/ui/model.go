package ui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/climg/internal/queue"
	"github.com/olivier-w/climg/internal/raster"
	"github.com/olivier-w/climg/internal/view"
)

// Model is the Bubbletea model for the climg viewer.
type Model struct {
	buf      *raster.Buffer
	path     string
	q        *queue.Queue // nil when the file has no siblings
	st       view.State
	renderer *view.Renderer

	width  int
	height int
	sized  bool

	showInfo bool
	loading  bool
	errMsg   string
	spin     spinner.Model
	quitting bool
}

// New creates a Model for an already-decoded image. q may be nil when no
// sibling images were found next to the file.
func New(buf *raster.Buffer, path string, q *queue.Queue) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	return Model{
		buf:      buf,
		path:     path,
		q:        q,
		renderer: view.NewRenderer(),
		spin:     s,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(filepath.Base(m.path))
}

// gridRows returns the number of terminal rows available to the image
// grid; the info bar claims the bottom row while visible.
func (m Model) gridRows() int {
	rows := m.height
	if m.barVisible() {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// gridLogical returns the viewport size in columns and logical pixel
// rows. Half-block cells double the vertical resolution.
func (m Model) gridLogical() (int, int) {
	return m.width, m.gridRows() * 2
}

func (m *Model) fit() {
	w, h := m.gridLogical()
	m.st = view.NewState(m.buf.Width(), m.buf.Height(), w, h)
}

func (m *Model) reclamp() {
	w, h := m.gridLogical()
	m.st.Reclamp(m.buf.Width(), m.buf.Height(), w, h)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.sized {
			m.sized = true
			m.fit()
		} else {
			m.reclamp()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case imageLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.reclamp()
			return m, clearErrorCmd()
		}
		m.buf = msg.buf
		m.path = msg.path
		m.q.SetCurrentIndex(msg.index)
		m.fit()
		return m, tea.SetWindowTitle(filepath.Base(msg.path))

	case clearErrorMsg:
		m.errMsg = ""
		m.reclamp()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}
	if !m.sized {
		return m, nil
	}

	switch msg.String() {
	case "+", "=":
		m.st.ZoomIn()
	case "-", "_":
		m.st.ZoomOut()
	case "h", "a":
		m.st.PanLeft()
	case "l", "d":
		m.st.PanRight()
	case "k", "w":
		m.st.PanUp()
	case "j", "s":
		m.st.PanDown()
	case " ":
		w, h := m.gridLogical()
		m.st.Reset(m.buf.Width(), m.buf.Height(), w, h)
	case "i":
		m.showInfo = !m.showInfo
	case "n":
		return m.switchImage(qIndex(m.q) + 1)
	case "p":
		return m.switchImage(qIndex(m.q) - 1)
	}

	// The viewport re-centers after every event, matching the resize
	// handling: pan only survives while the scaled image overflows.
	m.reclamp()
	return m, nil
}

func qIndex(q *queue.Queue) int {
	if q == nil {
		return 0
	}
	return q.CurrentIndex()
}

// switchImage starts an async decode of the sibling at idx. Ignored when
// there is no queue, the index is out of range, or a load is in flight.
func (m Model) switchImage(idx int) (Model, tea.Cmd) {
	if m.q == nil || m.loading {
		m.reclamp()
		return m, nil
	}
	target := m.q.Entry(idx)
	if target == nil {
		m.reclamp()
		return m, nil
	}
	m.loading = true
	m.reclamp()
	return m, tea.Batch(m.spin.Tick, loadImageCmd(idx, target.Path))
}

func (m Model) View() string {
	if m.quitting || !m.sized {
		return ""
	}
	frame := m.renderer.Frame(m.buf, m.st, m.width, m.gridRows())
	if !m.barVisible() {
		return frame
	}
	return frame + "\n" + m.renderBar()
}
