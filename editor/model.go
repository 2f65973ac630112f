package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tuitext/buffer"
	"github.com/iw2rmb/tuitext/gcstring"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  gcstring.ColIndex

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	text := expandTabs(cfg.Unicode, cfg.Text, cfg.TabWidth, 0)
	m := Model{
		cfg: cfg,
		buf: buffer.New(text, buffer.Options{
			HistoryLimit: cfg.HistoryLimit,
			Unicode:      cfg.Unicode,
		}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.followCursor()
	m.rebuildContent()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.followCursor()
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// XOffset returns the first visible display column.
func (m Model) XOffset() gcstring.ColIndex { return m.xOffset }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		before := m.buf.Version()
		m, cmd = m.updateKey(msg)
		m.afterUpdate(before)
		return m, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		y := m.viewport.YOffset
		m.viewport, cmd = m.viewport.Update(msg)
		// Don't follow the cursor here; the wheel scrolls freely.
		if m.syncFromBuffer() || m.viewport.YOffset != y {
			m.rebuildContent()
		}
		return m, cmd
	default:
		// Hosts may mutate the buffer directly between messages.
		before := m.lastBufVersion
		m.afterUpdate(before)
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) afterUpdate(versionBefore uint64) {
	if m.syncFromBuffer() {
		m.followCursor()
		m.rebuildContent()
	}
	if m.cfg.OnChange != nil && m.buf.Version() != versionBefore {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
}

// syncFromBuffer records the buffer's version and cursor. Callers rebuild
// the content when it reports a change.
func (m *Model) syncFromBuffer() (changed bool) {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	m.lastBufVersion = ver
	m.lastCursor = cur
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls both axes so the cursor cell is on screen.
func (m *Model) followCursor() {
	cur := m.buf.Cursor()

	if h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize(); h > 0 {
		y := m.viewport.YOffset
		switch {
		case cur.Row < y:
			m.viewport.SetYOffset(cur.Row)
		case cur.Row >= y+h:
			m.viewport.SetYOffset(cur.Row - h + 1)
		}
	}

	w := m.contentWidth(m.buf.LineCount())
	if w <= 0 {
		m.xOffset = 0
		return
	}
	need := gcstring.ColWidth(1)
	if line, ok := m.buf.Line(cur.Row); ok {
		if seg, ok := line.StringAt(cur.Col); ok && seg.Width > need {
			need = seg.Width
		}
	}
	switch {
	case cur.Col < m.xOffset:
		m.xOffset = cur.Col
	case cur.Col.Add(need) > m.xOffset.Add(w):
		m.xOffset = cur.Col.Add(need).Sub(w)
	}
}

// contentWidth is the number of text columns right of the gutter. It is 0
// when the model has no size yet.
func (m Model) contentWidth(lineCount int) gcstring.ColWidth {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth(lineCount)
	if w <= 0 {
		return 0
	}
	return gcstring.ColWidth(w)
}
