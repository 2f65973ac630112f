package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tuitext"
	"github.com/iw2rmb/tuitext/editor"
	"github.com/iw2rmb/tuitext/gcstring"
)

const sample = `; tuitext demo: an INI editor
; Ctrl+Q quits. Tabs expand to spaces.

[package]
name = tuitext
glyphs = 界📦🙏🏽 e` + "\u0301" + `

[editor]
tab_width = 4
line_numbers = true
`

type model struct {
	editor editor.Model
	status lipgloss.Style
	width  int
}

func newModel(uni *gcstring.Unicode) model {
	cfg := editor.Config{
		Text:         sample,
		ShowLineNums: true,
		Style:        editor.DefaultStyle(),
		Unicode:      uni,
		Highlighter:  newIniHighlighter(),
		Clipboard:    editor.NewTerminalClipboard(nil),
		OnChange: func(ev editor.ChangeEvent) {
			for _, e := range ev.Edits {
				log.Printf("edit v%d %v-%v: -%q +%q", ev.Version, e.RangeBefore.Start, e.RangeBefore.End, e.DeletedText, e.InsertText)
			}
		},
	}
	return model{
		editor: editor.New(cfg),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.editor.View() + "\n" + m.status.Render(m.statusLine())
}

func (m model) statusLine() string {
	buf := m.editor.Buffer()
	cur := buf.Cursor()

	parts := []string{fmt.Sprintf("%d:%d", cur.Row+1, cur.Col+1)}
	if line, ok := buf.Line(cur.Row); ok {
		if seg, ok := line.StringAt(cur.Col); ok {
			parts = append(parts, fmt.Sprintf("%q w%d", seg.String.String(), seg.Width))
		}
	}
	entries, err := checkDocument(buf)
	if err != nil {
		parts = append(parts, err.Error())
	} else {
		parts = append(parts, fmt.Sprintf("%d entries", entries))
	}

	s := gcstring.New(strings.Join(parts, "  "))
	if m.width > 0 {
		return s.TruncEndToFit(gcstring.ColWidth(m.width))
	}
	return s.String()
}

func unicodeFromEnv() *gcstring.Unicode {
	if os.Getenv("TUITEXT_EAST_ASIAN") == "" {
		return gcstring.DefaultUnicode()
	}
	return gcstring.NewUnicode(gcstring.MeasureOptions{EastAsianAmbiguousWide: true})
}

func main() {
	if os.Getenv("TUITEXT_DEBUG") != "" {
		f, err := tea.LogToFile("tuitext-debug.log", "tuitext")
		if err != nil {
			_, _ = os.Stderr.WriteString(err.Error() + "\n")
			os.Exit(1)
		}
		defer f.Close()
		log.Printf("%s starting", tuitext.UserAgent("tuitext-demo"))
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(newModel(unicodeFromEnv()), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
