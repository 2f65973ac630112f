package editor

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tuitext/buffer"
	"github.com/iw2rmb/tuitext/gcstring"
)

type stubHighlighter struct {
	fn func(LineContext) ([]HighlightSpan, error)
}

func (s *stubHighlighter) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	return s.fn(ctx)
}

func TestHighlighting_CalledOnlyForVisibleLines(t *testing.T) {
	var rows []int
	h := &stubHighlighter{
		fn: func(ctx LineContext) ([]HighlightSpan, error) {
			rows = append(rows, ctx.Row)
			return nil, nil
		},
	}

	m := New(Config{
		Text:        "a\nb\nc",
		Highlighter: h,
	})
	if len(rows) != 0 {
		t.Fatalf("highlighter ran without a viewport: %v", rows)
	}

	m = m.SetSize(10, 1)
	rows = nil
	_ = m.renderContent()

	if len(rows) != 1 || rows[0] != 0 {
		t.Fatalf("highlighter rows: got %v, want %v", rows, []int{0})
	}
}

func TestHighlighting_ContextCarriesCursor(t *testing.T) {
	var got []LineContext
	m := New(Config{
		Text: "ab\n日本",
		Highlighter: HighlighterFunc(func(ctx LineContext) ([]HighlightSpan, error) {
			got = append(got, ctx)
			return nil, nil
		}),
	})
	m = m.SetSize(10, 2)
	m.buf.SetCursor(buffer.Pos{Row: 1, Col: 2})
	got = nil
	_ = m.renderContent()

	if len(got) != 2 {
		t.Fatalf("calls: got %d, want 2", len(got))
	}
	if got[0].HasCursor || got[0].CursorCol != -1 || got[0].Line.String() != "ab" {
		t.Fatalf("row 0 ctx: %+v", got[0])
	}
	if !got[1].HasCursor || got[1].CursorCol != 2 || got[1].Line.DisplayWidth() != 4 {
		t.Fatalf("row 1 ctx: %+v", got[1])
	}
}

func TestHighlighting_ErrorFallsBackToPlainText(t *testing.T) {
	r := testRenderer()
	st := Style{Text: r.NewStyle()}

	m := New(Config{
		Text:  "abcd",
		Style: st,
		Highlighter: &stubHighlighter{
			fn: func(ctx LineContext) ([]HighlightSpan, error) {
				return []HighlightSpan{{StartCol: 1, EndCol: 3, Style: r.NewStyle().Underline(true)}}, errors.New("boom")
			},
		},
	})
	m = m.SetSize(10, 1)
	m = m.Blur()

	got := m.renderContent()
	want := st.Text.Render("a") + st.Text.Render("b") + st.Text.Render("c") + st.Text.Render("d")
	if got != want {
		t.Fatalf("unexpected render with highlighter error:\n got: %q\nwant: %q", got, want)
	}
}

func TestHighlighting_RebuildsAfterAutoFollowScroll(t *testing.T) {
	var rows []int
	h := &stubHighlighter{
		fn: func(ctx LineContext) ([]HighlightSpan, error) {
			rows = append(rows, ctx.Row)
			return nil, nil
		},
	}

	m := New(Config{
		Text:        "a\nb\nc",
		Highlighter: h,
	})
	m = m.SetSize(10, 1)
	rows = nil

	m.buf.SetCursor(buffer.Pos{Row: 2, Col: 0})
	m, _ = m.Update(struct{}{})

	if len(rows) != 2 || rows[0] != 0 || rows[1] != 2 {
		t.Fatalf("highlighter rows after auto-follow scroll: got %v, want %v", rows, []int{0, 2})
	}
}

func TestHighlighting_AppliesSpansByColumn(t *testing.T) {
	r := testRenderer()
	textStyle := r.NewStyle()
	hlStyle := r.NewStyle().Underline(true)
	st := Style{Text: textStyle}

	m := New(Config{
		Text:  "a日b",
		Style: st,
		Highlighter: &stubHighlighter{
			fn: func(ctx LineContext) ([]HighlightSpan, error) {
				return []HighlightSpan{{StartCol: 1, EndCol: 3, Style: hlStyle}}, nil
			},
		},
	})
	m = m.SetSize(10, 1)
	m = m.Blur()

	got := m.renderContent()
	want := textStyle.Render("a") + hlStyle.Inherit(textStyle).Render("日") + textStyle.Render("b")
	if got != want {
		t.Fatalf("unexpected highlighted render:\n got: %q\nwant: %q", got, want)
	}
}

func TestNormalizeHighlightSpans(t *testing.T) {
	s := lipgloss.NewStyle()
	cases := []struct {
		name  string
		in    []HighlightSpan
		width gcstring.ColWidth
		want  [][2]gcstring.ColIndex
	}{
		{name: "empty", in: nil, width: 5, want: nil},
		{
			name:  "clamped and swapped",
			in:    []HighlightSpan{{StartCol: 7, EndCol: 3, Style: s}, {StartCol: -2, EndCol: 1, Style: s}},
			width: 5,
			want:  [][2]gcstring.ColIndex{{0, 1}, {3, 5}},
		},
		{
			name:  "empty spans dropped",
			in:    []HighlightSpan{{StartCol: 2, EndCol: 2, Style: s}, {StartCol: 9, EndCol: 12, Style: s}},
			width: 5,
			want:  [][2]gcstring.ColIndex{},
		},
		{
			name:  "overlap keeps earliest",
			in:    []HighlightSpan{{StartCol: 2, EndCol: 4, Style: s}, {StartCol: 0, EndCol: 3, Style: s}},
			width: 5,
			want:  [][2]gcstring.ColIndex{{0, 3}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizeHighlightSpans(tc.in, tc.width)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d spans (%+v), want %d", len(got), got, len(tc.want))
			}
			for i, sp := range got {
				if sp.StartCol != tc.want[i][0] || sp.EndCol != tc.want[i][1] {
					t.Fatalf("span %d: got [%d,%d), want [%d,%d)", i, sp.StartCol, sp.EndCol, tc.want[i][0], tc.want[i][1])
				}
			}
		})
	}
}

func TestHighlighting_OnePassPerKeystroke(t *testing.T) {
	calls := 0
	m := New(Config{
		Text: "ab\ncd\nef",
		Highlighter: HighlighterFunc(func(LineContext) ([]HighlightSpan, error) {
			calls++
			return nil, nil
		}),
	})
	m = m.SetSize(10, 2)

	calls = 0
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if calls != 2 {
		t.Fatalf("highlighter calls for one keystroke: got %d, want 2", calls)
	}

	calls = 0
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if calls != 0 {
		t.Fatalf("highlighter calls for an unbound key: got %d, want 0", calls)
	}

	calls = 0
	m, _ = m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.viewport.YOffset == 0 {
		t.Fatalf("wheel did not scroll")
	}
	if calls != 2 {
		t.Fatalf("highlighter calls after scrolling: got %d, want 2", calls)
	}
}
