package buffer

import (
	"testing"

	"github.com/iw2rmb/tuitext/gcstring"
)

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 999, Col: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_SetCursor_SnapsOffWideClusterInterior(t *testing.T) {
	b := New("a界b", Options{})

	b.SetCursor(Pos{Row: 0, Col: 2})
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.SetCursor(Pos{Row: 0, Col: 3})
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 3}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got, want := b.lineEnd(0), gcstring.ColIndex(4); got != want {
		t.Fatalf("line end=%d, want %d", got, want)
	}
}

func TestBuffer_SetSelection_NormalizesClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetSelection(Range{
		Start: Pos{Row: 1, Col: 99},
		End:   Pos{Row: 0, Col: -1},
	})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	want := Range{Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 1, Col: 2}}
	if r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	// Setting the same effective selection should not bump the version.
	b.SetSelection(Range{Start: Pos{Row: 1, Col: 2}, End: Pos{Row: 0, Col: 0}})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}

	if got, ok := b.SelectedText(); !ok || got != "a\nbc" {
		t.Fatalf("selected=(%q,%v), want (%q,true)", got, ok, "a\nbc")
	}

	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
	if b.Version() != 2 {
		t.Fatalf("expected version 2, got %d", b.Version())
	}

	b.ClearSelection()
	if b.Version() != 2 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_SelectAll(t *testing.T) {
	b := New("ab\n📦", Options{})
	b.SelectAll()

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	if want := (Range{End: Pos{Row: 1, Col: 2}}); r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_SliceFollowsNewlineRule(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{text: "a\nb", want: "a\nb\n"},
		{text: "single", want: "single"},
		{text: "", want: ""},
		{text: "日本\n📦", want: "日本\n📦\n"},
	}
	for _, tc := range cases {
		b := New(tc.text, Options{})
		if got := b.Slice().String(); got != tc.want {
			t.Fatalf("slice of %q=%q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestBuffer_LinesAndLine(t *testing.T) {
	b := New("ab\n📦x", Options{})
	if b.LineCount() != 2 || len(b.Lines()) != 2 {
		t.Fatalf("expected two lines")
	}
	line, ok := b.Line(1)
	if !ok || line.String() != "📦x" || line.DisplayWidth() != 3 {
		t.Fatalf("line 1=(%q,%v) width %d", line.String(), ok, line.DisplayWidth())
	}
	if _, ok := b.Line(2); ok {
		t.Fatalf("expected line 2 to miss")
	}
}

func TestBuffer_UnicodeOption(t *testing.T) {
	wide := gcstring.NewUnicode(gcstring.MeasureOptions{EastAsianAmbiguousWide: true})
	b := New("±", Options{Unicode: wide})
	b.Move(Move{Unit: MoveLine, Dir: DirEnd})
	if got, want := b.Cursor().Col, gcstring.ColIndex(2); got != want {
		t.Fatalf("end col=%d, want %d", got, want)
	}

	narrow := New("±", Options{})
	narrow.Move(Move{Unit: MoveLine, Dir: DirEnd})
	if got, want := narrow.Cursor().Col, gcstring.ColIndex(1); got != want {
		t.Fatalf("end col=%d, want %d", got, want)
	}
}
