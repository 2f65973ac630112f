package buffer

import "testing"

func TestMove_GraphemeStepsOverWideClusters(t *testing.T) {
	b := New("a📦b\nc", Options{})

	right := Move{Unit: MoveGrapheme, Dir: DirRight}
	for _, want := range []Pos{{Col: 1}, {Col: 3}, {Col: 4}, {Row: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 1}} {
		b.Move(right)
		if got := b.Cursor(); got != want {
			t.Fatalf("right: cursor=%v, want %v", got, want)
		}
	}

	left := Move{Unit: MoveGrapheme, Dir: DirLeft}
	for _, want := range []Pos{{Row: 1}, {Col: 4}, {Col: 3}, {Col: 1}, {}, {}} {
		b.Move(left)
		if got := b.Cursor(); got != want {
			t.Fatalf("left: cursor=%v, want %v", got, want)
		}
	}
}

func TestMove_GraphemeCombiningIsOneStep(t *testing.T) {
	b := New("e\u0301x", Options{})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got, want := b.Cursor(), (Pos{Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestMove_VerticalSnapsToClusterStart(t *testing.T) {
	b := New("界界\nabcd", Options{})
	b.SetCursor(Pos{Row: 1, Col: 3})

	b.Move(Move{Unit: MoveLine, Dir: DirUp})
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("up: cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveGrapheme, Dir: DirDown})
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("down: cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveLine, Dir: DirDown})
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("down at last row: cursor=%v, want %v", got, want)
	}
}

func TestMove_Word(t *testing.T) {
	b := New("foo  bar baz", Options{})

	right := Move{Unit: MoveWord, Dir: DirRight}
	for _, want := range []int{3, 8, 12, 12} {
		b.Move(right)
		if got := int(b.Cursor().Col); got != want {
			t.Fatalf("word right: col=%d, want %d", got, want)
		}
	}

	left := Move{Unit: MoveWord, Dir: DirLeft}
	for _, want := range []int{9, 5, 0, 0} {
		b.Move(left)
		if got := int(b.Cursor().Col); got != want {
			t.Fatalf("word left: col=%d, want %d", got, want)
		}
	}
}

func TestMove_WordOverWideText(t *testing.T) {
	b := New("日本 語", Options{})
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got, want := b.Cursor(), (Pos{Col: 4}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got, want := b.Cursor(), (Pos{Col: 7}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestMove_LineAndDoc(t *testing.T) {
	b := New("ab\n📦📦", Options{})

	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 4}); got != want {
		t.Fatalf("doc end: cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveLine, Dir: DirHome})
	if got, want := b.Cursor(), (Pos{Row: 1}); got != want {
		t.Fatalf("line home: cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveDoc, Dir: DirHome})
	if got, want := b.Cursor(), (Pos{}); got != want {
		t.Fatalf("doc home: cursor=%v, want %v", got, want)
	}
}

func TestMove_ExtendSelection(t *testing.T) {
	b := New("a📦b", Options{})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection")
	}
	if want := (Range{End: Pos{Col: 3}}); r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	if got, _ := b.SelectedText(); got != "a📦" {
		t.Fatalf("selected=%q, want %q", got, "a📦")
	}

	v := b.Version()
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if _, ok := b.Selection(); ok {
		t.Fatalf("plain move should clear the selection")
	}
	if b.Version() != v+1 {
		t.Fatalf("version=%d, want %d", b.Version(), v+1)
	}
}
