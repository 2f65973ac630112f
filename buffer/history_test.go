package buffer

import "testing"

func TestBuffer_UndoRedo_BasicTyping(t *testing.T) {
	b := New("", Options{})
	if b.CanUndo() || b.CanRedo() {
		t.Fatalf("expected empty history")
	}

	b.InsertText("📦")
	if !b.CanUndo() {
		t.Fatalf("expected CanUndo=true")
	}

	v := b.Version()
	if ok := b.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := b.Text(), ""; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}

	if ok := b.Redo(); !ok {
		t.Fatalf("expected Redo=true")
	}
	if got, want := b.Text(), "📦"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if b.Redo() {
		t.Fatalf("expected Redo=false once redo stack is empty")
	}
}

func TestBuffer_Undo_RestoresSelection(t *testing.T) {
	b := New("hello", Options{})
	sel := Range{Start: Pos{Col: 1}, End: Pos{Col: 4}}
	b.SetSelection(sel)
	b.InsertText("X")
	if got, want := b.Text(), "hXo"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	b.Undo()
	if got, want := b.Text(), "hello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if r, ok := b.Selection(); !ok || r != sel {
		t.Fatalf("selection=(%v,%v), want %v", r, ok, sel)
	}
}

func TestBuffer_NewEditClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.Undo()
	if !b.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}
	b.InsertText("b")
	if b.CanRedo() {
		t.Fatalf("expected redo cleared by a new edit")
	}
}

func TestBuffer_HistoryLimit(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	for _, s := range []string{"a", "b", "c"} {
		b.InsertText(s)
	}
	if !b.Undo() || !b.Undo() {
		t.Fatalf("expected two undo steps")
	}
	if b.Undo() {
		t.Fatalf("expected history limited to two steps")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	off := New("", Options{HistoryLimit: -1})
	off.InsertText("a")
	if off.CanUndo() {
		t.Fatalf("negative limit should disable undo")
	}
}

func TestBuffer_UndoRecordsChange(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Col: 2})
	b.InsertNewline()
	b.Undo()

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected a change")
	}
	if len(ch.AppliedEdits) != 1 {
		t.Fatalf("edits=%d, want 1", len(ch.AppliedEdits))
	}
	e := ch.AppliedEdits[0]
	if e.DeletedText != "ab\n" || e.InsertText != "ab" {
		t.Fatalf("edit=%+v", e)
	}
	if want := (Range{End: Pos{Row: 1}}); e.RangeBefore != want {
		t.Fatalf("range before=%v, want %v", e.RangeBefore, want)
	}
	if want := (Range{End: Pos{Col: 2}}); e.RangeAfter != want {
		t.Fatalf("range after=%v, want %v", e.RangeAfter, want)
	}
}
