package buffer

import (
	"strings"

	"github.com/iw2rmb/tuitext/gcstring"
	"github.com/iw2rmb/tuitext/strslice"
)

type Options struct {
	HistoryLimit int // default: 1000; negative disables undo

	// Unicode segments and measures lines. Nil uses the package defaults.
	Unicode *gcstring.Unicode
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the pure document state: text, cursor, and selection.
type Buffer struct {
	lines   []gcstring.GCString
	version uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	if opt.Unicode == nil {
		opt.Unicode = gcstring.DefaultUnicode()
	}
	b := &Buffer{opt: opt}
	b.lines = b.splitLines(text)
	return b
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.String())
	}
	return sb.String()
}

// Lines returns the current lines. The slice must not be modified; edits
// replace it rather than writing into it.
func (b *Buffer) Lines() []gcstring.GCString { return b.lines }

// LineCount returns the number of rows. It is never less than 1.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the row at i.
func (b *Buffer) Line(i int) (gcstring.GCString, bool) {
	if i < 0 || i >= len(b.lines) {
		return gcstring.GCString{}, false
	}
	return b.lines[i], true
}

// Slice returns a character stream over the current lines for parsers.
// Rows are joined by synthetic newlines when there are at least two.
func (b *Buffer) Slice() strslice.Slice[gcstring.GCString] {
	return strslice.New(b.lines)
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// ClampPos clamps p into the current document.
func (b *Buffer) ClampPos(p Pos) Pos { return b.clampPos(p) }

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectedText returns the text covered by the active selection.
func (b *Buffer) SelectedText() (string, bool) {
	r, ok := b.Selection()
	if !ok {
		return "", false
	}
	return textForLinesRange(b.lines, r), true
}

func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, b.lines)
	next := selectionState{
		active: true,
		anchor: clamped.Start,
		end:    clamped.End,
	}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}

	prevRange, prevOK := b.Selection()
	b.sel = next
	nextRange, nextOK := b.Selection()
	if prevOK == nextOK && (!prevOK || prevRange == nextRange) {
		return
	}
	b.version++
}

// SelectAll selects the whole document and puts the cursor at its end.
func (b *Buffer) SelectAll() {
	last := len(b.lines) - 1
	end := Pos{Row: last, Col: b.lines[last].DisplayWidth().AsEndCol()}
	b.SetSelection(Range{Start: Pos{}, End: end})
	b.SetCursor(end)
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	_, ok := b.Selection()
	b.sel = selectionState{}
	if ok {
		b.version++
	}
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, b.lines)
}

func (b *Buffer) newLine(s string) gcstring.GCString {
	return b.opt.Unicode.New(s)
}

func (b *Buffer) splitLines(text string) []gcstring.GCString {
	parts := strings.Split(text, "\n")
	lines := make([]gcstring.GCString, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, b.newLine(s))
	}
	return lines
}
