package buffer

import (
	"strings"

	"github.com/iw2rmb/tuitext/gcstring"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if s == "" {
		if ok {
			b.DeleteSelection()
		}
		return
	}
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(r, s)
}

// InsertNewline splits the line at the cursor, or replaces the active
// selection with a line break.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics: the cluster left of the cursor
// is removed, or the line is joined with the previous one.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	if row == 0 && col == 0 {
		return
	}

	if col > 0 {
		line := b.lines[row]
		start := prevClusterCol(line, col)
		if left, ok := line.StringLeftOf(col); ok && left.StartAt < col {
			start = left.StartAt
		}
		b.edit(Range{Start: Pos{Row: row, Col: start}, End: b.cursor}, "")
		return
	}

	prevRow := row - 1
	start := Pos{Row: prevRow, Col: b.lines[prevRow].DisplayWidth().AsEndCol()}
	b.edit(Range{Start: start, End: b.cursor}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]
	if seg, ok := line.SegAtCol(col); ok {
		b.edit(Range{Start: b.cursor, End: Pos{Row: row, Col: seg.EndCol()}}, "")
		return
	}
	if row == len(b.lines)-1 {
		return
	}
	b.edit(Range{Start: b.cursor, End: Pos{Row: row + 1}}, "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.edit(r, "")
}

func (b *Buffer) edit(r Range, text string) {
	prev := b.snapshot()
	change := b.beginChange()
	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
	change.addAppliedEdit(applied)
	b.commitChange(change)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, b.lines))
	if r.IsEmpty() && text == "" {
		return b.cursor, AppliedEdit{}, false
	}

	deletedText := textForLinesRange(b.lines, r)
	if deletedText == text {
		return b.cursor, AppliedEdit{}, false
	}

	startRow, endRow := r.Start.Row, r.End.Row
	startLine, endLine := b.lines[startRow], b.lines[endRow]
	startByte := byteAtCol(startLine, r.Start.Col)
	endByte := byteAtCol(endLine, r.End.Col)

	var repl []string
	switch {
	case r.IsEmpty() && text == "\n" && r.Start.Col > 0:
		left, right, _ := startLine.SplitAtDisplayCol(r.Start.Col)
		repl = []string{left, right}
	case r.IsEmpty() && !strings.Contains(text, "\n"):
		s, _ := startLine.InsertChunkAtCol(r.Start.Col, text)
		repl = []string{s}
	case text == "" && startRow == endRow && isSingleCluster(startLine, r.Start.Col, startByte, endByte):
		s, _ := startLine.DeleteCharAtCol(r.Start.Col)
		repl = []string{s}
	default:
		repl = strings.Split(text, "\n")
		repl[0] = startLine.String()[:startByte] + repl[0]
		repl[len(repl)-1] += endLine.String()[endByte:]
	}

	cursorByte := startByte + len(text)
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		cursorByte = len(text) - i - 1
	}

	out := make([]gcstring.GCString, 0, len(b.lines)-(endRow-startRow+1)+len(repl))
	out = append(out, b.lines[:startRow]...)
	for _, s := range repl {
		out = append(out, b.newLine(s))
	}
	out = append(out, b.lines[endRow+1:]...)
	b.lines = out

	lastRow := startRow + len(repl) - 1
	nextCursor = Pos{Row: lastRow, Col: colAtByte(b.lines[lastRow], cursorByte)}
	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deletedText,
	}
	return nextCursor, applied, true
}

func isSingleCluster(line gcstring.GCString, col gcstring.ColIndex, startByte, endByte int) bool {
	seg, ok := line.SegAtCol(col)
	return ok && int(seg.StartByte) == startByte && int(seg.EndByte) == endByte
}

// prevClusterCol returns the start column of the last visible cluster
// before col.
func prevClusterCol(line gcstring.GCString, col gcstring.ColIndex) gcstring.ColIndex {
	segs := line.Segs()
	for i := len(segs) - 1; i >= 0; i-- {
		if segs[i].StartCol < col {
			return segs[i].StartCol
		}
	}
	return 0
}

// colAtByte returns the column of the cluster holding byte off, or the end
// column when off is past the text.
func colAtByte(line gcstring.GCString, off int) gcstring.ColIndex {
	i, ok := line.SegIndexAtByte(gcstring.ByteIndex(off))
	if !ok {
		return line.DisplayWidth().AsEndCol()
	}
	col, _ := line.ColAtSeg(i)
	return col
}

func textForLinesRange(lines []gcstring.GCString, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	startRow, endRow := r.Start.Row, r.End.Row
	if startRow == endRow {
		line := lines[startRow]
		return line.String()[byteAtCol(line, r.Start.Col):byteAtCol(line, r.End.Col)]
	}

	var sb strings.Builder
	for row := startRow; row <= endRow; row++ {
		if row > startRow {
			sb.WriteByte('\n')
		}
		line := lines[row]
		from, to := 0, line.ByteLen()
		if row == startRow {
			from = byteAtCol(line, r.Start.Col)
		}
		if row == endRow {
			to = byteAtCol(line, r.End.Col)
		}
		sb.WriteString(line.String()[from:to])
	}
	return sb.String()
}
