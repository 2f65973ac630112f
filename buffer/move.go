package buffer

import (
	"github.com/iw2rmb/tuitext/gcstring"
	"github.com/iw2rmb/tuitext/internal/grapheme"
)

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := b.clampPos(b.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) lineEnd(row int) gcstring.ColIndex {
	return b.lines[row].DisplayWidth().AsEndCol()
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1
	line := b.lines[row]

	switch dir {
	case DirLeft:
		if col > 0 {
			return Pos{Row: row, Col: prevClusterCol(line, col)}
		}
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, Col: b.lineEnd(row - 1)}
	case DirRight:
		if seg, ok := line.SegAtCol(col); ok {
			return Pos{Row: row, Col: seg.EndCol()}
		}
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1}
	case DirUp, DirDown, DirHome, DirEnd:
		return b.moveLine(p, dir)
	default:
		return p
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	line := b.lines[row]

	switch dir {
	case DirLeft:
		return Pos{Row: row, Col: prevWordBoundary(line, col)}
	case DirRight:
		return Pos{Row: row, Col: nextWordBoundary(line, col)}
	case DirHome:
		return Pos{Row: row}
	case DirEnd:
		return Pos{Row: row, Col: b.lineEnd(row)}
	default:
		return p
	}
}

// moveLine keeps the display column on vertical moves; clampPos snaps it
// onto a cluster start of the target row.
func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1

	switch dir {
	case DirHome:
		return Pos{Row: row}
	case DirEnd:
		return Pos{Row: row, Col: b.lineEnd(row)}
	case DirUp:
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, Col: col}
	case DirDown:
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1, Col: col}
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	lastRow := len(b.lines) - 1

	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		return Pos{Row: lastRow, Col: b.lineEnd(lastRow)}
	default:
		return p
	}
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - newline is a hard boundary (so this operates on a single logical line)
func prevWordBoundary(line gcstring.GCString, col gcstring.ColIndex) gcstring.ColIndex {
	segs := line.Segs()
	i := boundaryIndex(segs, col)
	for i > 0 && grapheme.IsSpace(line.SegText(segs[i-1])) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line.SegText(segs[i-1])) {
		i--
	}
	return colAtBoundary(line, i)
}

func nextWordBoundary(line gcstring.GCString, col gcstring.ColIndex) gcstring.ColIndex {
	segs := line.Segs()
	i := boundaryIndex(segs, col)
	for i < len(segs) && grapheme.IsSpace(line.SegText(segs[i])) {
		i++
	}
	for i < len(segs) && !grapheme.IsSpace(line.SegText(segs[i])) {
		i++
	}
	return colAtBoundary(line, i)
}

// boundaryIndex returns the index of the first cluster starting at or after
// col.
func boundaryIndex(segs []gcstring.Seg, col gcstring.ColIndex) int {
	for i, seg := range segs {
		if seg.StartCol >= col {
			return i
		}
	}
	return len(segs)
}

func colAtBoundary(line gcstring.GCString, i int) gcstring.ColIndex {
	if col, ok := line.ColAtSeg(gcstring.SegIndex(i)); ok {
		return col
	}
	return line.DisplayWidth().AsEndCol()
}
