package buffer

import "github.com/iw2rmb/tuitext/gcstring"

// Pos points into the document by row and display column. Row is 0-based.
type Pos struct {
	Row int
	Col gcstring.ColIndex
}

// Range is a half-open selection in document coordinates: [Start, End).
// Start <= End in document order.
type Range struct {
	Start Pos
	End   Pos
}

// TextEdit replaces the text in Range with Text (which may contain '\n').
type TextEdit struct {
	Range Range
	Text  string
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// ClampPos clamps p into lines.
//
// The returned Pos always satisfies:
// - 0 <= Row < len(lines) (with len(lines) treated as at least 1)
// - 0 <= Col <= width of the row, on the start column of a cluster or at
// the end of the row
func ClampPos(p Pos, lines []gcstring.GCString) Pos {
	if len(lines) == 0 {
		return Pos{}
	}
	row := min(max(p.Row, 0), len(lines)-1)
	return Pos{Row: row, Col: snapCol(lines[row], p.Col)}
}

func ClampRange(r Range, lines []gcstring.GCString) Range {
	return Range{
		Start: ClampPos(r.Start, lines),
		End:   ClampPos(r.End, lines),
	}
}

// snapCol moves col onto the start of the cluster that covers it.
func snapCol(line gcstring.GCString, col gcstring.ColIndex) gcstring.ColIndex {
	if col <= 0 {
		return 0
	}
	end := line.DisplayWidth().AsEndCol()
	if col >= end {
		return end
	}
	if seg, ok := line.SegAtCol(col); ok {
		return seg.StartCol
	}
	return end
}

// byteAtCol returns the byte offset in line where col starts. It resolves
// columns the way the gcstring mutators do: zero-width clusters before the
// cluster at col stay on the left.
func byteAtCol(line gcstring.GCString, col gcstring.ColIndex) int {
	if seg, ok := line.SegAtCol(max(col, 0)); ok {
		return int(seg.StartByte)
	}
	return line.ByteLen()
}
