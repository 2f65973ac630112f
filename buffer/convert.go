package buffer

import (
	"unicode/utf8"

	"github.com/iw2rmb/tuitext/gcstring"
)

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

type NewlineMode uint8

const (
	NewlineAsSingleRune NewlineMode = iota
)

// ConvertPolicy controls how offsets outside the document, or inside a
// grapheme cluster, are treated.
//
// With OffsetError an out-of-range offset or one that falls inside a cluster
// misses. With OffsetClamp the offset is pulled into range first; an offset
// inside a cluster still misses.
type ConvertPolicy struct {
	ClampMode   OffsetClampMode
	NewlineMode NewlineMode
}

type GapBias uint8

const (
	GapBiasLeft GapBias = iota
	GapBiasRight
)

// Gap is a position between two runes of the document text.
type Gap struct {
	RuneOffset int
	Bias       GapBias
}

func (b *Buffer) PosFromByteOffset(off int, p ConvertPolicy) (Pos, bool) {
	if !validNewlineMode(p.NewlineMode) {
		return Pos{}, false
	}

	off, ok := clampOffset(off, b.docByteLen(), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	return b.offsetToPos(off, byteLen, func(_ gcstring.GCString, local int) int { return local })
}

func (b *Buffer) ByteOffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	if !validNewlineMode(p.NewlineMode) {
		return 0, false
	}

	pos, ok := b.normalizePosForMode(pos, p.ClampMode)
	if !ok {
		return 0, false
	}
	off := 0
	for row := 0; row < pos.Row; row++ {
		off += b.lines[row].ByteLen() + 1
	}
	return off + byteAtCol(b.lines[pos.Row], pos.Col), true
}

func (b *Buffer) PosFromRuneOffset(off int, p ConvertPolicy) (Pos, bool) {
	if !validNewlineMode(p.NewlineMode) {
		return Pos{}, false
	}

	off, ok := clampOffset(off, b.docRuneLen(), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	return b.offsetToPos(off, runeLen, runeToByte)
}

func (b *Buffer) RuneOffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	if !validNewlineMode(p.NewlineMode) {
		return 0, false
	}

	pos, ok := b.normalizePosForMode(pos, p.ClampMode)
	if !ok {
		return 0, false
	}
	off := 0
	for row := 0; row < pos.Row; row++ {
		off += runeLen(b.lines[row]) + 1
	}
	line := b.lines[pos.Row]
	return off + utf8.RuneCountInString(line.String()[:byteAtCol(line, pos.Col)]), true
}

func (b *Buffer) GapFromPos(pos Pos, bias GapBias) (Gap, bool) {
	if !validGapBias(bias) {
		return Gap{}, false
	}
	off, ok := b.RuneOffsetFromPos(pos, ConvertPolicy{
		ClampMode:   OffsetError,
		NewlineMode: NewlineAsSingleRune,
	})
	if !ok {
		return Gap{}, false
	}
	return Gap{RuneOffset: off, Bias: bias}, true
}

func (b *Buffer) PosFromGap(g Gap, p ConvertPolicy) (Pos, bool) {
	if !validGapBias(g.Bias) {
		return Pos{}, false
	}
	return b.PosFromRuneOffset(g.RuneOffset, p)
}

func validNewlineMode(mode NewlineMode) bool {
	return mode == NewlineAsSingleRune
}

func validGapBias(bias GapBias) bool {
	return bias == GapBiasLeft || bias == GapBiasRight
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		if off < 0 {
			return 0, true
		}
		if off > max {
			return max, true
		}
		return off, true
	default:
		return 0, false
	}
}

func (b *Buffer) normalizePosForMode(pos Pos, mode OffsetClampMode) (Pos, bool) {
	switch mode {
	case OffsetError:
		clamped := b.clampPos(pos)
		if clamped != pos {
			return Pos{}, false
		}
		return pos, true
	case OffsetClamp:
		return b.clampPos(pos), true
	default:
		return Pos{}, false
	}
}

func byteLen(line gcstring.GCString) int { return line.ByteLen() }

func runeLen(line gcstring.GCString) int { return utf8.RuneCountInString(line.String()) }

func runeToByte(line gcstring.GCString, n int) int {
	s := line.String()
	off := 0
	for i := 0; i < n && off < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}

func (b *Buffer) docByteLen() int {
	total := len(b.lines) - 1
	for _, line := range b.lines {
		total += line.ByteLen()
	}
	return total
}

func (b *Buffer) docRuneLen() int {
	total := len(b.lines) - 1
	for _, line := range b.lines {
		total += runeLen(line)
	}
	return total
}

// offsetToPos walks rows in units measured by size, then resolves the
// remainder inside the row through its cluster table.
func (b *Buffer) offsetToPos(off int, size func(gcstring.GCString) int, toByte func(gcstring.GCString, int) int) (Pos, bool) {
	cur := 0
	for row, line := range b.lines {
		n := size(line)
		if off <= cur+n {
			local := toByte(line, off-cur)
			if local == line.ByteLen() {
				return Pos{Row: row, Col: line.DisplayWidth().AsEndCol()}, true
			}
			i, ok := line.SegIndexAtByte(gcstring.ByteIndex(local))
			if !ok {
				return Pos{}, false
			}
			seg, _ := line.Get(i)
			if int(seg.StartByte) != local {
				return Pos{}, false
			}
			col, _ := line.ColAtSeg(i)
			return Pos{Row: row, Col: col}, true
		}
		cur += n + 1
	}
	return Pos{}, false
}
