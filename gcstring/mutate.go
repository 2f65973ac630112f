package gcstring

import "strings"

// InsertChunkAtCol inserts chunk before the cluster at col, or appends it
// when col is at or past the end. A col inside a wide cluster inserts before
// that cluster. Zero-width clusters own no column, so chunk lands after any
// that precede the cluster at col. It returns the new text and the display
// width of chunk.
func (g GCString) InsertChunkAtCol(col ColIndex, chunk string) (string, ColWidth) {
	w := g.uni.Width(chunk)
	if chunk == "" {
		return g.text, 0
	}

	at := len(g.text)
	if seg, ok := g.SegAtCol(max(col, 0)); ok {
		at = int(seg.StartByte)
	}

	var sb strings.Builder
	sb.Grow(len(g.text) + len(chunk))
	sb.WriteString(g.text[:at])
	sb.WriteString(chunk)
	sb.WriteString(g.text[at:])
	return sb.String(), w
}

// DeleteCharAtCol removes the one cluster at col. It misses when g is empty
// or col is past the end.
func (g GCString) DeleteCharAtCol(col ColIndex) (string, bool) {
	if len(g.segs) == 0 {
		return "", false
	}
	seg, ok := g.SegAtCol(col)
	if !ok {
		return "", false
	}
	if len(g.segs) == 1 {
		return "", true
	}
	return g.text[:seg.StartByte] + g.text[seg.EndByte:], true
}

// SplitAtDisplayCol splits the text at the start of the cluster containing
// col. A col past the end puts everything on the left. It misses only when g
// is empty.
func (g GCString) SplitAtDisplayCol(col ColIndex) (left, right string, ok bool) {
	if col < 0 {
		col = 0
	}
	if seg, found := g.SegAtCol(col); found {
		return g.text[:seg.StartByte], g.text[seg.StartByte:], true
	}
	if g.text == "" {
		return "", "", false
	}
	return g.text, "", true
}
