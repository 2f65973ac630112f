package gcstring

import "sort"

// GCString is an immutable string together with its grapheme cluster
// segmentation.
//
// Segments partition the text exactly: concatenating the text of every
// segment in order reproduces String().
type GCString struct {
	text  string
	segs  []Seg
	width ColWidth
	uni   *Unicode
}

// Derive segments s with the same capabilities that built g.
func (g GCString) Derive(s string) GCString {
	if g.uni == nil {
		return New(s)
	}
	return g.uni.New(s)
}

// String returns the underlying text.
func (g GCString) String() string { return g.text }

// Len returns the number of grapheme clusters.
func (g GCString) Len() int { return len(g.segs) }

// IsEmpty reports whether g has no clusters.
func (g GCString) IsEmpty() bool { return len(g.segs) == 0 }

// MaxSegIndex returns the index of the last cluster, or 0 when g is empty.
func (g GCString) MaxSegIndex() SegIndex {
	if len(g.segs) == 0 {
		return 0
	}
	return SegIndex(len(g.segs) - 1)
}

// DisplayWidth returns the sum of all cluster widths.
func (g GCString) DisplayWidth() ColWidth { return g.width }

// ByteLen returns the size of the text in bytes.
func (g GCString) ByteLen() int { return len(g.text) }

// Segs returns the segments in order. The slice is shared and must not be
// modified.
func (g GCString) Segs() []Seg { return g.segs }

// Equal reports whether g and o hold the same text.
func (g GCString) Equal(o GCString) bool { return g.text == o.text }

// Get returns the segment at i.
func (g GCString) Get(i SegIndex) (Seg, bool) {
	if i < 0 || int(i) >= len(g.segs) {
		return Seg{}, false
	}
	return g.segs[i], true
}

// SegText returns the text covered by seg.
func (g GCString) SegText(seg Seg) string {
	ok := seg.StartByte >= 0 && seg.StartByte <= seg.EndByte && int(seg.EndByte) <= len(g.text)
	assertf(ok, "segment [%d,%d) outside buffer of %d bytes", seg.StartByte, seg.EndByte, len(g.text))
	if !ok {
		return ""
	}
	return g.text[seg.StartByte:seg.EndByte]
}

// SegIndexAtByte returns the cluster whose byte span contains b. Interior
// bytes of a multi-byte cluster resolve to that cluster.
func (g GCString) SegIndexAtByte(b ByteIndex) (SegIndex, bool) {
	if b < 0 || int(b) >= len(g.text) {
		return 0, false
	}
	i := sort.Search(len(g.segs), func(i int) bool { return g.segs[i].EndByte > b })
	if i >= len(g.segs) {
		return 0, false
	}
	return g.segs[i].Index, true
}

// SegIndexAtCol returns the cluster whose columns contain col. Columns in the
// middle of a wide cluster resolve to that cluster; zero-width clusters own
// no column.
func (g GCString) SegIndexAtCol(col ColIndex) (SegIndex, bool) {
	if col < 0 || col >= g.width.AsEndCol() {
		return 0, false
	}
	i := sort.Search(len(g.segs), func(i int) bool { return g.segs[i].EndCol() > col })
	if i >= len(g.segs) {
		return 0, false
	}
	return g.segs[i].Index, true
}

// ColAtSeg returns the start column of cluster i.
func (g GCString) ColAtSeg(i SegIndex) (ColIndex, bool) {
	seg, ok := g.Get(i)
	if !ok {
		return 0, false
	}
	return seg.StartCol, true
}

// SegAtCol returns the segment whose columns contain col.
func (g GCString) SegAtCol(col ColIndex) (Seg, bool) {
	i, ok := g.SegIndexAtCol(col)
	if !ok {
		return Seg{}, false
	}
	return g.segs[i], true
}

// CheckInMiddleOfGrapheme returns the segment that col cuts through, if col
// lies inside a wide cluster but not on its first column.
func (g GCString) CheckInMiddleOfGrapheme(col ColIndex) (Seg, bool) {
	seg, ok := g.SegAtCol(col)
	if !ok || col == seg.StartCol {
		return Seg{}, false
	}
	return seg, true
}
