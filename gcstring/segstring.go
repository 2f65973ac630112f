package gcstring

// SegString is a copy of one cluster taken out of a GCString, with its width
// and the column it started at in the source.
type SegString struct {
	String  GCString
	Width   ColWidth
	StartAt ColIndex
}

// Equal compares text, width and source column.
func (s SegString) Equal(o SegString) bool {
	return s.String.Equal(o.String) && s.Width == o.Width && s.StartAt == o.StartAt
}

func (g GCString) segString(seg Seg) SegString {
	text := g.SegText(seg)
	return SegString{
		String: GCString{
			text: text,
			segs: []Seg{{
				StartByte: 0,
				EndByte:   ByteIndex(len(text)),
				Width:     seg.Width,
				Index:     0,
				Size:      len(text),
				StartCol:  0,
			}},
			width: seg.Width,
			uni:   g.uni,
		},
		Width:   seg.Width,
		StartAt: seg.StartCol,
	}
}

// StringAt returns the cluster starting at col. It misses when col is past
// the end or points into the middle of a wide cluster.
func (g GCString) StringAt(col ColIndex) (SegString, bool) {
	seg, ok := g.SegAtCol(col)
	if !ok || seg.StartCol != col {
		return SegString{}, false
	}
	return g.segString(seg), true
}

// StringLeftOf returns the cluster immediately left of col. A col at or past
// the end yields the last cluster.
func (g GCString) StringLeftOf(col ColIndex) (SegString, bool) {
	if len(g.segs) == 0 || col <= 0 {
		return SegString{}, false
	}
	if col >= g.width.AsEndCol() {
		return g.StringAtEnd()
	}
	seg, ok := g.SegAtCol(col)
	if !ok || seg.Index == 0 {
		return SegString{}, false
	}
	return g.segString(g.segs[seg.Index-1]), true
}

// StringRightOf returns the cluster immediately right of the one at col.
func (g GCString) StringRightOf(col ColIndex) (SegString, bool) {
	seg, ok := g.SegAtCol(col)
	if !ok || int(seg.Index)+1 >= len(g.segs) {
		return SegString{}, false
	}
	return g.segString(g.segs[seg.Index+1]), true
}

// StringAtEnd returns the last cluster.
func (g GCString) StringAtEnd() (SegString, bool) {
	if len(g.segs) == 0 {
		return SegString{}, false
	}
	return g.segString(g.segs[len(g.segs)-1]), true
}
