package gcstring

// Seg describes one grapheme cluster of a GCString in all three coordinate
// spaces.
//
// EndByte-StartByte == Size, segments are byte-contiguous, and StartCol is
// the sum of the widths of all preceding segments.
type Seg struct {
	StartByte ByteIndex
	EndByte   ByteIndex
	Width     ColWidth
	Index     SegIndex
	Size      int
	StartCol  ColIndex
}

// EndCol returns the first column after the segment.
func (s Seg) EndCol() ColIndex { return s.StartCol.Add(s.Width) }

// ContainsCol reports whether col falls within [StartCol, EndCol).
func (s Seg) ContainsCol(col ColIndex) bool {
	return col >= s.StartCol && col < s.EndCol()
}
