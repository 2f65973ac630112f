package gcstring

// ByteIndex is an offset into a UTF-8 encoded buffer.
type ByteIndex int

// SegIndex is the ordinal position of a grapheme cluster within a GCString.
type SegIndex int

// ColIndex is a 0-based terminal display column.
type ColIndex int

// ColWidth is a number of terminal display columns.
type ColWidth int

// Add returns the column w columns to the right of c.
func (c ColIndex) Add(w ColWidth) ColIndex { return c + ColIndex(w) }

// Sub returns the column w columns to the left of c, stopping at column 0.
func (c ColIndex) Sub(w ColWidth) ColIndex {
	if ColIndex(w) >= c {
		return 0
	}
	return c - ColIndex(w)
}

// AsWidth returns the number of columns to the left of c.
func (c ColIndex) AsWidth() ColWidth { return ColWidth(c) }

// Sub returns w - o, stopping at zero.
func (w ColWidth) Sub(o ColWidth) ColWidth {
	if o >= w {
		return 0
	}
	return w - o
}

// AsEndCol returns the first column past a span of w columns starting at 0.
func (w ColWidth) AsEndCol() ColIndex { return ColIndex(w) }
