package gcstring

import "strings"

// TruncEndToFit returns the longest prefix of g that fits in width columns.
func (g GCString) TruncEndToFit(width ColWidth) string {
	if width >= g.width {
		return g.text
	}
	var acc ColWidth
	end := ByteIndex(0)
	for _, seg := range g.segs {
		if acc+seg.Width > width {
			break
		}
		acc += seg.Width
		end = seg.EndByte
	}
	return g.text[:end]
}

// TruncEndBy drops clusters from the end until at least width columns have
// been removed.
func (g GCString) TruncEndBy(width ColWidth) string {
	if width <= 0 {
		return g.text
	}
	end := ByteIndex(len(g.text))
	remaining := width
	for i := len(g.segs) - 1; i >= 0 && remaining > 0; i-- {
		end = g.segs[i].StartByte
		remaining = remaining.Sub(g.segs[i].Width)
	}
	return g.text[:end]
}

// TruncStartBy drops clusters from the start until at least width columns
// have been removed. A wide cluster straddling the cut is dropped whole.
func (g GCString) TruncStartBy(width ColWidth) string {
	if width <= 0 {
		return g.text
	}
	start := ByteIndex(0)
	remaining := width
	for i := 0; i < len(g.segs) && remaining > 0; i++ {
		start = g.segs[i].EndByte
		remaining = remaining.Sub(g.segs[i].Width)
	}
	return g.text[start:]
}

// Clip returns the clusters that lie entirely within the columns
// [start, start+width). Clusters that begin left of start are skipped, and
// clusters that would overflow the right edge are cut off whole.
func (g GCString) Clip(start ColIndex, width ColWidth) string {
	if width <= 0 || len(g.segs) == 0 {
		return ""
	}
	i := 0
	for i < len(g.segs) && g.segs[i].StartCol < start {
		i++
	}
	from := i
	var acc ColWidth
	for i < len(g.segs) && acc+g.segs[i].Width <= width {
		acc += g.segs[i].Width
		i++
	}
	if i == from {
		return ""
	}
	return g.text[g.segs[from].StartByte:g.segs[i-1].EndByte]
}

// PadStartToFit prefixes copies of pad until g fills width columns, or as
// close as whole copies of pad allow.
func (g GCString) PadStartToFit(pad string, width ColWidth) string {
	p, ok := g.PostfixPaddingFor(pad, width)
	if !ok {
		return g.text
	}
	return p + g.text
}

// PadEndToFit appends copies of pad until g fills width columns, or as close
// as whole copies of pad allow.
func (g GCString) PadEndToFit(pad string, width ColWidth) string {
	p, ok := g.PostfixPaddingFor(pad, width)
	if !ok {
		return g.text
	}
	return g.text + p
}

// PostfixPaddingFor returns the padding PadEndToFit would append. It misses
// when g already fills width or pad has no width.
func (g GCString) PostfixPaddingFor(pad string, width ColWidth) (string, bool) {
	missing := width.Sub(g.width)
	if missing == 0 {
		return "", false
	}
	pw := g.uni.Width(pad)
	if pw <= 0 {
		return "", false
	}
	n := int(missing / pw)
	if n == 0 {
		return "", false
	}
	return strings.Repeat(pad, n), true
}
