package gcstring

import (
	"unicode/utf8"

	"github.com/iw2rmb/tuitext/internal/grapheme"
)

// Segmenter finds grapheme cluster boundaries.
//
// Step returns the first cluster of s, the remainder and the state for the
// next call; the first call on a string passes state -1.
type Segmenter interface {
	Step(s string, state int) (cluster, rest string, newState int)
}

// Measurer reports the terminal cell width (0, 1 or 2) of one cluster.
type Measurer interface {
	Width(cluster string) int
}

// Unicode bundles the capabilities used to segment and measure text.
//
// A nil field falls back to the default uniseg / go-runewidth implementation.
// Values are read-only after construction and safe for concurrent use.
type Unicode struct {
	Segmenter Segmenter
	Measurer  Measurer
}

// MeasureOptions configures the default width table.
type MeasureOptions = grapheme.MeasureOptions

// DefaultUnicode returns capabilities backed by uniseg boundaries and a
// locale-independent go-runewidth table.
func DefaultUnicode() *Unicode {
	return NewUnicode(MeasureOptions{})
}

// NewUnicode returns the default capabilities with a width table configured
// by opt.
func NewUnicode(opt MeasureOptions) *Unicode {
	return &Unicode{
		Segmenter: grapheme.Boundaries{},
		Measurer:  grapheme.NewCells(opt),
	}
}

var defaultUnicode = DefaultUnicode()

func (u *Unicode) segmenter() Segmenter {
	if u == nil || u.Segmenter == nil {
		return defaultUnicode.Segmenter
	}
	return u.Segmenter
}

func (u *Unicode) measurer() Measurer {
	if u == nil || u.Measurer == nil {
		return defaultUnicode.Measurer
	}
	return u.Measurer
}

// New segments s using the default capabilities.
func New(s string) GCString {
	return defaultUnicode.New(s)
}

// Lines segments each string in ss.
func Lines(ss ...string) []GCString {
	out := make([]GCString, 0, len(ss))
	for _, s := range ss {
		out = append(out, New(s))
	}
	return out
}

// Width returns the display width of s.
func Width(s string) ColWidth {
	return defaultUnicode.Width(s)
}

// Width returns the display width of s under u.
func (u *Unicode) Width(s string) ColWidth {
	if isASCII(s) {
		return ColWidth(len(s))
	}
	m := u.measurer()
	seg := u.segmenter()
	var w ColWidth
	for state, rest, cluster := -1, s, ""; rest != ""; {
		cluster, rest, state = step(seg, rest, state)
		w += clusterWidth(m, cluster)
	}
	return w
}

// New segments s into grapheme clusters. It accepts any string; invalid
// UTF-8 sequences become clusters of their own.
func (u *Unicode) New(s string) GCString {
	if isASCII(s) {
		return newASCII(u, s)
	}

	m := u.measurer()
	seg := u.segmenter()
	segs := make([]Seg, 0, utf8.RuneCountInString(s))

	var (
		off ByteIndex
		col ColIndex
	)
	for state, rest, cluster := -1, s, ""; rest != ""; {
		cluster, rest, state = step(seg, rest, state)
		w := clusterWidth(m, cluster)
		size := len(cluster)
		segs = append(segs, Seg{
			StartByte: off,
			EndByte:   off + ByteIndex(size),
			Width:     w,
			Index:     SegIndex(len(segs)),
			Size:      size,
			StartCol:  col,
		})
		off += ByteIndex(size)
		col = col.Add(w)
	}

	return GCString{
		text:  s,
		segs:  segs,
		width: col.AsWidth(),
		uni:   u,
	}
}

// step advances the segmenter by one cluster, forcing progress of at least one
// rune if a custom Segmenter returns an empty cluster.
func step(seg Segmenter, s string, state int) (cluster, rest string, newState int) {
	cluster, rest, newState = seg.Step(s, state)
	if cluster == "" || len(cluster)+len(rest) != len(s) {
		_, n := utf8.DecodeRuneInString(s)
		return s[:n], s[n:], -1
	}
	return cluster, rest, newState
}

// clusterWidth measures one cluster. ASCII clusters, control bytes and tabs
// included, take one column per byte so a line measures the same whether or
// not it takes the ASCII fast path.
func clusterWidth(m Measurer, cluster string) ColWidth {
	if isASCII(cluster) {
		return ColWidth(len(cluster))
	}
	return max(ColWidth(m.Width(cluster)), 0)
}

func newASCII(u *Unicode, s string) GCString {
	segs := make([]Seg, len(s))
	for i := range segs {
		segs[i] = Seg{
			StartByte: ByteIndex(i),
			EndByte:   ByteIndex(i + 1),
			Width:     1,
			Index:     SegIndex(i),
			Size:      1,
			StartCol:  ColIndex(i),
		}
	}
	return GCString{
		text:  s,
		segs:  segs,
		width: ColWidth(len(s)),
		uni:   u,
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
