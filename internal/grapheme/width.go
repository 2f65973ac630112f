package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// MeasureOptions selects the East Asian Width conventions used for cell widths.
type MeasureOptions struct {
	// EastAsianAmbiguousWide treats ambiguous-width runes (e.g. "§", "±") as
	// two cells, as CJK terminals do.
	EastAsianAmbiguousWide bool

	// StrictEmojiNeutral keeps emoji with neutral East Asian Width at one cell.
	StrictEmojiNeutral bool
}

// Cells measures terminal cell widths of grapheme clusters.
//
// It owns its own runewidth.Condition instead of the package-level default,
// whose behavior depends on the process locale.
type Cells struct {
	cond *runewidth.Condition
}

// NewCells returns a width table configured by opt.
func NewCells(opt MeasureOptions) *Cells {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = opt.EastAsianAmbiguousWide
	cond.StrictEmojiNeutral = opt.StrictEmojiNeutral
	return &Cells{cond: cond}
}

// Width returns the number of terminal cells cluster occupies: 0, 1 or 2.
//
// runewidth reports zero for some emoji sequences that terminals draw; uniseg
// is consulted as a fallback in that case.
func (c *Cells) Width(cluster string) int {
	if cluster == "" {
		return 0
	}
	w := c.cond.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	if w > 2 {
		w = 2
	}
	return w
}
