package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tuitext/gcstring"
)

type HighlightSpan struct {
	// StartCol and EndCol are display columns in the line, half-open
	// [StartCol, EndCol).
	StartCol gcstring.ColIndex
	EndCol   gcstring.ColIndex
	Style    lipgloss.Style
}

type LineContext struct {
	Row  int
	Line gcstring.GCString

	// CursorCol is the cursor column if the cursor is on this row; otherwise -1.
	CursorCol gcstring.ColIndex
	HasCursor bool
}

type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

// HighlighterFunc adapts a function to the Highlighter interface.
type HighlighterFunc func(ctx LineContext) ([]HighlightSpan, error)

func (f HighlighterFunc) HighlightLine(ctx LineContext) ([]HighlightSpan, error) { return f(ctx) }

func normalizeHighlightSpans(spans []HighlightSpan, width gcstring.ColWidth) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	end := width.AsEndCol()

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := min(max(sp.StartCol, 0), end)
		stop := min(max(sp.EndCol, 0), end)
		if stop < start {
			start, stop = stop, start
		}
		if start == stop {
			continue
		}
		out = append(out, HighlightSpan{StartCol: start, EndCol: stop, Style: sp.Style})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartCol != out[j].StartCol {
			return out[i].StartCol < out[j].StartCol
		}
		return out[i].EndCol < out[j].EndCol
	})

	// Overlapping spans are dropped; the earliest one wins.
	merged := make([]HighlightSpan, 0, len(out))
	for _, sp := range out {
		if len(merged) > 0 && sp.StartCol < merged[len(merged)-1].EndCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func spanStyleAt(spans []HighlightSpan, col gcstring.ColIndex, base lipgloss.Style) lipgloss.Style {
	for _, sp := range spans {
		if col >= sp.StartCol && col < sp.EndCol {
			return sp.Style.Inherit(base)
		}
	}
	return base
}
