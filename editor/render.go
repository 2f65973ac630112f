package editor

import (
	"math"
	"strconv"
	"strings"

	"github.com/iw2rmb/tuitext/buffer"
	"github.com/iw2rmb/tuitext/gcstring"
	graphemeutil "github.com/iw2rmb/tuitext/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	lines := m.buf.Lines()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(len(lines))
	}

	highlights := m.visibleHighlights(lines, cursor)

	left := max(m.xOffset, 0)
	right := gcstring.ColIndex(math.MaxInt)
	if w := m.contentWidth(len(lines)); w > 0 {
		right = left.Add(w)
	}

	out := make([]string, 0, len(lines))
	for row, line := range lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			num := gcstring.New(strconv.Itoa(row + 1)).PadStartToFit(" ", gcstring.ColWidth(digits))
			sb.WriteString(numStyle.Render(num))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(renderLine(lineRender{
			st:         m.cfg.Style,
			line:       line,
			row:        row,
			cursor:     cursor,
			hasCursor:  m.focused && row == cursor.Row,
			sel:        sel,
			selOK:      selOK,
			highlights: highlights[row],
			left:       left,
			right:      right,
		}))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// visibleHighlights runs the highlighter over the rows inside the viewport.
// Rows outside it, and rows whose highlighter call fails, stay plain.
func (m *Model) visibleHighlights(lines []gcstring.GCString, cursor buffer.Pos) map[int][]HighlightSpan {
	if m.cfg.Highlighter == nil {
		return nil
	}
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return nil
	}
	start := min(max(m.viewport.YOffset, 0), len(lines))
	end := min(start+h, len(lines))

	out := make(map[int][]HighlightSpan, end-start)
	for row := start; row < end; row++ {
		line := lines[row]
		ctx := LineContext{Row: row, Line: line, CursorCol: -1}
		if cursor.Row == row {
			ctx.HasCursor = true
			ctx.CursorCol = cursor.Col
		}
		spans, err := m.cfg.Highlighter.HighlightLine(ctx)
		if err != nil {
			continue
		}
		out[row] = normalizeHighlightSpans(spans, line.DisplayWidth())
	}
	return out
}

type lineRender struct {
	st         Style
	line       gcstring.GCString
	row        int
	cursor     buffer.Pos
	hasCursor  bool
	sel        buffer.Range
	selOK      bool
	highlights []HighlightSpan

	// left and right bound the visible columns, half-open.
	left, right gcstring.ColIndex
}

func renderLine(r lineRender) string {
	st := r.st
	lineEnd := r.line.DisplayWidth().AsEndCol()
	selStart, selEnd, hasSel := selectionColsForRow(r.sel, r.selOK, r.row, lineEnd)

	var sb strings.Builder
	segs := r.line.Segs()
	for i, seg := range segs {
		text := r.line.SegText(seg)

		if seg.Width == 0 {
			if seg.StartCol >= r.left && seg.StartCol < r.right {
				sb.WriteString(st.Text.Render(text))
			}
			continue
		}

		spanL := max(seg.StartCol, r.left)
		spanR := min(seg.EndCol(), r.right)
		if spanL >= spanR {
			if seg.StartCol >= r.right {
				break
			}
			continue
		}

		style := st.Text
		switch {
		case r.hasCursor && seg.StartCol == r.cursor.Col:
			style = st.Cursor
			// Terminals may drop trailing spaces; keep the cursor cell visible.
			if trailingSpaces(r.line, segs[i:]) {
				text = strings.ReplaceAll(text, " ", "\u00a0")
			}
		case hasSel && seg.StartCol < selEnd && seg.EndCol() > selStart:
			style = st.Selection
		default:
			style = spanStyleAt(r.highlights, seg.StartCol, st.Text)
		}

		if spanL != seg.StartCol || spanR != seg.EndCol() {
			// A wide cluster cut by the window edge keeps its columns as blanks.
			sb.WriteString(st.EdgeFill.Inherit(st.Text).Render(strings.Repeat(" ", int(spanR-spanL))))
			continue
		}
		sb.WriteString(style.Render(text))
	}

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if r.hasCursor && r.cursor.Col >= lineEnd && lineEnd >= r.left && lineEnd < r.right {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func trailingSpaces(line gcstring.GCString, segs []gcstring.Seg) bool {
	for _, seg := range segs {
		if !graphemeutil.IsSpace(line.SegText(seg)) {
			return false
		}
	}
	return true
}

func selectionColsForRow(sel buffer.Range, ok bool, row int, lineEnd gcstring.ColIndex) (start, end gcstring.ColIndex, has bool) {
	if !ok {
		return 0, 0, false
	}
	sel = buffer.NormalizeRange(sel)
	if row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineEnd
	if row == sel.Start.Row {
		start = sel.Start.Col
	}
	if row == sel.End.Row {
		end = sel.End.Col
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

func gutterDigits(lineCount int) int {
	return len(strconv.Itoa(max(lineCount, 1)))
}

func (m Model) gutterWidth(lineCount int) int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(lineCount) + 1
}
