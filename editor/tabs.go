package editor

import (
	"strings"

	"github.com/iw2rmb/tuitext/gcstring"
)

// expandTabs replaces tabs with spaces up to the next tab stop. startCol is
// the display column the first line of text begins at.
func expandTabs(uni *gcstring.Unicode, text string, tabWidth int, startCol gcstring.ColIndex) string {
	if !strings.Contains(text, "\t") {
		return text
	}
	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}

	var sb strings.Builder
	for i, raw := range strings.Split(text, "\n") {
		col := 0
		if i == 0 {
			col = int(startCol)
		} else {
			sb.WriteByte('\n')
		}
		line := uni.New(raw)
		for _, seg := range line.Segs() {
			s := line.SegText(seg)
			if s == "\t" {
				n := tabWidth - col%tabWidth
				sb.WriteString(strings.Repeat(" ", n))
				col += n
				continue
			}
			sb.WriteString(s)
			col += int(seg.Width)
		}
	}
	return sb.String()
}
