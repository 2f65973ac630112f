package editor

import "github.com/muesli/termenv"

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; failures are ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// TerminalClipboard copies to the host terminal's clipboard with an OSC 52
// sequence. Terminals seldom answer clipboard queries, so pastes come from
// the last text copied through it.
type TerminalClipboard struct {
	out  *termenv.Output
	last string
}

// NewTerminalClipboard writes to out, or to termenv's default output when out
// is nil.
func NewTerminalClipboard(out *termenv.Output) *TerminalClipboard {
	if out == nil {
		out = termenv.DefaultOutput()
	}
	return &TerminalClipboard{out: out}
}

func (c *TerminalClipboard) ReadText() (string, error) { return c.last, nil }

func (c *TerminalClipboard) WriteText(s string) error {
	c.last = s
	c.out.Copy(s)
	return nil
}
