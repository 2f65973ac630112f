package editor

import "github.com/iw2rmb/tuitext/buffer"

type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// Edits lists the text edits behind this event. It is empty when only
	// the cursor or selection moved.
	Edits []buffer.AppliedEdit

	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Text:    b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	if ch, ok := b.LastChange(); ok && ch.VersionAfter == ev.Version {
		ev.Edits = ch.AppliedEdits
	}
	return ev
}
