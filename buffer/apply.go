package buffer

// Apply runs edits in order as one undo step and returns how many of them
// changed the text. Each range is read against the document as left by the
// edits before it, clamped into bounds and snapped onto cluster starts.
//
// After an effective edit the cursor sits at the end of the last inserted
// text and the selection is cleared. When nothing changes, neither does the
// version.
func (b *Buffer) Apply(edits ...TextEdit) (applied int) {
	if len(edits) == 0 {
		return 0
	}

	prev := b.snapshot()
	change := b.beginChange()
	cursor := b.cursor

	for _, e := range edits {
		next, ae, ok := b.replaceRange(e.Range, e.Text)
		if !ok {
			continue
		}
		applied++
		cursor = next
		change.addAppliedEdit(ae)
	}
	if applied == 0 {
		return 0
	}

	b.cursor = b.clampPos(cursor)
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
	b.commitChange(change)
	return applied
}
