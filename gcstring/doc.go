// Package gcstring provides GCString, a UTF-8 string segmented into grapheme
// clusters, with conversions between the three coordinate spaces a terminal
// UI has to juggle:
//
//   - ByteIndex: offset into the UTF-8 buffer.
//   - SegIndex: ordinal of a grapheme cluster (a user-perceived character).
//   - ColIndex / ColWidth: terminal display columns.
//
// Each space has its own type so that a byte offset cannot be passed where a
// column is expected. Lookups that can miss return (T, false) and never panic.
//
// GCString values are immutable. Editing operations (InsertChunkAtCol,
// DeleteCharAtCol, SplitAtDisplayCol) return new text; callers rebuild a
// GCString from it with Derive.
package gcstring
