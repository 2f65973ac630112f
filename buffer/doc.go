// Package buffer implements the document model behind the editor.
//
// Lines are stored as gcstring.GCString values. A Pos addresses a row and a
// display column; the column always sits on a grapheme cluster boundary.
// Ranges are half-open selections in document coordinates: [Start, End).
package buffer
