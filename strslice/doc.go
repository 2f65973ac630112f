// Package strslice presents an array of lines as one character stream,
// without joining them.
//
// The stream a Slice denotes is the lines joined with '\n', plus one
// trailing '\n' when there are two or more lines. A single line gets no
// trailing newline. The newlines are synthesized on the fly; the backing
// lines are borrowed and never modified.
//
// Slice is a small value. Copy it to keep a position for backtracking.
package strslice
