package parse

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
	"unsafe"
)

// Str is an Input over a single contiguous string.
type Str struct {
	src        string
	start, end int
}

// NewStr returns an Input covering all of s.
func NewStr(s string) Str {
	return Str{src: s, end: len(s)}
}

func (s Str) rest() string { return s.src[s.start:s.end] }

// Current returns the first rune left.
func (s Str) Current() (rune, bool) {
	if s.start >= s.end {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.rest())
	return r, true
}

// Len counts the runes left. It is linear in the remaining length.
func (s Str) Len() int { return utf8.RuneCountInString(s.rest()) }

// byteOffset returns the byte length of the first n runes of the input.
func (s Str) byteOffset(n int) int {
	rest := s.rest()
	off := 0
	for i := 0; i < n && off < len(rest); i++ {
		_, size := utf8.DecodeRuneInString(rest[off:])
		off += size
	}
	return off
}

// Take keeps the first n runes.
func (s Str) Take(n int) Str {
	if n < 0 {
		n = 0
	}
	s.end = s.start + s.byteOffset(n)
	return s
}

// TakeFrom drops the first n runes.
func (s Str) TakeFrom(n int) Str {
	if n < 0 {
		n = 0
	}
	s.start += s.byteOffset(n)
	return s
}

// TakeSplit returns Take(n) and TakeFrom(n).
func (s Str) TakeSplit(n int) (taken, rest Str) {
	return s.Take(n), s.TakeFrom(n)
}

// Compare matches target at the front, rune by rune.
func (s Str) Compare(target string) CompareResult {
	return compareRunes(s.rest(), target, false)
}

// CompareNoCase is Compare with simple case folding.
func (s Str) CompareNoCase(target string) CompareResult {
	return compareRunes(s.rest(), target, true)
}

// FindSubstring returns the rune position of the first occurrence of target.
func (s Str) FindSubstring(target string) (int, bool) {
	rest := s.rest()
	i := strings.Index(rest, target)
	if i < 0 {
		return 0, false
	}
	return utf8.RuneCountInString(rest[:i]), true
}

// Offset returns the runes between s and other. Both must be cut from the
// same NewStr value; equal text in a different string does not count.
func (s Str) Offset(other Str) int {
	if !s.sameSource(other) || other.start < s.start {
		return 0
	}
	return utf8.RuneCountInString(s.src[s.start:other.start])
}

// IterRunes yields rune positions and runes.
func (s Str) IterRunes() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		i := 0
		for _, r := range s.rest() {
			if !yield(i, r) {
				return
			}
			i++
		}
	}
}

// String returns the remaining text without copying it.
func (s Str) String() string { return s.rest() }

func (s Str) sameSource(o Str) bool {
	return len(s.src) == len(o.src) && unsafe.StringData(s.src) == unsafe.StringData(o.src)
}

func compareRunes(have, target string, fold bool) CompareResult {
	for _, want := range target {
		if have == "" {
			return CompareIncomplete
		}
		got, size := utf8.DecodeRuneInString(have)
		if !RuneEqual(got, want, fold) {
			return CompareError
		}
		have = have[size:]
	}
	return CompareOK
}

// RuneEqual compares two runes, optionally ignoring case.
func RuneEqual(a, b rune, fold bool) bool {
	if a == b {
		return true
	}
	return fold && unicode.ToLower(a) == unicode.ToLower(b)
}
