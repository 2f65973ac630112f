package strslice

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/tuitext/gcstring"
	"github.com/iw2rmb/tuitext/parse"
)

// Line is any element that can expose its text.
type Line interface {
	String() string
}

var _ parse.Input[Slice[gcstring.GCString]] = Slice[gcstring.GCString]{}

// Slice is a cursor over a borrowed array of lines.
type Slice[L Line] struct {
	lines []L

	lineIndex int
	charIndex int // runes into the current line
	byteIndex int // bytes into the current line, kept in step with charIndex

	maxLen  int
	bounded bool

	totalSize int
	taken     int
}

// New returns a Slice positioned at the start of lines.
func New[L Line](lines []L) Slice[L] {
	return Slice[L]{
		lines:     lines,
		totalSize: streamSize(lines),
	}
}

// WithLimit returns a Slice positioned at rune char of line, covering at
// most maxLen characters. A negative maxLen means no limit. Out-of-range
// positions are clamped.
func WithLimit[L Line](lines []L, line, char, maxLen int) Slice[L] {
	s := New(lines)
	if line < 0 {
		line = 0
	}
	if char < 0 {
		char = 0
	}
	for i := 0; i < line && i < len(lines); i++ {
		s.taken += utf8.RuneCountInString(lines[i].String())
		if hasNewlines(lines) {
			s.taken++
		}
	}
	if line >= len(lines) {
		s.lineIndex = len(lines)
		s.taken = s.totalSize
	} else {
		s.lineIndex = line
		text := lines[line].String()
		for s.charIndex < char && s.byteIndex < len(text) {
			_, size := utf8.DecodeRuneInString(text[s.byteIndex:])
			s.byteIndex += size
			s.charIndex++
		}
		s.taken += s.charIndex
	}
	if maxLen >= 0 {
		s.bounded = true
		s.maxLen = min(maxLen, s.Len())
	}
	return s
}

func streamSize[L Line](lines []L) int {
	n := 0
	for _, l := range lines {
		n += utf8.RuneCountInString(l.String())
	}
	if hasNewlines(lines) {
		n += len(lines)
	}
	return n
}

// hasNewlines reports whether lines get synthetic newlines: one after every
// line, the last included, when there are at least two.
func hasNewlines[L Line](lines []L) bool { return len(lines) >= 2 }

// Lines returns the backing lines.
func (s Slice[L]) Lines() []L { return s.lines }

// Position returns the line index and rune index within that line.
func (s Slice[L]) Position() (line, char int) { return s.lineIndex, s.charIndex }

type lineState uint8

const (
	withinLineContent lineState = iota
	atEndOfLine
	pastEndOfLine
)

func (s Slice[L]) state() (lineState, string) {
	if s.lineIndex >= len(s.lines) {
		return pastEndOfLine, ""
	}
	text := s.lines[s.lineIndex].String()
	if s.byteIndex < len(text) {
		return withinLineContent, text
	}
	return atEndOfLine, text
}

// Current returns the character under the cursor, synthesizing '\n' at the
// end of a line when the stream has newlines.
func (s Slice[L]) Current() (rune, bool) {
	if s.bounded && s.maxLen == 0 {
		return 0, false
	}
	st, text := s.state()
	switch st {
	case withinLineContent:
		r, _ := utf8.DecodeRuneInString(text[s.byteIndex:])
		return r, true
	case atEndOfLine:
		if hasNewlines(s.lines) {
			return '\n', true
		}
	}
	return 0, false
}

// Advance moves past the current character. It does nothing once the
// stream or the budget is exhausted.
func (s *Slice[L]) Advance() {
	if s.bounded && s.maxLen == 0 {
		return
	}
	st, text := s.state()
	switch st {
	case withinLineContent:
		_, size := utf8.DecodeRuneInString(text[s.byteIndex:])
		s.byteIndex += size
		s.charIndex++
	case atEndOfLine:
		if !hasNewlines(s.lines) {
			return
		}
		// Past the last line's trailing newline the cursor rests at
		// lineIndex == len(lines).
		s.lineIndex++
		s.charIndex = 0
		s.byteIndex = 0
	default:
		return
	}
	s.taken++
	if s.bounded {
		s.maxLen--
	}
}

// advanceBy moves forward n characters, skipping whole lines at a time.
func (s *Slice[L]) advanceBy(n int) {
	for n > 0 && !(s.bounded && s.maxLen == 0) {
		st, text := s.state()
		switch st {
		case withinLineContent:
			k := 0
			for k < n && s.byteIndex < len(text) && !(s.bounded && s.maxLen == k) {
				_, size := utf8.DecodeRuneInString(text[s.byteIndex:])
				s.byteIndex += size
				k++
			}
			s.charIndex += k
			s.taken += k
			if s.bounded {
				s.maxLen -= k
			}
			n -= k
		case atEndOfLine:
			if !hasNewlines(s.lines) {
				return
			}
			s.Advance()
			n--
		default:
			return
		}
	}
}

// Len returns the number of characters left, within the budget if one is set.
func (s Slice[L]) Len() int {
	rem := s.totalSize - s.taken
	if rem < 0 {
		rem = 0
	}
	if s.bounded && s.maxLen < rem {
		return s.maxLen
	}
	return rem
}

// IsEmpty reports whether no characters are left.
func (s Slice[L]) IsEmpty() bool { return s.Len() == 0 }

// Take returns a Slice at the same position limited to n characters, or to
// the current budget if that is smaller.
func (s Slice[L]) Take(n int) Slice[L] {
	if n < 0 {
		n = 0
	}
	s.maxLen = min(n, s.Len())
	s.bounded = true
	return s
}

// TakeFrom returns a Slice n characters further on, with no budget.
func (s Slice[L]) TakeFrom(n int) Slice[L] {
	if n > 0 {
		s.advanceBy(min(n, s.Len()))
	}
	s.bounded = false
	s.maxLen = 0
	return s
}

// TakeSplit returns Take(n) and TakeFrom(n).
func (s Slice[L]) TakeSplit(n int) (taken, rest Slice[L]) {
	return s.Take(n), s.TakeFrom(n)
}

// Compare matches target character by character.
func (s Slice[L]) Compare(target string) parse.CompareResult {
	return s.compare(target, false)
}

// CompareNoCase matches target character by character, ignoring case.
func (s Slice[L]) CompareNoCase(target string) parse.CompareResult {
	return s.compare(target, true)
}

func (s Slice[L]) compare(target string, fold bool) parse.CompareResult {
	cur := s
	for _, want := range target {
		got, ok := cur.Current()
		if !ok {
			return parse.CompareIncomplete
		}
		if !parse.RuneEqual(got, want, fold) {
			return parse.CompareError
		}
		cur.Advance()
	}
	return parse.CompareOK
}

// FindSubstring returns the character position, relative to the cursor, of
// the first occurrence of target.
func (s Slice[L]) FindSubstring(target string) (int, bool) {
	hay := s.ExtractToSliceEnd()
	i := strings.Index(hay, target)
	if i < 0 {
		return 0, false
	}
	return utf8.RuneCountInString(hay[:i]), true
}

// ExtractToLineEnd returns the rest of the current line, within the budget.
// It never allocates and never includes a synthetic newline.
func (s Slice[L]) ExtractToLineEnd() string {
	st, text := s.state()
	if st == pastEndOfLine {
		return ""
	}
	rest := text[s.byteIndex:]
	if s.bounded {
		rest = prefixRunes(rest, s.maxLen)
	}
	return rest
}

// ExtractToSliceEnd returns the rest of the stream, within the budget.
//
// When the remainder lies inside the current line the result shares its
// memory. Otherwise the lines and synthetic newlines have no contiguous
// backing buffer and the result is built in a new allocation.
func (s Slice[L]) ExtractToSliceEnd() string {
	n := s.Len()
	if n == 0 {
		return ""
	}
	st, text := s.state()
	if st == pastEndOfLine {
		return ""
	}
	head := text[s.byteIndex:]
	if utf8.RuneCountInString(head) >= n {
		return prefixRunes(head, n)
	}

	var sb strings.Builder
	for li := s.lineIndex; li < len(s.lines) && n > 0; li++ {
		part := s.lines[li].String()
		if li == s.lineIndex {
			part = head
		}
		cnt := utf8.RuneCountInString(part)
		if cnt >= n {
			sb.WriteString(prefixRunes(part, n))
			break
		}
		sb.WriteString(part)
		n -= cnt
		if hasNewlines(s.lines) {
			sb.WriteByte('\n')
			n--
		}
	}
	return sb.String()
}

// Offset returns the number of characters from s to other. It is 0 unless
// both share the same backing array and other is not before s.
func (s Slice[L]) Offset(other Slice[L]) int {
	if !sameLines(s.lines, other.lines) || other.taken < s.taken {
		return 0
	}
	return other.taken - s.taken
}

func sameLines[L Line](a, b []L) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

// IterRunes yields the remaining characters with their positions relative
// to the cursor.
func (s Slice[L]) IterRunes() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		cur := s
		for i := 0; ; i++ {
			r, ok := cur.Current()
			if !ok || !yield(i, r) {
				return
			}
			cur.Advance()
		}
	}
}

// String materializes the rest of the stream.
func (s Slice[L]) String() string { return s.ExtractToSliceEnd() }

func prefixRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	off := 0
	for i := 0; i < n && off < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return s[:off]
}
