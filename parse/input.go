package parse

import "iter"

// CompareResult is the outcome of matching a literal against an input.
type CompareResult uint8

const (
	// CompareOK means the whole target matched.
	CompareOK CompareResult = iota
	// CompareError means a character differed.
	CompareError
	// CompareIncomplete means the input ran out before the target did.
	CompareIncomplete
)

func (r CompareResult) String() string {
	switch r {
	case CompareOK:
		return "ok"
	case CompareError:
		return "error"
	case CompareIncomplete:
		return "incomplete"
	default:
		return "unknown"
	}
}

// Input is the character stream contract every combinator in this package is
// written against. Elements are runes. Implementations are small values;
// copying one is how a parser backtracks.
//
// Counts and positions are in runes, never bytes.
type Input[I any] interface {
	// Current returns the element at the front of the input.
	Current() (rune, bool)
	// Len returns the number of elements left.
	Len() int
	// Take returns the first n elements.
	Take(n int) I
	// TakeFrom returns the input after the first n elements.
	TakeFrom(n int) I
	// TakeSplit returns Take(n) and TakeFrom(n).
	TakeSplit(n int) (taken, rest I)
	// Compare matches target literally at the front of the input.
	Compare(target string) CompareResult
	// CompareNoCase matches target ignoring case.
	CompareNoCase(target string) CompareResult
	// FindSubstring returns the element position of the first occurrence of
	// target.
	FindSubstring(target string) (int, bool)
	// Offset returns how many elements lie between the receiver and other,
	// which must come from the same origin and not precede the receiver.
	// Any other pairing yields 0.
	Offset(other I) int
	// IterRunes yields element positions and elements.
	IterRunes() iter.Seq2[int, rune]
	// String materializes the remaining input.
	String() string
}
