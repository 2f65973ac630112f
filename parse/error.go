package parse

import (
	"errors"
	"fmt"
)

// ErrIncomplete is matched by errors raised because input ran out.
var ErrIncomplete = errors.New("parse: incomplete input")

// ErrorKind names the combinator that failed.
type ErrorKind uint8

const (
	KindTag ErrorKind = iota + 1
	KindChar
	KindTakeUntil
	KindTakeWhile1
	KindAlt
	KindEOF
)

func (k ErrorKind) String() string {
	switch k {
	case KindTag:
		return "tag"
	case KindChar:
		return "char"
	case KindTakeUntil:
		return "take_until"
	case KindTakeWhile1:
		return "take_while1"
	case KindAlt:
		return "alt"
	case KindEOF:
		return "eof"
	default:
		return "unknown"
	}
}

// previewLen is how many characters of the failing input an Error keeps.
const previewLen = 32

// Error reports where a parser gave up.
type Error struct {
	Kind ErrorKind
	// Remaining holds at most previewLen characters of the input where the
	// parser stopped. Truncated is set when more input followed.
	Remaining  string
	Truncated  bool
	Incomplete bool
}

func (e *Error) Error() string {
	rem := fmt.Sprintf("%q", e.Remaining)
	if e.Truncated {
		rem += "…"
	}
	if e.Incomplete {
		return fmt.Sprintf("parse: %s: incomplete input at %s", e.Kind, rem)
	}
	return fmt.Sprintf("parse: %s failed at %s", e.Kind, rem)
}

func (e *Error) Unwrap() error {
	if e.Incomplete {
		return ErrIncomplete
	}
	return nil
}

// newError materializes only a short prefix of in. Failures are routine
// under Alt, Opt and Many0, and in may span a whole document.
func newError[I Input[I]](kind ErrorKind, in I, incomplete bool) error {
	preview, truncated := previewOf(in.Take(previewLen + 1).String())
	return &Error{Kind: kind, Remaining: preview, Truncated: truncated, Incomplete: incomplete}
}

// previewOf cuts s after previewLen characters, on a rune boundary.
func previewOf(s string) (string, bool) {
	n := 0
	for i := range s {
		if n == previewLen {
			return s[:i], true
		}
		n++
	}
	return s, false
}
