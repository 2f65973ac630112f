package parse

import (
	"errors"
	"unicode/utf8"
)

// Parser consumes a prefix of in and returns the rest with a value.
type Parser[I Input[I], O any] func(in I) (rest I, out O, err error)

// Tuple holds the outputs of Pair.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Tag matches target literally.
func Tag[I Input[I]](target string) Parser[I, I] {
	return tag[I](target, false)
}

// TagNoCase matches target ignoring case.
func TagNoCase[I Input[I]](target string) Parser[I, I] {
	return tag[I](target, true)
}

func tag[I Input[I]](target string, fold bool) Parser[I, I] {
	n := utf8.RuneCountInString(target)
	return func(in I) (I, I, error) {
		var res CompareResult
		if fold {
			res = in.CompareNoCase(target)
		} else {
			res = in.Compare(target)
		}
		switch res {
		case CompareOK:
			taken, rest := in.TakeSplit(n)
			return rest, taken, nil
		case CompareIncomplete:
			return in, in, newError(KindTag, in, true)
		default:
			return in, in, newError(KindTag, in, false)
		}
	}
}

// Char matches one rune.
func Char[I Input[I]](want rune) Parser[I, rune] {
	return func(in I) (I, rune, error) {
		got, ok := in.Current()
		if !ok {
			return in, 0, newError(KindChar, in, true)
		}
		if got != want {
			return in, 0, newError(KindChar, in, false)
		}
		return in.TakeFrom(1), got, nil
	}
}

// TakeUntil returns everything before the first occurrence of target and
// leaves target in the rest.
func TakeUntil[I Input[I]](target string) Parser[I, I] {
	return func(in I) (I, I, error) {
		n, ok := in.FindSubstring(target)
		if !ok {
			return in, in, newError(KindTakeUntil, in, true)
		}
		taken, rest := in.TakeSplit(n)
		return rest, taken, nil
	}
}

// TakeWhile returns the longest prefix whose runes satisfy pred. It never
// fails.
func TakeWhile[I Input[I]](pred func(rune) bool) Parser[I, I] {
	return func(in I) (I, I, error) {
		n := 0
		for _, r := range in.IterRunes() {
			if !pred(r) {
				break
			}
			n++
		}
		taken, rest := in.TakeSplit(n)
		return rest, taken, nil
	}
}

// TakeWhile1 is TakeWhile that requires at least one rune.
func TakeWhile1[I Input[I]](pred func(rune) bool) Parser[I, I] {
	tw := TakeWhile[I](pred)
	return func(in I) (I, I, error) {
		rest, taken, _ := tw(in)
		if taken.Len() == 0 {
			_, more := in.Current()
			return in, in, newError(KindTakeWhile1, in, !more)
		}
		return rest, taken, nil
	}
}

// Line returns the text up to the next '\n' and consumes the newline. The
// last line may end without one. It fails only on empty input.
func Line[I Input[I]]() Parser[I, I] {
	return func(in I) (I, I, error) {
		if n, ok := in.FindSubstring("\n"); ok {
			taken, rest := in.TakeSplit(n)
			return rest.TakeFrom(1), taken, nil
		}
		n := in.Len()
		if n == 0 {
			return in, in, newError(KindEOF, in, true)
		}
		taken, rest := in.TakeSplit(n)
		return rest, taken, nil
	}
}

// EOF succeeds, consuming nothing, only when the input is empty.
func EOF[I Input[I]]() Parser[I, I] {
	return func(in I) (I, I, error) {
		if in.Len() != 0 {
			return in, in, newError(KindEOF, in, false)
		}
		return in, in, nil
	}
}

// Opt runs p and reports whether it matched. A failure leaves the input
// untouched.
func Opt[I Input[I], O any](p Parser[I, O]) Parser[I, Tuple[O, bool]] {
	return func(in I) (I, Tuple[O, bool], error) {
		rest, out, err := p(in)
		if err != nil {
			return in, Tuple[O, bool]{}, nil
		}
		return rest, Tuple[O, bool]{First: out, Second: true}, nil
	}
}

// Alt returns the result of the first parser that succeeds.
func Alt[I Input[I], O any](ps ...Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		var zero O
		incomplete := false
		for _, p := range ps {
			rest, out, err := p(in)
			if err == nil {
				return rest, out, nil
			}
			if errors.Is(err, ErrIncomplete) {
				incomplete = true
			}
		}
		return in, zero, newError(KindAlt, in, incomplete)
	}
}

// Preceded runs first then second and keeps the output of second.
func Preceded[I Input[I], A, O any](first Parser[I, A], second Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		var zero O
		rest, _, err := first(in)
		if err != nil {
			return in, zero, err
		}
		rest, out, err := second(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, out, nil
	}
}

// Terminated runs first then second and keeps the output of first.
func Terminated[I Input[I], O, B any](first Parser[I, O], second Parser[I, B]) Parser[I, O] {
	return func(in I) (I, O, error) {
		var zero O
		rest, out, err := first(in)
		if err != nil {
			return in, zero, err
		}
		rest, _, err = second(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, out, nil
	}
}

// Pair runs a then b and keeps both outputs.
func Pair[I Input[I], A, B any](a Parser[I, A], b Parser[I, B]) Parser[I, Tuple[A, B]] {
	return func(in I) (I, Tuple[A, B], error) {
		rest, first, err := a(in)
		if err != nil {
			return in, Tuple[A, B]{}, err
		}
		rest, second, err := b(rest)
		if err != nil {
			return in, Tuple[A, B]{}, err
		}
		return rest, Tuple[A, B]{First: first, Second: second}, nil
	}
}

// Many0 applies p until it fails or stops consuming input.
func Many0[I Input[I], O any](p Parser[I, O]) Parser[I, []O] {
	return func(in I) (I, []O, error) {
		var outs []O
		for {
			rest, out, err := p(in)
			if err != nil {
				return in, outs, nil
			}
			if rest.Len() == in.Len() {
				return in, outs, nil
			}
			outs = append(outs, out)
			in = rest
		}
	}
}

// Map transforms the output of p.
func Map[I Input[I], O, U any](p Parser[I, O], f func(O) U) Parser[I, U] {
	return func(in I) (I, U, error) {
		var zero U
		rest, out, err := p(in)
		if err != nil {
			return in, zero, err
		}
		return rest, f(out), nil
	}
}

// Recognize runs p and returns the input it consumed instead of its output.
func Recognize[I Input[I], O any](p Parser[I, O]) Parser[I, I] {
	return func(in I) (I, I, error) {
		rest, _, err := p(in)
		if err != nil {
			return in, in, err
		}
		return rest, in.Take(in.Offset(rest)), nil
	}
}
