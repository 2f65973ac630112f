package parse_test

import (
	"errors"
	"slices"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/tuitext/gcstring"
	"github.com/iw2rmb/tuitext/parse"
	"github.com/iw2rmb/tuitext/strslice"
)

type entry struct{ key, value string }

// entries parses "key=value" lines.
func entries[I parse.Input[I]]() parse.Parser[I, []entry] {
	key := parse.TakeWhile1[I](func(r rune) bool { return unicode.IsLetter(r) || r == '_' })
	value := parse.Preceded(parse.Char[I]('='), parse.TakeWhile[I](func(r rune) bool { return r != '\n' }))
	line := parse.Terminated(parse.Pair(key, value), parse.Opt(parse.Char[I]('\n')))
	return parse.Map(parse.Many0(line), func(kvs []parse.Tuple[I, I]) []entry {
		out := make([]entry, 0, len(kvs))
		for _, kv := range kvs {
			out = append(out, entry{key: kv.First.String(), value: kv.Second.String()})
		}
		return out
	})
}

func TestGrammar_SameResultOnStrAndSlice(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  []entry
	}{
		{
			name:  "two lines",
			lines: []string{"name=tuitext", "glyph=📦界"},
			want:  []entry{{"name", "tuitext"}, {"glyph", "📦界"}},
		},
		{
			name:  "single line",
			lines: []string{"only=🙏🏽"},
			want:  []entry{{"only", "🙏🏽"}},
		},
		{
			name:  "stops at bad line",
			lines: []string{"a=1", "=oops", "b=2"},
			want:  []entry{{"a", "1"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sl := strslice.New(gcstring.Lines(tc.lines...))

			strRest, fromStr, err := entries[parse.Str]()(parse.NewStr(sl.String()))
			if err != nil {
				t.Fatalf("str: %v", err)
			}
			sliceRest, fromSlice, err := entries[strslice.Slice[gcstring.GCString]]()(sl)
			if err != nil {
				t.Fatalf("slice: %v", err)
			}

			if !slices.Equal(fromStr, tc.want) {
				t.Fatalf("str entries=%v, want %v", fromStr, tc.want)
			}
			if !slices.Equal(fromSlice, tc.want) {
				t.Fatalf("slice entries=%v, want %v", fromSlice, tc.want)
			}
			if strRest.String() != sliceRest.String() {
				t.Fatalf("rest differs: str %q, slice %q", strRest.String(), sliceRest.String())
			}
		})
	}
}

func TestGrammar_LineAcrossSyntheticNewlines(t *testing.T) {
	in := strslice.New(gcstring.Lines("first", "second"))
	line := parse.Line[strslice.Slice[gcstring.GCString]]()

	in, a, err := line(in)
	if err != nil || a.String() != "first" {
		t.Fatalf("first=(%q,%v)", a.String(), err)
	}
	in, b, err := line(in)
	if err != nil || b.String() != "second" {
		t.Fatalf("second=(%q,%v)", b.String(), err)
	}
	if !in.IsEmpty() {
		t.Fatalf("rest=%q, want empty", in.String())
	}
}

func TestGrammar_RecognizeSpansLines(t *testing.T) {
	type S = strslice.Slice[gcstring.GCString]
	in := strslice.New(gcstring.Lines("ab", "cd"))
	p := parse.Recognize(parse.Pair(parse.Tag[S]("ab\nc"), parse.Char[S]('d')))

	rest, got, err := p(in)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "ab\ncd" || rest.String() != "\n" {
		t.Fatalf("recognized %q, rest %q", got.String(), rest.String())
	}
}

func TestGrammar_IncompleteAtBudget(t *testing.T) {
	type S = strslice.Slice[gcstring.GCString]
	in := strslice.New(gcstring.Lines("Hello", "world")).Take(3)
	_, _, err := parse.Tag[S]("Hello")(in)
	var perr *parse.Error
	if !errors.As(err, &perr) || !perr.Incomplete {
		t.Fatalf("err=%v, want incomplete tag error", err)
	}
}

func TestGrammar_FailureCostIndependentOfDocumentSize(t *testing.T) {
	type S = strslice.Slice[gcstring.GCString]
	p := parse.Alt(parse.Tag[S]("x"), parse.Tag[S]("y"))

	allocs := func(rows int) float64 {
		lines := make([]string, rows)
		for i := range lines {
			lines[i] = "key = value"
		}
		in := strslice.New(gcstring.Lines(lines...))
		return testing.AllocsPerRun(50, func() {
			if _, _, err := p(in); err == nil {
				t.Fatal("expected the alternatives to fail")
			}
		})
	}

	small, large := allocs(20), allocs(2000)
	if large != small {
		t.Fatalf("allocs on 2000 rows=%v, on 20 rows=%v", large, small)
	}
	if large > 20 {
		t.Fatalf("allocs per failure=%v", large)
	}

	wide := make([]string, 2000)
	for i := range wide {
		wide[i] = "日本語 = 値"
	}
	_, _, err := p(strslice.New(gcstring.Lines(wide...)))
	var perr *parse.Error
	if !errors.As(err, &perr) || !perr.Truncated || utf8.RuneCountInString(perr.Remaining) != 32 {
		t.Fatalf("err=%#v", err)
	}
}
