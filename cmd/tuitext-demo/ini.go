package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tuitext/buffer"
	"github.com/iw2rmb/tuitext/editor"
	"github.com/iw2rmb/tuitext/gcstring"
	"github.com/iw2rmb/tuitext/parse"
	"github.com/iw2rmb/tuitext/strslice"
)

type lineSlice = strslice.Slice[gcstring.GCString]

type itemKind uint8

const (
	itemBlank itemKind = iota
	itemComment
	itemSection
	itemEntry
)

// item is one parsed line of an INI document.
type item[I any] struct {
	kind       itemKind
	text       I // comment or section header, delimiters included
	key, value I
}

func notNewline(r rune) bool    { return r != '\n' }
func isBlank(r rune) bool       { return r == ' ' || r == '\t' }
func isSectionRune(r rune) bool { return r != ']' && r != '\n' }

func isKeyRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("_-.", r)
}

// iniLine parses one line together with its line break.
func iniLine[I parse.Input[I]]() parse.Parser[I, item[I]] {
	blanks := parse.TakeWhile[I](isBlank)

	comment := parse.Map(
		parse.Recognize(parse.Pair(
			parse.Alt(parse.Tag[I]("#"), parse.Tag[I](";")),
			parse.TakeWhile[I](notNewline),
		)),
		func(s I) item[I] { return item[I]{kind: itemComment, text: s} },
	)
	section := parse.Map(
		parse.Recognize(parse.Pair(
			parse.Preceded(parse.Char[I]('['), parse.TakeWhile1[I](isSectionRune)),
			parse.Char[I](']'),
		)),
		func(s I) item[I] { return item[I]{kind: itemSection, text: s} },
	)
	entry := parse.Map(
		parse.Pair(
			parse.Terminated(parse.TakeWhile1[I](isKeyRune), parse.Pair(blanks, parse.Char[I]('='))),
			parse.Preceded(blanks, parse.TakeWhile[I](notNewline)),
		),
		func(kv parse.Tuple[I, I]) item[I] {
			return item[I]{kind: itemEntry, key: kv.First, value: kv.Second}
		},
	)
	body := parse.Map(
		parse.Opt(parse.Alt(comment, section, entry)),
		func(t parse.Tuple[item[I], bool]) item[I] {
			if !t.Second {
				return item[I]{kind: itemBlank}
			}
			return t.First
		},
	)
	eol := parse.Alt(parse.Recognize(parse.Char[I]('\n')), parse.EOF[I]())

	return parse.Terminated(parse.Preceded(blanks, body), parse.Pair(blanks, eol))
}

// iniDocument parses lines until one does not fit the grammar.
func iniDocument[I parse.Input[I]]() parse.Parser[I, []item[I]] {
	return parse.Many0(iniLine[I]())
}

// checkDocument parses the whole buffer and reports the first line that
// does not parse.
func checkDocument(buf *buffer.Buffer) (entries int, err error) {
	in := buf.Slice()
	rest, items, _ := iniDocument[lineSlice]()(in)
	for _, it := range items {
		if it.kind == itemEntry {
			entries++
		}
	}
	if rest.IsEmpty() {
		return entries, nil
	}
	pos, ok := buf.PosFromRuneOffset(in.Offset(rest), buffer.ConvertPolicy{})
	if !ok {
		return entries, errors.New("syntax error")
	}
	return entries, fmt.Errorf("syntax error at %d:%d", pos.Row+1, pos.Col+1)
}

type iniHighlighter struct {
	comment, section, key, value lipgloss.Style
}

func newIniHighlighter() iniHighlighter {
	return iniHighlighter{
		comment: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		section: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		value:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	}
}

func (h iniHighlighter) HighlightLine(ctx editor.LineContext) ([]editor.HighlightSpan, error) {
	lines := []gcstring.GCString{ctx.Line}
	in := strslice.New(lines)
	_, it, err := iniLine[lineSlice]()(in)
	if err != nil {
		return nil, err
	}

	span := func(part lineSlice, style lipgloss.Style) editor.HighlightSpan {
		start := in.Offset(part)
		return editor.HighlightSpan{
			StartCol: colAtRune(ctx.Line, start),
			EndCol:   colAtRune(ctx.Line, start+part.Len()),
			Style:    style,
		}
	}
	switch it.kind {
	case itemComment:
		return []editor.HighlightSpan{span(it.text, h.comment)}, nil
	case itemSection:
		return []editor.HighlightSpan{span(it.text, h.section)}, nil
	case itemEntry:
		return []editor.HighlightSpan{span(it.key, h.key), span(it.value, h.value)}, nil
	}
	return nil, nil
}

// colAtRune returns the display column of the cluster holding rune n.
func colAtRune(line gcstring.GCString, n int) gcstring.ColIndex {
	s := line.String()
	off := len(s)
	for i := range s {
		if n == 0 {
			off = i
			break
		}
		n--
	}
	if seg, ok := line.SegIndexAtByte(gcstring.ByteIndex(off)); ok {
		if col, ok := line.ColAtSeg(seg); ok {
			return col
		}
	}
	return line.DisplayWidth().AsEndCol()
}
