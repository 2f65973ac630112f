package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Boundaries finds extended grapheme cluster boundaries with uniseg.
//
// The zero value is ready to use and holds no state; the segmentation state
// travels through Step so one value can serve any number of strings.
type Boundaries struct{}

// Step returns the first grapheme cluster of s, the remainder, and the state
// to pass to the next call. Pass -1 as state for the first call on a string.
func (Boundaries) Step(s string, state int) (cluster, rest string, newState int) {
	cluster, rest, _, newState = uniseg.StepString(s, state)
	return cluster, rest, newState
}

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text))
	for state, rest, cluster := -1, text, ""; rest != ""; {
		cluster, rest, state = Boundaries{}.Step(rest, state)
		out = append(out, cluster)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}
