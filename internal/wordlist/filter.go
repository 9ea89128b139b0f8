package wordlist

import (
	"unicode"
	"unicode/utf8"
)

const (
	minWordRunes = 2
	maxWordRunes = 16
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Filter returns the words accepted by keep, preserving order.
func Filter(words []string, keep FilterFunc) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

// Playable accepts single words of letters and digits that fit on the
// typing line.
func Playable(word string) bool {
	n := utf8.RuneCountInString(word)
	if n < minWordRunes || n > maxWordRunes {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
