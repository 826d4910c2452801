// Package suggest implements the autocomplete filter used for recipe and ingredient pickers.
package suggest

import (
	"strings"
	"unicode/utf8"
)

// MinQueryLength is the number of characters a query needs before anything is suggested.
const MinQueryLength = 2

// Filter returns the candidates whose text contains query, ignoring case and
// surrounding whitespace. Candidate order is preserved.
// Queries shorter than MinQueryLength match nothing.
func Filter[T any](query string, candidates []T, text func(T) string) []T {
	q := normalize(query)
	if utf8.RuneCountInString(q) < MinQueryLength {
		return []T{}
	}

	matches := make([]T, 0)
	for _, c := range candidates {
		if strings.Contains(normalize(text(c)), q) {
			matches = append(matches, c)
		}
	}
	return matches
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
