package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter returns the entries whose search text contains query,
// ignoring case. An empty query returns entries unchanged.
//
// Matching is plain substring containment: no ranking, no fuzzy
// matching, no tokenization. The relative order of entries is kept.
func Filter(entries []Entry, query string) []Entry {
	if query == "" {
		return entries
	}

	// cases.Caser keeps state, one per call
	lower := cases.Lower(language.Und)
	needle := lower.String(query)

	matched := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(lower.String(e.SearchText()), needle) {
			matched = append(matched, e)
		}
	}
	return matched
}
