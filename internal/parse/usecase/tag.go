package usecase

import (
	"strings"

	"todo-me/internal/parse"
)

// scanTags returns every "@token" occurrence in text with its
// lowercase-normalized name. Every well-formed token is accepted; IsNew marks
// names absent from known, creation happens downstream.
func scanTags(text string, known parse.TagLookup) []parse.TagMatch {
	var matches []parse.TagMatch

	for i := 0; i < len(text); i++ {
		if text[i] != '@' || !boundaryBefore(text, i) {
			continue
		}
		k := identRun(text, i+1)
		if k == i+1 {
			continue
		}

		m := parse.TagMatch{
			Span:       parse.Span{Start: i, End: k},
			Normalized: strings.ToLower(text[i+1 : k]),
			IsNew:      true,
		}
		if known != nil {
			if id, ok := known.Find(m.Normalized); ok {
				m.ResolvedID = &id
				m.IsNew = false
			}
		}
		matches = append(matches, m)
		i = k - 1
	}
	return matches
}

// dedupTags collapses duplicate names, keeping the first occurrence's span.
// Duplicates are silent; there is no invalid-tag concept.
func dedupTags(matches []parse.TagMatch) []parse.TagMatch {
	deduped := make([]parse.TagMatch, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		if seen[m.Normalized] {
			continue
		}
		seen[m.Normalized] = true
		deduped = append(deduped, m)
	}
	return deduped
}
