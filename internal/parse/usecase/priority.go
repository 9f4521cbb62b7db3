package usecase

import (
	"strconv"

	"todo-me/internal/parse"
)

// scanPriorities returns every word-bounded, case-insensitive "p"+digits
// token. Only a single digit 0-4 is a valid priority; anything else (p5,
// p10, p00) is still a match, flagged Valid=false so it surfaces as an
// invalid highlight instead of silently passing as title text.
func scanPriorities(text string) []parse.PriorityMatch {
	var matches []parse.PriorityMatch

	for i := 0; i < len(text); i++ {
		if text[i] != 'p' && text[i] != 'P' {
			continue
		}
		if !boundaryBefore(text, i) {
			continue
		}
		k := i + 1
		for k < len(text) && isDigit(text[k]) {
			k++
		}
		if k == i+1 || (k < len(text) && isIdentChar(text[k])) {
			continue
		}

		m := parse.PriorityMatch{Span: parse.Span{Start: i, End: k}}
		m.Value, _ = strconv.Atoi(text[i+1 : k])
		m.Valid = k-i == 2 && text[i+1] <= '4'
		matches = append(matches, m)
		i = k - 1
	}
	return matches
}
