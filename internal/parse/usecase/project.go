package usecase

import (
	"todo-me/internal/model"
	"todo-me/internal/parse"
)

// scanProjects returns every syntactic "#path/path" occurrence in text, each
// resolved against lookup. A failed resolution yields Valid=false with the
// span intact so the occurrence can still be highlighted.
func scanProjects(text string, lookup parse.ProjectLookup) []parse.ProjectMatch {
	var matches []parse.ProjectMatch

	for i := 0; i < len(text); i++ {
		if text[i] != '#' || !boundaryBefore(text, i) {
			continue
		}
		segments, end := scanPath(text, i+1)
		if len(segments) == 0 {
			continue
		}

		m := parse.ProjectMatch{
			Span:     parse.Span{Start: i, End: end},
			Segments: segments,
		}
		m.ResolvedID, m.Valid = resolvePath(segments, lookup)
		matches = append(matches, m)
		i = end - 1
	}
	return matches
}

// scanPath reads identifier segments joined by '/' starting at offset j.
// A trailing '/' with no segment after it is left out of the match.
func scanPath(text string, j int) ([]string, int) {
	var segments []string
	end := j

	for {
		k := identRun(text, j)
		if k == j {
			break
		}
		segments = append(segments, text[j:k])
		end = k
		if k < len(text) && text[k] == '/' && identRun(text, k+1) > k+1 {
			j = k + 1
			continue
		}
		break
	}
	return segments, end
}

// resolvePath resolves segments left to right: each one must be a child of
// the previously resolved project. Any failure invalidates the whole match;
// there is no partial resolution.
func resolvePath(segments []string, lookup parse.ProjectLookup) (*model.ProjectID, bool) {
	if lookup == nil {
		return nil, false
	}
	var parent *model.ProjectID
	for _, segment := range segments {
		id, ok := lookup.Resolve(segment, parent)
		if !ok {
			return nil, false
		}
		parent = &id
	}
	return parent, true
}
