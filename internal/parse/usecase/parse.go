package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"todo-me/internal/parse"
	"todo-me/pkg/dateparse"
)

// positioned pairs a warning with the byte offset it refers to so the final
// list comes out in left-to-right order of occurrence.
type positioned struct {
	pos int
	msg string
}

// Parse runs every sub-parser over the original, unmodified input, applies
// the tie-break policy per metadata type, strips the winning spans to build
// the title and assembles highlights and warnings. Each field's outcome is
// independent: a failed project resolution never blocks date or tag
// extraction. The sole fatal condition is a title that is empty once the
// valid metadata has been removed.
func (uc *implUseCase) Parse(ctx context.Context, input parse.Input) (parse.Result, error) {
	text := input.Text
	if strings.TrimSpace(text) == "" {
		return parse.Result{}, parse.ErrEmptyInput
	}
	if len(text) > uc.maxInput {
		return parse.Result{}, fmt.Errorf("%w: %d bytes (max %d)", parse.ErrInputTooLong, len(text), uc.maxInput)
	}

	uc.l.Debugf(ctx, "Parse: input_length=%d", len(text))

	opts := dateparse.Options{
		Format:      input.Settings.DateFormat,
		StartOfWeek: input.Settings.StartOfWeek,
	}

	res := parse.Result{
		Highlights: make([]parse.Highlight, 0, 4),
	}
	var strip []parse.Span
	var warnings []positioned

	// Date: first match wins; a second date-shaped expression only warns and
	// stays in the title.
	if dm := uc.dates.Parse(text, input.Now, opts); dm != nil {
		date := dm.Date
		res.DueDate = &date
		if dm.HasTime {
			t := dm.Time
			res.DueTime = &t
		}
		strip = append(strip, parse.Span{Start: dm.Start, End: dm.End})
		res.Highlights = append(res.Highlights, dateHighlight(text, dm))

		if second := uc.dates.ParseFrom(text, dm.End, input.Now, opts); second != nil {
			warnings = append(warnings, positioned{
				pos: second.Start,
				msg: fmt.Sprintf("Multiple dates found, using first: '%s'", text[dm.Start:dm.End]),
			})
			res.Highlights = append(res.Highlights, dateHighlight(text, second))
		}
	}

	// Projects: leftmost valid match wins and is stripped; invalid matches
	// warn and remain, later valid matches warn and remain.
	projects := scanProjects(text, input.Projects)
	projectWinner := -1
	for idx, m := range projects {
		if m.Valid {
			projectWinner = idx
			break
		}
	}
	for idx, m := range projects {
		hl := parse.Highlight{
			Type:  parse.HighlightProject,
			Text:  text[m.Span.Start:m.Span.End],
			Span:  m.Span,
			Valid: m.Valid,
		}
		if m.Valid {
			hl.Value = *m.ResolvedID
		}
		res.Highlights = append(res.Highlights, hl)

		switch {
		case idx == projectWinner:
			res.ProjectID = m.ResolvedID
			strip = append(strip, m.Span)
		case !m.Valid:
			warnings = append(warnings, positioned{
				pos: m.Span.Start,
				msg: fmt.Sprintf("Project '%s' not found", strings.Join(m.Segments, "/")),
			})
		default:
			winner := projects[projectWinner]
			warnings = append(warnings, positioned{
				pos: m.Span.Start,
				msg: fmt.Sprintf("Multiple projects found, using first: '%s'", text[winner.Span.Start:winner.Span.End]),
			})
		}
	}

	// Tags: every occurrence is stripped and highlighted, duplicates collapse
	// silently into the first occurrence.
	tags := scanTags(text, input.Tags)
	for _, m := range tags {
		strip = append(strip, m.Span)
		res.Highlights = append(res.Highlights, parse.Highlight{
			Type:  parse.HighlightTag,
			Text:  text[m.Span.Start:m.Span.End],
			Span:  m.Span,
			Valid: true,
			Value: m.Normalized,
		})
	}
	res.Tags = dedupTags(tags)

	// Priority: same leftmost-valid-wins rule as projects.
	priorities := scanPriorities(text)
	priorityWinner := -1
	for idx, m := range priorities {
		if m.Valid {
			priorityWinner = idx
			break
		}
	}
	for idx, m := range priorities {
		hl := parse.Highlight{
			Type:  parse.HighlightPriority,
			Text:  text[m.Span.Start:m.Span.End],
			Span:  m.Span,
			Valid: m.Valid,
		}
		if m.Valid {
			hl.Value = m.Value
		}
		res.Highlights = append(res.Highlights, hl)

		switch {
		case idx == priorityWinner:
			value := m.Value
			res.Priority = &value
			strip = append(strip, m.Span)
		case !m.Valid:
			warnings = append(warnings, positioned{
				pos: m.Span.Start,
				msg: fmt.Sprintf("Invalid priority '%s' (must be p0-p4)", text[m.Span.Start:m.Span.End]),
			})
		default:
			winner := priorities[priorityWinner]
			warnings = append(warnings, positioned{
				pos: m.Span.Start,
				msg: fmt.Sprintf("Multiple priorities found, using first: '%s'", text[winner.Span.Start:winner.Span.End]),
			})
		}
	}

	title := stripSpans(text, strip)
	if title == "" {
		return parse.Result{}, parse.ErrEmptyTitle
	}
	res.Title = title

	sort.SliceStable(res.Highlights, func(i, j int) bool {
		return res.Highlights[i].Span.Start < res.Highlights[j].Span.Start
	})
	sort.SliceStable(warnings, func(i, j int) bool {
		return warnings[i].pos < warnings[j].pos
	})
	res.Warnings = make([]string, 0, len(warnings))
	for _, w := range warnings {
		res.Warnings = append(res.Warnings, w.msg)
	}

	uc.l.Debugf(ctx, "Parse: title=%q highlights=%d warnings=%d", res.Title, len(res.Highlights), len(res.Warnings))
	return res, nil
}

func dateHighlight(text string, m *dateparse.Match) parse.Highlight {
	value := m.Date.String()
	if m.HasTime {
		value += " " + m.Time.String()
	}
	return parse.Highlight{
		Type:  parse.HighlightDate,
		Text:  text[m.Start:m.End],
		Span:  parse.Span{Start: m.Start, End: m.End},
		Valid: true,
		Value: value,
	}
}

// stripSpans removes the given ranges from text, collapses whitespace runs
// left behind into single spaces and trims the ends. When spans overlap the
// earlier one keeps the character range it consumes.
func stripSpans(text string, spans []parse.Span) string {
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	var b strings.Builder
	pos := 0
	for _, s := range spans {
		if s.Start < pos {
			continue
		}
		b.WriteString(text[pos:s.Start])
		pos = s.End
	}
	b.WriteString(text[pos:])

	return strings.Join(strings.Fields(b.String()), " ")
}
