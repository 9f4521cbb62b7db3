package parse

import (
	"time"

	"todo-me/internal/model"
	"todo-me/pkg/dateparse"
)

// Span is a half-open byte range into the original input text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// HighlightType tags a highlight with the kind of metadata it marks.
type HighlightType string

const (
	HighlightDate     HighlightType = "date"
	HighlightProject  HighlightType = "project"
	HighlightTag      HighlightType = "tag"
	HighlightPriority HighlightType = "priority"
)

// Highlight is one detected metadata occurrence for UI rendering. Every
// occurrence is reported, winners and superseded matches alike; Valid is
// false for matches that failed resolution (unknown project, out-of-range
// priority) so the UI can render them differently.
type Highlight struct {
	Type  HighlightType `json:"type"`
	Text  string        `json:"text"`
	Span  Span          `json:"span"`
	Valid bool          `json:"valid"`
	Value any           `json:"value,omitempty"`
}

// ProjectMatch is one syntactic "#path/path" occurrence. Valid is false when
// any path segment failed to resolve; the span is still reported for
// highlighting.
type ProjectMatch struct {
	Span       Span             `json:"span"`
	Segments   []string         `json:"segments"`
	ResolvedID *model.ProjectID `json:"resolved_id,omitempty"`
	Valid      bool             `json:"valid"`
}

// TagMatch is one "@token" occurrence with its lowercase-normalized name.
// IsNew means the tag does not exist yet; creating it is the caller's job.
type TagMatch struct {
	Span       Span         `json:"span"`
	Normalized string       `json:"name"`
	ResolvedID *model.TagID `json:"resolved_id,omitempty"`
	IsNew      bool         `json:"is_new"`
}

// PriorityMatch is one word-bounded "pN" occurrence. An out-of-range value
// such as p7 is still a match, with Valid=false, which is distinct from no
// match at all.
type PriorityMatch struct {
	Span  Span `json:"span"`
	Value int  `json:"value"`
	Valid bool `json:"valid"`
}

// Settings are the per-user preferences that influence parsing.
type Settings struct {
	DateFormat  dateparse.Format
	StartOfWeek time.Weekday
}

// Input is one parse request. Now must be supplied by the caller so the
// operation stays deterministic; Projects and Tags may be nil, in which case
// every project reference is unresolved and every tag is new.
type Input struct {
	Text     string
	Now      time.Time
	Settings Settings
	Projects ProjectLookup
	Tags     TagLookup
}

// Result is the outcome of a successful parse. Fields for metadata that was
// not present are nil; DueTime is nil whenever the date expression carried no
// time clause (never midnight).
type Result struct {
	Title      string               `json:"title"`
	DueDate    *dateparse.Date      `json:"due_date,omitempty"`
	DueTime    *dateparse.TimeOfDay `json:"due_time,omitempty"`
	ProjectID  *model.ProjectID     `json:"project_id,omitempty"`
	Tags       []TagMatch           `json:"tags"`
	Priority   *int                 `json:"priority,omitempty"`
	Highlights []Highlight          `json:"highlights"`
	Warnings   []string             `json:"warnings"`
}
