package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"todo-me/internal/catalog"
	"todo-me/internal/parse"
	"todo-me/pkg/dateparse"
)

func TestParseFullExample(t *testing.T) {
	cat := catalog.New()
	workID := cat.AddProject("work", nil)
	urgentID := cat.AddTag("urgent")

	uc := newUseCase(t)
	res := mustParse(t, uc, newInput("Review proposal #work @urgent tomorrow p3", cat))

	if res.Title != "Review proposal" {
		t.Errorf("title = %q, want %q", res.Title, "Review proposal")
	}
	if res.ProjectID == nil || *res.ProjectID != workID {
		t.Errorf("project = %v, want %v", res.ProjectID, workID)
	}
	if len(res.Tags) != 1 || res.Tags[0].Normalized != "urgent" {
		t.Fatalf("tags = %+v, want one 'urgent'", res.Tags)
	}
	if res.Tags[0].IsNew || res.Tags[0].ResolvedID == nil || *res.Tags[0].ResolvedID != urgentID {
		t.Errorf("tag resolution = %+v, want existing tag %v", res.Tags[0], urgentID)
	}
	wantDate := dateparse.Date{Year: 2026, Month: time.January, Day: 24}
	if res.DueDate == nil || *res.DueDate != wantDate {
		t.Errorf("due date = %v, want %s", res.DueDate, wantDate)
	}
	if res.DueTime != nil {
		t.Errorf("due time = %v, want nil", res.DueTime)
	}
	if res.Priority == nil || *res.Priority != 3 {
		t.Errorf("priority = %v, want 3", res.Priority)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", res.Warnings)
	}
	if len(res.Highlights) != 4 {
		t.Fatalf("highlights = %+v, want 4 entries", res.Highlights)
	}
	wantTypes := []parse.HighlightType{parse.HighlightProject, parse.HighlightTag, parse.HighlightDate, parse.HighlightPriority}
	for i, hl := range res.Highlights {
		if hl.Type != wantTypes[i] {
			t.Errorf("highlight %d type = %s, want %s", i, hl.Type, wantTypes[i])
		}
		if !hl.Valid {
			t.Errorf("highlight %d (%s) should be valid", i, hl.Text)
		}
	}
}

func TestParseInvalidMetadata(t *testing.T) {
	uc := newUseCase(t)
	res := mustParse(t, uc, newInput("Review #fake @urgent tomorrow p7", catalog.New()))

	if res.Title != "Review #fake p7" {
		t.Errorf("title = %q, want %q", res.Title, "Review #fake p7")
	}
	if res.ProjectID != nil {
		t.Errorf("project = %v, want nil", res.ProjectID)
	}
	if len(res.Tags) != 1 || res.Tags[0].Normalized != "urgent" || !res.Tags[0].IsNew {
		t.Errorf("tags = %+v, want one new 'urgent'", res.Tags)
	}
	wantDate := dateparse.Date{Year: 2026, Month: time.January, Day: 24}
	if res.DueDate == nil || *res.DueDate != wantDate {
		t.Errorf("due date = %v, want %s", res.DueDate, wantDate)
	}
	if res.Priority != nil {
		t.Errorf("priority = %v, want nil", res.Priority)
	}

	wantWarnings := []string{
		"Project 'fake' not found",
		"Invalid priority 'p7' (must be p0-p4)",
	}
	if len(res.Warnings) != len(wantWarnings) {
		t.Fatalf("warnings = %v, want %v", res.Warnings, wantWarnings)
	}
	for i, w := range wantWarnings {
		if res.Warnings[i] != w {
			t.Errorf("warning %d = %q, want %q", i, res.Warnings[i], w)
		}
	}

	// Invalid matches are still highlighted, flagged for the UI.
	for _, hl := range res.Highlights {
		switch hl.Type {
		case parse.HighlightProject, parse.HighlightPriority:
			if hl.Valid {
				t.Errorf("highlight %q should be invalid", hl.Text)
			}
		default:
			if !hl.Valid {
				t.Errorf("highlight %q should be valid", hl.Text)
			}
		}
	}
}

func TestParseTagDedup(t *testing.T) {
	uc := newUseCase(t)
	res := mustParse(t, uc, newInput("@urgent @work @urgent do stuff", nil))

	if len(res.Tags) != 2 || res.Tags[0].Normalized != "urgent" || res.Tags[1].Normalized != "work" {
		t.Fatalf("tags = %+v, want [urgent work]", res.Tags)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", res.Warnings)
	}
	if res.Title != "do stuff" {
		t.Errorf("title = %q, want %q", res.Title, "do stuff")
	}
	// All three occurrences are highlighted even though duplicates collapse.
	if len(res.Highlights) != 3 {
		t.Errorf("highlights = %+v, want 3 entries", res.Highlights)
	}
}

func TestParseTagNormalization(t *testing.T) {
	cat := catalog.New()
	homeID := cat.AddTag("home")

	uc := newUseCase(t)
	res := mustParse(t, uc, newInput("water plants @Home", cat))

	if len(res.Tags) != 1 || res.Tags[0].Normalized != "home" {
		t.Fatalf("tags = %+v, want one 'home'", res.Tags)
	}
	if res.Tags[0].IsNew || res.Tags[0].ResolvedID == nil || *res.Tags[0].ResolvedID != homeID {
		t.Errorf("tag = %+v, want existing tag %v", res.Tags[0], homeID)
	}
}

func TestParseMultipleDates(t *testing.T) {
	uc := newUseCase(t)
	res := mustParse(t, uc, newInput("Meet tomorrow then next Monday", nil))

	wantDate := dateparse.Date{Year: 2026, Month: time.January, Day: 24}
	if res.DueDate == nil || *res.DueDate != wantDate {
		t.Errorf("due date = %v, want %s", res.DueDate, wantDate)
	}
	if res.Title != "Meet then next Monday" {
		t.Errorf("title = %q, want %q", res.Title, "Meet then next Monday")
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "tomorrow") {
		t.Errorf("warnings = %v, want one mentioning 'tomorrow'", res.Warnings)
	}
	if len(res.Highlights) != 2 {
		t.Errorf("highlights = %+v, want 2 date entries", res.Highlights)
	}
}

func TestParseMultipleProjects(t *testing.T) {
	cat := catalog.New()
	workID := cat.AddProject("work", nil)
	cat.AddProject("home", nil)

	uc := newUseCase(t)
	res := mustParse(t, uc, newInput("sort boxes #work #home", cat))

	if res.ProjectID == nil || *res.ProjectID != workID {
		t.Errorf("project = %v, want %v (leftmost valid)", res.ProjectID, workID)
	}
	if res.Title != "sort boxes #home" {
		t.Errorf("title = %q, want %q", res.Title, "sort boxes #home")
	}
	want := "Multiple projects found, using first: '#work'"
	if len(res.Warnings) != 1 || res.Warnings[0] != want {
		t.Errorf("warnings = %v, want [%q]", res.Warnings, want)
	}
}

func TestParseLeftmostProjectInvalid(t *testing.T) {
	cat := catalog.New()
	workID := cat.AddProject("work", nil)

	uc := newUseCase(t)
	res := mustParse(t, uc, newInput("#fake #work stuff", cat))

	if res.ProjectID == nil || *res.ProjectID != workID {
		t.Errorf("project = %v, want %v", res.ProjectID, workID)
	}
	if res.Title != "#fake stuff" {
		t.Errorf("title = %q, want %q", res.Title, "#fake stuff")
	}
	want := "Project 'fake' not found"
	if len(res.Warnings) != 1 || res.Warnings[0] != want {
		t.Errorf("warnings = %v, want [%q]", res.Warnings, want)
	}
}

func TestParseNestedProject(t *testing.T) {
	cat := catalog.New()
	workID := cat.AddProject("work", nil)
	reportsID := cat.AddProject("reports", &workID)

	uc := newUseCase(t)

	res := mustParse(t, uc, newInput("ship #work/reports", cat))
	if res.ProjectID == nil || *res.ProjectID != reportsID {
		t.Errorf("project = %v, want nested %v", res.ProjectID, reportsID)
	}
	if res.Title != "ship" {
		t.Errorf("title = %q, want %q", res.Title, "ship")
	}

	// A failed segment invalidates the whole path, no partial resolution.
	res = mustParse(t, uc, newInput("ship #work/missing", cat))
	if res.ProjectID != nil {
		t.Errorf("project = %v, want nil", res.ProjectID)
	}
	want := "Project 'work/missing' not found"
	if len(res.Warnings) != 1 || res.Warnings[0] != want {
		t.Errorf("warnings = %v, want [%q]", res.Warnings, want)
	}
	if res.Title != "ship #work/missing" {
		t.Errorf("title = %q, want %q", res.Title, "ship #work/missing")
	}
}

func TestParseMultiplePriorities(t *testing.T) {
	uc := newUseCase(t)
	res := mustParse(t, uc, newInput("fix p1 p2", nil))

	if res.Priority == nil || *res.Priority != 1 {
		t.Errorf("priority = %v, want 1", res.Priority)
	}
	if res.Title != "fix p2" {
		t.Errorf("title = %q, want %q", res.Title, "fix p2")
	}
	want := "Multiple priorities found, using first: 'p1'"
	if len(res.Warnings) != 1 || res.Warnings[0] != want {
		t.Errorf("warnings = %v, want [%q]", res.Warnings, want)
	}
}

func TestParseFatal(t *testing.T) {
	uc := newUseCase(t)

	if _, err := uc.Parse(context.Background(), newInput("   ", nil)); !errors.Is(err, parse.ErrEmptyInput) {
		t.Errorf("blank input: err = %v, want ErrEmptyInput", err)
	}

	// Everything is metadata, nothing is left for the title.
	if _, err := uc.Parse(context.Background(), newInput("tomorrow @home p2", nil)); !errors.Is(err, parse.ErrEmptyTitle) {
		t.Errorf("metadata-only input: err = %v, want ErrEmptyTitle", err)
	}
}

func TestParseInputTooLong(t *testing.T) {
	uc := newUseCase(t)
	long := strings.Repeat("a", 1001)

	if _, err := uc.Parse(context.Background(), newInput(long, nil)); !errors.Is(err, parse.ErrInputTooLong) {
		t.Errorf("err = %v, want ErrInputTooLong", err)
	}
}

func TestParseIdempotent(t *testing.T) {
	cat := catalog.New()
	cat.AddProject("work", nil)
	cat.AddTag("urgent")

	uc := newUseCase(t)
	first := mustParse(t, uc, newInput("Review proposal #work @urgent tomorrow p3", cat))

	second := mustParse(t, uc, newInput(first.Title, cat))
	if second.Title != first.Title {
		t.Errorf("re-parsed title = %q, want %q", second.Title, first.Title)
	}
	if len(second.Highlights) != 0 || len(second.Warnings) != 0 {
		t.Errorf("re-parse produced highlights=%v warnings=%v, want none", second.Highlights, second.Warnings)
	}
	if second.DueDate != nil || second.ProjectID != nil || second.Priority != nil || len(second.Tags) != 0 {
		t.Errorf("re-parse extracted metadata from clean title: %+v", second)
	}
}

func TestParseNilLookups(t *testing.T) {
	uc := newUseCase(t)
	res := mustParse(t, uc, newInput("plan trip #travel @packing", nil))

	// Without lookups every project is unresolved and every tag is new.
	if res.ProjectID != nil {
		t.Errorf("project = %v, want nil", res.ProjectID)
	}
	if len(res.Tags) != 1 || !res.Tags[0].IsNew {
		t.Errorf("tags = %+v, want one new tag", res.Tags)
	}
	if res.Title != "plan trip #travel" {
		t.Errorf("title = %q, want %q", res.Title, "plan trip #travel")
	}
}

func TestParseWithTime(t *testing.T) {
	uc := newUseCase(t)
	res := mustParse(t, uc, newInput("Buy groceries tomorrow at 5pm @shopping", nil))

	if res.Title != "Buy groceries" {
		t.Errorf("title = %q, want %q", res.Title, "Buy groceries")
	}
	wantDate := dateparse.Date{Year: 2026, Month: time.January, Day: 24}
	if res.DueDate == nil || *res.DueDate != wantDate {
		t.Errorf("due date = %v, want %s", res.DueDate, wantDate)
	}
	wantTime := dateparse.TimeOfDay{Hour: 17}
	if res.DueTime == nil || *res.DueTime != wantTime {
		t.Errorf("due time = %v, want %s", res.DueTime, wantTime)
	}
}
