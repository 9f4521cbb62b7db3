package parse

import (
	"context"

	"todo-me/internal/model"
)

// UseCase defines the business logic interface for the parse domain.
type UseCase interface {
	// Parse extracts task metadata (due date, project, tags, priority) from
	// free-form text and returns the cleaned title plus UI highlights and
	// advisory warnings. The only failure is a title that is empty once the
	// recognized metadata has been removed.
	Parse(ctx context.Context, input Input) (Result, error)
}

// ProjectLookup resolves one project name segment against the user's project
// tree. Matching is case-insensitive and exact; parent is nil for top-level
// segments. Implementations must be side-effect-free and safe for concurrent
// use.
type ProjectLookup interface {
	Resolve(name string, parent *model.ProjectID) (model.ProjectID, bool)
}

// TagLookup finds an existing tag by its normalized (lowercase) name. Absent
// tags are not created here; the caller materializes them from IsNew flags.
type TagLookup interface {
	Find(normalized string) (model.TagID, bool)
}
