package catalog

import (
	"strings"

	"github.com/google/uuid"

	"todo-me/internal/model"
)

// projectKey addresses a project by lowercase name within its parent.
// Top-level projects use uuid.Nil as parent.
type projectKey struct {
	name   string
	parent model.ProjectID
}

// Catalog is an in-memory snapshot of the user's project tree and tag set,
// implementing parse.ProjectLookup and parse.TagLookup. It is read-only
// after construction and safe for concurrent use.
type Catalog struct {
	projects map[projectKey]model.ProjectID
	tags     map[string]model.TagID
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		projects: make(map[projectKey]model.ProjectID),
		tags:     make(map[string]model.TagID),
	}
}

// AddProject registers a project under the given parent (nil for top level)
// and returns its generated ID.
func (c *Catalog) AddProject(name string, parent *model.ProjectID) model.ProjectID {
	id := uuid.New()
	c.projects[keyFor(name, parent)] = id
	return id
}

// AddTag registers a tag and returns its generated ID. Names are stored
// lowercase.
func (c *Catalog) AddTag(name string) model.TagID {
	id := uuid.New()
	c.tags[strings.ToLower(name)] = id
	return id
}

// Resolve finds a project by case-insensitive exact name under parent.
func (c *Catalog) Resolve(name string, parent *model.ProjectID) (model.ProjectID, bool) {
	id, ok := c.projects[keyFor(name, parent)]
	return id, ok
}

// Find looks up a tag by its normalized name.
func (c *Catalog) Find(normalized string) (model.TagID, bool) {
	id, ok := c.tags[strings.ToLower(normalized)]
	return id, ok
}

func keyFor(name string, parent *model.ProjectID) projectKey {
	k := projectKey{name: strings.ToLower(name)}
	if parent != nil {
		k.parent = *parent
	}
	return k
}
