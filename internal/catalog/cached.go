package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"todo-me/internal/model"
	"todo-me/internal/parse"
)

// cachedResult also remembers misses so an unknown name does not hit the
// backing lookup on every keystroke.
type cachedResult struct {
	id uuid.UUID
	ok bool
}

// CachedProjects wraps a ProjectLookup in an expiring LRU. Useful when the
// backing lookup is an adapter over a remote store rather than a pre-fetched
// map.
type CachedProjects struct {
	next  parse.ProjectLookup
	cache *expirable.LRU[string, cachedResult]
}

// NewCachedProjects creates a caching adapter holding up to size entries for
// ttl.
func NewCachedProjects(next parse.ProjectLookup, size int, ttl time.Duration) *CachedProjects {
	return &CachedProjects{
		next:  next,
		cache: expirable.NewLRU[string, cachedResult](size, nil, ttl),
	}
}

func (c *CachedProjects) Resolve(name string, parent *model.ProjectID) (model.ProjectID, bool) {
	key := strings.ToLower(name)
	if parent != nil {
		key = parent.String() + "/" + key
	}
	if r, ok := c.cache.Get(key); ok {
		return r.id, r.ok
	}

	id, ok := c.next.Resolve(name, parent)
	c.cache.Add(key, cachedResult{id: id, ok: ok})
	return id, ok
}

// CachedTags wraps a TagLookup in an expiring LRU.
type CachedTags struct {
	next  parse.TagLookup
	cache *expirable.LRU[string, cachedResult]
}

// NewCachedTags creates a caching adapter holding up to size entries for ttl.
func NewCachedTags(next parse.TagLookup, size int, ttl time.Duration) *CachedTags {
	return &CachedTags{
		next:  next,
		cache: expirable.NewLRU[string, cachedResult](size, nil, ttl),
	}
}

func (c *CachedTags) Find(normalized string) (model.TagID, bool) {
	if r, ok := c.cache.Get(normalized); ok {
		return r.id, r.ok
	}

	id, ok := c.next.Find(normalized)
	c.cache.Add(normalized, cachedResult{id: id, ok: ok})
	return id, ok
}
