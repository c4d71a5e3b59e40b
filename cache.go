package showcase

import (
	"sync"
	"time"

	"github.com/eringen/showcase/content"
	"github.com/eringen/showcase/filter"
)

// PostCache is an in-memory cache of the post collection and its tags with
// a TTL. A non-positive TTL disables caching: every read reloads.
type PostCache struct {
	mu      sync.RWMutex
	posts   []content.Post
	tags    []string
	index   map[string]int
	fetched time.Time
	ttl     time.Duration
	source  content.Source
}

// NewPostCache creates a PostCache backed by the given Source.
func NewPostCache(src content.Source, ttl time.Duration) *PostCache {
	return &PostCache{source: src, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && c.ttl > 0 && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.tags = nil
	c.index = nil
	c.mu.Unlock()
}

func (c *PostCache) load() {
	if c.valid() {
		return
	}
	posts := c.source.ListPosts()
	if posts == nil {
		posts = []content.Post{}
	}
	index := make(map[string]int, len(posts))
	for i, p := range posts {
		index[p.Slug] = i
	}
	c.posts = posts
	c.tags = filter.AvailableTags(posts)
	c.index = index
	c.fetched = time.Now()
}

// snapshot returns cached posts, tags and the slug index after ensuring the
// cache is fresh. It tries a read lock first; only takes a write lock if a
// reload is needed.
func (c *PostCache) snapshot() ([]content.Post, []string, map[string]int) {
	c.mu.RLock()
	if c.valid() {
		posts, tags, index := c.posts, c.tags, c.index
		c.mu.RUnlock()
		return posts, tags, index
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	return c.posts, c.tags, c.index
}

// ListPosts returns all posts, newest first. Callers must not modify the result.
func (c *PostCache) ListPosts() []content.Post {
	posts, _, _ := c.snapshot()
	return posts
}

// ListTags returns every distinct tag in first-seen order.
func (c *PostCache) ListTags() []string {
	_, tags, _ := c.snapshot()
	return tags
}

// ListSlugs returns the slug of every cached post.
func (c *PostCache) ListSlugs() []string {
	posts := c.ListPosts()
	slugs := make([]string, len(posts))
	for i, p := range posts {
		slugs[i] = p.Slug
	}
	return slugs
}

// GetPost returns a post by slug from the cache, asking the source directly
// for slugs outside the cached collection.
func (c *PostCache) GetPost(slug string) (content.Post, bool) {
	posts, _, index := c.snapshot()
	if i, ok := index[slug]; ok {
		return posts[i], true
	}
	return c.source.GetPost(slug)
}
