package showcase

import (
	"sync"
	"testing"
	"time"

	"github.com/eringen/showcase/content"
)

type countingSource struct {
	mu    sync.Mutex
	posts []content.Post
	lists int
	gets  int
}

func (s *countingSource) ListPosts() []content.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists++
	return append([]content.Post(nil), s.posts...)
}

func (s *countingSource) GetPost(slug string) (content.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return content.Post{}, false
}

func (s *countingSource) ListSlugs() []string { return nil }

func newCountingSource() *countingSource {
	return &countingSource{posts: []content.Post{
		{Slug: "b", Date: "2025-02-01", Tags: []string{"Go", "API"}},
		{Slug: "a", Date: "2025-01-01", Tags: []string{"Go", "CSS"}},
	}}
}

func TestPostCacheServesFromMemoryWithinTTL(t *testing.T) {
	src := newCountingSource()
	c := NewPostCache(src, time.Minute)

	c.ListPosts()
	c.ListTags()
	c.ListSlugs()
	if src.lists != 1 {
		t.Fatalf("expected 1 load, got %d", src.lists)
	}

	if got := c.ListTags(); len(got) != 3 || got[0] != "Go" || got[1] != "API" || got[2] != "CSS" {
		t.Fatalf("unexpected tags %v", got)
	}
	if got := c.ListSlugs(); len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Fatalf("unexpected slugs %v", got)
	}
}

func TestPostCacheInvalidate(t *testing.T) {
	src := newCountingSource()
	c := NewPostCache(src, time.Minute)

	c.ListPosts()
	c.Invalidate()
	c.ListPosts()
	if src.lists != 2 {
		t.Fatalf("expected reload after Invalidate, got %d loads", src.lists)
	}
}

func TestPostCacheExpires(t *testing.T) {
	src := newCountingSource()
	c := NewPostCache(src, 20*time.Millisecond)

	c.ListPosts()
	time.Sleep(40 * time.Millisecond)
	c.ListPosts()
	if src.lists != 2 {
		t.Fatalf("expected reload after TTL, got %d loads", src.lists)
	}
}

func TestPostCacheDisabled(t *testing.T) {
	src := newCountingSource()
	c := NewPostCache(src, -1)

	for i := 0; i < 3; i++ {
		c.ListPosts()
	}
	if src.lists != 3 {
		t.Fatalf("expected a load per read with caching disabled, got %d", src.lists)
	}
}

func TestPostCacheGetPost(t *testing.T) {
	src := newCountingSource()
	c := NewPostCache(src, time.Minute)

	p, ok := c.GetPost("a")
	if !ok || p.Slug != "a" {
		t.Fatalf("GetPost(a) = %v, %v", p, ok)
	}
	if src.gets != 0 {
		t.Fatalf("cached slug should not hit the source")
	}

	if _, ok := c.GetPost("nonexistent-slug"); ok {
		t.Fatalf("expected miss for unknown slug")
	}
	if src.gets != 1 {
		t.Fatalf("unknown slug should be looked up in the source once, got %d", src.gets)
	}
}

func TestPostCacheEmptySource(t *testing.T) {
	c := NewPostCache(&countingSource{}, time.Minute)
	if posts := c.ListPosts(); posts == nil || len(posts) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", posts)
	}
	if tags := c.ListTags(); tags == nil || len(tags) != 0 {
		t.Fatalf("expected empty non-nil tags, got %#v", tags)
	}
}
