package content

import (
	"sort"

	"github.com/araddon/dateparse"
)

// Source provides posts to the rest of the application. The file-backed
// Loader and the fixed Samples both implement it; Fallback picks between
// two sources based on which one has content.
type Source interface {
	// ListPosts returns every post, newest first.
	ListPosts() []Post
	// GetPost returns the post with the given slug, or false if there is none.
	GetPost(slug string) (Post, bool)
	// ListSlugs returns the slug of every post, in ListPosts order.
	ListSlugs() []string
}

// Logger is the subset of echo.Logger (and gommon's log.Logger) the loader uses.
type Logger interface {
	Warnf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Debugf(string, ...interface{}) {}

// SortByDate orders posts newest first in place. Dates are compared as
// times when both parse, as strings otherwise; equal dates keep their order.
func SortByDate(posts []Post) {
	times := make(map[string]dateKey, len(posts))
	for _, p := range posts {
		if _, ok := times[p.Date]; ok {
			continue
		}
		t, err := dateparse.ParseAny(p.Date)
		times[p.Date] = dateKey{unix: t.UnixNano(), ok: err == nil}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := times[posts[i].Date], times[posts[j].Date]
		if a.ok && b.ok {
			return a.unix > b.unix
		}
		return posts[i].Date > posts[j].Date
	})
}

type dateKey struct {
	unix int64
	ok   bool
}

func slugsOf(posts []Post) []string {
	slugs := make([]string, len(posts))
	for i, p := range posts {
		slugs[i] = p.Slug
	}
	return slugs
}

// Fallback serves Primary when it has posts and Secondary otherwise.
type Fallback struct {
	Primary   Source
	Secondary Source
}

// NewFallback returns a Source that substitutes secondary for primary when
// primary yields no posts.
func NewFallback(primary, secondary Source) *Fallback {
	return &Fallback{Primary: primary, Secondary: secondary}
}

func (f *Fallback) ListPosts() []Post {
	if posts := f.Primary.ListPosts(); len(posts) > 0 {
		return posts
	}
	return f.Secondary.ListPosts()
}

// GetPost looks in Primary first, then Secondary, so sample slugs stay
// reachable even once real content exists.
func (f *Fallback) GetPost(slug string) (Post, bool) {
	if p, ok := f.Primary.GetPost(slug); ok {
		return p, true
	}
	return f.Secondary.GetPost(slug)
}

func (f *Fallback) ListSlugs() []string {
	return slugsOf(f.ListPosts())
}
