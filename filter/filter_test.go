package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eringen/showcase/content"
)

func fixture() []content.Post {
	return []content.Post{
		{Slug: "next", Title: "Getting Started with Next.js 15", Excerpt: "App Router basics", Tags: []string{"NextJS", "React"}},
		{Slug: "css", Title: "Modern CSS Layouts", Excerpt: "Grid and flexbox", Tags: []string{"CSS", "Design", "Frontend"}},
		{Slug: "systems", Title: "Design Systems", Excerpt: "Tokens and components", Tags: []string{"Design", "CSS"}},
		{Slug: "go", Title: "REST APIs in Go", Excerpt: "Echo, middleware and design of errors", Tags: []string{"Go", "Backend"}},
		{Slug: "lower", Title: "Lowercase tags", Excerpt: "", Tags: []string{"css", "design"}},
	}
}

func slugs(posts []content.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}

func TestFilterIdentity(t *testing.T) {
	posts := fixture()
	assert.Equal(t, posts, Filter(posts, "", nil))
	assert.Equal(t, posts, Filter(posts, "", []string{}))
}

func TestFilterQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title case-insensitive", "NEXT.JS", []string{"next"}},
		{"nextjs through tag", "nextjs", []string{"next"}},
		{"excerpt", "flexbox", []string{"css"}},
		{"tag substring", "back", []string{"go"}},
		{"title, excerpt and tags", "design", []string{"css", "systems", "go", "lower"}},
		{"no match", "kubernetes", []string{}},
		{"whitespace is significant", " grid", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugs(Filter(fixture(), tt.query, nil)))
		})
	}
}

func TestFilterSelectedTagsIsConjunctiveAndExact(t *testing.T) {
	got := Filter(fixture(), "", []string{"CSS", "Design"})
	assert.Equal(t, []string{"css", "systems"}, slugs(got))

	got = Filter(fixture(), "", []string{"CSS", "Go"})
	assert.Empty(t, got)

	got = Filter(fixture(), "", []string{"css"})
	assert.Equal(t, []string{"lower"}, slugs(got))
}

func TestFilterIntersection(t *testing.T) {
	got := Filter(fixture(), "tokens", []string{"CSS", "Design"})
	assert.Equal(t, []string{"systems"}, slugs(got))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	posts := fixture()
	before := fixture()
	_ = Filter(posts, "design", []string{"CSS"})
	assert.Equal(t, before, posts)
}

func TestAvailableTags(t *testing.T) {
	assert.Empty(t, AvailableTags(nil))
	assert.NotNil(t, AvailableTags(nil))

	assert.Equal(t,
		[]string{"NextJS", "React", "CSS", "Design", "Frontend", "Go", "Backend", "css", "design"},
		AvailableTags(fixture()),
	)
}

func TestToggle(t *testing.T) {
	selected := []string{"CSS", "Design"}

	assert.Equal(t, []string{"CSS", "Design", "Go"}, Toggle(selected, "Go"))
	assert.Equal(t, []string{"Design"}, Toggle(selected, "CSS"))
	assert.Equal(t, []string{"CSS", "Design"}, selected)
	assert.Equal(t, []string{"Go"}, Toggle(nil, "Go"))
}

func TestParseTags(t *testing.T) {
	got := ParseTags([]string{"CSS, Design", "Go", " ", "CSS", "Web Development"})
	assert.Equal(t, []string{"CSS", "Design", "Go", "Web Development"}, got)
	assert.Empty(t, ParseTags(nil))
}

func TestRelated(t *testing.T) {
	posts := fixture()

	got := Related(posts[1], posts, 0)
	assert.Equal(t, []string{"systems", "lower"}, slugs(got))

	got = Related(posts[1], posts, 1)
	assert.Equal(t, []string{"systems"}, slugs(got))

	assert.Empty(t, Related(content.Post{Slug: "x"}, posts, 3))
}
