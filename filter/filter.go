// Package filter narrows a post collection by a free-text query and a set
// of selected tags. Every function is pure: no I/O and no shared state.
package filter

import (
	"strings"

	"github.com/eringen/showcase/content"
)

// Filter returns the posts matching both query and selected, in input order.
//
// A post matches query when query is empty or its lower-cased form occurs in
// the lower-cased title, excerpt, or any tag. A post matches selected when
// every selected tag is present in its tags, compared exactly.
func Filter(posts []content.Post, query string, selected []string) []content.Post {
	q := strings.ToLower(query)
	out := make([]content.Post, 0, len(posts))
	for _, p := range posts {
		if matchesQuery(p, q) && hasAllTags(p, selected) {
			out = append(out, p)
		}
	}
	return out
}

func matchesQuery(p content.Post, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Excerpt), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

func hasAllTags(p content.Post, selected []string) bool {
	for _, want := range selected {
		found := false
		for _, t := range p.Tags {
			if t == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// AvailableTags returns every distinct tag across posts in first-seen order.
func AvailableTags(posts []content.Post) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, p := range posts {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}

// Toggle adds tag to selected, or removes it if already present. The input
// slice is not modified.
func Toggle(selected []string, tag string) []string {
	out := make([]string, 0, len(selected)+1)
	removed := false
	for _, t := range selected {
		if t == tag {
			removed = true
			continue
		}
		out = append(out, t)
	}
	if !removed {
		out = append(out, tag)
	}
	return out
}

// ParseTags normalises tag values from a query string, which may repeat the
// parameter or pack several tags into one comma-separated value. Blank and
// repeated tags are dropped; case is preserved.
func ParseTags(values []string) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			t := strings.TrimSpace(part)
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}

// Related returns up to limit posts sharing at least one tag with current,
// compared case-insensitively, excluding current itself. A limit of zero or
// less means no limit.
func Related(current content.Post, posts []content.Post, limit int) []content.Post {
	tagSet := make(map[string]struct{})
	for _, t := range current.Tags {
		tag := normalizeTag(t)
		if tag != "" {
			tagSet[tag] = struct{}{}
		}
	}
	var related []content.Post
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		for _, t := range p.Tags {
			if _, ok := tagSet[normalizeTag(t)]; ok {
				related = append(related, p)
				break
			}
		}
		if limit > 0 && len(related) == limit {
			break
		}
	}
	return related
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
