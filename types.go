package showcase

import "github.com/eringen/showcase/content"

// Site is the branding passed to every template.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
	JSONLD      string
}

// Page is the state shared by every full-page render.
type Page struct {
	Site      Site
	Meta      PageMeta
	Theme     string // "dark" or "light"
	CSRFToken string
	Splash    bool // first page view of the browser session
}

// ListPage is the home page: the filtered posts plus the filter state that
// produced them.
type ListPage struct {
	Page
	Posts    []content.Post
	Total    int
	Query    string
	Selected []string
	Tags     []string
}

// Filtered reports whether a query or tag selection is active.
func (p ListPage) Filtered() bool {
	return p.Query != "" || len(p.Selected) > 0
}

// IsSelected reports whether tag is part of the current selection.
func (p ListPage) IsSelected(tag string) bool {
	for _, t := range p.Selected {
		if t == tag {
			return true
		}
	}
	return false
}

// PostPage is a single post with the posts related to it.
type PostPage struct {
	Page
	Post    content.Post
	Related []content.Post
}
