package views

import (
	"html/template"
	"time"

	"github.com/eringen/showcase"
	"github.com/eringen/showcase/content"
	"github.com/eringen/showcase/filter"
	"github.com/eringen/showcase/markdown"
)

var funcs = template.FuncMap{
	"tagClass": TagClass,
	"tagURL":   TagURL,
	"cover":    showcase.CoverURL,
	"share":    showcase.ShareLinks,
	"postURL":  postURL,
	"markdown": renderMarkdown,
	"jsonLD":   jsonLD,
	"year":     func() int { return time.Now().Year() },
}

// TagClass returns CSS classes for a tag pill, with active variant.
func TagClass(active bool) string {
	if active {
		return "tag-option active"
	}
	return "tag-option"
}

// TagURL is the home page URL with tag toggled in the current selection.
func TagURL(query string, selected []string, tag string) string {
	return showcase.FilterURL(query, filter.Toggle(selected, tag))
}

func postURL(site showcase.Site, p content.Post) string {
	return showcase.BuildURL(site.URL, "blog", p.Slug)
}

func renderMarkdown(md string) (template.HTML, error) {
	out, err := markdown.HTML(md)
	if err != nil {
		return "", err
	}
	// goldmark runs without the unsafe option, so raw HTML in posts is
	// already replaced by comments.
	return template.HTML(out), nil
}

// jsonLD marks an encoding/json document as safe for a ld+json script.
// json.Marshal escapes <, > and & so the value cannot close the element.
func jsonLD(s string) template.JS {
	return template.JS(s)
}
