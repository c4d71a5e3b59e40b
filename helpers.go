package showcase

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/eringen/showcase/content"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// absoluteURL resolves ref against base. Empty refs stay empty.
func absoluteURL(base, ref string) string {
	if ref == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema.
func WebsiteJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Name,
		"url":      BuildURL(site.URL),
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema. The
// post's own author wins over the site author.
func BlogPostingJsonLD(post content.Post, site Site) string {
	postURL := BuildURL(site.URL, "blog", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Summary(),
		"datePublished": post.Date,
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	author := post.Author
	if author == "" || author == content.DefaultAuthor {
		author = site.Author
	}
	if author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  author,
		}
	}
	if site.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  site.Name,
		}
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	if img := absoluteURL(site.URL, CoverURL(post)); img != "" {
		data["image"] = img
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// FilterURL builds the home page URL for a query and tag selection.
func FilterURL(query string, tags []string) string {
	v := url.Values{}
	if query != "" {
		v.Set("q", query)
	}
	for _, t := range tags {
		v.Add("tag", t)
	}
	if len(v) == 0 {
		return "/#blogs"
	}
	return "/?" + v.Encode() + "#blogs"
}

// ShareLinks returns share URLs for a post, keyed by network. They back the
// share button when the browser has no native share sheet.
func ShareLinks(post content.Post, site Site) map[string]string {
	postURL := BuildURL(site.URL, "blog", post.Slug)
	text := post.Title
	return map[string]string{
		"x":        "https://x.com/intent/post?" + url.Values{"text": {text}, "url": {postURL}}.Encode(),
		"linkedin": "https://www.linkedin.com/sharing/share-offsite/?" + url.Values{"url": {postURL}}.Encode(),
		"email":    "mailto:?" + strings.ReplaceAll(url.Values{"subject": {text}, "body": {post.Summary() + "\n\n" + postURL}}.Encode(), "+", "%20"),
	}
}
