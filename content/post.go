// Package content loads blog posts from a directory of Markdown files with
// front matter. When no directory is available it can serve a fixed set of
// sample posts so a site stays navigable without any content configured.
package content

import (
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	stripmd "github.com/writeas/go-strip-markdown"
)

// DefaultAuthor is used when a post's front matter has no author.
const DefaultAuthor = "Anonymous"

const (
	wordsPerMinute = 200
	summaryLength  = 300
	cardTagLimit   = 3
)

// Post is a single blog post or project write-up.
type Post struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Author   string   `json:"author"`
	ReadTime string   `json:"readTime"`
	Image    string   `json:"image,omitempty"`
}

// WordCount returns the number of whitespace-delimited words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// ReadTime estimates reading time for content at 200 words per minute,
// rounded up, formatted as "<N> min read".
func ReadTime(content string) string {
	words := WordCount(content)
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return strconv.Itoa(minutes) + " min read"
}

// Link returns the post's path on the site.
func (p Post) Link() string {
	return "/blog/" + url.PathEscape(p.Slug) + "/"
}

// Time parses Date. It returns the zero time when Date is not a recognizable date.
func (p Post) Time() time.Time {
	t, err := dateparse.ParseAny(strings.TrimSpace(p.Date))
	if err != nil {
		return time.Time{}
	}
	return t
}

// DisplayDate formats Date for humans, e.g. "January 2, 2006".
func (p Post) DisplayDate() string {
	t := p.Time()
	if t.IsZero() {
		return p.Date
	}
	return t.Format("January 2, 2006")
}

// Summary returns the excerpt, or a plain-text prefix of the content when
// the post has no excerpt.
func (p Post) Summary() string {
	if s := strings.TrimSpace(p.Excerpt); s != "" {
		return s
	}
	text := strings.Join(strings.Fields(stripmd.Strip(p.Content)), " ")
	return truncate(text, summaryLength)
}

// CardTags returns the tags shown on a list card.
func (p Post) CardTags() []string {
	if len(p.Tags) <= cardTagLimit {
		return p.Tags
	}
	return p.Tags[:cardTagLimit]
}

// Badge is the label shown over a card's cover.
func (p Post) Badge() string {
	if len(p.Tags) == 0 {
		return "Blog"
	}
	return p.Tags[0]
}

// Initial is the first character of the title, used as a cover placeholder.
func (p Post) Initial() string {
	r, _ := utf8.DecodeRuneInString(p.Title)
	if r == utf8.RuneError {
		return ""
	}
	return string(r)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)[:n]
	cut := string(runes)
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " .,;:") + "…"
}
