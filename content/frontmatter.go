package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v2"
)

// ErrInvalidSlug is returned when a slug is empty or is not a single path segment.
var ErrInvalidSlug = errors.New("content: invalid slug")

var validate = validator.New()

// frontMatter is the schema accepted at the top of a post file. Keys not
// listed here, including readTime, are ignored.
type frontMatter struct {
	Title   string   `yaml:"title" toml:"title" json:"title" validate:"max=300"`
	Date    string   `yaml:"date" toml:"date" json:"date" validate:"max=64"`
	Excerpt string   `yaml:"excerpt" toml:"excerpt" json:"excerpt"`
	Tags    []string `yaml:"tags" toml:"tags" json:"tags" validate:"dive,required,max=64"`
	Author  string   `yaml:"author" toml:"author" json:"author" validate:"max=120"`
	Image   string   `yaml:"image,omitempty" toml:"image" json:"image"`
}

func (fm frontMatter) post(slug, body string) Post {
	tags := make([]string, 0, len(fm.Tags))
	tags = append(tags, fm.Tags...)

	author := fm.Author
	if strings.TrimSpace(author) == "" {
		author = DefaultAuthor
	}

	return Post{
		Slug:     slug,
		Title:    fm.Title,
		Date:     fm.Date,
		Excerpt:  fm.Excerpt,
		Content:  body,
		Tags:     tags,
		Author:   author,
		ReadTime: ReadTime(body),
		Image:    fm.Image,
	}
}

// ValidSlug reports whether slug can name a post file: non-empty and a
// single path segment.
func ValidSlug(slug string) bool {
	if slug == "" || slug == "." || slug == ".." {
		return false
	}
	return !strings.ContainsAny(slug, `/\`)
}

// Parse builds a Post from a file's raw bytes. The front matter block may be
// YAML (---), TOML (+++) or JSON; a file without one is all body.
func Parse(slug string, src []byte) (Post, error) {
	if !ValidSlug(slug) {
		return Post{}, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	var meta frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return Post{}, fmt.Errorf("parse front matter of %s: %w", slug, err)
	}
	if err := validate.Struct(meta); err != nil {
		return Post{}, fmt.Errorf("validate front matter of %s: %w", slug, err)
	}

	return meta.post(slug, string(body)), nil
}

// Format renders p as a Markdown file with a YAML front matter block, the
// form Parse reads back. ReadTime is derived and is not written.
func Format(p Post) ([]byte, error) {
	meta := frontMatter{
		Title:   p.Title,
		Date:    p.Date,
		Excerpt: p.Excerpt,
		Tags:    p.Tags,
		Author:  p.Author,
		Image:   p.Image,
	}
	head, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal front matter of %s: %w", p.Slug, err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(head)
	buf.WriteString("---\n\n")
	buf.WriteString(strings.TrimLeft(p.Content, "\n"))
	if !strings.HasSuffix(p.Content, "\n") {
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}
