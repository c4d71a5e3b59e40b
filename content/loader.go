package content

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"strings"
)

// DefaultExtensions are the file extensions recognized as Markdown.
var DefaultExtensions = []string{".md", ".markdown"}

// Loader reads posts from a flat directory of Markdown files. Every call
// reads the directory again; nothing is cached.
type Loader struct {
	dir        string
	fsys       fs.FS
	extensions []string
	log        Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets where directory and file failures are reported.
func WithLogger(l Logger) LoaderOption {
	return func(ld *Loader) {
		if l != nil {
			ld.log = l
		}
	}
}

// WithExtensions replaces the recognized Markdown file extensions.
func WithExtensions(exts ...string) LoaderOption {
	return func(ld *Loader) {
		ld.extensions = ld.extensions[:0]
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			ld.extensions = append(ld.extensions, ext)
		}
	}
}

// WithFS reads posts from fsys instead of the directory on disk.
func WithFS(fsys fs.FS) LoaderOption {
	return func(ld *Loader) {
		ld.fsys = fsys
	}
}

// NewLoader returns a Loader for the posts in dir.
func NewLoader(dir string, opts ...LoaderOption) *Loader {
	ld := &Loader{
		dir:        dir,
		fsys:       os.DirFS(dir),
		extensions: append([]string(nil), DefaultExtensions...),
		log:        nopLogger{},
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// Dir returns the directory the loader reads.
func (ld *Loader) Dir() string {
	return ld.dir
}

// ListPosts parses every Markdown file in the directory and returns them
// newest first. A directory that cannot be read yields an empty slice; a
// file that cannot be read or parsed is skipped.
func (ld *Loader) ListPosts() []Post {
	entries, err := fs.ReadDir(ld.fsys, ".")
	if err != nil {
		ld.log.Warnf("content: read posts directory %q: %v", ld.dir, err)
		return []Post{}
	}

	posts := make([]Post, 0, len(entries))
	seen := make(map[string]string, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		slug, ok := ld.slugFor(name)
		if !ok {
			continue
		}
		if first, dup := seen[slug]; dup {
			ld.log.Warnf("content: %s duplicates slug %q of %s, skipping", name, slug, first)
			continue
		}
		p, err := ld.parseFile(slug, name)
		if err != nil {
			ld.log.Warnf("content: skipping %s: %v", name, err)
			continue
		}
		seen[slug] = name
		posts = append(posts, p)
	}

	SortByDate(posts)
	return posts
}

// GetPost reads the single file for slug. Missing, unreadable and malformed
// files all report false.
func (ld *Loader) GetPost(slug string) (Post, bool) {
	if !ValidSlug(slug) {
		return Post{}, false
	}
	for _, ext := range ld.extensions {
		name := slug + ext
		p, err := ld.parseFile(slug, name)
		if err == nil {
			return p, true
		}
		if !errors.Is(err, fs.ErrNotExist) {
			ld.log.Debugf("content: get %s: %v", name, err)
			return Post{}, false
		}
	}
	return Post{}, false
}

// ListSlugs returns the slugs of ListPosts.
func (ld *Loader) ListSlugs() []string {
	return slugsOf(ld.ListPosts())
}

func (ld *Loader) parseFile(slug, name string) (Post, error) {
	data, err := fs.ReadFile(ld.fsys, name)
	if err != nil {
		return Post{}, err
	}
	return Parse(slug, data)
}

func (ld *Loader) slugFor(name string) (string, bool) {
	ext := strings.ToLower(path.Ext(name))
	for _, known := range ld.extensions {
		if ext == known {
			slug := name[:len(name)-len(ext)]
			return slug, ValidSlug(slug)
		}
	}
	return "", false
}
