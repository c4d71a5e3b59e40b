// Package scaffold creates the files for a new showcase site: a config
// file, an example environment file, and the sample posts as Markdown.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/eringen/showcase/content"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

// PostsDir is where generated posts go, relative to the project root.
const PostsDir = "content/posts"

// Data holds the template variables passed to every scaffold template.
type Data struct {
	ProjectName string
	SiteName    string
	URL         string
}

// NewData derives template data from a project directory name.
func NewData(dir string) Data {
	name := filepath.Base(filepath.Clean(dir))
	return Data{
		ProjectName: name,
		SiteName:    ToTitle(name),
		URL:         "http://localhost:3000",
	}
}

// Generate writes the project into dir, which must not exist yet, and
// returns the created paths. Each post becomes content/posts/<slug>.md.
func Generate(dir string, data Data, posts []content.Post) ([]string, error) {
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("directory %q already exists", dir)
	}

	var created []string
	root := "templates"

	err := fs.WalkDir(Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		outPath := filepath.Join(dir, relPath)
		outPath = strings.TrimSuffix(outPath, ".tmpl")

		// Rename dotenv to .env.example.
		if filepath.Base(outPath) == "dotenv" {
			outPath = filepath.Join(filepath.Dir(outPath), ".env.example")
		}

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		src, err := Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		tmpl, err := template.New(filepath.Base(path)).Parse(string(src))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()

		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}
		created = append(created, outPath)
		return nil
	})
	if err != nil {
		return created, err
	}

	postsDir := filepath.Join(dir, filepath.FromSlash(PostsDir))
	if err := os.MkdirAll(postsDir, 0o755); err != nil {
		return created, err
	}
	for _, p := range posts {
		if !content.ValidSlug(p.Slug) {
			return created, fmt.Errorf("post %q: %w", p.Slug, content.ErrInvalidSlug)
		}
		src, err := content.Format(p)
		if err != nil {
			return created, fmt.Errorf("format %s: %w", p.Slug, err)
		}
		outPath := filepath.Join(postsDir, p.Slug+".md")
		if err := os.WriteFile(outPath, src, 0o644); err != nil {
			return created, fmt.Errorf("write %s: %w", outPath, err)
		}
		created = append(created, outPath)
	}
	return created, nil
}

// ToTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "my-blog" -> "My Blog", "myblog" -> "Myblog"
func ToTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
