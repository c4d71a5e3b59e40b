// Package views is the default set of page components for a showcase site.
// Sites that want their own markup pass a different showcase.ViewFuncs.
package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/showcase"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = map[string]*template.Template{}

// base holds the layout and shared partials every page is parsed on top of.
var base = template.Must(template.New("base").Funcs(funcs).ParseFS(templateFS,
	"templates/layout.html", "templates/partials.html"))

func init() {
	for _, name := range []string{"home", "post", "notfound", "error"} {
		pages[name] = template.Must(template.Must(base.Clone()).ParseFS(templateFS, "templates/"+name+".html"))
	}
}

// Default returns the built-in components.
func Default() showcase.ViewFuncs {
	return showcase.ViewFuncs{
		Home:        func(p showcase.ListPage) templ.Component { return page("home", p) },
		Results:     func(p showcase.ListPage) templ.Component { return partial("results", p) },
		Post:        func(p showcase.PostPage) templ.Component { return page("post", p) },
		NotFound:    func(p showcase.Page) templ.Component { return page("notfound", p) },
		ServerError: func(p showcase.Page) templ.Component { return page("error", p) },
	}
}

func page(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t, ok := pages[name]
		if !ok {
			return fmt.Errorf("views: unknown page %q", name)
		}
		return t.ExecuteTemplate(w, "layout", data)
	})
}

func partial(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return base.ExecuteTemplate(w, name, data)
	})
}
