// Package markdown renders post bodies to styled HTML and exposes the result
// as a templ component.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Class names applied to rendered elements. site.css styles them.
var (
	headingClasses = map[int]string{
		1: "md-h1",
		2: "md-h2",
		3: "md-h3",
	}
	paragraphClass     = "md-p"
	unorderedListClass = "md-ul"
	orderedListClass   = "md-ol"
	listItemClass      = "md-li"
	linkClass          = "md-link"
	blockquoteClass    = "md-quote"
	codeSpanClass      = "md-code"
	imageClass         = "md-img"
)

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

// Renderer converts Markdown to HTML. It is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

type config struct {
	extensions []string
	hardWraps  bool
	unstyled   bool
}

// Option configures a Renderer.
type Option func(*config)

// WithExtensions selects goldmark extensions by name (gfm, table,
// strikethrough, linkify, tasklist, definition, footnote, typographer).
// Unknown names are ignored.
func WithExtensions(names ...string) Option {
	return func(c *config) {
		c.extensions = append(c.extensions, names...)
	}
}

// WithHardWraps renders single newlines as <br>.
func WithHardWraps() Option {
	return func(c *config) {
		c.hardWraps = true
	}
}

// WithoutStyles skips the class attributes normally added to elements.
func WithoutStyles() Option {
	return func(c *config) {
		c.unstyled = true
	}
}

// New builds a Renderer. Raw HTML in the source is never passed through.
func New(opts ...Option) *Renderer {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	parserOptions := []parser.Option{parser.WithAutoHeadingID()}
	if !cfg.unstyled {
		parserOptions = append(parserOptions,
			parser.WithASTTransformers(util.Prioritized(styleTransformer{}, 500)))
	}

	var rendererOptions []goldmark.Option
	if cfg.hardWraps {
		rendererOptions = append(rendererOptions, goldmark.WithRendererOptions(html.WithHardWraps()))
	}

	engineOptions := append([]goldmark.Option{
		goldmark.WithExtensions(collectExtensions(cfg.extensions)...),
		goldmark.WithParserOptions(parserOptions...),
	}, rendererOptions...)

	return &Renderer{md: goldmark.New(engineOptions...)}
}

var defaultRenderer = New()

// Render writes the HTML for source to w.
func (r *Renderer) Render(w io.Writer, source []byte) error {
	if err := r.md.Convert(source, w); err != nil {
		return fmt.Errorf("markdown render: %w", err)
	}
	return nil
}

// HTML returns the rendered HTML for md.
func (r *Renderer) HTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, []byte(md)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Component returns a templ.Component that renders md.
func (r *Renderer) Component(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return r.Render(w, []byte(md))
	})
}

// Markdown returns a templ.Component that renders content with the default renderer.
func Markdown(content string) templ.Component {
	return defaultRenderer.Component(content)
}

// HTML renders md with the default renderer.
func HTML(md string) (string, error) {
	return defaultRenderer.HTML(md)
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM}
	}
	var extenders []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		extenders = append(extenders, ext)
	}
	return extenders
}

// styleTransformer sets class attributes on the nodes the site styles and
// opens external links in a new tab.
type styleTransformer struct{}

func (styleTransformer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if class, ok := headingClasses[node.Level]; ok {
				setClass(node, class)
			}
		case *ast.Paragraph:
			setClass(node, paragraphClass)
		case *ast.List:
			if node.IsOrdered() {
				setClass(node, orderedListClass)
			} else {
				setClass(node, unorderedListClass)
			}
		case *ast.ListItem:
			setClass(node, listItemClass)
		case *ast.Blockquote:
			setClass(node, blockquoteClass)
		case *ast.CodeSpan:
			setClass(node, codeSpanClass)
		case *ast.Image:
			setClass(node, imageClass)
		case *ast.Link:
			setClass(node, linkClass)
			if IsExternal(string(node.Destination)) {
				node.SetAttributeString("target", []byte("_blank"))
				node.SetAttributeString("rel", []byte("noopener noreferrer"))
			}
		}
		return ast.WalkContinue, nil
	})
}

func setClass(n ast.Node, class string) {
	n.SetAttributeString("class", []byte(class))
}

// IsExternal reports whether dest is an absolute http(s) URL.
func IsExternal(dest string) bool {
	u, err := url.Parse(strings.TrimSpace(dest))
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}
