package showcase

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/showcase/content"
	"github.com/eringen/showcase/filter"
)

const relatedLimit = 3

func (a *App) page(c echo.Context, meta PageMeta) Page {
	return Page{
		Site:      a.Config.Site(),
		Meta:      meta,
		Theme:     a.theme(c),
		CSRFToken: CsrfToken(c),
	}
}

func isPartial(c echo.Context, name string) bool {
	return c.Request().Header.Get("HX-Request") == "true" && c.QueryParam("partial") == name
}

func (a *App) listPage(c echo.Context) ListPage {
	posts := a.Cache.ListPosts()
	query := c.QueryParam("q")
	selected := filter.ParseTags(c.QueryParams()["tag"])

	meta := PageMeta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		URL:         BuildURL(a.Config.URL),
		OGType:      "website",
		JSONLD:      WebsiteJsonLD(a.Config.Site()),
	}
	return ListPage{
		Page:     a.page(c, meta),
		Posts:    filter.Filter(posts, query, selected),
		Total:    len(posts),
		Query:    query,
		Selected: selected,
		Tags:     a.Cache.ListTags(),
	}
}

func (a *App) handleHome(c echo.Context) error {
	page := a.listPage(c)
	if isPartial(c, "list") {
		return Render(c, a.Views.Results(page))
	}
	page.Splash = a.firstVisit(c)
	return Render(c, a.Views.Home(page))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, ok := a.Cache.GetPost(slug)
	if !ok {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.notFoundPage(c)))
	}
	meta := PageMeta{
		Title:       post.Title + " | " + a.Config.Name,
		Description: post.Summary(),
		URL:         BuildURL(a.Config.URL, "blog", post.Slug),
		OGType:      "article",
		Image:       absoluteURL(a.Config.URL, CoverURL(post)),
		JSONLD:      BlogPostingJsonLD(post, a.Config.Site()),
	}
	return Render(c, a.Views.Post(PostPage{
		Page:    a.page(c, meta),
		Post:    post,
		Related: filter.Related(post, a.Cache.ListPosts(), relatedLimit),
	}))
}

func (a *App) handleCover(c echo.Context) error {
	file := c.Param("file")
	slug := strings.TrimSuffix(file, ".jpg")
	if slug == file {
		return echo.ErrNotFound
	}
	if unescaped, err := url.PathUnescape(slug); err == nil {
		slug = unescaped
	}
	post, ok := a.Cache.GetPost(slug)
	if !ok {
		return echo.ErrNotFound
	}
	data, err := a.Covers.Get(post)
	if err != nil {
		if !errors.Is(err, ErrNoCover) && !errors.Is(err, fs.ErrNotExist) {
			c.Logger().Warnf("showcase: %v", err)
		}
		return echo.ErrNotFound
	}
	return c.Blob(http.StatusOK, "image/jpeg", data)
}

func (a *App) handleTheme(c echo.Context) error {
	next := themeDark
	if a.theme(c) == themeDark {
		next = themeLight
	}
	if err := a.prefs.Set(c, prefTheme, next); err != nil {
		return err
	}
	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Refresh", "true")
		return c.NoContent(http.StatusNoContent)
	}
	return c.Redirect(http.StatusSeeOther, localReferer(c.Request()))
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Cache.ListPosts())
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Cache.ListPosts())
}

// handleRobots generates robots.txt from the configured site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", strings.TrimSuffix(a.Config.URL, "/"))
	return c.String(http.StatusOK, body)
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

// postSummary is the JSON shape of a post in API responses; the body is
// left out.
type postSummary struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Excerpt  string   `json:"excerpt"`
	Tags     []string `json:"tags"`
	Author   string   `json:"author"`
	ReadTime string   `json:"readTime"`
	Image    string   `json:"image,omitempty"`
	URL      string   `json:"url"`
}

type searchResponse struct {
	Query    string        `json:"query"`
	Selected []string      `json:"tags"`
	Total    int           `json:"total"`
	Posts    []postSummary `json:"posts"`
}

func summarize(posts []content.Post) []postSummary {
	out := make([]postSummary, len(posts))
	for i, p := range posts {
		out[i] = postSummary{
			Slug:     p.Slug,
			Title:    p.Title,
			Date:     p.Date,
			Excerpt:  p.Excerpt,
			Tags:     p.Tags,
			Author:   p.Author,
			ReadTime: p.ReadTime,
			Image:    CoverURL(p),
			URL:      p.Link(),
		}
	}
	return out
}

func (a *App) handleAPIPosts(c echo.Context) error {
	posts := a.Cache.ListPosts()
	query := c.QueryParam("q")
	selected := filter.ParseTags(c.QueryParams()["tag"])
	if selected == nil {
		selected = []string{}
	}
	return c.JSON(http.StatusOK, searchResponse{
		Query:    query,
		Selected: selected,
		Total:    len(posts),
		Posts:    summarize(filter.Filter(posts, query, selected)),
	})
}

func (a *App) handleAPITags(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"tags": a.Cache.ListTags()})
}

func (a *App) handleAPISlugs(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"slugs": a.Cache.ListSlugs()})
}

func (a *App) notFoundPage(c echo.Context) Page {
	return a.page(c, PageMeta{Title: "Not found | " + a.Config.Name, OGType: "website"})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.notFoundPage(c)))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		page := a.page(c, PageMeta{Title: "Error | " + a.Config.Name, OGType: "website"})
		_ = RenderStatus(c, code, a.Views.ServerError(page))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// localReferer returns the path of the request's Referer when it points at
// this host, or "/".
func localReferer(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return "/"
	}
	if !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return "/"
	}
	out := ref.Path
	if ref.RawQuery != "" {
		out += "?" + ref.RawQuery
	}
	return out
}
