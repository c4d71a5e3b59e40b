// Package showcase is a blog and project showcase server built with Go,
// Echo, and templ. Posts are Markdown files with front matter; when no
// content directory exists the site serves a built-in sample set.
//
// Users provide templ components via the ViewFuncs struct (the views
// package ships a default set), and showcase handles loading, filtering,
// routing, middleware, feeds, and preferences.
package showcase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/eringen/showcase/content"
)

// ViewFuncs holds the templ components the framework calls when rendering
// pages. This is the inversion-of-control mechanism that lets users own
// and customize all templates.
type ViewFuncs struct {
	Home        func(page ListPage) templ.Component
	Results     func(page ListPage) templ.Component
	Post        func(page PostPage) templ.Component
	NotFound    func(page Page) templ.Component
	ServerError func(page Page) templ.Component
}

// App is the central showcase application. It wires together the content
// source, cache, handlers, middleware, and user-provided templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Cache  *PostCache
	Covers *CoverCache
	Views  ViewFuncs

	source        content.Source
	prefs         Preferences
	visits        Preferences
	searchLimiter *SearchLimiter
	customRoutes  []func(*App)
	ready         bool
}

// New creates a new showcase App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
	}
	a.Echo.HideBanner = true
	a.Echo.Logger.SetLevel(log.INFO)

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Setup builds the content source, cache, middleware, and routes. Start
// calls it; tests call it directly and drive a.Echo with httptest.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if err := a.validateViews(); err != nil {
		return err
	}

	if a.Config.SessionSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return fmt.Errorf("showcase: generate session secret: %w", err)
		}
		a.Config.SessionSecret = secret
		a.Echo.Logger.Warn("showcase: no session secret configured, preferences reset on restart")
	}

	if a.source == nil {
		loader := content.NewLoader(a.Config.ContentDir, content.WithLogger(a.Echo.Logger))
		a.source = content.NewFallback(loader, content.NewSamples())
	}
	a.Cache = NewPostCache(a.source, a.Config.PostCacheTTL)
	a.Covers = NewCoverCache(a.Config.ContentDir)
	a.searchLimiter = NewSearchLimiter(a.Config.SearchLimit, a.Config.SearchWindow)

	if a.prefs == nil {
		a.prefs = NewSessionPreferences(themeSessionName, themeMaxAge)
	}
	if a.visits == nil {
		a.visits = NewSessionPreferences(visitSessionName, 0)
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.ready = true
	return nil
}

// Start initializes the application and starts the server. It blocks until
// the server stops; a graceful Shutdown is not reported as an error.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("showcase: serving %s on %s", a.Config.ContentDir, a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully and releases background resources.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	a.Close()
	return err
}

// Close releases background resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.searchLimiter != nil {
		a.searchLimiter.Stop()
	}
	return nil
}

// Source returns the content source the app reads posts from.
func (a *App) Source() content.Source {
	return a.source
}

func (a *App) validateViews() error {
	switch {
	case a.Views.Home == nil:
		return errors.New("showcase: Views.Home is required")
	case a.Views.Results == nil:
		return errors.New("showcase: Views.Results is required")
	case a.Views.Post == nil:
		return errors.New("showcase: Views.Post is required")
	case a.Views.NotFound == nil:
		return errors.New("showcase: Views.NotFound is required")
	case a.Views.ServerError == nil:
		return errors.New("showcase: Views.ServerError is required")
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded framework assets first, then the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/site.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.Config.StaticDir)

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/", a.handleHome)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/covers/:file", a.handleCover)
	e.POST("/theme/", a.handleTheme)

	api := e.Group("/api")
	api.GET("/posts", a.handleAPIPosts, a.searchLimitMiddleware)
	api.GET("/tags", a.handleAPITags)
	api.GET("/slugs", a.handleAPISlugs)
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
