package showcase

import (
	"time"

	"github.com/eringen/showcase/content"
)

// SiteConfig holds all configuration for a showcase site.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // Site name (default "GeeksHub")
	URL         string `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"` // Site description for RSS and meta tags
	Author      string `mapstructure:"author"`      // Author name for JSON-LD

	Addr       string `mapstructure:"addr"`        // Listen address (default ":3000")
	ContentDir string `mapstructure:"content_dir"` // Markdown posts (default "content/posts")
	StaticDir  string `mapstructure:"static_dir"`  // User static assets (default "public")

	SessionSecret string `mapstructure:"session_secret"` // Preference cookie key; random per process when empty
	CookieSecure  bool   `mapstructure:"cookie_secure"`  // Set true for HTTPS

	PostCacheTTL time.Duration `mapstructure:"cache_ttl"`     // Post cache TTL (default 1min, negative disables)
	SearchLimit  int           `mapstructure:"search_limit"`  // Search API requests per window per IP (default 60)
	SearchWindow time.Duration `mapstructure:"search_window"` // Search API window (default 1min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "GeeksHub"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Description == "" {
		c.Description = "A curated collection of technical blogs and projects."
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/posts"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = time.Minute
	}
	if c.SearchLimit == 0 {
		c.SearchLimit = 60
	}
	if c.SearchWindow == 0 {
		c.SearchWindow = time.Minute
	}
}

// Site returns the public, template-safe part of the configuration.
func (c SiteConfig) Site() Site {
	return Site{
		Name:        c.Name,
		URL:         c.URL,
		Description: c.Description,
		Author:      c.Author,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithSource replaces the default content source (the content directory
// with the built-in samples as fallback).
func WithSource(src content.Source) Option {
	return func(a *App) {
		a.source = src
	}
}

// WithPreferences replaces the cookie-backed stores for the persistent
// theme preference and the per-session visit flag.
func WithPreferences(theme, visits Preferences) Option {
	return func(a *App) {
		a.prefs = theme
		a.visits = visits
	}
}
