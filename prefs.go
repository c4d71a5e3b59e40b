package showcase

import (
	"sync"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	themeSessionName = "showcase_prefs"
	visitSessionName = "showcase_visit"
	themeMaxAge      = 60 * 60 * 24 * 365

	prefTheme   = "theme"
	prefVisited = "visited"

	themeDark  = "dark"
	themeLight = "light"
)

// Preferences is a small key/value store scoped to the visitor making the
// request.
type Preferences interface {
	Get(c echo.Context, key string) (string, bool)
	Set(c echo.Context, key, value string) error
}

// SessionPreferences keeps preferences in a signed cookie session. It
// requires the session middleware installed by App.Setup.
type SessionPreferences struct {
	name   string
	maxAge int
}

// NewSessionPreferences stores values in the cookie session called name.
// A maxAge of zero makes the cookie last for the browser session.
func NewSessionPreferences(name string, maxAge int) *SessionPreferences {
	return &SessionPreferences{name: name, maxAge: maxAge}
}

func (p *SessionPreferences) Get(c echo.Context, key string) (string, bool) {
	sess, err := session.Get(p.name, c)
	if err != nil {
		return "", false
	}
	v, ok := sess.Values[key].(string)
	return v, ok
}

func (p *SessionPreferences) Set(c echo.Context, key, value string) error {
	sess, err := session.Get(p.name, c)
	if err != nil {
		return err
	}
	sess.Options.MaxAge = p.maxAge
	sess.Values[key] = value
	return sess.Save(c.Request(), c.Response())
}

// MemoryPreferences is a process-wide Preferences shared by every visitor.
// It suits tests and single-user previews.
type MemoryPreferences struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{values: make(map[string]string)}
}

func (p *MemoryPreferences) Get(_ echo.Context, key string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.values[key]
	return v, ok
}

func (p *MemoryPreferences) Set(_ echo.Context, key, value string) error {
	p.mu.Lock()
	p.values[key] = value
	p.mu.Unlock()
	return nil
}

// theme returns the visitor's theme, "light" unless they chose dark.
func (a *App) theme(c echo.Context) string {
	if v, ok := a.prefs.Get(c, prefTheme); ok && v == themeDark {
		return themeDark
	}
	return themeLight
}

// firstVisit reports whether this is the first page view of the browser
// session and records the visit.
func (a *App) firstVisit(c echo.Context) bool {
	if v, ok := a.visits.Get(c, prefVisited); ok && v == "true" {
		return false
	}
	if err := a.visits.Set(c, prefVisited, "true"); err != nil {
		c.Logger().Warnf("showcase: record visit: %v", err)
	}
	return true
}
