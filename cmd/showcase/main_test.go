package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/showcase/content"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writePost(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadConfigLayers(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("name: From File\nsearch_limit: 5\ncache_ttl: 30s\n"), 0o644))
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("SHOWCASE_AUTHOR=Dotenv Author\n"), 0o644))
	t.Setenv("SHOWCASE_ADDR", ":9999")
	t.Setenv("SHOWCASE_AUTHOR", "")
	os.Unsetenv("SHOWCASE_AUTHOR")

	cfg, err := loadConfig(&options{configFile: cfgPath, envFile: envPath}, nil)
	require.NoError(t, err)

	assert.Equal(t, "From File", cfg.Name)
	assert.Equal(t, 5, cfg.SearchLimit)
	assert.Equal(t, 30*time.Second, cfg.PostCacheTTL)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "Dotenv Author", cfg.Author)
	assert.Equal(t, "content/posts", cfg.ContentDir)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := loadConfig(&options{configFile: filepath.Join(t.TempDir(), "nope.yaml")}, nil)
	assert.Error(t, err)
}

func TestPostsCommandFilters(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "go.md", "---\ntitle: Go Tips\ndate: 2025-01-02\ntags: [Go, Backend]\n---\nbody")
	writePost(t, dir, "css.md", "---\ntitle: Grid Layouts\ndate: 2025-01-01\ntags: [CSS]\n---\nbody")

	out, err := run(t, "posts", "--env-file", "", "--content", dir, "--query", "GO", "--json")
	require.NoError(t, err)

	var posts []content.Post
	require.NoError(t, json.Unmarshal([]byte(out), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "go", posts[0].Slug)

	out, err = run(t, "posts", "--env-file", "", "--content", dir, "--tag", "CSS")
	require.NoError(t, err)
	assert.Contains(t, out, "Grid Layouts")
	assert.NotContains(t, out, "Go Tips")
	assert.Contains(t, out, "1 of 2 posts")
}

func TestPostsCommandFallsBackToSamples(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	out, err := run(t, "posts", "--env-file", "", "--content", missing, "--tags")
	require.NoError(t, err)
	assert.Contains(t, out, "CSS")
	assert.Contains(t, out, "Design")
}

func TestNewCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	out, err := run(t, "new", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "config.yaml")
	assert.True(t, strings.Contains(out, "getting-started-with-nextjs-15.md"))

	_, err = run(t, "new", dir)
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "showcase dev\n", out)
}
