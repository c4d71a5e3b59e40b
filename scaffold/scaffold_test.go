package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/showcase/content"
)

func TestGenerateWritesConfigAndPosts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-blog")
	samples := content.NewSamples().ListPosts()

	created, err := Generate(dir, NewData(dir), samples)
	require.NoError(t, err)
	assert.Len(t, created, 2+len(samples))

	cfg, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), `name: "My Blog"`)

	_, err = os.Stat(filepath.Join(dir, ".env.example"))
	require.NoError(t, err)

	loader := content.NewLoader(filepath.Join(dir, PostsDir))
	got := loader.ListPosts()
	require.Len(t, got, len(samples))
	for i := range samples {
		assert.Equal(t, samples[i].Slug, got[i].Slug)
		assert.Equal(t, samples[i].Title, got[i].Title)
		assert.Equal(t, samples[i].Tags, got[i].Tags)
		assert.Equal(t, samples[i].ReadTime, got[i].ReadTime)
	}
}

func TestGenerateRefusesExistingDir(t *testing.T) {
	dir := t.TempDir()
	_, err := Generate(dir, NewData(dir), nil)
	assert.Error(t, err)
}

func TestGenerateRejectsBadSlug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	_, err := Generate(dir, NewData(dir), []content.Post{{Slug: "../escape", Title: "x"}})
	assert.ErrorIs(t, err, content.ErrInvalidSlug)
}

func TestToTitle(t *testing.T) {
	assert.Equal(t, "My Blog", ToTitle("my-blog"))
	assert.Equal(t, "Myblog", ToTitle("myblog"))
}
