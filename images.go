package showcase

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/draw"

	"github.com/eringen/showcase/content"
	"github.com/eringen/showcase/markdown"
)

const (
	maxCoverWidth = 800
	jpegQuality   = 80
	maxCoverSize  = 10 << 20 // 10MB
)

// ErrNoCover is returned for posts without a local cover image.
var ErrNoCover = errors.New("showcase: post has no local cover image")

// CoverCache serves post cover images from the content directory, scaled
// down to maxCoverWidth and re-encoded as JPEG. Encoded covers are kept in
// memory for the life of the process.
type CoverCache struct {
	dir   string
	mu    sync.RWMutex
	items map[string][]byte
}

// NewCoverCache creates a CoverCache reading images relative to dir.
func NewCoverCache(dir string) *CoverCache {
	return &CoverCache{dir: dir, items: make(map[string][]byte)}
}

// Get returns the JPEG cover for p.
func (cc *CoverCache) Get(p content.Post) ([]byte, error) {
	rel, ok := LocalImage(p.Image)
	if !ok {
		return nil, ErrNoCover
	}

	cc.mu.RLock()
	data, hit := cc.items[rel]
	cc.mu.RUnlock()
	if hit {
		return data, nil
	}

	f, err := os.Open(filepath.Join(cc.dir, filepath.FromSlash(rel)))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err = processCover(io.LimitReader(f, maxCoverSize))
	if err != nil {
		return nil, fmt.Errorf("cover %s: %w", rel, err)
	}

	cc.mu.Lock()
	cc.items[rel] = data
	cc.mu.Unlock()
	return data, nil
}

// processCover decodes an image from src, resizes it to maxCoverWidth if it
// is wider, and encodes it as JPEG.
func processCover(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxCoverWidth {
		newH := h * maxCoverWidth / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, maxCoverWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// LocalImage resolves a post's image field to a slash-separated path inside
// the content directory. It reports false for empty values and URLs.
func LocalImage(img string) (string, bool) {
	img = strings.TrimSpace(img)
	if img == "" {
		return "", false
	}
	if u, err := url.Parse(img); err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}
	rel := strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(img)), "/")
	if rel == "" {
		return "", false
	}
	return rel, true
}

// CoverURL returns the URL templates should use for p's cover image, or ""
// when the post has none.
func CoverURL(p content.Post) string {
	if markdown.IsExternal(p.Image) {
		return strings.TrimSpace(p.Image)
	}
	if _, ok := LocalImage(p.Image); ok {
		return "/covers/" + url.PathEscape(p.Slug) + ".jpg"
	}
	return ""
}
