// Package iconraster renders resolved icon files as small PNG data URLs
// for display surfaces that cannot read the icon directories themselves.
package iconraster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"
	"time"

	"github.com/erni27/imcache"
	"github.com/fyne-io/image/ico"
	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"

	"locator/internal/application"
	"locator/internal/ports"
)

const (
	// DefaultSize is the edge length of rendered icons in pixels
	DefaultSize = 48

	dataURLPrefix = "data:image/png;base64,"
	maxIconBytes  = 8 << 20
	cacheTTL      = time.Hour
)

// Rasterizer implements ports.IconRasterizer
type Rasterizer struct {
	fsys  ports.FileSystem
	size  uint
	cache *imcache.Cache[string, string]
}

// Ensure Rasterizer implements IconRasterizer
var _ ports.IconRasterizer = (*Rasterizer)(nil)

// Option configures the Rasterizer
type Option func(*Rasterizer)

// WithSize sets the output edge length
func WithSize(px uint) Option {
	return func(r *Rasterizer) {
		if px > 0 {
			r.size = px
		}
	}
}

// NewRasterizer creates a rasterizer reading icons through fsys
func NewRasterizer(fsys ports.FileSystem, opts ...Option) *Rasterizer {
	r := &Rasterizer{
		fsys:  fsys,
		size:  DefaultSize,
		cache: imcache.New[string, string](),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rasterize loads path, scales it to a square of the configured size and
// returns it as a PNG data URL. Vector formats return ErrUnsupported.
func (r *Rasterizer) Rasterize(path string) (string, error) {
	if url, ok := r.cache.Get(path); ok {
		return url, nil
	}

	img, err := r.decode(path)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, r.square(img)); err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", path, err)
	}

	url := dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes())
	r.cache.Set(path, url, imcache.WithSlidingExpiration(cacheTTL))
	return url, nil
}

func (r *Rasterizer) decode(path string) (image.Image, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".svg", ".svgz", ".xpm":
		return nil, fmt.Errorf("%s icons: %w", ext, application.ErrUnsupported)
	}

	info, err := r.fsys.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat icon: %w", err)
	}
	if info.Size() > maxIconBytes {
		return nil, fmt.Errorf("icon %s is %d bytes, limit %d: %w", path, info.Size(), maxIconBytes, application.ErrUnsupported)
	}

	data, err := r.fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read icon: %w", err)
	}
	in := bytes.NewReader(data)

	var img image.Image
	switch ext {
	case ".png":
		img, err = png.Decode(in)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(in)
	case ".gif":
		img, err = gif.Decode(in)
	case ".bmp":
		img, err = bmp.Decode(in)
	case ".webp":
		img, err = webp.Decode(in)
	case ".ico":
		img, err = ico.Decode(in)
	default:
		img, _, err = image.Decode(in)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	// Resizing paletted images directly can panic on malformed palettes
	if _, paletted := img.(*image.Paletted); paletted {
		rgba := image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
		img = rgba
	}
	return img, nil
}

// square fits img inside the output square keeping its aspect ratio and
// centers it on a transparent canvas
func (r *Rasterizer) square(img image.Image) image.Image {
	scaled := resize.Thumbnail(r.size, r.size, img, resize.Lanczos3)
	if b := scaled.Bounds(); b.Dx() == int(r.size) && b.Dy() == int(r.size) {
		return scaled
	}

	canvas := image.NewRGBA(image.Rect(0, 0, int(r.size), int(r.size)))
	b := scaled.Bounds()
	offset := image.Pt((int(r.size)-b.Dx())/2, (int(r.size)-b.Dy())/2)
	draw.Draw(canvas, b.Sub(b.Min).Add(offset), scaled, b.Min, draw.Src)
	return canvas
}
