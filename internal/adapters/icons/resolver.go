// Package icons resolves freedesktop icon names to files on disk.
//
// Lookup order: absolute path, flat lookup directly under each icon root
// (pixmaps style), then themed lookup under <root>/<theme>/<size>/apps.
// Every outcome, including "not found", is cached for the lifetime of the
// Resolver.
package icons

import (
	"io"
	"log"
	"path/filepath"
	"slices"

	"github.com/erni27/imcache"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"locator/internal/adapters/osfs"
	"locator/internal/config"
	"locator/internal/ports"
)

// Resolver implements ports.IconResolver
type Resolver struct {
	fsys       ports.FileSystem
	dirs       []string
	extensions []string
	sizeDirs   []string
	workers    int
	logger     *log.Logger

	cache *imcache.Cache[string, string]
	group singleflight.Group
}

// Ensure Resolver implements IconResolver
var _ ports.IconResolver = (*Resolver)(nil)

// Option configures the Resolver
type Option func(*Resolver)

// WithLogger sets the diagnostics logger
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// NewResolver creates a resolver over the icon directories in cfg
func NewResolver(fsys ports.FileSystem, cfg *config.Config, opts ...Option) *Resolver {
	r := &Resolver{
		fsys:       fsys,
		dirs:       slices.Clone(cfg.IconDirs),
		extensions: slices.Clone(cfg.IconExtensions),
		sizeDirs:   slices.Clone(cfg.IconSizeDirs),
		workers:    cfg.WorkerLimit(),
		logger:     log.New(io.Discard, "", 0),
		cache:      imcache.New[string, string](),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the absolute path of the icon called name, or "" if no
// candidate exists. Concurrent calls for the same name share one search.
func (r *Resolver) Resolve(name string) string {
	if name == "" {
		return ""
	}
	if path, ok := r.cache.Get(name); ok {
		return path
	}

	v, _, _ := r.group.Do(name, func() (any, error) {
		// A previous flight may have filled the cache between Get and Do
		if path, ok := r.cache.Get(name); ok {
			return path, nil
		}
		path := r.search(name)
		r.cache.Set(name, path, imcache.WithNoExpiration())
		if path == "" {
			r.logger.Printf("icon %q not found", name)
		}
		return path, nil
	})
	return v.(string)
}

// Cached reports the cached value for name, if any
func (r *Resolver) Cached(name string) (string, bool) {
	return r.cache.Get(name)
}

func (r *Resolver) search(name string) string {
	if filepath.IsAbs(name) && osfs.Exists(r.fsys, name) {
		return name
	}
	if path := r.flatLookup(name); path != "" {
		return path
	}
	return r.themedLookup(name)
}

// flatLookup tests <root>/<name><ext> for every root and extension
func (r *Resolver) flatLookup(name string) string {
	for _, dir := range r.dirs {
		if !osfs.Exists(r.fsys, dir) {
			continue
		}
		for _, ext := range r.extensions {
			candidate := filepath.Join(dir, name+ext)
			if osfs.Exists(r.fsys, candidate) {
				return candidate
			}
		}
	}
	return ""
}

// themedLookup probes every theme of a root concurrently. The winner is the
// first theme in listing order that has the icon, so results are stable
// across runs.
func (r *Resolver) themedLookup(name string) string {
	for _, dir := range r.dirs {
		if !osfs.Exists(r.fsys, dir) {
			continue
		}
		themes, err := r.fsys.ReadDir(dir)
		if err != nil {
			r.logger.Printf("icon root %s: %v", dir, err)
			continue
		}

		found := make([]string, len(themes))
		var g errgroup.Group
		g.SetLimit(r.workers)
		for i, theme := range themes {
			themePath := filepath.Join(dir, theme.Name())
			g.Go(func() error {
				found[i] = r.probeTheme(themePath, name)
				return nil
			})
		}
		_ = g.Wait()

		for _, path := range found {
			if path != "" {
				return path
			}
		}
	}
	return ""
}

func (r *Resolver) probeTheme(themePath, name string) string {
	if !osfs.IsDir(r.fsys, themePath) {
		return ""
	}
	for _, size := range r.sizeDirs {
		appsDir := filepath.Join(themePath, size, "apps")
		if !osfs.Exists(r.fsys, appsDir) {
			continue
		}
		for _, ext := range r.extensions {
			candidate := filepath.Join(appsDir, name+ext)
			if osfs.Exists(r.fsys, candidate) {
				return candidate
			}
		}
	}
	return ""
}
