// Package desktop builds the application catalog from freedesktop
// .desktop descriptor files.
package desktop

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"locator/internal/adapters/osfs"
	"locator/internal/config"
	"locator/internal/domain"
	"locator/internal/ports"
)

// Catalog implements ports.ApplicationCatalog
type Catalog struct {
	fsys    ports.FileSystem
	icons   ports.IconResolver
	dirs    []string
	workers int
	logger  *log.Logger
}

// Ensure Catalog implements ApplicationCatalog
var _ ports.ApplicationCatalog = (*Catalog)(nil)

// Option configures the Catalog
type Option func(*Catalog)

// WithLogger sets the diagnostics logger
func WithLogger(l *log.Logger) Option {
	return func(c *Catalog) {
		c.logger = l
	}
}

// NewCatalog creates a catalog over the descriptor directories in cfg.
// icons is shared across queries so its cache amortizes lookups.
func NewCatalog(fsys ports.FileSystem, icons ports.IconResolver, cfg *config.Config, opts ...Option) *Catalog {
	c := &Catalog{
		fsys:    fsys,
		icons:   icons,
		dirs:    slices.Clone(cfg.DesktopDirs),
		workers: cfg.WorkerLimit(),
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListApplications returns the visible applications whose name contains
// query, deduplicated by identity key and sorted by name.
func (c *Catalog) ListApplications(ctx context.Context, query string) []domain.Application {
	files := c.descriptorFiles(ctx)

	parsed := make([]*domain.Application, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, path := range files {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			if app, ok := c.parseFile(path); ok {
				parsed[i] = &app
			}
			return nil
		})
	}
	_ = g.Wait()

	apps := make([]domain.Application, 0, len(parsed))
	for _, app := range parsed {
		if app != nil {
			apps = append(apps, *app)
		}
	}
	apps = domain.DedupApplications(apps)

	filtered := apps[:0]
	for _, app := range apps {
		if domain.ContainsFold(app.Name, query) {
			filtered = append(filtered, app)
		}
	}
	domain.SortApplications(filtered)
	return filtered
}

// descriptorFiles lists every .desktop file, directory order first, then
// listing order within a directory.
func (c *Catalog) descriptorFiles(ctx context.Context) []string {
	perDir := make([][]string, len(c.dirs))
	readable := make([]bool, len(c.dirs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, dir := range c.dirs {
		g.Go(func() error {
			if ctx.Err() != nil || !osfs.Exists(c.fsys, dir) {
				return nil
			}
			entries, err := c.fsys.ReadDir(dir)
			if err != nil {
				c.logger.Printf("descriptor dir %s: %v", dir, err)
				return nil
			}
			readable[i] = true
			for _, e := range entries {
				if strings.HasSuffix(e.Name(), Extension) {
					perDir[i] = append(perDir[i], filepath.Join(dir, e.Name()))
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	if !slices.Contains(readable, true) {
		c.logger.Printf("no descriptor directory could be listed (%d configured)", len(c.dirs))
	}
	return slices.Concat(perDir...)
}

func (c *Catalog) parseFile(path string) (domain.Application, bool) {
	data, err := c.fsys.ReadFile(path)
	if err != nil {
		return domain.Application{}, false
	}
	entry, err := Parse(data)
	if err != nil {
		return domain.Application{}, false
	}
	return domain.Application{
		Name:     entry.Name,
		Exec:     entry.Exec,
		IconPath: c.icons.Resolve(entry.Icon),
	}, true
}
