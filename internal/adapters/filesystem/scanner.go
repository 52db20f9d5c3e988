// Package filesystem finds user files by walking the configured search roots.
package filesystem

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"locator/internal/config"
	"locator/internal/domain"
	"locator/internal/ports"
)

// Scanner implements ports.FileScanner
type Scanner struct {
	fsys       ports.FileSystem
	roots      []string
	extensions []string
	maxDepth   int
	maxResults int
	workers    int
	logger     *log.Logger
}

// Ensure Scanner implements FileScanner
var _ ports.FileScanner = (*Scanner)(nil)

// Option configures the Scanner
type Option func(*Scanner)

// WithLogger sets the diagnostics logger
func WithLogger(l *log.Logger) Option {
	return func(s *Scanner) {
		s.logger = l
	}
}

// NewScanner creates a scanner over cfg.SearchRoots
func NewScanner(fsys ports.FileSystem, cfg *config.Config, opts ...Option) *Scanner {
	s := &Scanner{
		fsys:       fsys,
		roots:      slices.Clone(cfg.SearchRoots),
		extensions: slices.Clone(cfg.FileExtensions),
		maxDepth:   cfg.MaxDepth,
		maxResults: cfg.MaxResultsPerRoot,
		workers:    cfg.WorkerLimit(),
		logger:     log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks every root concurrently and returns the matching files sorted
// by name. Each root is bounded by its own depth and result budget.
func (s *Scanner) Scan(ctx context.Context, query string) []domain.File {
	perRoot := make([][]domain.File, len(s.roots))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, root := range s.roots {
		g.Go(func() error {
			w := &walk{scanner: s, query: query}
			w.dir(ctx, root, 0)
			perRoot[i] = w.results
			return nil
		})
	}
	_ = g.Wait()

	files := slices.Concat(perRoot...)
	domain.SortFiles(files)
	return files
}

// Included reports whether a file name passes the extension allow-list.
// An empty allow-list admits every file.
func (s *Scanner) Included(name string) bool {
	if len(s.extensions) == 0 {
		return true
	}
	return slices.Contains(s.extensions, Extension(name))
}

// walk is the state of one root's depth-first traversal
type walk struct {
	scanner *Scanner
	query   string
	results []domain.File
}

func (w *walk) full() bool {
	return len(w.results) >= w.scanner.maxResults
}

func (w *walk) dir(ctx context.Context, dir string, depth int) {
	if depth > w.scanner.maxDepth || w.full() || ctx.Err() != nil {
		return
	}

	fsys := w.scanner.fsys
	if _, err := fsys.Stat(dir); err != nil {
		return
	}
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		w.scanner.logger.Printf("scan dir %s: %v", dir, err)
		return
	}

	for _, entry := range entries {
		if w.full() {
			return
		}
		name := entry.Name()
		path := filepath.Join(dir, name)

		// Stat follows symlinks, so a linked directory is walked like a real one
		info, err := fsys.Stat(path)
		if err != nil {
			continue
		}

		if info.IsDir() {
			if !strings.HasPrefix(name, ".") {
				w.dir(ctx, path, depth+1)
			}
			continue
		}
		if !info.Mode().IsRegular() || !w.scanner.Included(name) {
			continue
		}
		if !domain.ContainsFold(name, w.query) {
			continue
		}

		w.results = append(w.results, domain.File{
			Name:      name,
			Path:      path,
			Extension: Extension(name),
			Size:      info.Size(),
			ModTime:   info.ModTime(),
		})
	}
}

// Extension returns the lower-cased, dot-prefixed extension of name. A
// leading dot marks a hidden file, not an extension: ".bashrc" has none and
// ".notes.txt" has ".txt".
func Extension(name string) string {
	base := filepath.Base(name)
	trimmed := strings.TrimPrefix(base, ".")
	if trimmed == base {
		return strings.ToLower(filepath.Ext(base))
	}
	return strings.ToLower(filepath.Ext(trimmed))
}
