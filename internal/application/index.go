package application

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"locator/internal/domain"
	"locator/internal/ports"
)

// ResourceIndex merges applications and files for a query. It implements
// ports.Searcher.
type ResourceIndex struct {
	catalog ports.ApplicationCatalog
	scanner ports.FileScanner
	seq     atomic.Uint64
	logger  *log.Logger
}

// Ensure ResourceIndex implements Searcher
var _ ports.Searcher = (*ResourceIndex)(nil)

// IndexOption configures the ResourceIndex
type IndexOption func(*ResourceIndex)

// WithLogger sets the logger used for query timings
func WithLogger(l *log.Logger) IndexOption {
	return func(idx *ResourceIndex) {
		idx.logger = l
	}
}

// NewResourceIndex creates an index over catalog and scanner
func NewResourceIndex(catalog ports.ApplicationCatalog, scanner ports.FileScanner, opts ...IndexOption) *ResourceIndex {
	idx := &ResourceIndex{
		catalog: catalog,
		scanner: scanner,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Search runs the catalog and the scanner concurrently and returns the
// applications followed by the files. Every call takes a new sequence
// number, including empty queries, which return immediately without
// touching either subsystem.
func (idx *ResourceIndex) Search(ctx context.Context, query string) domain.SearchResult {
	result := domain.SearchResult{
		Seq:   idx.seq.Add(1),
		Query: query,
	}
	if strings.TrimSpace(query) == "" {
		return result
	}

	start := time.Now()
	var (
		apps  []domain.Application
		files []domain.File
		wg    sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		apps = idx.catalog.ListApplications(ctx, query)
	}()
	go func() {
		defer wg.Done()
		files = idx.scanner.Scan(ctx, query)
	}()
	wg.Wait()

	result.Resources = make([]domain.Resource, 0, len(apps)+len(files))
	for _, app := range apps {
		result.Resources = append(result.Resources, domain.ApplicationResource(app))
	}
	for _, f := range files {
		result.Resources = append(result.Resources, domain.FileResource(f))
	}

	idx.logger.Printf("query %d %q: %d apps, %d files in %s",
		result.Seq, query, len(apps), len(files), time.Since(start).Round(time.Millisecond))
	return result
}

// IsCurrent reports whether seq belongs to the most recent Search call
func (idx *ResourceIndex) IsCurrent(seq uint64) bool {
	return idx.seq.Load() == seq
}
