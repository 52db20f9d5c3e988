package ports

import (
	"context"

	"locator/internal/domain"
)

// IconResolver maps a logical icon name to an absolute file path
type IconResolver interface {
	// Resolve returns the icon path, or "" when no file was found.
	// It never fails: filesystem errors only disqualify a candidate.
	Resolve(name string) string
}

// ApplicationCatalog lists installed applications
type ApplicationCatalog interface {
	// ListApplications returns deduplicated applications whose name contains
	// query (case-insensitive), sorted by name. An empty query returns all.
	ListApplications(ctx context.Context, query string) []domain.Application
}

// FileScanner finds user files under the configured search roots
type FileScanner interface {
	// Scan returns matching files sorted by name
	Scan(ctx context.Context, query string) []domain.File
}

// Searcher runs a merged query over applications and files
type Searcher interface {
	Search(ctx context.Context, query string) domain.SearchResult

	// IsCurrent reports whether seq is the most recently issued query
	IsCurrent(seq uint64) bool
}
