package commands

import (
	"context"
	"strings"

	"locator/internal/application"
	"locator/internal/domain"
	"locator/internal/ports"
)

// SearchCommand runs a merged query over applications and files
type SearchCommand struct {
	searcher ports.Searcher
	Query    string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(searcher ports.Searcher, query string) *SearchCommand {
	return &SearchCommand{
		searcher: searcher,
		Query:    query,
	}
}

// Execute runs the search. An empty query yields an empty result.
func (c *SearchCommand) Execute(ctx context.Context) (domain.SearchResult, error) {
	return c.searcher.Search(ctx, c.Query), nil
}

// ListApplicationsCommand lists installed applications, optionally filtered
type ListApplicationsCommand struct {
	catalog ports.ApplicationCatalog
	Query   string
}

// NewListApplicationsCommand creates a new ListApplicationsCommand
func NewListApplicationsCommand(catalog ports.ApplicationCatalog, query string) *ListApplicationsCommand {
	return &ListApplicationsCommand{
		catalog: catalog,
		Query:   query,
	}
}

// Execute runs the list applications command
func (c *ListApplicationsCommand) Execute(ctx context.Context) ([]domain.Application, error) {
	return c.catalog.ListApplications(ctx, strings.TrimSpace(c.Query)), nil
}

// FindFilesCommand searches the configured roots for files by name
type FindFilesCommand struct {
	scanner ports.FileScanner
	Query   string
}

// NewFindFilesCommand creates a new FindFilesCommand
func NewFindFilesCommand(scanner ports.FileScanner, query string) *FindFilesCommand {
	return &FindFilesCommand{
		scanner: scanner,
		Query:   query,
	}
}

// Validate rejects an empty query, which would list every allowed file
func (c *FindFilesCommand) Validate() error {
	return application.ValidateRequired("query", c.Query)
}

// Execute runs the find files command
func (c *FindFilesCommand) Execute(ctx context.Context) ([]domain.File, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.scanner.Scan(ctx, strings.TrimSpace(c.Query)), nil
}
