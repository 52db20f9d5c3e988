package commands

import (
	"context"
	"fmt"

	"locator/internal/application"
	"locator/internal/domain"
	"locator/internal/ports"
)

// LaunchResult contains the result of launching a resource
type LaunchResult struct {
	Resource domain.Resource
	Message  string
}

// LaunchCommand searches for Query and launches the hit at Index
type LaunchCommand struct {
	searcher ports.Searcher
	launcher ports.Launcher
	Query    string
	Index    int
}

// NewLaunchCommand creates a new LaunchCommand
func NewLaunchCommand(searcher ports.Searcher, launcher ports.Launcher, query string, index int) *LaunchCommand {
	return &LaunchCommand{
		searcher: searcher,
		launcher: launcher,
		Query:    query,
		Index:    index,
	}
}

// Validate checks the query and index
func (c *LaunchCommand) Validate() error {
	if err := application.ValidateRequired("query", c.Query); err != nil {
		return err
	}
	if c.Index < 0 {
		return &application.ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("index must not be negative, got %d", c.Index),
		}
	}
	return nil
}

// Execute runs the launch command
func (c *LaunchCommand) Execute(ctx context.Context) (*LaunchResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result := c.searcher.Search(ctx, c.Query)
	if c.Index >= len(result.Resources) {
		return nil, fmt.Errorf("result %d for %q (%d results): %w",
			c.Index, c.Query, len(result.Resources), application.ErrNotFound)
	}

	r := result.Resources[c.Index]
	if err := LaunchResource(ctx, c.launcher, r); err != nil {
		return nil, err
	}

	return &LaunchResult{
		Resource: r,
		Message:  fmt.Sprintf("Launched %s", r.Name()),
	}, nil
}

// LaunchResource validates r and hands it to launcher, wrapping failures in
// a LaunchError
func LaunchResource(ctx context.Context, launcher ports.Launcher, r domain.Resource) error {
	if err := application.ValidateResource(r); err != nil {
		return err
	}
	if err := launcher.Launch(ctx, r); err != nil {
		return &application.LaunchError{Name: r.Name(), Target: r.Target(), Err: err}
	}
	return nil
}
