package commands

import (
	"context"
	"fmt"

	"locator/internal/application"
	"locator/internal/ports"
)

// IconResult contains the outcome of an icon lookup
type IconResult struct {
	Name    string
	Path    string
	DataURL string // Set only when rasterization was requested
}

// ResolveIconCommand resolves a logical icon name to a file and optionally
// renders it as a data URL
type ResolveIconCommand struct {
	resolver   ports.IconResolver
	rasterizer ports.IconRasterizer
	Name       string
	DataURL    bool
}

// NewResolveIconCommand creates a new ResolveIconCommand. rasterizer may be
// nil when DataURL is never requested.
func NewResolveIconCommand(resolver ports.IconResolver, rasterizer ports.IconRasterizer, name string, dataURL bool) *ResolveIconCommand {
	return &ResolveIconCommand{
		resolver:   resolver,
		rasterizer: rasterizer,
		Name:       name,
		DataURL:    dataURL,
	}
}

// Validate checks the icon name
func (c *ResolveIconCommand) Validate() error {
	if err := application.ValidateRequired("iconName", c.Name); err != nil {
		return err
	}
	if c.DataURL && c.rasterizer == nil {
		return fmt.Errorf("data URL requested: %w", application.ErrUnsupported)
	}
	return nil
}

// Execute runs the resolve icon command
func (c *ResolveIconCommand) Execute(ctx context.Context) (*IconResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	path := c.resolver.Resolve(c.Name)
	if path == "" {
		return nil, fmt.Errorf("icon %q: %w", c.Name, application.ErrNotFound)
	}

	result := &IconResult{Name: c.Name, Path: path}
	if c.DataURL {
		url, err := c.rasterizer.Rasterize(path)
		if err != nil {
			return nil, fmt.Errorf("failed to rasterize %s: %w", path, err)
		}
		result.DataURL = url
	}
	return result, nil
}
