package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"locator/internal/application/commands"
	"locator/internal/domain"
	"locator/internal/ports"
)

// Services are the read-only components exposed as tools. Rasterizer may be
// nil, in which case resolve_icon cannot return data URLs.
type Services struct {
	Searcher   ports.Searcher
	Catalog    ports.ApplicationCatalog
	Scanner    ports.FileScanner
	Icons      ports.IconResolver
	Rasterizer ports.IconRasterizer
}

var readOnlyAnnotation = mcp.ToolAnnotation{
	ReadOnlyHint:    mcp.ToBoolPtr(true),
	DestructiveHint: mcp.ToBoolPtr(false),
	IdempotentHint:  mcp.ToBoolPtr(true),
	OpenWorldHint:   mcp.ToBoolPtr(false),
}

// RegisterReadTools adds all read-only search tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, svc Services) {
	s.AddTool(searchTool(), searchHandler(svc.Searcher))
	s.AddTool(listApplicationsTool(), listApplicationsHandler(svc.Catalog))
	s.AddTool(findFilesTool(), findFilesHandler(svc.Scanner))
	s.AddTool(resolveIconTool(), resolveIconHandler(svc.Icons, svc.Rasterizer))
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search installed applications and user files by name. Applications are listed first, then files."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
		mcp.WithString("query",
			mcp.Description("Case-insensitive name fragment"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return (default 50)"),
		),
	)
}

func searchHandler(searcher ports.Searcher) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if strings.TrimSpace(query) == "" {
			return toolError(fmt.Errorf("query is required"))
		}
		limit := req.GetInt("limit", 50)
		if limit <= 0 {
			limit = 50
		}

		result, err := commands.NewSearchCommand(searcher, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		resources := result.Resources
		if len(resources) > limit {
			resources = resources[:limit]
		}
		return formatEntities(resources, formatResource)
	}
}

// --- list_applications ---

func listApplicationsTool() mcp.Tool {
	return mcp.NewTool("list_applications",
		mcp.WithDescription("List installed applications from desktop entries, sorted by name."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
		mcp.WithString("query",
			mcp.Description("Optional name filter. Omit to list every visible application."),
		),
	)
}

func listApplicationsHandler(catalog ports.ApplicationCatalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		apps, err := commands.NewListApplicationsCommand(catalog, req.GetString("query", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(apps, formatApplication)
	}
}

// --- find_files ---

func findFilesTool() mcp.Tool {
	return mcp.NewTool("find_files",
		mcp.WithDescription("Find documents, images and scripts under the user's home folders by file name."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
		mcp.WithString("query",
			mcp.Description("Case-insensitive file name fragment"),
			mcp.Required(),
		),
	)
}

func findFilesHandler(scanner ports.FileScanner) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		files, err := commands.NewFindFilesCommand(scanner, req.GetString("query", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(files, formatFile)
	}
}

// --- resolve_icon ---

func resolveIconTool() mcp.Tool {
	return mcp.NewTool("resolve_icon",
		mcp.WithDescription("Resolve a desktop icon name (e.g. firefox) to an icon file path."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
		mcp.WithString("name",
			mcp.Description("Icon name from a desktop entry, or an absolute path"),
			mcp.Required(),
		),
		mcp.WithBoolean("data_url",
			mcp.Description("Also return the icon as a 48x48 PNG data URL"),
		),
	)
}

func resolveIconHandler(icons ports.IconResolver, rasterizer ports.IconRasterizer) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewResolveIconCommand(icons, rasterizer, req.GetString("name", ""), req.GetBool("data_url", false))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.DataURL != "" {
			return mcp.NewToolResultText(result.Path + "\n" + result.DataURL), nil
		}
		return mcp.NewToolResultText(result.Path), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatResource(r domain.Resource) string {
	if r.Kind == domain.KindApplication && r.App != nil {
		return "app   " + formatApplication(*r.App)
	}
	if r.Kind == domain.KindFile && r.File != nil {
		return "file  " + formatFile(*r.File)
	}
	return r.String()
}

func formatApplication(a domain.Application) string {
	if a.IconPath == "" {
		return fmt.Sprintf("%s  %s", a.Name, a.Exec)
	}
	return fmt.Sprintf("%s  %s  icon=%s", a.Name, a.Exec, a.IconPath)
}

func formatFile(f domain.File) string {
	return fmt.Sprintf("%s  %s  %d bytes", f.Name, f.Path, f.Size)
}
