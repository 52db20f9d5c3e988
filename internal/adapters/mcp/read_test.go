package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"locator/internal/domain"
)

type stubSearcher struct{ resources []domain.Resource }

func (s stubSearcher) Search(_ context.Context, q string) domain.SearchResult {
	return domain.SearchResult{Seq: 1, Query: q, Resources: s.resources}
}

func (s stubSearcher) IsCurrent(uint64) bool { return true }

type stubCatalog struct{}

func (stubCatalog) ListApplications(_ context.Context, q string) []domain.Application {
	if q == "none" {
		return nil
	}
	return []domain.Application{{Name: "Firefox", Exec: "firefox", IconPath: "/icons/firefox.png"}}
}

type stubScanner struct{}

func (stubScanner) Scan(_ context.Context, _ string) []domain.File {
	return []domain.File{{Name: "report.pdf", Path: "/home/u/report.pdf", Size: 42}}
}

type stubIcons map[string]string

func (s stubIcons) Resolve(name string) string { return s[name] }

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned protocol error: %v", err)
	}
	if len(res.Content) == 0 {
		t.Fatal("empty result")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content %T", res.Content[0])
	}
	return text.Text, res.IsError
}

func TestSearchHandler(t *testing.T) {
	searcher := stubSearcher{resources: []domain.Resource{
		domain.ApplicationResource(domain.Application{Name: "Firefox", Exec: "firefox"}),
		domain.FileResource(domain.File{Name: "firefox.pdf", Path: "/d/firefox.pdf"}),
	}}
	h := searchHandler(searcher)

	text, isErr := call(t, h, map[string]any{"query": "fire"})
	if isErr {
		t.Fatalf("unexpected error: %s", text)
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "app") || !strings.HasPrefix(lines[1], "file") {
		t.Errorf("unexpected output:\n%s", text)
	}

	text, _ = call(t, h, map[string]any{"query": "fire", "limit": 1})
	if n := len(strings.Split(strings.TrimSpace(text), "\n")); n != 1 {
		t.Errorf("limit ignored, got %d lines", n)
	}

	if _, isErr := call(t, h, map[string]any{"query": "  "}); !isErr {
		t.Error("blank query should be a tool error")
	}
}

func TestListApplicationsHandler(t *testing.T) {
	h := listApplicationsHandler(stubCatalog{})

	text, _ := call(t, h, map[string]any{})
	if !strings.Contains(text, "Firefox  firefox  icon=/icons/firefox.png") {
		t.Errorf("unexpected output: %q", text)
	}
	if text, _ := call(t, h, map[string]any{"query": "none"}); text != "No results." {
		t.Errorf("got %q", text)
	}
}

func TestFindFilesHandler(t *testing.T) {
	h := findFilesHandler(stubScanner{})

	text, isErr := call(t, h, map[string]any{"query": "report"})
	if isErr || !strings.Contains(text, "/home/u/report.pdf") {
		t.Errorf("got %q (error %v)", text, isErr)
	}
	if _, isErr := call(t, h, map[string]any{}); !isErr {
		t.Error("missing query should be a tool error")
	}
}

func TestResolveIconHandler(t *testing.T) {
	h := resolveIconHandler(stubIcons{"firefox": "/icons/firefox.png"}, nil)

	if text, isErr := call(t, h, map[string]any{"name": "firefox"}); isErr || text != "/icons/firefox.png" {
		t.Errorf("got %q (error %v)", text, isErr)
	}
	if _, isErr := call(t, h, map[string]any{"name": "ghost"}); !isErr {
		t.Error("unresolved icon should be a tool error")
	}
	if _, isErr := call(t, h, map[string]any{"name": "firefox", "data_url": true}); !isErr {
		t.Error("data URL without rasterizer should be a tool error")
	}
}
