package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "locator/internal/adapters/mcp"
	"locator/internal/bootstrap"
	"locator/internal/config"
)

func main() {
	configFlag := flag.String("config", config.Path(), "path to the YAML config file")
	debugFlag := flag.Bool("debug", false, "log diagnostics to stderr")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("locator-mcp: %v", err)
	}
	// stdout carries the protocol, so diagnostics go to stderr only
	svc := bootstrap.New(cfg, bootstrap.Logger(*debugFlag))

	mcpServer := server.NewMCPServer(
		"locator-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, mcpadapter.Services{
		Searcher:   svc.Index,
		Catalog:    svc.Catalog,
		Scanner:    svc.Scanner,
		Icons:      svc.Icons,
		Rasterizer: svc.Rasterizer,
	})

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("locator-mcp: %v", err)
	}
}
