package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"projdex/internal/adapters/filesystem"
	mcpadapter "projdex/internal/adapters/mcp"
	"projdex/internal/adapters/sqlite"
	"projdex/internal/config"
)

func main() {
	indexFlag := flag.String("index", config.IndexFile(), "path to the index file")
	flag.Parse()

	indexPath := config.ExpandHome(*indexFlag)

	idx := sqlite.NewIndex()
	if err := idx.Open(indexPath); err != nil {
		log.Fatalf("projdex-mcp: %v", err)
	}
	defer idx.Close()

	// Refresh the mirror from the JSON index when it is stale. A
	// missing index file is fine: the tools report an empty index.
	if projects, err := filesystem.LoadIndex(indexPath); err == nil {
		if idx.NeedsRebuild(projects) {
			if err := idx.Rebuild(projects); err != nil {
				log.Fatalf("projdex-mcp: rebuilding mirror: %v", err)
			}
		}
	}

	mcpServer := server.NewMCPServer(
		"projdex-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, idx)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("projdex-mcp: %v", err)
	}
}
