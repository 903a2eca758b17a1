// Package mcp exposes the project index to MCP clients as read-only
// tools.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"projdex/internal/domain"
	"projdex/internal/ports"
)

// RegisterReadTools adds all index query tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, idx ports.ProjectIndex) {
	s.AddTool(searchTool(), searchHandler(idx))
	s.AddTool(getTool(), getHandler(idx))
	s.AddTool(categoriesTool(), categoriesHandler(idx))
	s.AddTool(statsTool(), statsHandler(idx))
}

// --- search_projects ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search_projects",
		mcp.WithDescription("Search indexed projects by name, category, path, or tag."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchHandler(idx ports.ProjectIndex) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		projects, err := idx.Search(query)
		if err != nil {
			return toolError(err)
		}
		if len(projects) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, p := range projects {
			sb.WriteString(formatProject(p))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- get_project ---

func getTool() mcp.Tool {
	return mcp.NewTool("get_project",
		mcp.WithDescription("Get full details for one project by name."),
		mcp.WithString("name",
			mcp.Description("Project name (final path segment)"),
			mcp.Required(),
		),
	)
}

func getHandler(idx ports.ProjectIndex) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		if name == "" {
			return toolError(fmt.Errorf("name is required"))
		}

		p, err := idx.Get(name)
		if err != nil {
			return toolError(err)
		}
		if p == nil {
			return mcp.NewToolResultText(fmt.Sprintf("No project named %q.", name)), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "name: %s\n", p.Name)
		fmt.Fprintf(&sb, "path: %s\n", p.Path)
		fmt.Fprintf(&sb, "category: %s\n", p.Category)
		fmt.Fprintf(&sb, "status: %s\n", p.Status)
		fmt.Fprintf(&sb, "tags: %s\n", strings.Join(p.Tags, ", "))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_categories ---

func categoriesTool() mcp.Tool {
	return mcp.NewTool("list_categories",
		mcp.WithDescription("List all project categories with their project counts."),
	)
}

func categoriesHandler(idx ports.ProjectIndex) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		counts, err := idx.Categories()
		if err != nil {
			return toolError(err)
		}
		if len(counts) == 0 {
			return mcp.NewToolResultText("The index is empty."), nil
		}

		var sb strings.Builder
		for _, c := range counts {
			fmt.Fprintf(&sb, "%s  %d\n", c.Category, c.Count)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- index_stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("index_stats",
		mcp.WithDescription("Summarize the index: totals by status and the most frequent tags."),
	)
}

func statsHandler(idx ports.ProjectIndex) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		statuses, err := idx.StatusCounts()
		if err != nil {
			return toolError(err)
		}
		tags, err := idx.TagCounts(10)
		if err != nil {
			return toolError(err)
		}

		total := 0
		for _, n := range statuses {
			total += n
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "projects: %d\n", total)
		fmt.Fprintf(&sb, "active: %d\n", statuses[domain.StatusActive])
		fmt.Fprintf(&sb, "archived: %d\n", statuses[domain.StatusArchived])
		fmt.Fprintf(&sb, "unknown: %d\n", statuses[domain.StatusUnknown])
		if len(tags) > 0 {
			sb.WriteString("top tags:\n")
			for _, tc := range tags {
				fmt.Fprintf(&sb, "  %s  %d\n", tc.Tag, tc.Count)
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatProject(p domain.Project) string {
	line := fmt.Sprintf("[%s] %s/%s", p.Status, p.Category, p.Name)
	if len(p.Tags) > 0 {
		line += "  " + strings.Join(p.Tags, ", ")
	}
	return line
}
