package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchAndReadInput is the input of the search_and_read tool.
type SearchAndReadInput struct {
	Query  string `json:"query" jsonschema:"Search keywords (max 200 characters)"`
	RepoID string `json:"repo_id" jsonschema:"Repository ID (int) or namespace 'user/repo' to search within"`
	// ReadFirst defaults to true when omitted.
	ReadFirst *bool `json:"read_first,omitempty" jsonschema:"Whether to fetch the first matching document's full content (default true)"`
}

// registerSearchTools registers search tools to the MCP server.
// Tools: search_and_read
func (s *Server) registerSearchTools() error {
	schema, err := jsonschema.For[SearchAndReadInput](nil)
	if err != nil {
		return fmt.Errorf("schema for search_and_read: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_and_read",
		Description: "Search documents in a repository and optionally fetch the first result's full content. query: max 200 chars.",
		InputSchema: schema,
	}, s.SearchAndRead)

	return nil
}

// SearchAndRead handles the search_and_read MCP tool call.
func (s *Server) SearchAndRead(ctx context.Context, _ *mcp.CallToolRequest, in SearchAndReadInput) (*mcp.CallToolResult, any, error) {
	readFirst := in.ReadFirst == nil || *in.ReadFirst

	result, err := s.client.SearchAndRead(ctx, in.Query, in.RepoID, readFirst)
	if err != nil {
		res, sysErr := toolError(err)
		return res, nil, sysErr
	}

	if len(result.Results) == 0 {
		return textResult(fmt.Sprintf("No documents found matching %q.", in.Query)), nil, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Search results for %q (%d found)\n\n", in.Query, result.Meta.Total(len(result.Results)))
	for i, item := range result.Results {
		marker := ""
		if i == 0 && readFirst {
			marker = "→ "
		}
		fmt.Fprintf(&b, "%s%d. **%s**\n", marker, i+1, item.Title)
		fmt.Fprintf(&b, "   Type: %s | URL: %s\n", item.Type, item.URL)
		if item.Summary != nil && *item.Summary != "" {
			fmt.Fprintf(&b, "   Summary: %s\n", *item.Summary)
		}
		b.WriteString("\n")
	}

	if result.FirstDocument != nil {
		b.WriteString("\n---\n\n")
		b.WriteString("📄 First Result Content:\n\n")
		b.WriteString(formatDocument(result.FirstDocument))
	}

	return textResult(b.String()), nil, nil
}
