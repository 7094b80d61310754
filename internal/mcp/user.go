package mcp

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetCurrentUserInput is the (empty) input of the get_current_user tool.
type GetCurrentUserInput struct{}

// registerUserTools registers user tools to the MCP server.
// Tools: get_current_user
func (s *Server) registerUserTools() error {
	schema, err := jsonschema.For[GetCurrentUserInput](nil)
	if err != nil {
		return fmt.Errorf("schema for get_current_user: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_current_user",
		Description: "Get authenticated user profile with stats (name, ID, repos count, followers).",
		InputSchema: schema,
	}, s.GetCurrentUser)

	return nil
}

// GetCurrentUser handles the get_current_user MCP tool call.
func (s *Server) GetCurrentUser(ctx context.Context, _ *mcp.CallToolRequest, _ GetCurrentUserInput) (*mcp.CallToolResult, any, error) {
	user, err := s.client.GetCurrentUser(ctx)
	if err != nil {
		res, sysErr := toolError(err)
		return res, nil, sysErr
	}

	return textResult(formatUser(user)), nil, nil
}
