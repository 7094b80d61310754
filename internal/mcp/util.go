package mcp

import (
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/EnglandLobster/yuque-mcp/internal/yuque"
)

// textResult wraps plain text into an MCP tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// toolError renders a failed Yuque call for the MCP boundary. API failures
// become error results the agent can read and react to; anything else is a
// system error and propagates as a protocol error. Exactly one of the two
// return values is non-nil.
func toolError(err error) (*mcp.CallToolResult, error) {
	var apiErr *yuque.APIError
	if errors.As(err, &apiErr) {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "✗ Error: " + apiErr.Message}},
			IsError: true,
		}, nil
	}
	return nil, err
}
