package mcp

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/EnglandLobster/yuque-mcp/internal/yuque"
)

// UpdateTOCInput is the input of the update_toc tool. Which field
// combinations are valid for a given action is enforced by the Yuque
// server, not here.
type UpdateTOCInput struct {
	RepoID     string `json:"repo_id" jsonschema:"Repository ID (int) or namespace 'user/repo'"`
	Action     string `json:"action" jsonschema:"Action: appendNode, prependNode, editNode or removeNode"`
	ActionMode string `json:"action_mode" jsonschema:"Mode: child or sibling"`
	DocIDs     []int  `json:"doc_ids,omitempty" jsonschema:"Document IDs to add"`
	TargetUUID string `json:"target_uuid,omitempty" jsonschema:"Target node UUID"`
	NodeUUID   string `json:"node_uuid,omitempty" jsonschema:"UUID of the node to operate on"`
	NodeType   string `json:"node_type,omitempty" jsonschema:"Node type: DOC, LINK or TITLE; use TITLE to create a group/folder"`
	Title      string `json:"title,omitempty" jsonschema:"Node title"`
	URL        string `json:"url,omitempty" jsonschema:"Link URL (for LINK nodes)"`
	OpenWindow *int   `json:"open_window,omitempty" jsonschema:"Open in new window: 0=same page, 1=new window"`
	Visible    *int   `json:"visible,omitempty" jsonschema:"Visibility: 0=hidden, 1=visible"`
}

// registerTOCTools registers table-of-contents tools to the MCP server.
// Tools: update_toc
func (s *Server) registerTOCTools() error {
	schema, err := jsonschema.For[UpdateTOCInput](nil)
	if err != nil {
		return fmt.Errorf("schema for update_toc: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_toc",
		Description: "Modify the TOC structure. To create a group/folder, use node_type='TITLE'. action: appendNode|prependNode|editNode|removeNode. action_mode: child|sibling.",
		InputSchema: schema,
	}, s.UpdateTOC)

	return nil
}

// UpdateTOC handles the update_toc MCP tool call.
func (s *Server) UpdateTOC(ctx context.Context, _ *mcp.CallToolRequest, in UpdateTOCInput) (*mcp.CallToolResult, any, error) {
	req := yuque.TocUpdateRequest{
		Action:     in.Action,
		ActionMode: in.ActionMode,
		DocIDs:     in.DocIDs,
		OpenWindow: in.OpenWindow,
		Visible:    in.Visible,
	}
	if in.TargetUUID != "" {
		req.TargetUUID = &in.TargetUUID
	}
	if in.NodeUUID != "" {
		req.NodeUUID = &in.NodeUUID
	}
	if in.NodeType != "" {
		req.Type = &in.NodeType
	}
	if in.Title != "" {
		req.Title = &in.Title
	}
	if in.URL != "" {
		req.URL = &in.URL
	}

	if _, err := s.client.UpdateTOC(ctx, in.RepoID, req); err != nil {
		res, sysErr := toolError(err)
		return res, nil, sysErr
	}

	text := fmt.Sprintf("✓ Table of contents updated successfully!\n\nAction: %s\nMode: %s", in.Action, in.ActionMode)
	return textResult(text), nil, nil
}
