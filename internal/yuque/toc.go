package yuque

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetTOC returns the table of contents of a repository as a flat list of
// linked nodes.
func (c *Client) GetTOC(ctx context.Context, repoID string) ([]TocNode, error) {
	raw, err := c.request(ctx, http.MethodGet, "/api/v2/repos/"+repoID+"/toc", nil, nil)
	if err != nil {
		return nil, err
	}
	nodes, _, err := unwrapList[TocNode](raw)
	return nodes, err
}

// UpdateTOC performs a structural change to the table of contents. The
// server validates which field combinations are legal for the requested
// action; no validation happens locally. The full response body is
// returned without unwrapping, since its shape varies by action.
func (c *Client) UpdateTOC(ctx context.Context, repoID string, req TocUpdateRequest) (map[string]any, error) {
	raw, err := c.request(ctx, http.MethodPut, "/api/v2/repos/"+repoID+"/toc", nil, req)
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, transportError(fmt.Errorf("malformed response: %w", err))
	}
	return result, nil
}

// AddDocumentToTOC appends a document as a child of the node identified by
// parentUUID, or at the root when parentUUID is empty. It is sugar for the
// corresponding UpdateTOC call.
func (c *Client) AddDocumentToTOC(ctx context.Context, repoID string, docID int, parentUUID string) (map[string]any, error) {
	nodeType := NodeTypeDoc
	req := TocUpdateRequest{
		Action:     TocActionAppendNode,
		ActionMode: TocModeChild,
		DocIDs:     []int{docID},
		Type:       &nodeType,
	}
	if parentUUID != "" {
		req.TargetUUID = &parentUUID
	}
	return c.UpdateTOC(ctx, repoID, req)
}
