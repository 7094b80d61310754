package yuque

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultPageLimit is the page size used when a caller does not specify one.
const DefaultPageLimit = 20

// ListRepositories lists the repositories of a user or group.
//
// repoType filters by repository type (RepoTypeBook or RepoTypeDesign);
// the empty string disables the filter. limit is capped at 100 by the
// server; 0 selects DefaultPageLimit.
func (c *Client) ListRepositories(ctx context.Context, login, repoType string, offset, limit int) ([]Repository, Meta, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}

	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))
	if repoType != "" {
		query.Set("type", repoType)
	}

	raw, err := c.request(ctx, http.MethodGet, "/api/v2/users/"+login+"/repos", query, nil)
	if err != nil {
		return nil, nil, err
	}
	return unwrapList[Repository](raw)
}

// GetRepository returns repository details. repoID is a numeric id or a
// namespace of the form "owner/slug"; the server decides which it is.
func (c *Client) GetRepository(ctx context.Context, repoID string) (*Repository, error) {
	raw, err := c.request(ctx, http.MethodGet, "/api/v2/repos/"+repoID, nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrapObject[Repository](raw)
}

// CreateRepository creates a repository under the given user or group.
func (c *Client) CreateRepository(ctx context.Context, login string, data RepositoryCreate) (*Repository, error) {
	raw, err := c.request(ctx, http.MethodPost, "/api/v2/users/"+login+"/repos", nil, data)
	if err != nil {
		return nil, err
	}
	return unwrapObject[Repository](raw)
}

// UpdateRepository applies a partial update to a repository. Only non-nil
// fields of data are sent; the rest are left unchanged remotely.
func (c *Client) UpdateRepository(ctx context.Context, repoID string, data RepositoryUpdate) (*Repository, error) {
	raw, err := c.request(ctx, http.MethodPut, "/api/v2/repos/"+repoID, nil, data)
	if err != nil {
		return nil, err
	}
	return unwrapObject[Repository](raw)
}

// DeleteRepository deletes a repository and returns its last state.
func (c *Client) DeleteRepository(ctx context.Context, repoID string) (*Repository, error) {
	raw, err := c.request(ctx, http.MethodDelete, "/api/v2/repos/"+repoID, nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrapObject[Repository](raw)
}
