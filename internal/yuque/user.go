package yuque

import (
	"context"
	"net/http"
)

// GetCurrentUser returns the profile of the authenticated user.
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	raw, err := c.request(ctx, http.MethodGet, "/api/v2/user", nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrapObject[User](raw)
}
