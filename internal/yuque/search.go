package yuque

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Search searches documents or repositories.
//
// searchType is SearchTypeDoc or SearchTypeRepo. scope narrows the search
// to a user login or a repository namespace; the empty string searches
// everything visible to the token. page is 1-based and values below 1 are
// treated as 1.
func (c *Client) Search(ctx context.Context, query, searchType, scope string, page int) ([]SearchResult, Meta, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", searchType)
	params.Set("page", strconv.Itoa(page))
	if scope != "" {
		params.Set("scope", scope)
	}

	raw, err := c.request(ctx, http.MethodGet, "/api/v2/search", params, nil)
	if err != nil {
		return nil, nil, err
	}
	return unwrapList[SearchResult](raw)
}
