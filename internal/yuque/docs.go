package yuque

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListDocuments lists the documents of a repository. The returned documents
// carry metadata only; bodies require GetDocument. limit is capped at 100
// by the server; 0 selects DefaultPageLimit.
func (c *Client) ListDocuments(ctx context.Context, repoID string, offset, limit int) ([]Document, Meta, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}

	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))

	raw, err := c.request(ctx, http.MethodGet, "/api/v2/repos/"+repoID+"/docs", query, nil)
	if err != nil {
		return nil, nil, err
	}
	return unwrapList[Document](raw)
}

// GetDocument returns a document with its content. docID is a numeric id
// or a slug; the server decides which it is.
func (c *Client) GetDocument(ctx context.Context, repoID, docID string) (*Document, error) {
	raw, err := c.request(ctx, http.MethodGet, "/api/v2/repos/"+repoID+"/docs/"+docID, nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrapObject[Document](raw)
}

// CreateDocument creates a document in a repository. The new document is
// not part of the TOC until AddDocumentToTOC is called for it.
func (c *Client) CreateDocument(ctx context.Context, repoID string, data DocumentCreate) (*Document, error) {
	raw, err := c.request(ctx, http.MethodPost, "/api/v2/repos/"+repoID+"/docs", nil, data)
	if err != nil {
		return nil, err
	}
	return unwrapObject[Document](raw)
}

// UpdateDocument applies a partial update to a document. Only non-nil
// fields of data are sent; the rest are left unchanged remotely.
func (c *Client) UpdateDocument(ctx context.Context, repoID, docID string, data DocumentUpdate) (*Document, error) {
	raw, err := c.request(ctx, http.MethodPut, "/api/v2/repos/"+repoID+"/docs/"+docID, nil, data)
	if err != nil {
		return nil, err
	}
	return unwrapObject[Document](raw)
}

// DeleteDocument deletes a document and returns its last state.
func (c *Client) DeleteDocument(ctx context.Context, repoID, docID string) (*Document, error) {
	raw, err := c.request(ctx, http.MethodDelete, "/api/v2/repos/"+repoID+"/docs/"+docID, nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrapObject[Document](raw)
}
