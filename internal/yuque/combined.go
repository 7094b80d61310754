package yuque

import (
	"context"
	"errors"
	"strconv"
)

// MyRepositories is the result of GetMyRepositories. All fields are
// guaranteed: the operation fails as a whole if either step fails.
type MyRepositories struct {
	User         *User
	Repositories []Repository
	Meta         Meta
}

// RepositoryOverview is the result of GetRepositoryOverview. All fields
// are guaranteed.
type RepositoryOverview struct {
	Repository *Repository
	TOC        []TocNode
}

// SearchReadResult is the result of SearchAndRead. Results and Meta are
// guaranteed; FirstDocument is best-effort enrichment and nil when it was
// not requested, not found, or could not be fetched.
type SearchReadResult struct {
	Results       []SearchResult
	FirstDocument *Document
	Meta          Meta
}

// GetMyRepositories fetches the authenticated user and lists their
// repositories in one unit of work. There is no meaningful partial result:
// a failure in either step fails the whole operation.
func (c *Client) GetMyRepositories(ctx context.Context, repoType string, offset, limit int) (*MyRepositories, error) {
	user, err := c.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	repos, meta, err := c.ListRepositories(ctx, user.Login, repoType, offset, limit)
	if err != nil {
		return nil, err
	}

	return &MyRepositories{User: user, Repositories: repos, Meta: meta}, nil
}

// GetRepositoryOverview fetches a repository and its table of contents in
// one unit of work. A failure in either step fails the whole operation.
func (c *Client) GetRepositoryOverview(ctx context.Context, repoID string) (*RepositoryOverview, error) {
	repo, err := c.GetRepository(ctx, repoID)
	if err != nil {
		return nil, err
	}

	toc, err := c.GetTOC(ctx, repoID)
	if err != nil {
		return nil, err
	}

	return &RepositoryOverview{Repository: repo, TOC: toc}, nil
}

// SearchAndRead searches documents within a repository and, when readFirst
// is set and the first hit carries a document id, fetches that document's
// full content.
//
// The search step is the operation's contract: its failure fails the whole
// call. The document fetch is best-effort enrichment — an API failure there
// (for example, permission denied on that one document) leaves
// FirstDocument nil without failing the operation.
func (c *Client) SearchAndRead(ctx context.Context, query, repoID string, readFirst bool) (*SearchReadResult, error) {
	results, meta, err := c.Search(ctx, query, SearchTypeDoc, repoID, 1)
	if err != nil {
		return nil, err
	}

	var firstDoc *Document
	if readFirst && len(results) > 0 && results[0].ID != 0 {
		doc, err := c.GetDocument(ctx, repoID, strconv.Itoa(results[0].ID))
		switch {
		case err == nil:
			firstDoc = doc
		case errors.As(err, new(*APIError)):
			c.logger.Debug("skipping unreadable first search result",
				"repo_id", repoID,
				"doc_id", results[0].ID,
				"error", err)
		default:
			return nil, err
		}
	}

	return &SearchReadResult{Results: results, FirstDocument: firstDoc, Meta: meta}, nil
}
