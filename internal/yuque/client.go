// Package yuque implements a client for the Yuque knowledge-base API.
//
// The client owns a single lazily created HTTP connection pool, attaches
// authentication headers to every request, and classifies failures into the
// APIError taxonomy. Domain operations (users, repositories, documents,
// table of contents, search) translate typed inputs into REST calls and
// parse the response envelope back into typed entities. Combined operations
// compose several domain operations into one caller-facing unit with
// explicit partial-failure behavior.
package yuque

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is the public Yuque endpoint.
	DefaultBaseURL = "https://www.yuque.com"

	// userAgent identifies this client to the API.
	userAgent = "yuque-mcp/0.2.0"

	// requestTimeout bounds every round trip.
	requestTimeout = 30 * time.Second
)

// Client is a Yuque API client. It is safe for concurrent use; the
// underlying HTTP client is created on first use and recreated
// transparently after Close.
type Client struct {
	token   string
	baseURL string
	logger  *slog.Logger

	mu         sync.Mutex
	httpClient *http.Client
}

// NewClient creates a Yuque API client.
//
// token is the Yuque API token (required). baseURL is the server to talk
// to; the empty string selects DefaultBaseURL. logger may not be nil.
func NewClient(token, baseURL string, logger *slog.Logger) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("yuque API token is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		token:   token,
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

// BaseURL returns the server this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// http returns the underlying HTTP client, creating it if it does not
// exist yet. The mutex guards the lazy check-and-create so concurrent
// callers never end up with two live connection pools.
func (c *Client) http() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: requestTimeout}
		c.logger.Debug("created HTTP client", "base_url", c.baseURL)
	}
	return c.httpClient
}

// Close releases the HTTP connection pool. It is idempotent, and the next
// request transparently recreates the pool, so a closed client remains
// usable.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
		c.httpClient = nil
		c.logger.Debug("closed HTTP client")
	}
}

// request performs one HTTP round trip against the API and returns the raw
// response body. The {data, meta} envelope is not unwrapped here; that is
// the domain operations' job.
//
// Any transport-level failure (connection refused, timeout, unreadable
// body) is collapsed into an APIError with status 500. A response with
// status >= 400 becomes an APIError carrying the server's status code and
// a resolved message.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Fixed header set; these never vary per call.
	req.Header.Set("X-Auth-Token", c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("yuque request", "method", method, "path", path)

	resp, err := c.http().Do(req)
	if err != nil {
		c.logger.Error("HTTP request failed", "method", method, "path", path, "error", err)
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("reading response failed", "method", method, "path", path, "error", err)
		return nil, transportError(err)
	}

	if resp.StatusCode >= 400 {
		apiErr := c.apiError(resp.StatusCode, respBody)
		c.logger.Error("yuque API error",
			"status", apiErr.StatusCode,
			"message", apiErr.Message)
		return nil, apiErr
	}

	return respBody, nil
}

// apiError builds the APIError for an error response. The body is parsed
// as JSON to extract the server's message and details; when parsing fails
// the raw body text becomes the message and the details stay empty. This
// is a formatting fallback, not error suppression — the status code is
// carried either way.
func (c *Client) apiError(statusCode int, body []byte) *APIError {
	message := string(body)
	details := map[string]any{}

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err == nil {
		details = parsed
		if m, ok := parsed["message"].(string); ok {
			message = m
		}
	}

	if fixed, ok := errorMessages[statusCode]; ok {
		message = fixed
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		Details:    details,
	}
}

// envelope is the {data, meta} wrapper every successful response uses.
type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta Meta            `json:"meta"`
}

// decodeEnvelope parses a successful response body. A body that is not
// valid JSON counts as a malformed response, i.e. a transport failure.
func decodeEnvelope(raw json.RawMessage) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, transportError(fmt.Errorf("malformed response: %w", err))
	}
	return &env, nil
}

// unwrapObject decodes the envelope's data field into a single entity.
func unwrapObject[T any](raw json.RawMessage) (*T, error) {
	env, err := decodeEnvelope(raw)
	if err != nil {
		return nil, err
	}
	var v T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return nil, transportError(fmt.Errorf("malformed response data: %w", err))
		}
	}
	return &v, nil
}

// unwrapList decodes the envelope's data field into a list of entities
// and passes the pagination metadata through.
func unwrapList[T any](raw json.RawMessage) ([]T, Meta, error) {
	env, err := decodeEnvelope(raw)
	if err != nil {
		return nil, nil, err
	}
	var items []T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return nil, nil, transportError(fmt.Errorf("malformed response data: %w", err))
		}
	}
	meta := env.Meta
	if meta == nil {
		meta = Meta{}
	}
	return items, meta, nil
}
