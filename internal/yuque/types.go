package yuque

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Repository types.
const (
	RepoTypeBook   = "Book"
	RepoTypeDesign = "Design"
)

// Document content formats.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatLake     = "lake"
)

// Visibility levels shared by repositories and documents.
const (
	VisibilityPrivate  = 0
	VisibilityPublic   = 1
	VisibilityInternal = 2
)

// TOC node types.
const (
	NodeTypeDoc   = "DOC"
	NodeTypeLink  = "LINK"
	NodeTypeTitle = "TITLE"
)

// TOC update actions.
const (
	TocActionAppendNode  = "appendNode"
	TocActionPrependNode = "prependNode"
	TocActionEditNode    = "editNode"
	TocActionRemoveNode  = "removeNode"
)

// TOC action modes.
const (
	TocModeSibling = "sibling"
	TocModeChild   = "child"
)

// Search target types.
const (
	SearchTypeDoc  = "doc"
	SearchTypeRepo = "repo"
)

// Meta is the pagination metadata returned alongside list responses.
// The server's shape is not stable across endpoints, so it is passed
// through opaquely.
type Meta map[string]any

// Total returns the "total" count from the metadata, or fallback when
// the server did not include one.
func (m Meta) Total(fallback int) int {
	if v, ok := m["total"].(float64); ok {
		return int(v)
	}
	return fallback
}

// User is a Yuque user account.
type User struct {
	ID               int        `json:"id"`
	Login            string     `json:"login"`
	Name             string     `json:"name"`
	AvatarURL        *string    `json:"avatar_url,omitempty"`
	Description      *string    `json:"description,omitempty"`
	BooksCount       *int       `json:"books_count,omitempty"`
	PublicBooksCount *int       `json:"public_books_count,omitempty"`
	FollowersCount   *int       `json:"followers_count,omitempty"`
	FollowingCount   *int       `json:"following_count,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

// Repository is a Yuque knowledge base.
type Repository struct {
	ID          int        `json:"id"`
	Type        string     `json:"type"`
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	UserID      int        `json:"user_id"`
	Description *string    `json:"description,omitempty"`
	Public      int        `json:"public"`
	ItemsCount  *int       `json:"items_count,omitempty"`
	Namespace   *string    `json:"namespace,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// RepositoryCreate is the payload for creating a repository.
type RepositoryCreate struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	Public      int     `json:"public"`
	// EnhancedPrivacy excludes team members except admins. The API expects
	// this one in camelCase, unlike every other field.
	EnhancedPrivacy *bool `json:"enhancedPrivacy,omitempty"`
}

// RepositoryUpdate is the payload for a partial repository update.
// Nil fields are omitted from the request and left unchanged remotely.
type RepositoryUpdate struct {
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	Public      *int    `json:"public,omitempty"`
}

// Document is a document within a repository.
type Document struct {
	ID          int        `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	BookID      int        `json:"book_id"`
	UserID      int        `json:"user_id"`
	Format      *string    `json:"format,omitempty"`
	Body        *string    `json:"body,omitempty"`
	BodyDraft   *string    `json:"body_draft,omitempty"`
	BodyHTML    *string    `json:"body_html,omitempty"`
	BodyLake    *string    `json:"body_lake,omitempty"`
	Public      int        `json:"public"`
	Status      *int       `json:"status,omitempty"`
	WordCount   *int       `json:"word_count,omitempty"`
	Cover       *string    `json:"cover,omitempty"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// DocumentCreate is the payload for creating a document.
type DocumentCreate struct {
	Title  string  `json:"title"`
	Body   string  `json:"body"`
	Format string  `json:"format"`
	Slug   *string `json:"slug,omitempty"`
	Public int     `json:"public"`
}

// DocumentUpdate is the payload for a partial document update.
// Nil fields are omitted from the request and left unchanged remotely.
type DocumentUpdate struct {
	Title  *string `json:"title,omitempty"`
	Body   *string `json:"body,omitempty"`
	Format *string `json:"format,omitempty"`
	Public *int    `json:"public,omitempty"`
}

// NodeID is a document id as it appears in TOC nodes. The API serializes
// it inconsistently: a number, a numeric string, an empty string or null.
// Empty string and null both mean "no document attached".
type NodeID struct {
	Int   int
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NodeID) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "null" || s == `""` {
		*n = NodeID{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("parsing node id %s: %w", s, err)
		}
		s = unquoted
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("parsing node id %q: %w", s, err)
	}
	*n = NodeID{Int: v, Valid: true}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n NodeID) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, int64(n.Int), 10), nil
}

// TocNode is a single node of a repository's table of contents. The TOC is
// a flat list; hierarchy is encoded through the uuid link fields.
type TocNode struct {
	UUID  string  `json:"uuid"`
	Type  string  `json:"type"`
	Title string  `json:"title"`
	URL   *string `json:"url,omitempty"`
	// Slug is deprecated by the API; kept for older responses.
	Slug  *string `json:"slug,omitempty"`
	DocID NodeID  `json:"doc_id"`
	// ID is the deprecated alias of DocID still present in responses.
	ID    NodeID `json:"id"`
	Level *int   `json:"level,omitempty"`
	// Depth is the deprecated alias of Level.
	Depth       *int    `json:"depth,omitempty"`
	Visible     int     `json:"visible"`
	OpenWindow  int     `json:"open_window"`
	ParentUUID  *string `json:"parent_uuid,omitempty"`
	ChildUUID   *string `json:"child_uuid,omitempty"`
	SiblingUUID *string `json:"sibling_uuid,omitempty"`
	PrevUUID    *string `json:"prev_uuid,omitempty"`
}

// UnmarshalJSON applies the API's implicit default of visible=1 for nodes
// that omit the field.
func (t *TocNode) UnmarshalJSON(data []byte) error {
	type alias TocNode
	a := alias{Visible: 1}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*t = TocNode(a)
	return nil
}

// TocUpdateRequest is the flexible payload of the TOC update endpoint.
// Which field combinations are valid for a given action is enforced by
// the server, not locally.
type TocUpdateRequest struct {
	Action     string  `json:"action"`
	ActionMode string  `json:"action_mode"`
	DocIDs     []int   `json:"doc_ids,omitempty"`
	TargetUUID *string `json:"target_uuid,omitempty"`
	NodeUUID   *string `json:"node_uuid,omitempty"`
	Type       *string `json:"type,omitempty"`
	Title      *string `json:"title,omitempty"`
	URL        *string `json:"url,omitempty"`
	OpenWindow *int    `json:"open_window,omitempty"`
	Visible    *int    `json:"visible,omitempty"`
}

// SearchResult is a single hit returned by the search endpoint.
type SearchResult struct {
	ID      int            `json:"id"`
	Type    string         `json:"type"`
	Title   string         `json:"title"`
	Summary *string        `json:"summary,omitempty"`
	URL     string         `json:"url"`
	Info    *string        `json:"info,omitempty"`
	Target  map[string]any `json:"target,omitempty"`
}
