package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/EnglandLobster/yuque-mcp/internal/yuque"
)

// ListDocumentsInput is the input of the list_documents tool.
type ListDocumentsInput struct {
	RepoID string `json:"repo_id" jsonschema:"Repository ID (int) or namespace 'user/repo'"`
	Offset int    `json:"offset,omitempty" jsonschema:"Pagination offset"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Number of items per page (max 100, default 20)"`
}

// GetDocumentInput is the input of the get_document tool.
type GetDocumentInput struct {
	RepoID string `json:"repo_id" jsonschema:"Repository ID (int) or namespace 'user/repo'"`
	DocID  string `json:"doc_id" jsonschema:"Document ID (int) or slug string"`
}

// CreateDocumentInput is the input of the create_document_with_toc tool.
type CreateDocumentInput struct {
	RepoID     string `json:"repo_id" jsonschema:"Repository ID (int) or namespace 'user/repo'"`
	Title      string `json:"title" jsonschema:"Document title"`
	Body       string `json:"body" jsonschema:"Document content"`
	Format     string `json:"format,omitempty" jsonschema:"Content format: markdown, html or lake (default markdown)"`
	Slug       string `json:"slug,omitempty" jsonschema:"Custom URL slug"`
	Public     int    `json:"public,omitempty" jsonschema:"Visibility: 0=private, 1=public, 2=internal"`
	ParentUUID string `json:"parent_uuid,omitempty" jsonschema:"TOC folder UUID to file the document under; omit for root"`
}

// UpdateDocumentInput is the input of the update_document tool.
type UpdateDocumentInput struct {
	RepoID string `json:"repo_id" jsonschema:"Repository ID (int) or namespace 'user/repo'"`
	DocID  string `json:"doc_id" jsonschema:"Document ID (int) or slug string"`
	Title  string `json:"title,omitempty" jsonschema:"New title; an empty string is treated as not provided and leaves the title unchanged"`
	Body   string `json:"body,omitempty" jsonschema:"New content; an empty string is treated as not provided and leaves the content unchanged"`
	Format string `json:"format,omitempty" jsonschema:"New format: markdown, html or lake"`
	Public *int   `json:"public,omitempty" jsonschema:"New visibility: 0=private, 1=public, 2=internal"`
}

// DeleteDocumentInput is the input of the delete_document tool.
type DeleteDocumentInput struct {
	RepoID string `json:"repo_id" jsonschema:"Repository ID (int) or namespace 'user/repo'"`
	DocID  string `json:"doc_id" jsonschema:"Document ID (int) or slug string"`
}

// registerDocumentTools registers document tools to the MCP server.
// Tools: list_documents, get_document, create_document_with_toc,
// update_document, delete_document
func (s *Server) registerDocumentTools() error {
	listSchema, err := jsonschema.For[ListDocumentsInput](nil)
	if err != nil {
		return fmt.Errorf("schema for list_documents: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_documents",
		Description: "List documents in a repository with title, ID, slug and word count. limit: max 100.",
		InputSchema: listSchema,
	}, s.ListDocuments)

	getSchema, err := jsonschema.For[GetDocumentInput](nil)
	if err != nil {
		return fmt.Errorf("schema for get_document: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_document",
		Description: "Read a document's content and metadata. doc_id: ID (int) or slug.",
		InputSchema: getSchema,
	}, s.GetDocument)

	createSchema, err := jsonschema.For[CreateDocumentInput](nil)
	if err != nil {
		return fmt.Errorf("schema for create_document_with_toc: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_document_with_toc",
		Description: "Create a document and automatically add it to the repository TOC. format: markdown|html|lake. parent_uuid: folder UUID or omit for root.",
		InputSchema: createSchema,
	}, s.CreateDocumentWithTOC)

	updateSchema, err := jsonschema.For[UpdateDocumentInput](nil)
	if err != nil {
		return fmt.Errorf("schema for update_document: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_document",
		Description: "Update document fields; only provided parameters are changed. format: markdown|html|lake.",
		InputSchema: updateSchema,
	}, s.UpdateDocument)

	deleteSchema, err := jsonschema.For[DeleteDocumentInput](nil)
	if err != nil {
		return fmt.Errorf("schema for delete_document: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_document",
		Description: "Delete a document permanently (irreversible).",
		InputSchema: deleteSchema,
	}, s.DeleteDocument)

	return nil
}

// ListDocuments handles the list_documents MCP tool call.
func (s *Server) ListDocuments(ctx context.Context, _ *mcp.CallToolRequest, in ListDocumentsInput) (*mcp.CallToolResult, any, error) {
	docs, meta, err := s.client.ListDocuments(ctx, in.RepoID, in.Offset, in.Limit)
	if err != nil {
		res, sysErr := toolError(err)
		return res, nil, sysErr
	}

	if len(docs) == 0 {
		return textResult("No documents found in this repository."), nil, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📚 Documents in repository (Total: %d)\n\n", meta.Total(len(docs)))
	for i, doc := range docs {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, doc.Title)
		fmt.Fprintf(&b, "   ID: %d | Slug: %s\n", doc.ID, doc.Slug)
		updated := "N/A"
		if doc.UpdatedAt != nil {
			updated = doc.UpdatedAt.Format("2006-01-02T15:04:05Z07:00")
		}
		fmt.Fprintf(&b, "   Words: %d | Updated: %s\n\n", intOr(doc.WordCount, 0), updated)
	}

	return textResult(b.String()), nil, nil
}

// GetDocument handles the get_document MCP tool call.
func (s *Server) GetDocument(ctx context.Context, _ *mcp.CallToolRequest, in GetDocumentInput) (*mcp.CallToolResult, any, error) {
	doc, err := s.client.GetDocument(ctx, in.RepoID, in.DocID)
	if err != nil {
		res, sysErr := toolError(err)
		return res, nil, sysErr
	}

	return textResult(formatDocument(doc)), nil, nil
}

// CreateDocumentWithTOC handles the create_document_with_toc MCP tool call.
// It creates the document first and then appends it to the TOC; a failure
// in either step surfaces as the tool's error.
func (s *Server) CreateDocumentWithTOC(ctx context.Context, _ *mcp.CallToolRequest, in CreateDocumentInput) (*mcp.CallToolResult, any, error) {
	format := in.Format
	if format == "" {
		format = yuque.FormatMarkdown
	}

	data := yuque.DocumentCreate{
		Title:  in.Title,
		Body:   in.Body,
		Format: format,
		Public: in.Public,
	}
	if in.Slug != "" {
		data.Slug = &in.Slug
	}

	doc, err := s.client.CreateDocument(ctx, in.RepoID, data)
	if err != nil {
		res, sysErr := toolError(err)
		return res, nil, sysErr
	}

	if _, err := s.client.AddDocumentToTOC(ctx, in.RepoID, doc.ID, in.ParentUUID); err != nil {
		res, sysErr := toolError(err)
		return res, nil, sysErr
	}

	text := fmt.Sprintf(
		"✓ Document created and added to TOC!\n\nID: %d\nTitle: %s\nSlug: %s\nTOC: Added successfully",
		doc.ID, doc.Title, doc.Slug,
	)
	return textResult(text), nil, nil
}

// UpdateDocument handles the update_document MCP tool call.
func (s *Server) UpdateDocument(ctx context.Context, _ *mcp.CallToolRequest, in UpdateDocumentInput) (*mcp.CallToolResult, any, error) {
	var data yuque.DocumentUpdate
	if in.Title != "" {
		data.Title = &in.Title
	}
	if in.Body != "" {
		data.Body = &in.Body
	}
	if in.Format != "" {
		data.Format = &in.Format
	}
	data.Public = in.Public

	doc, err := s.client.UpdateDocument(ctx, in.RepoID, in.DocID, data)
	if err != nil {
		res, sysErr := toolError(err)
		return res, nil, sysErr
	}

	updated := "N/A"
	if doc.UpdatedAt != nil {
		updated = doc.UpdatedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	text := fmt.Sprintf(
		"✓ Document updated successfully!\n\nID: %d\nTitle: %s\nUpdated at: %s",
		doc.ID, doc.Title, updated,
	)
	return textResult(text), nil, nil
}

// DeleteDocument handles the delete_document MCP tool call.
func (s *Server) DeleteDocument(ctx context.Context, _ *mcp.CallToolRequest, in DeleteDocumentInput) (*mcp.CallToolResult, any, error) {
	doc, err := s.client.DeleteDocument(ctx, in.RepoID, in.DocID)
	if err != nil {
		res, sysErr := toolError(err)
		return res, nil, sysErr
	}

	text := fmt.Sprintf("✓ Document deleted successfully!\n\nDeleted: %s (ID: %d)", doc.Title, doc.ID)
	return textResult(text), nil, nil
}
