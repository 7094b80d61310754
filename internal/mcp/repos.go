package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/EnglandLobster/yuque-mcp/internal/yuque"
)

// GetMyRepositoriesInput is the input of the get_my_repositories tool.
type GetMyRepositoriesInput struct {
	RepoType string `json:"repo_type,omitempty" jsonschema:"Filter by repository type: Book or Design"`
	Offset   int    `json:"offset,omitempty" jsonschema:"Pagination offset"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Number of items per page (max 100, default 20)"`
}

// GetRepositoryOverviewInput is the input of the get_repository_overview tool.
type GetRepositoryOverviewInput struct {
	RepoID string `json:"repo_id" jsonschema:"Repository ID (int) or namespace 'user/repo'"`
}

// CreateRepositoryInput is the input of the create_repository tool.
type CreateRepositoryInput struct {
	Login       string `json:"login" jsonschema:"User or group login to create the repository under"`
	Name        string `json:"name" jsonschema:"Repository name"`
	Slug        string `json:"slug" jsonschema:"URL path slug (alphanumeric/-)"`
	Description string `json:"description,omitempty" jsonschema:"Repository description"`
	Public      int    `json:"public,omitempty" jsonschema:"Visibility: 0=private, 1=public, 2=internal"`
}

// registerRepositoryTools registers repository tools to the MCP server.
// Tools: get_my_repositories, get_repository_overview, create_repository
func (s *Server) registerRepositoryTools() error {
	myReposSchema, err := jsonschema.For[GetMyRepositoriesInput](nil)
	if err != nil {
		return fmt.Errorf("schema for get_my_repositories: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_my_repositories",
		Description: "List the authenticated user's repositories together with their profile. repo_type: Book|Design, limit: max 100.",
		InputSchema: myReposSchema,
	}, s.GetMyRepositories)

	overviewSchema, err := jsonschema.For[GetRepositoryOverviewInput](nil)
	if err != nil {
		return fmt.Errorf("schema for get_repository_overview: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_repository_overview",
		Description: "Get repository details plus its full TOC structure. repo_id: ID (int) or namespace 'user/repo'.",
		InputSchema: overviewSchema,
	}, s.GetRepositoryOverview)

	createSchema, err := jsonschema.For[CreateRepositoryInput](nil)
	if err != nil {
		return fmt.Errorf("schema for create_repository: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_repository",
		Description: "Create a repository under a user or group (login). slug: URL path (alphanumeric/-). public: 0=private, 1=public, 2=internal.",
		InputSchema: createSchema,
	}, s.CreateRepository)

	return nil
}

// GetMyRepositories handles the get_my_repositories MCP tool call.
func (s *Server) GetMyRepositories(ctx context.Context, _ *mcp.CallToolRequest, in GetMyRepositoriesInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.GetMyRepositories(ctx, in.RepoType, in.Offset, in.Limit)
	if err != nil {
		res, sysErr := toolError(err)
		return res, nil, sysErr
	}

	var b strings.Builder
	b.WriteString(formatUser(result.User))
	b.WriteString("\n---\n\n")

	if len(result.Repositories) == 0 {
		b.WriteString("No repositories found.")
		return textResult(b.String()), nil, nil
	}

	fmt.Fprintf(&b, "📚 My Repositories (%d shown)\n\n", len(result.Repositories))
	for i, repo := range result.Repositories {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, repo.Name)
		fmt.Fprintf(&b, "   ID: %d | Namespace: %s\n", repo.ID, strOr(repo.Namespace, ""))
		fmt.Fprintf(&b, "   Documents: %d | Type: %s\n\n", intOr(repo.ItemsCount, 0), repo.Type)
	}

	return textResult(b.String()), nil, nil
}

// GetRepositoryOverview handles the get_repository_overview MCP tool call.
func (s *Server) GetRepositoryOverview(ctx context.Context, _ *mcp.CallToolRequest, in GetRepositoryOverviewInput) (*mcp.CallToolResult, any, error) {
	overview, err := s.client.GetRepositoryOverview(ctx, in.RepoID)
	if err != nil {
		res, sysErr := toolError(err)
		return res, nil, sysErr
	}

	var b strings.Builder
	b.WriteString(formatRepository(overview.Repository))
	b.WriteString("\n---\n\n")
	b.WriteString(formatTOC(overview.TOC))

	return textResult(b.String()), nil, nil
}

// CreateRepository handles the create_repository MCP tool call.
func (s *Server) CreateRepository(ctx context.Context, _ *mcp.CallToolRequest, in CreateRepositoryInput) (*mcp.CallToolResult, any, error) {
	data := yuque.RepositoryCreate{
		Name:   in.Name,
		Slug:   in.Slug,
		Public: in.Public,
	}
	if in.Description != "" {
		data.Description = &in.Description
	}

	repo, err := s.client.CreateRepository(ctx, in.Login, data)
	if err != nil {
		res, sysErr := toolError(err)
		return res, nil, sysErr
	}

	text := fmt.Sprintf(
		"✓ Repository created successfully!\n\nID: %d\nName: %s\nNamespace: %s\nSlug: %s",
		repo.ID, repo.Name, strOr(repo.Namespace, ""), repo.Slug,
	)
	return textResult(text), nil, nil
}
