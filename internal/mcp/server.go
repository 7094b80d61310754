// Package mcp implements the Model Context Protocol server that exposes
// the Yuque knowledge-base API as callable tools.
//
// Each tool maps one-to-one onto a domain or combined operation of the
// yuque.Client. Handlers follow the net/http.Handler style of the MCP SDK:
// an input struct with a JSON schema inferred via jsonschema-go, and a
// method on Server that performs the call and renders a text result.
//
// Error handling distinguishes two kinds of failures:
//
//   - API failures (yuque.APIError): returned as tool results with
//     IsError set, so the calling agent can read the message and react.
//   - System errors: propagated as protocol errors.
package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/EnglandLobster/yuque-mcp/internal/yuque"
)

// Server wraps the MCP SDK server and the Yuque client.
type Server struct {
	mcpServer *mcp.Server
	client    *yuque.Client
	logger    *slog.Logger
	name      string
	version   string
}

// Config holds MCP server configuration.
type Config struct {
	Name    string
	Version string
	Client  *yuque.Client
	Logger  *slog.Logger
}

// NewServer creates a new MCP server with all Yuque tools registered.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("server name is required")
	}
	if cfg.Version == "" {
		return nil, fmt.Errorf("server version is required")
	}
	if cfg.Client == nil {
		return nil, fmt.Errorf("yuque client is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, nil)

	s := &Server{
		mcpServer: mcpServer,
		client:    cfg.Client,
		logger:    cfg.Logger,
		name:      cfg.Name,
		version:   cfg.Version,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("registering tools: %w", err)
	}

	return s, nil
}

// Run starts the MCP server on the given transport. This is a blocking
// call that handles all MCP protocol communication.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.mcpServer.Run(ctx, transport)
}

// registerTools registers all Yuque tools to the MCP server.
func (s *Server) registerTools() error {
	if err := s.registerUserTools(); err != nil {
		return fmt.Errorf("user tools: %w", err)
	}
	if err := s.registerRepositoryTools(); err != nil {
		return fmt.Errorf("repository tools: %w", err)
	}
	if err := s.registerDocumentTools(); err != nil {
		return fmt.Errorf("document tools: %w", err)
	}
	if err := s.registerTOCTools(); err != nil {
		return fmt.Errorf("toc tools: %w", err)
	}
	if err := s.registerSearchTools(); err != nil {
		return fmt.Errorf("search tools: %w", err)
	}
	return nil
}
