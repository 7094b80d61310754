package cmd

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	mcpSdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/EnglandLobster/yuque-mcp/internal/config"
	"github.com/EnglandLobster/yuque-mcp/internal/log"
	"github.com/EnglandLobster/yuque-mcp/internal/mcp"
	"github.com/EnglandLobster/yuque-mcp/internal/yuque"
)

// runServe initializes and starts the MCP server on stdio transport.
func runServe(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := log.New(log.Config{Level: level, JSON: cfg.JSONLog})
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.Info("starting yuque-mcp", "version", Version, "base_url", cfg.BaseURL)

	client, err := yuque.NewClient(cfg.APIToken, cfg.BaseURL, logger.With("component", "yuque"))
	if err != nil {
		return fmt.Errorf("creating yuque client: %w", err)
	}
	defer client.Close()

	server, err := mcp.NewServer(mcp.Config{
		Name:    "yuque-mcp",
		Version: Version,
		Client:  client,
		Logger:  logger.With("component", "mcp"),
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	slog.Info("MCP server ready", "name", "yuque-mcp", "version", Version, "transport", "stdio")

	if err := server.Run(ctx, &mcpSdk.StdioTransport{}); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}

	slog.Info("MCP server shut down gracefully")
	return nil
}
