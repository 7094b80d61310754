// Package cmd implements the yuque-mcp command line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "yuque-mcp",
	Short: "MCP server for the Yuque knowledge base",
	Long: `yuque-mcp exposes the Yuque knowledge-base API as Model Context
Protocol tools, so AI agents can browse and edit knowledge bases through
structured calls.

Running yuque-mcp without a subcommand starts the MCP server on stdio.

Configuration comes from environment variables (YUQUE_API_TOKEN is
required, YUQUE_BASE_URL optional), a .env file, or a config.yaml in
~/.yuque-mcp or the working directory.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
