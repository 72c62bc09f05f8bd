// Package main provides the entry point for the inkwell CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	inkwellmcp "github.com/rowanvale/inkwell/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run inkwell as a Model Context Protocol (MCP) server over stdio.

This exposes inkwell operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "inkwell": {
        "command": "inkwell",
        "args": ["serve"]
      }
    }
  }

Available tools: status, templates, render_prompt, style_sample`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := requireWorkspace()
			if err != nil {
				return err
			}
			server := inkwellmcp.NewServer(buildVersion(), root)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
