package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/postgen/internal/generate"
	postgenmcp "github.com/gorewood/postgen/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run postgen as a Model Context Protocol (MCP) server over stdio.

The template, output directory and tokens are resolved once at startup, the
same way generate resolves them.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "postgen": {
        "command": "postgen",
        "args": ["serve"]
      }
    }
  }

Available tools: derive_filename, render_post, generate_post`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				newPrinter(cmd).Error(err)
				return err
			}
			server := postgenmcp.NewServer(buildVersion(), generate.New(cfg, generate.WithClock(d.now)))
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
