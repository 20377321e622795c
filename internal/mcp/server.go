// Package mcp exposes post generation as Model Context Protocol tools, so an
// MCP-capable agent can render and publish posts without the interactive
// prompts.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/postgen/internal/generate"
)

// NewServer creates an MCP server with all postgen tools registered.
func NewServer(version string, gen *generate.Generator) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "postgen",
		Version: version,
	}, nil)
	registerTools(server, gen)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for tools that never write.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for generate_post. Rerunning it with
// the same title on the same day replaces the earlier file.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

func registerTools(server *mcp.Server, gen *generate.Generator) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "derive_filename",
		Description: "Show the output path a post with the given title would be written to today.",
		Annotations: readOnlyAnnotations(),
	}, handleDeriveFilename(gen))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_post",
		Description: "Render a post from the configured HTML template and a content file without writing it. Returns the HTML and the output path.",
		Annotations: readOnlyAnnotations(),
	}, handleRenderPost(gen))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_post",
		Description: "Render a post from the configured HTML template and a content file and write it to the output directory. Overwrites a post with the same title from the same day unless no_clobber is set.",
		Annotations: writeAnnotations(),
	}, handleGeneratePost(gen))
}
