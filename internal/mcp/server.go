// Package mcp provides a Model Context Protocol server for inkwell.
// It exposes workspace, template, and corpus operations as MCP tools that
// any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all inkwell tools registered.
// root is the workspace root directory.
func NewServer(version, root string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "inkwell",
		Version: version,
	}, nil)
	registerTools(server, root)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all inkwell tools to the server.
func registerTools(server *mcp.Server, root string) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show workspace state: root path, configured author and model, corpus document counts per category, and available templates.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(root))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "templates",
		Description: "List available prompt templates with their source tier (built-in or workspace override) and shadowing information.",
		Annotations: readOnlyAnnotations(),
	}, handleTemplates(root))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_prompt",
		Description: "Resolve a prompt template by name and interpolate the given bindings. Unbound placeholders are left in place.",
		Annotations: readOnlyAnnotations(),
	}, handleRenderPrompt(root))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "style_sample",
		Description: "Collect the writing corpus and select a budget-constrained, representative sample of the author's published work.",
		Annotations: readOnlyAnnotations(),
	}, handleStyleSample(root))
}
