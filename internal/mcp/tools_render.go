package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rowanvale/inkwell/internal/prompt"
)

// --- Render prompt tool ---

// RenderPromptInput is the input for the render_prompt tool.
type RenderPromptInput struct {
	Template string            `json:"template"           jsonschema:"template name, e.g. draft/post"`
	Bindings map[string]string `json:"bindings,omitempty" jsonschema:"placeholder name to value map"`
}

// RenderPromptOutput is the output for the render_prompt tool.
type RenderPromptOutput struct {
	Name     string `json:"name"     jsonschema:"resolved template name"`
	Source   string `json:"source"   jsonschema:"tier the template resolved from"`
	Rendered string `json:"rendered" jsonschema:"template content with bindings applied"`
}

func handleRenderPrompt(root string) mcp.ToolHandlerFor[RenderPromptInput, RenderPromptOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderPromptInput) (*mcp.CallToolResult, RenderPromptOutput, error) {
		if input.Template == "" {
			return nil, RenderPromptOutput{}, fmt.Errorf("template name is required")
		}

		tmpl, err := prompt.Resolve(root, input.Template)
		if err != nil {
			return nil, RenderPromptOutput{}, err
		}

		out := RenderPromptOutput{
			Name:     tmpl.Name,
			Source:   tmpl.Source,
			Rendered: prompt.Interpolate(tmpl.Content, input.Bindings),
		}
		return nil, out, nil
	}
}
