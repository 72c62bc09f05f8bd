package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rowanvale/inkwell/internal/config"
	"github.com/rowanvale/inkwell/internal/corpus"
	"github.com/rowanvale/inkwell/internal/prompt"
	"github.com/rowanvale/inkwell/internal/workspace"
)

// --- Status tool ---

// CategoryCount is the document count for one corpus category.
type CategoryCount struct {
	Category  string `json:"category"  jsonschema:"corpus category name"`
	Documents int    `json:"documents" jsonschema:"number of documents in the category"`
}

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Root         string          `json:"root"          jsonschema:"workspace root directory"`
	ConfigExists bool            `json:"config_exists" jsonschema:"whether .inkwell/config.yaml exists"`
	Author       string          `json:"author"        jsonschema:"configured author name"`
	Provider     string          `json:"provider"      jsonschema:"configured LLM provider"`
	Model        string          `json:"model"         jsonschema:"configured LLM model"`
	Corpus       []CategoryCount `json:"corpus"        jsonschema:"document counts per corpus category"`
	Templates    int             `json:"templates"     jsonschema:"number of available templates"`
}

func handleStatus(root string) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		out := StatusOutput{Root: root}

		cfg, err := config.Load(root)
		switch {
		case err == nil:
			out.ConfigExists = true
			out.Author = cfg.Author
			out.Provider = cfg.LLM.Provider
			out.Model = cfg.LLM.Model
		case errors.Is(err, config.ErrMissing):
			defaults := config.Defaults()
			out.Author = defaults.Author
			out.Provider = defaults.LLM.Provider
			out.Model = defaults.LLM.Model
		default:
			return nil, StatusOutput{}, fmt.Errorf("loading config: %w", err)
		}

		samples := corpus.Collect(workspace.StyleCategories, workspace.ContentDir(root))
		counts := make(map[string]int)
		for _, sample := range samples {
			counts[sample.Category]++
		}
		for _, category := range workspace.StyleCategories {
			out.Corpus = append(out.Corpus, CategoryCount{
				Category:  category,
				Documents: counts[category],
			})
		}

		out.Templates = len(prompt.List(root))

		return nil, out, nil
	}
}

// --- Templates tool ---

// TemplatesInput is the input for the templates tool (no parameters needed).
type TemplatesInput struct{}

// TemplateInfo describes one available template.
type TemplateInfo struct {
	Name        string `json:"name"                  jsonschema:"template name (path-style identifier)"`
	Description string `json:"description,omitempty" jsonschema:"template description from its frontmatter"`
	Source      string `json:"source"                jsonschema:"where the template resolves from: built-in or workspace"`
	Shadows     string `json:"shadows,omitempty"     jsonschema:"tier hidden by this entry, when an override shadows a built-in"`
}

// TemplatesOutput is the output for the templates tool.
type TemplatesOutput struct {
	Templates []TemplateInfo `json:"templates" jsonschema:"available templates in resolution order"`
}

func handleTemplates(root string) mcp.ToolHandlerFor[TemplatesInput, TemplatesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ TemplatesInput) (*mcp.CallToolResult, TemplatesOutput, error) {
		infos := prompt.List(root)

		out := TemplatesOutput{Templates: make([]TemplateInfo, 0, len(infos))}
		for _, info := range infos {
			out.Templates = append(out.Templates, TemplateInfo{
				Name:        info.Name,
				Description: info.Description,
				Source:      info.Source,
				Shadows:     info.Shadows,
			})
		}

		return nil, out, nil
	}
}
