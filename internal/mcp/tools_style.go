package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rowanvale/inkwell/internal/corpus"
	"github.com/rowanvale/inkwell/internal/workspace"
)

// --- Style sample tool ---

// StyleSampleInput is the input for the style_sample tool.
type StyleSampleInput struct {
	Budget int `json:"budget,omitempty" jsonschema:"total character budget for the sample (default 24000)"`
}

// CategoryStats summarizes selection for one category.
type CategoryStats struct {
	Category string `json:"category" jsonschema:"corpus category name"`
	Seen     int    `json:"seen"     jsonschema:"documents found in the category"`
	Included int    `json:"included" jsonschema:"documents included in the sample"`
	Chars    int    `json:"chars"    jsonschema:"characters contributed by the category"`
}

// StyleSampleOutput is the output for the style_sample tool.
type StyleSampleOutput struct {
	Sample     string          `json:"sample"     jsonschema:"formatted style sample text"`
	TotalSeen  int             `json:"total_seen" jsonschema:"total documents found across categories"`
	TotalChars int             `json:"total_chars" jsonschema:"total characters in the sample"`
	Categories []CategoryStats `json:"categories" jsonschema:"per-category selection statistics"`
}

func handleStyleSample(root string) mcp.ToolHandlerFor[StyleSampleInput, StyleSampleOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input StyleSampleInput) (*mcp.CallToolResult, StyleSampleOutput, error) {
		// An omitted budget arrives as zero; substitute the default here
		// so the sampler can keep taking its budget literally.
		budget := input.Budget
		if budget <= 0 {
			budget = corpus.DefaultBudget
		}

		samples := corpus.Collect(workspace.StyleCategories, workspace.ContentDir(root))
		selection := corpus.Select(samples, corpus.SelectOptions{Budget: budget})

		out := StyleSampleOutput{
			Sample:     corpus.FormatSamples(selection),
			TotalSeen:  selection.TotalSeen,
			TotalChars: selection.TotalChars,
			Categories: make([]CategoryStats, 0, len(selection.Categories)),
		}
		for _, result := range selection.Categories {
			out.Categories = append(out.Categories, CategoryStats{
				Category: result.Category,
				Seen:     result.Seen,
				Included: result.Included,
				Chars:    result.Chars,
			})
		}

		return nil, out, nil
	}
}
