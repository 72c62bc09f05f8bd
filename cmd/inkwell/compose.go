// Package main provides the entry point for the inkwell CLI.
package main

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/rowanvale/inkwell/internal/config"
	"github.com/rowanvale/inkwell/internal/corpus"
	"github.com/rowanvale/inkwell/internal/llm"
	"github.com/rowanvale/inkwell/internal/output"
	"github.com/rowanvale/inkwell/internal/prompt"
	"github.com/rowanvale/inkwell/internal/workspace"
)

// composeOptions carries everything needed to render a template and run it
// through the configured model.
type composeOptions struct {
	template  string
	bindings  map[string]string
	maxTokens int
	timeout   int // seconds
}

// styleSamples collects the corpus and formats the budget-constrained
// sample used to ground prompts.
func styleSamples(root string, budget int) string {
	samples := corpus.Collect(workspace.StyleCategories, workspace.ContentDir(root))
	selection := corpus.Select(samples, corpus.SelectOptions{Budget: budget})
	formatted := corpus.FormatSamples(selection)
	if formatted == "" {
		return "(no writing samples available yet)"
	}
	return formatted
}

// renderPrompt resolves the named template and fills its placeholders.
func renderPrompt(root string, opts composeOptions) (string, error) {
	tmpl, err := prompt.Resolve(root, opts.template)
	if err != nil {
		return "", output.NewUserError(err.Error())
	}
	return prompt.Interpolate(tmpl.Content, opts.bindings), nil
}

// compose renders the template and runs one completion against the
// configured provider. The response is sanitized before returning.
func compose(root string, cfg config.Config, opts composeOptions) (string, error) {
	rendered, err := renderPrompt(root, opts)
	if err != nil {
		return "", err
	}

	client, err := llm.New(cfg.LLM)
	if err != nil {
		return "", err
	}

	timeout := opts.timeout
	if timeout <= 0 {
		timeout = 300
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	resp, err := client.Complete(ctx, llm.Request{
		Prompt:    rendered,
		MaxTokens: opts.maxTokens,
	})
	if err != nil {
		return "", err
	}

	return llm.Sanitize(resp.Content), nil
}

// slugify derives a filesystem-friendly name from a title. Runs of
// non-alphanumeric characters collapse to single hyphens.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "untitled"
	}
	return slug
}

// authorName returns the configured author, falling back to a neutral
// placeholder so prompts never render an empty byline.
func authorName(cfg config.Config) string {
	if cfg.Author != "" {
		return cfg.Author
	}
	return "the author"
}
