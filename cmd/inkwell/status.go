// Package main provides the entry point for the inkwell CLI.
package main

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rowanvale/inkwell/internal/config"
	"github.com/rowanvale/inkwell/internal/corpus"
	"github.com/rowanvale/inkwell/internal/output"
	"github.com/rowanvale/inkwell/internal/prompt"
	"github.com/rowanvale/inkwell/internal/workspace"
)

// statusResult holds the data for status output.
type statusResult struct {
	Root         string         `json:"root"`
	ConfigExists bool           `json:"config_exists"`
	Author       string         `json:"author,omitempty"`
	Provider     string         `json:"provider"`
	Model        string         `json:"model"`
	Corpus       map[string]int `json:"corpus"`
	CorpusChars  int            `json:"corpus_chars"`
	Templates    int            `json:"templates"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show workspace and corpus state",
		Long: `Show the current state of the inkwell workspace.

Displays the workspace root, configured author and model, per-category
corpus document counts, and the number of available templates.

Examples:
  inkwell status          # Show human-readable status
  inkwell status --json   # Output status as JSON for scripting`,
		RunE: runStatus,
	}
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	root, err := requireWorkspace()
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := gatherStatus(root)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"root":          result.Root,
			"config_exists": result.ConfigExists,
			"author":        result.Author,
			"provider":      result.Provider,
			"model":         result.Model,
			"corpus":        result.Corpus,
			"corpus_chars":  result.CorpusChars,
			"templates":     result.Templates,
		})
	}

	printHumanStatus(printer, result)
	return nil
}

// gatherStatus collects all status information.
func gatherStatus(root string) (*statusResult, error) {
	result := &statusResult{Root: root, Corpus: make(map[string]int)}

	cfg, err := config.Load(root)
	switch {
	case err == nil:
		result.ConfigExists = true
	case errors.Is(err, config.ErrMissing):
		cfg = config.Defaults()
	default:
		return nil, err
	}
	result.Author = cfg.Author
	result.Provider = cfg.LLM.Provider
	result.Model = cfg.LLM.Model

	for _, category := range workspace.StyleCategories {
		result.Corpus[category] = 0
	}
	for _, sample := range corpus.Collect(workspace.StyleCategories, workspace.ContentDir(root)) {
		result.Corpus[sample.Category]++
		result.CorpusChars += sample.Chars
	}

	result.Templates = len(prompt.List(root))
	return result, nil
}

// printHumanStatus outputs status in human-readable format.
func printHumanStatus(printer *output.Printer, status *statusResult) {
	printer.Section("Workspace")
	printer.KeyValue("Root", status.Root)
	printer.KeyValue("Config", formatBool(status.ConfigExists))
	if status.Author != "" {
		printer.KeyValue("Author", status.Author)
	}
	printer.KeyValue("Model", status.Provider+"/"+status.Model)

	printer.Section("Corpus")
	for _, category := range workspace.StyleCategories {
		printer.KeyValue(category, strconv.Itoa(status.Corpus[category])+" documents")
	}
	printer.KeyValue("Characters", strconv.Itoa(status.CorpusChars))

	printer.Section("Templates")
	printer.KeyValue("Available", strconv.Itoa(status.Templates))
}

// formatBool returns a human-readable boolean string.
func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "missing (defaults in effect)"
}
