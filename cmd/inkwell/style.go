// Package main provides the entry point for the inkwell CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rowanvale/inkwell/internal/corpus"
	"github.com/rowanvale/inkwell/internal/output"
	"github.com/rowanvale/inkwell/internal/workspace"
)

// styleFlags holds the command-line flags for the style command.
type styleFlags struct {
	budget int
	stats  bool
}

// newStyleCmd creates the style command.
func newStyleCmd() *cobra.Command {
	flags := &styleFlags{}

	cmd := &cobra.Command{
		Use:   "style",
		Short: "Show the style sample sent to the model",
		Long: `Show the representative sample of your corpus that grounds model calls.

Every category under content/ gets an equal share of the character budget.
Whole documents are preferred; at most one truncated fragment per category
is included, and only when the remaining share is worth having.

Examples:
  inkwell style                 # Print the full sample text
  inkwell style --stats         # Only per-category selection statistics
  inkwell style --budget 8000   # Use a smaller budget`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStyle(cmd, flags)
		},
	}

	cmd.Flags().IntVar(&flags.budget, "budget", corpus.DefaultBudget, "Total character budget")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "Show selection statistics instead of sample text")

	cmd.AddCommand(newStyleAnalyzeCmd())
	return cmd
}

// styleAnalyzeFlags holds the command-line flags for style analyze.
type styleAnalyzeFlags struct {
	template  string
	budget    int
	maxTokens int
	timeout   int
	dryRun    bool
}

// newStyleAnalyzeCmd creates the style analyze subcommand.
func newStyleAnalyzeCmd() *cobra.Command {
	flags := &styleAnalyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Ask the model for a profile of your writing style",
		Long: `Send the style sample to the model and print a style profile.

Useful for checking what the model actually picks up from your corpus
before relying on it for drafting.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStyleAnalyze(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.template, "template", "style/analyze", "Prompt template name")
	cmd.Flags().IntVar(&flags.budget, "budget", corpus.DefaultBudget, "Style sample character budget")
	cmd.Flags().IntVar(&flags.maxTokens, "max-tokens", 0, "Max tokens to generate (0 uses provider default)")
	cmd.Flags().IntVar(&flags.timeout, "timeout", 300, "Request timeout in seconds")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the rendered prompt without calling the model")

	return cmd
}

// runStyleAnalyze executes the style analyze subcommand.
func runStyleAnalyze(cmd *cobra.Command, flags *styleAnalyzeFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	root, err := requireWorkspace()
	if err != nil {
		printer.Error(err)
		return err
	}

	cfg, err := loadStrictConfig(root)
	if err != nil {
		printer.Error(err)
		return err
	}

	opts := composeOptions{
		template: flags.template,
		bindings: map[string]string{
			"author":        authorName(cfg),
			"style_samples": styleSamples(root, flags.budget),
		},
		maxTokens: flags.maxTokens,
		timeout:   flags.timeout,
	}

	if flags.dryRun {
		rendered, renderErr := renderPrompt(root, opts)
		if renderErr != nil {
			printer.Error(renderErr)
			return renderErr
		}
		if printer.IsJSON() {
			return printer.Success(map[string]any{"status": "dry_run", "prompt": rendered})
		}
		printer.Print("%s\n", rendered)
		return nil
	}

	profile, err := compose(root, cfg, opts)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{"status": "ok", "profile": profile})
	}
	printer.Print("%s\n", profile)
	return nil
}

// runStyle executes the style command.
func runStyle(cmd *cobra.Command, flags *styleFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	root, err := requireWorkspace()
	if err != nil {
		printer.Error(err)
		return err
	}

	if flags.budget < 0 {
		userErr := output.NewUserError("budget must be non-negative, got " + strconv.Itoa(flags.budget))
		printer.Error(userErr)
		return userErr
	}

	samples := corpus.Collect(workspace.StyleCategories, workspace.ContentDir(root))
	selection := corpus.Select(samples, corpus.SelectOptions{Budget: flags.budget})

	if printer.IsJSON() {
		categories := make([]map[string]any, 0, len(selection.Categories))
		for _, result := range selection.Categories {
			categories = append(categories, map[string]any{
				"category": result.Category,
				"seen":     result.Seen,
				"included": result.Included,
				"chars":    result.Chars,
			})
		}
		data := map[string]any{
			"total_seen":     selection.TotalSeen,
			"total_included": selection.TotalIncluded,
			"total_chars":    selection.TotalChars,
			"category_share": selection.CategoryShare,
			"categories":     categories,
		}
		if !flags.stats {
			data["sample"] = corpus.FormatSamples(selection)
		}
		return printer.Success(data)
	}

	if flags.stats {
		printStyleStats(printer, selection)
		return nil
	}

	if selection.TotalSeen == 0 {
		printer.Warn("corpus is empty: add documents under %s", workspace.ContentDir(root))
		return nil
	}

	printer.Print("%s\n", corpus.FormatSamples(selection))
	return nil
}

// printStyleStats outputs per-category selection statistics.
func printStyleStats(printer *output.Printer, selection corpus.Selection) {
	printer.Section("Selection")
	printer.KeyValue("Documents seen", strconv.Itoa(selection.TotalSeen))
	printer.KeyValue("Documents included", strconv.Itoa(selection.TotalIncluded))
	printer.KeyValue("Characters", strconv.Itoa(selection.TotalChars))
	printer.KeyValue("Share per category", strconv.Itoa(selection.CategoryShare))

	rows := make([][]string, 0, len(selection.Categories))
	for _, result := range selection.Categories {
		rows = append(rows, []string{
			result.Category,
			strconv.Itoa(result.Seen),
			strconv.Itoa(result.Included),
			strconv.Itoa(result.Chars),
		})
	}
	printer.Println()
	printer.Table([]string{"CATEGORY", "SEEN", "INCLUDED", "CHARS"}, rows)
}
