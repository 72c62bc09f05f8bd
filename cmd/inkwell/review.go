// Package main provides the entry point for the inkwell CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rowanvale/inkwell/internal/document"
	"github.com/rowanvale/inkwell/internal/output"
)

// reviewFlags holds the command-line flags for the review command.
type reviewFlags struct {
	template  string
	maxTokens int
	timeout   int
	dryRun    bool
}

// newReviewCmd creates the review command.
func newReviewCmd() *cobra.Command {
	flags := &reviewFlags{}

	cmd := &cobra.Command{
		Use:   "review <file>",
		Short: "Critique a draft",
		Long: `Review a draft file and print a frank critique.

The draft's frontmatter supplies its title when present. The critique goes
to stdout; nothing is written to disk.

Examples:
  inkwell review drafts/on-mornings.md
  inkwell review drafts/on-mornings.md --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.template, "template", "review/critique", "Prompt template name")
	cmd.Flags().IntVar(&flags.maxTokens, "max-tokens", 0, "Max tokens to generate (0 uses provider default)")
	cmd.Flags().IntVar(&flags.timeout, "timeout", 300, "Request timeout in seconds")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the rendered prompt without calling the model")

	return cmd
}

// runReview executes the review command.
func runReview(cmd *cobra.Command, path string, flags *reviewFlags) error {
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

	doc, title, err := readDraftFile(path)
	if err != nil {
		printer.Error(err)
		return err
	}

	opts := composeOptions{
		template: flags.template,
		bindings: map[string]string{
			"author": authorName(cfg),
			"title":  title,
			"draft":  doc.Body,
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

	critique, err := compose(root, cfg, opts)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":   "ok",
			"title":    title,
			"path":     path,
			"critique": critique,
		})
	}

	printer.Print("%s\n", critique)
	return nil
}

// readDraftFile reads and decodes a draft, deriving its title from the
// frontmatter with the filename as fallback.
func readDraftFile(path string) (document.Document, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document.Document{}, "", output.NewUserError("failed to read draft: " + err.Error())
	}

	doc := document.Decode(string(data))
	title := doc.Header["title"]
	if title == "" {
		title = baseName(path)
	}
	return doc, title, nil
}
