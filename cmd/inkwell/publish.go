// Package main provides the entry point for the inkwell CLI.
package main

import (
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/rowanvale/inkwell/internal/output"
	"github.com/rowanvale/inkwell/internal/workspace"
)

// publishFlags holds the command-line flags for the publish command.
type publishFlags struct {
	category  string
	title     string
	template  string
	maxTokens int
	timeout   int
	force     bool
	noPolish  bool
	dryRun    bool
}

// newPublishCmd creates the publish command.
func newPublishCmd() *cobra.Command {
	flags := &publishFlags{}

	cmd := &cobra.Command{
		Use:   "publish <file>",
		Short: "Polish a draft and file it into the corpus",
		Long: `Run a final polish pass on a draft and file the result under content/.

Published documents join the corpus, so future drafts are grounded on them
too. Use --no-polish to file the draft verbatim without a model call.

Examples:
  inkwell publish drafts/on-mornings.md
  inkwell publish drafts/on-mornings.md --category notes
  inkwell publish drafts/on-mornings.md --no-polish`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.category, "category", "essays", "Corpus category to file under")
	cmd.Flags().StringVar(&flags.title, "title", "", "Override the title from the draft's frontmatter")
	cmd.Flags().StringVar(&flags.template, "template", "publish/polish", "Prompt template name")
	cmd.Flags().IntVar(&flags.maxTokens, "max-tokens", 0, "Max tokens to generate (0 uses provider default)")
	cmd.Flags().IntVar(&flags.timeout, "timeout", 300, "Request timeout in seconds")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing published file")
	cmd.Flags().BoolVar(&flags.noPolish, "no-polish", false, "File the draft verbatim without a model call")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the rendered prompt without calling the model")

	return cmd
}

// runPublish executes the publish command.
func runPublish(cmd *cobra.Command, path string, flags *publishFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	root, err := requireWorkspace()
	if err != nil {
		printer.Error(err)
		return err
	}

	if !slices.Contains(workspace.StyleCategories, flags.category) {
		userErr := output.NewUserError("unknown category " + strconv.Quote(flags.category) +
			" (known: " + strings.Join(workspace.StyleCategories, ", ") + ")")
		printer.Error(userErr)
		return userErr
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
	if flags.title != "" {
		title = flags.title
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

	target := filepath.Join(workspace.CategoryDir(root, flags.category), slugify(title)+".md")
	if err := checkTargetWritable(target, flags.force); err != nil {
		printer.Error(err)
		return err
	}

	body := doc.Body
	polished := false
	if !flags.noPolish {
		body, err = compose(root, cfg, opts)
		if err != nil {
			printer.Error(err)
			return err
		}
		polished = true
	}

	header := map[string]string{
		"title":  title,
		"author": authorName(cfg),
		"date":   time.Now().Format("2006-01-02"),
		"chars":  strconv.Itoa(utf8.RuneCountInString(body)),
	}
	if err := writeDocument(target, header, body); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":   "ok",
			"title":    title,
			"category": flags.category,
			"path":     target,
			"polished": polished,
		})
	}

	printer.Print("Published to %s\n", target)
	return nil
}

// baseName strips the directory and extension from a path.
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
