// Package main provides the entry point for the inkwell CLI.
package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/rowanvale/inkwell/internal/corpus"
	"github.com/rowanvale/inkwell/internal/document"
	"github.com/rowanvale/inkwell/internal/output"
	"github.com/rowanvale/inkwell/internal/workspace"
)

// draftFlags holds the command-line flags for the draft command.
type draftFlags struct {
	notes     string
	notesFile string
	template  string
	outPath   string
	budget    int
	maxTokens int
	timeout   int
	force     bool
	dryRun    bool
}

// newDraftCmd creates the draft command.
func newDraftCmd() *cobra.Command {
	flags := &draftFlags{}

	cmd := &cobra.Command{
		Use:   "draft <title>",
		Short: "Turn working notes into a first draft",
		Long: `Turn working notes into a complete first draft in your own voice.

The prompt carries a budget-constrained sample of your published work from
content/, so the model writes in your register rather than its own. The
result lands in drafts/<slug>.md with frontmatter recording the title and
date.

Notes come from --notes, --notes-file, or piped stdin, joined in that
order.

Examples:
  inkwell draft "The Cost of Convenience" --notes "phones; attention; trade-offs"
  inkwell draft "On Mornings" --notes-file ideas.txt
  cat ideas.txt | inkwell draft "On Mornings"
  inkwell draft "On Mornings" --notes "..." --dry-run   # Show the prompt only`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraft(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.notes, "notes", "", "Working notes to draft from")
	cmd.Flags().StringVar(&flags.notesFile, "notes-file", "", "File containing working notes")
	cmd.Flags().StringVar(&flags.template, "template", "draft/post", "Prompt template name")
	cmd.Flags().StringVarP(&flags.outPath, "output", "o", "", "Output path (default drafts/<slug>.md)")
	cmd.Flags().IntVar(&flags.budget, "budget", corpus.DefaultBudget, "Style sample character budget")
	cmd.Flags().IntVar(&flags.maxTokens, "max-tokens", 0, "Max tokens to generate (0 uses provider default)")
	cmd.Flags().IntVar(&flags.timeout, "timeout", 300, "Request timeout in seconds")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing draft file")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the rendered prompt without calling the model")

	return cmd
}

// runDraft executes the draft command.
func runDraft(cmd *cobra.Command, title string, flags *draftFlags) error {
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

	notes, err := gatherNotes(cmd, flags)
	if err != nil {
		printer.Error(err)
		return err
	}
	if notes == "" {
		userErr := output.NewUserError("no notes provided. Use --notes, --notes-file, or pipe via stdin")
		printer.Error(userErr)
		return userErr
	}

	opts := composeOptions{
		template: flags.template,
		bindings: map[string]string{
			"author":        authorName(cfg),
			"title":         title,
			"notes":         notes,
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

	outPath := flags.outPath
	if outPath == "" {
		outPath = filepath.Join(workspace.DraftsDir(root), slugify(title)+".md")
	}
	if err := checkTargetWritable(outPath, flags.force); err != nil {
		printer.Error(err)
		return err
	}

	body, err := compose(root, cfg, opts)
	if err != nil {
		printer.Error(err)
		return err
	}

	header := map[string]string{
		"title": title,
		"date":  time.Now().Format("2006-01-02"),
	}
	if err := writeDocument(outPath, header, body); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status": "ok",
			"title":  title,
			"path":   outPath,
			"chars":  utf8.RuneCountInString(body),
		})
	}

	printer.Print("Draft written to %s\n", outPath)
	return nil
}

// gatherNotes joins notes from the flag, the notes file, and piped stdin.
func gatherNotes(cmd *cobra.Command, flags *draftFlags) (string, error) {
	var parts []string

	if flags.notes != "" {
		parts = append(parts, flags.notes)
	}

	if flags.notesFile != "" {
		data, err := os.ReadFile(flags.notesFile)
		if err != nil {
			return "", output.NewUserError("failed to read notes file: " + err.Error())
		}
		parts = append(parts, strings.TrimSpace(string(data)))
	}

	stdin, err := readStdinIfPiped(cmd)
	if err != nil {
		return "", err
	}
	if stdin != "" {
		parts = append(parts, stdin)
	}

	return strings.Join(parts, "\n\n"), nil
}

// readStdinIfPiped reads stdin content if it's piped (not a terminal).
func readStdinIfPiped(cmd *cobra.Command) (string, error) {
	stdin := cmd.InOrStdin()
	file, ok := stdin.(*os.File)
	if !ok {
		return "", nil
	}

	stat, err := file.Stat()
	if err != nil {
		return "", nil //nolint:nilerr // stat failure means stdin isn't usable, not an error
	}

	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", nil
	}

	content, err := io.ReadAll(stdin)
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to read stdin", err)
	}

	return strings.TrimSpace(string(content)), nil
}

// checkTargetWritable rejects an existing target unless force is set.
func checkTargetWritable(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return output.NewConflictError(path + " already exists (use --force to overwrite)")
	}
	return nil
}

// writeDocument encodes a frontmatter document and writes it, creating the
// parent directory as needed.
func writeDocument(path string, header map[string]string, body string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return output.NewSystemErrorWithCause("creating output directory", err)
	}
	if err := os.WriteFile(path, []byte(document.Encode(header, body)), 0o644); err != nil {
		return output.NewSystemErrorWithCause("writing "+path, err)
	}
	return nil
}
