// Package main provides the entry point for the inkwell CLI.
package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rowanvale/inkwell/internal/config"
	"github.com/rowanvale/inkwell/internal/output"
	"github.com/rowanvale/inkwell/internal/workspace"
)

// initFlags holds the command-line flags for the init command.
type initFlags struct {
	author string
	dryRun bool
}

// initStepResult tracks the result of a single initialization step.
type initStepResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "skipped", "failed", "dry_run"
	Message string `json:"message,omitempty"`
}

// initStyleSet holds lipgloss styles for init output.
type initStyleSet struct {
	heading lipgloss.Style
	pass    lipgloss.Style
	skip    lipgloss.Style
	dim     lipgloss.Style
	accent  lipgloss.Style
}

// initStyles returns a TTY-aware style set.
func initStyles(isTTY bool) initStyleSet {
	if !isTTY {
		return initStyleSet{}
	}
	return initStyleSet{
		heading: lipgloss.NewStyle().Bold(true),
		pass:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "10", Dark: "10"}),
		skip:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		accent:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "12", Dark: "12"}),
	}
}

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize an inkwell workspace in the current directory",
		Long: `Initialize an inkwell workspace in the current directory.

This command sets up everything needed to use inkwell:
  - Creates the .inkwell/ marker directory with a default config.yaml
  - Creates .inkwell/templates/ for prompt template overrides
  - Creates content/ with the essays, notes, and newsletters categories
  - Creates drafts/ for generated drafts

The command is idempotent - safe to run multiple times. Existing files
are never overwritten.

Examples:
  inkwell init                     # Set up with defaults
  inkwell init --author "R. Vale"  # Set the author name up front
  inkwell init --dry-run           # Show what would be done`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.author, "author", "", "Author name written into the config")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be done without doing it")

	return cmd
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, flags *initFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))
	styles := initStyles(printer.IsTTY())

	cwd, err := os.Getwd()
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("getting working directory", err)
		printer.Error(sysErr)
		return sysErr
	}

	if flags.dryRun {
		return handleInitDryRun(printer, styles, cwd, flags)
	}

	steps, stepErr := executeInitSteps(cwd, flags)

	if printer.IsJSON() {
		if stepErr != nil {
			printer.Error(stepErr)
			return stepErr
		}
		return printer.Success(map[string]any{
			"status": "ok",
			"root":   cwd,
			"steps":  steps,
		})
	}

	printer.Println()
	printer.Print("%s %s\n", styles.heading.Render("Initializing inkwell in"), styles.dim.Render(cwd))
	printer.Println()
	for _, step := range steps {
		label := styles.pass.Render("created")
		if step.Status == "skipped" {
			label = styles.skip.Render("exists")
		}
		printer.Print("  %-10s %s\n", label, step.Name)
	}
	if stepErr != nil {
		printer.Error(stepErr)
		return stepErr
	}

	printer.Println()
	printer.Print("Put published writing under %s, then run '%s'.\n",
		styles.accent.Render("content/"), styles.accent.Render("inkwell draft"))
	return nil
}

// initStepDirs returns the directories init creates, in creation order.
func initStepDirs(root string) []string {
	dirs := []string{
		filepath.Join(root, workspace.MarkerDir),
		workspace.TemplatesDir(root),
		workspace.DraftsDir(root),
	}
	for _, category := range workspace.StyleCategories {
		dirs = append(dirs, workspace.CategoryDir(root, category))
	}
	return dirs
}

// executeInitSteps creates the workspace layout and default config.
func executeInitSteps(root string, flags *initFlags) ([]initStepResult, error) {
	var steps []initStepResult

	for _, dir := range initStepDirs(root) {
		rel, _ := filepath.Rel(root, dir)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			steps = append(steps, initStepResult{Name: rel + "/", Status: "skipped"})
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return steps, output.NewSystemErrorWithCause("creating "+rel, err)
		}
		steps = append(steps, initStepResult{Name: rel + "/", Status: "ok"})
	}

	configRel, _ := filepath.Rel(root, workspace.ConfigPath(root))
	if _, err := os.Stat(workspace.ConfigPath(root)); err == nil {
		steps = append(steps, initStepResult{Name: configRel, Status: "skipped"})
		return steps, nil
	}

	cfg := config.Defaults()
	cfg.Author = flags.author
	if err := config.Save(root, cfg); err != nil {
		return steps, output.NewSystemErrorWithCause("writing default config", err)
	}
	steps = append(steps, initStepResult{Name: configRel, Status: "ok"})
	return steps, nil
}

// handleInitDryRun outputs what would be done without making changes.
func handleInitDryRun(printer *output.Printer, styles initStyleSet, root string, _ *initFlags) error {
	var steps []initStepResult
	for _, dir := range initStepDirs(root) {
		rel, _ := filepath.Rel(root, dir)
		status := "dry_run"
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			status = "skipped"
		}
		steps = append(steps, initStepResult{Name: rel + "/", Status: status})
	}
	configRel, _ := filepath.Rel(root, workspace.ConfigPath(root))
	configStatus := "dry_run"
	if _, err := os.Stat(workspace.ConfigPath(root)); err == nil {
		configStatus = "skipped"
	}
	steps = append(steps, initStepResult{Name: configRel, Status: configStatus})

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status": "dry_run",
			"root":   root,
			"steps":  steps,
		})
	}

	printer.Println()
	printer.Print("%s\n", styles.heading.Render("Would initialize inkwell:"))
	for _, step := range steps {
		label := "create"
		if step.Status == "skipped" {
			label = "exists"
		}
		printer.Print("  %-8s %s\n", styles.dim.Render(label), step.Name)
	}
	return nil
}
