// Package main provides the entry point for the inkwell CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rowanvale/inkwell/internal/envfile"
	"github.com/rowanvale/inkwell/internal/output"
	"github.com/rowanvale/inkwell/internal/workspace"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color persistent flag against TTY detection.
func useColor(cmd *cobra.Command) bool {
	mode := "auto"
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the inkwell CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inkwell",
		Short: "A personal writing assistant",
		Long: `Inkwell - a personal writing assistant that drafts, reviews, and polishes
prose in your own voice.

Inkwell keeps your published work as a corpus under content/ and uses a
budget-constrained sample of it to ground every model call:
  - draft turns working notes into a first draft
  - review critiques an existing draft against your style
  - publish polishes a draft and files it into the corpus
  - style shows exactly which writing the model gets to see

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'inkwell --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Load env files before any subcommand runs. Environment variables
	// already set always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins.
//
// Resolution order:
//  1. $CWD/.env.local          (personal override, gitignored)
//  2. $CWD/.env                (shared)
//  3. <workspace>/.inkwell/env (workspace fallback for API keys)
func loadEnvFiles() {
	paths := []string{".env.local", ".env"}
	if root, err := workspace.Root(); err == nil {
		paths = append(paths, workspace.EnvPath(root))
	}
	_ = envfile.LoadAll(paths...)
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "writing", Title: "Writing Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "workspace", Title: "Workspace Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newDraftCmd(), "writing")
	addGroupedCommand(cmd, newReviewCmd(), "writing")
	addGroupedCommand(cmd, newPublishCmd(), "writing")
	addGroupedCommand(cmd, newStyleCmd(), "writing")

	addGroupedCommand(cmd, newInitCmd(), "workspace")
	addGroupedCommand(cmd, newStatusCmd(), "workspace")
	addGroupedCommand(cmd, newConfigCmd(), "workspace")
	addGroupedCommand(cmd, newTemplatesCmd(), "workspace")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}

// requireWorkspace locates the workspace root from the working directory,
// converting a missing workspace into a user-facing error.
func requireWorkspace() (string, error) {
	root, err := workspace.Root()
	if err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return "", output.NewUserError("not inside an inkwell workspace (run 'inkwell init' first)")
		}
		return "", output.NewSystemErrorWithCause("locating workspace", err)
	}
	return root, nil
}
