// Package main provides the entry point for the inkwell CLI.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rowanvale/inkwell/internal/output"
	"github.com/rowanvale/inkwell/internal/prompt"
	"github.com/rowanvale/inkwell/internal/workspace"
)

// newTemplatesCmd creates the templates command with its subcommands.
func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List available prompt templates",
		Long: `List available prompt templates.

Templates resolve in two tiers: files under .inkwell/templates/ shadow
built-in templates with the same name, one-for-one. Grouped names use a
path segment, e.g. draft/post.

Examples:
  inkwell templates              # List all templates
  inkwell templates show draft/post
  inkwell templates show draft/post --raw`,
		RunE: runTemplatesList,
	}

	cmd.AddCommand(newTemplatesShowCmd())
	return cmd
}

// runTemplatesList executes the templates listing.
func runTemplatesList(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	// Listing works outside a workspace too: only built-ins are shown.
	root, err := workspace.Root()
	if err != nil && !errors.Is(err, workspace.ErrNotFound) {
		sysErr := output.NewSystemErrorWithCause("locating workspace", err)
		printer.Error(sysErr)
		return sysErr
	}

	infos := prompt.List(root)

	if printer.IsJSON() {
		templates := make([]map[string]any, 0, len(infos))
		for _, info := range infos {
			entry := map[string]any{
				"name":        info.Name,
				"source":      info.Source,
				"description": info.Description,
			}
			if info.Shadows != "" {
				entry["shadows"] = info.Shadows
			}
			templates = append(templates, entry)
		}
		return printer.Success(map[string]any{"templates": templates})
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		source := info.Source
		if info.Shadows != "" {
			source += " (shadows " + info.Shadows + ")"
		}
		rows = append(rows, []string{info.Name, source, info.Description})
	}
	printer.Table([]string{"NAME", "SOURCE", "DESCRIPTION"}, rows)
	return nil
}

// newTemplatesShowCmd creates the templates show subcommand.
func newTemplatesShowCmd() *cobra.Command {
	var rawFlag bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print one template's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

			root, err := workspace.Root()
			if err != nil && !errors.Is(err, workspace.ErrNotFound) {
				sysErr := output.NewSystemErrorWithCause("locating workspace", err)
				printer.Error(sysErr)
				return sysErr
			}

			tmpl, err := prompt.Resolve(root, args[0])
			if err != nil {
				userErr := output.NewUserError(err.Error())
				printer.Error(userErr)
				return userErr
			}

			if printer.IsJSON() {
				return printer.Success(map[string]any{
					"name":        tmpl.Name,
					"source":      tmpl.Source,
					"description": tmpl.Description,
					"content":     tmpl.Content,
				})
			}

			if rawFlag {
				printer.Print("%s\n", tmpl.Content)
				return nil
			}

			printer.Section(tmpl.Name)
			printer.KeyValue("Source", tmpl.Source)
			if tmpl.Description != "" {
				printer.KeyValue("Description", tmpl.Description)
			}
			printer.Println()
			printer.Print("%s\n", tmpl.Content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&rawFlag, "raw", false, "Print only the template content")
	return cmd
}
