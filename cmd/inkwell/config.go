// Package main provides the entry point for the inkwell CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rowanvale/inkwell/internal/config"
	"github.com/rowanvale/inkwell/internal/output"
)

// configKeys maps dotted key names to getter/setter pairs over the config.
// Adding a config field means adding one entry here.
var configKeys = map[string]struct {
	get func(cfg *config.Config) string
	set func(cfg *config.Config, value string)
}{
	"author": {
		get: func(cfg *config.Config) string { return cfg.Author },
		set: func(cfg *config.Config, value string) { cfg.Author = value },
	},
	"llm.provider": {
		get: func(cfg *config.Config) string { return cfg.LLM.Provider },
		set: func(cfg *config.Config, value string) { cfg.LLM.Provider = value },
	},
	"llm.model": {
		get: func(cfg *config.Config) string { return cfg.LLM.Model },
		set: func(cfg *config.Config, value string) { cfg.LLM.Model = value },
	},
	"llm.api_key_env": {
		get: func(cfg *config.Config) string { return cfg.LLM.APIKeyEnvName },
		set: func(cfg *config.Config, value string) { cfg.LLM.APIKeyEnvName = value },
	},
}

// sortedConfigKeys returns the known keys in stable display order.
func sortedConfigKeys() []string {
	return []string{"author", "llm.provider", "llm.model", "llm.api_key_env"}
}

// newConfigCmd creates the config command with its subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the workspace configuration",
		Long: `Inspect and edit .inkwell/config.yaml.

Settings saved by this command fully replace their top-level section, so a
partial llm block falls back to baseline defaults for nothing: what you see
in 'config show' is exactly what is in effect.

Keys:
  author            Author name used in prompts
  llm.provider      Completion provider (anthropic, openai, google, local)
  llm.model         Model name passed to the provider
  llm.api_key_env   Name of the environment variable holding the API key

Examples:
  inkwell config show
  inkwell config get llm.model
  inkwell config set author "Rowan Vale"`,
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	return cmd
}

// newConfigShowCmd creates the config show subcommand.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			if printer.IsJSON() {
				data := make(map[string]any, len(configKeys))
				for _, key := range sortedConfigKeys() {
					data[key] = configKeys[key].get(&cfg)
				}
				return printer.Success(data)
			}

			printer.Section("Configuration")
			for _, key := range sortedConfigKeys() {
				printer.KeyValue(key, configKeys[key].get(&cfg))
			}
			return nil
		},
	}
}

// newConfigGetCmd creates the config get subcommand.
func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

			root, err := requireWorkspace()
			if err != nil {
				printer.Error(err)
				return err
			}

			entry, ok := configKeys[args[0]]
			if !ok {
				err := unknownKeyError(args[0])
				printer.Error(err)
				return err
			}

			cfg, err := loadStrictConfig(root)
			if err != nil {
				printer.Error(err)
				return err
			}

			value := entry.get(&cfg)
			if printer.IsJSON() {
				return printer.Success(map[string]any{"key": args[0], "value": value})
			}
			printer.Print("%s\n", value)
			return nil
		},
	}
}

// newConfigSetCmd creates the config set subcommand.
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

			root, err := requireWorkspace()
			if err != nil {
				printer.Error(err)
				return err
			}

			entry, ok := configKeys[args[0]]
			if !ok {
				err := unknownKeyError(args[0])
				printer.Error(err)
				return err
			}

			cfg, err := loadStrictConfig(root)
			if err != nil {
				printer.Error(err)
				return err
			}

			entry.set(&cfg, args[1])
			if err := config.Save(root, cfg); err != nil {
				sysErr := output.NewSystemErrorWithCause("saving config", err)
				printer.Error(sysErr)
				return sysErr
			}

			if printer.IsJSON() {
				return printer.Success(map[string]any{"key": args[0], "value": args[1]})
			}
			printer.Print("%s = %s\n", args[0], args[1])
			return nil
		},
	}
}

// loadStrictConfig loads the workspace config. Missing and malformed files
// are both fatal here: the config commands operate on what is actually on
// disk, never on substituted defaults.
func loadStrictConfig(root string) (config.Config, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return config.Config{}, output.NewUserErrorWithCause("loading config", err)
	}
	return cfg, nil
}

// unknownKeyError builds the error for an unrecognized config key.
func unknownKeyError(key string) error {
	return output.NewUserError(fmt.Sprintf("unknown config key %q (known keys: %s)",
		key, strings.Join(sortedConfigKeys(), ", ")))
}
