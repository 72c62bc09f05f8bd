// Package config loads and saves the workspace configuration file.
//
// Unlike document ingestion, config handling is strict: a missing or
// malformed file is always surfaced as an error, never silently replaced
// with defaults. A workspace whose config has degraded should be fixed,
// not papered over.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rowanvale/inkwell/internal/workspace"
)

// ErrMissing is returned when the config file does not exist.
var ErrMissing = errors.New("config file not found")

// LLMConfig selects the completion provider. APIKeyEnvName holds the name
// of the environment variable carrying the key; the secret itself is never
// written to disk.
type LLMConfig struct {
	Provider      string `yaml:"provider"`
	Model         string `yaml:"model"`
	APIKeyEnvName string `yaml:"api_key_env"`
}

// Config is the workspace configuration document.
type Config struct {
	Author string    `yaml:"author"`
	LLM    LLMConfig `yaml:"llm"`
}

// Defaults returns the documented baseline configuration.
func Defaults() Config {
	return Config{
		Author: "",
		LLM: LLMConfig{
			Provider:      "anthropic",
			Model:         "claude-sonnet-4-5-20250929",
			APIKeyEnvName: "ANTHROPIC_API_KEY",
		},
	}
}

// Load reads the config file under the workspace marker directory and
// overlays it onto Defaults.
//
// The merge is shallow at the top level only: a key present in the file
// (including the whole llm block) replaces the baseline value for that key
// wholesale; absent keys keep the baseline. Nested blocks are not merged
// field by field.
func Load(root string) (Config, error) {
	path := workspace.ConfigPath(root)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w at %s (run 'inkwell init' to create it)", ErrMissing, path)
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	// Decode to raw nodes first so we can tell which top-level keys the
	// file actually sets.
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w (fix the file or re-run 'inkwell init')", path, err)
	}

	cfg := Defaults()
	if node, ok := doc["author"]; ok {
		if err := node.Decode(&cfg.Author); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: author: %w", path, err)
		}
	}
	if node, ok := doc["llm"]; ok {
		var block LLMConfig
		if err := node.Decode(&block); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: llm: %w", path, err)
		}
		cfg.LLM = block
	}

	return cfg, nil
}

// Save serializes the full config to the workspace config path, creating
// parent directories as needed and overwriting any existing file.
func Save(root string, cfg Config) error {
	path := workspace.ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
