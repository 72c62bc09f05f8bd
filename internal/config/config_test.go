package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rowanvale/inkwell/internal/workspace"
)

// newWorkspace creates a temp workspace root with the marker directory.
func newWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, workspace.MarkerDir), 0750); err != nil {
		t.Fatalf("failed to create marker dir: %v", err)
	}
	return root
}

// writeConfig writes raw YAML to the workspace config path.
func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(workspace.ConfigPath(root), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	root := newWorkspace(t)

	_, err := Load(root)
	if !errors.Is(err, ErrMissing) {
		t.Fatalf("Load() error = %v, want ErrMissing", err)
	}
	if !strings.Contains(err.Error(), "inkwell init") {
		t.Errorf("Load() error should carry remediation guidance, got: %v", err)
	}
}

func TestLoadParseError(t *testing.T) {
	root := newWorkspace(t)
	writeConfig(t, root, "author: [unclosed\n")

	_, err := Load(root)
	if err == nil {
		t.Fatal("Load() expected parse error, got nil")
	}
	if errors.Is(err, ErrMissing) {
		t.Errorf("parse failure should not report ErrMissing, got: %v", err)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	defaults := Defaults()

	tests := []struct {
		name string
		yaml string
		want Config
	}{
		{
			name: "author only keeps llm baseline",
			yaml: "author: \"Grace\"\n",
			want: Config{Author: "Grace", LLM: defaults.LLM},
		},
		{
			name: "empty file yields pure defaults",
			yaml: "",
			want: defaults,
		},
		{
			name: "full file replaces everything",
			yaml: "author: Ada\nllm:\n  provider: openai\n  model: gpt-5-mini\n  api_key_env: OPENAI_API_KEY\n",
			want: Config{
				Author: "Ada",
				LLM:    LLMConfig{Provider: "openai", Model: "gpt-5-mini", APIKeyEnvName: "OPENAI_API_KEY"},
			},
		},
		{
			name: "partial llm block replaces the block wholesale",
			yaml: "llm:\n  model: gpt-5-mini\n",
			want: Config{
				Author: defaults.Author,
				LLM:    LLMConfig{Model: "gpt-5-mini"},
			},
		},
		{
			name: "unknown top-level keys are ignored",
			yaml: "author: Lin\neditor: vim\n",
			want: Config{Author: "Lin", LLM: defaults.LLM},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newWorkspace(t)
			writeConfig(t, root, tt.yaml)

			got, err := Load(root)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	root := t.TempDir() // no marker dir: Save must create parents

	cfg := Config{
		Author: "Grace",
		LLM:    LLMConfig{Provider: "google", Model: "gemini-3-pro-preview", APIKeyEnvName: "GOOGLE_API_KEY"},
	}
	if err := Save(root, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestSaveOverwrites(t *testing.T) {
	root := newWorkspace(t)
	writeConfig(t, root, "author: Old\n")

	if err := Save(root, Config{Author: "New", LLM: Defaults().LLM}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Author != "New" {
		t.Errorf("Author = %q, want %q", got.Author, "New")
	}
}

func TestSaveNeverWritesSecrets(t *testing.T) {
	root := newWorkspace(t)
	t.Setenv("INKWELL_TEST_KEY", "sk-super-secret")

	cfg := Defaults()
	cfg.LLM.APIKeyEnvName = "INKWELL_TEST_KEY"
	if err := Save(root, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(workspace.ConfigPath(root))
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if strings.Contains(string(data), "sk-super-secret") {
		t.Error("config file contains the secret value")
	}
	if !strings.Contains(string(data), "INKWELL_TEST_KEY") {
		t.Error("config file should contain the env var name")
	}
}
