package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigCommand_GetSetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	initWorkspace(t, dir)

	runInDir(t, dir, func() {
		if out, err := runCommand(t, "config", "set", "llm.model", "claude-haiku-4-5-20251001"); err != nil {
			t.Fatalf("set failed: %v\nOutput: %s", err, out)
		}

		out, err := runCommand(t, "config", "get", "llm.model")
		if err != nil {
			t.Fatalf("get failed: %v\nOutput: %s", err, out)
		}
		if strings.TrimSpace(out) != "claude-haiku-4-5-20251001" {
			t.Errorf("get = %q, want the value just set", out)
		}
	})
}

func TestConfigCommand_SetAuthorKeepsLLM(t *testing.T) {
	dir := t.TempDir()
	initWorkspace(t, dir)

	runInDir(t, dir, func() {
		if out, err := runCommand(t, "config", "set", "llm.model", "custom-model"); err != nil {
			t.Fatalf("set model failed: %v\nOutput: %s", err, out)
		}
		if out, err := runCommand(t, "config", "set", "author", "Rowan Vale"); err != nil {
			t.Fatalf("set author failed: %v\nOutput: %s", err, out)
		}

		out, err := runCommand(t, "config", "show", "--json")
		if err != nil {
			t.Fatalf("show failed: %v\nOutput: %s", err, out)
		}
		result := parseJSON(t, out)
		if result["author"] != "Rowan Vale" {
			t.Errorf("author = %v, want Rowan Vale", result["author"])
		}
		if result["llm.model"] != "custom-model" {
			t.Errorf("llm.model = %v, want earlier set kept", result["llm.model"])
		}
	})
}

func TestConfigCommand_UnknownKey(t *testing.T) {
	dir := t.TempDir()
	initWorkspace(t, dir)

	runInDir(t, dir, func() {
		_, err := runCommand(t, "config", "get", "llm.temperature")
		if err == nil {
			t.Fatal("expected error for unknown key")
		}
		if !strings.Contains(err.Error(), "llm.temperature") {
			t.Errorf("error = %q, want to name the key", err.Error())
		}
		if !strings.Contains(err.Error(), "known keys") {
			t.Errorf("error = %q, want to list known keys", err.Error())
		}
	})
}

func TestConfigCommand_Show(t *testing.T) {
	dir := t.TempDir()
	initWorkspace(t, dir, "--author", "Rowan Vale")

	runInDir(t, dir, func() {
		out, err := runCommand(t, "config", "show")
		if err != nil {
			t.Fatalf("show failed: %v\nOutput: %s", err, out)
		}
		for _, want := range []string{"author", "llm.provider", "llm.model", "llm.api_key_env", "Rowan Vale", "anthropic"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})
}

func TestConfigCommand_MissingConfigIsFatal(t *testing.T) {
	dir := t.TempDir()
	initWorkspace(t, dir)
	if err := os.Remove(filepath.Join(dir, ".inkwell", "config.yaml")); err != nil {
		t.Fatalf("removing config: %v", err)
	}

	runInDir(t, dir, func() {
		_, err := runCommand(t, "config", "get", "author")
		if err == nil {
			t.Fatal("expected error for missing config")
		}
		if !strings.Contains(err.Error(), "inkwell init") {
			t.Errorf("error = %q, want guidance toward init", err.Error())
		}
	})
}
