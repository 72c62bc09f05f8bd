package main

import (
	"strings"
	"testing"
)

func TestStatusCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	initWorkspace(t, dir, "--author", "Rowan Vale")
	writeCorpusDoc(t, dir, "essays", "one.md", "An essay about mornings.")
	writeCorpusDoc(t, dir, "essays", "two.md", "An essay about evenings.")
	writeCorpusDoc(t, dir, "notes", "a.md", "A note.")

	runInDir(t, dir, func() {
		out, err := runCommand(t, "status", "--json")
		if err != nil {
			t.Fatalf("status failed: %v\nOutput: %s", err, out)
		}
		result := parseJSON(t, out)

		if result["config_exists"] != true {
			t.Errorf("config_exists = %v, want true", result["config_exists"])
		}
		if result["author"] != "Rowan Vale" {
			t.Errorf("author = %v, want Rowan Vale", result["author"])
		}
		if result["provider"] != "anthropic" {
			t.Errorf("provider = %v, want anthropic", result["provider"])
		}

		counts, ok := result["corpus"].(map[string]any)
		if !ok {
			t.Fatalf("corpus = %v, want a map", result["corpus"])
		}
		if counts["essays"] != float64(2) || counts["notes"] != float64(1) || counts["newsletters"] != float64(0) {
			t.Errorf("corpus = %v, want essays:2 notes:1 newsletters:0", counts)
		}
		if result["templates"] == float64(0) {
			t.Error("templates = 0, want the built-in set counted")
		}
	})
}

func TestStatusCommand_Human(t *testing.T) {
	dir := t.TempDir()
	initWorkspace(t, dir)

	runInDir(t, dir, func() {
		out, err := runCommand(t, "status")
		if err != nil {
			t.Fatalf("status failed: %v\nOutput: %s", err, out)
		}
		for _, want := range []string{"Workspace", "Corpus", "essays", "Templates"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})
}

func TestStatusCommand_WorksFromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	initWorkspace(t, dir)
	writeCorpusDoc(t, dir, "notes", "deep.md", "A note.")

	sub := dir + "/content/notes"
	runInDir(t, sub, func() {
		out, err := runCommand(t, "status", "--json")
		if err != nil {
			t.Fatalf("status from subdirectory failed: %v\nOutput: %s", err, out)
		}
		result := parseJSON(t, out)
		counts := result["corpus"].(map[string]any)
		if counts["notes"] != float64(1) {
			t.Errorf("notes count = %v, want 1", counts["notes"])
		}
	})
}
