package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDraftCommand_DryRunRendersPrompt(t *testing.T) {
	dir := t.TempDir()
	initWorkspace(t, dir, "--author", "Rowan Vale")
	writeCorpusDoc(t, dir, "essays", "one.md", "Published essay text.")

	runInDir(t, dir, func() {
		out, err := runCommand(t, "draft", "On Mornings", "--notes", "coffee; light; habit", "--dry-run")
		if err != nil {
			t.Fatalf("draft --dry-run failed: %v\nOutput: %s", err, out)
		}
		for _, want := range []string{"Rowan Vale", "On Mornings", "coffee; light; habit", "Published essay text."} {
			if !strings.Contains(out, want) {
				t.Errorf("prompt missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "{{") {
			t.Errorf("prompt contains unfilled placeholders:\n%s", out)
		}
	})

	// Dry run must not write a draft.
	if _, err := os.Stat(filepath.Join(dir, "drafts", "on-mornings.md")); !os.IsNotExist(err) {
		t.Error("dry run must not create a draft file")
	}
}

func TestDraftCommand_EmptyCorpusPlaceholder(t *testing.T) {
	dir := t.TempDir()
	initWorkspace(t, dir)

	runInDir(t, dir, func() {
		out, err := runCommand(t, "draft", "On Mornings", "--notes", "some notes", "--dry-run")
		if err != nil {
			t.Fatalf("draft --dry-run failed: %v\nOutput: %s", err, out)
		}
		if !strings.Contains(out, "no writing samples available yet") {
			t.Errorf("prompt should note the empty corpus:\n%s", out)
		}
	})
}

func TestDraftCommand_RequiresNotes(t *testing.T) {
	dir := t.TempDir()
	initWorkspace(t, dir)

	runInDir(t, dir, func() {
		_, err := runCommand(t, "draft", "On Mornings", "--dry-run")
		if err == nil {
			t.Fatal("expected error without notes")
		}
		if !strings.Contains(err.Error(), "no notes provided") {
			t.Errorf("error = %q, want notes guidance", err.Error())
		}
	})
}

func TestDraftCommand_NotesFile(t *testing.T) {
	dir := t.TempDir()
	initWorkspace(t, dir)
	notesPath := filepath.Join(dir, "ideas.txt")
	if err := os.WriteFile(notesPath, []byte("idea one\nidea two"), 0o644); err != nil {
		t.Fatalf("writing notes file: %v", err)
	}

	runInDir(t, dir, func() {
		out, err := runCommand(t, "draft", "On Mornings", "--notes-file", "ideas.txt", "--dry-run")
		if err != nil {
			t.Fatalf("draft failed: %v\nOutput: %s", err, out)
		}
		if !strings.Contains(out, "idea one") {
			t.Errorf("prompt missing notes file content:\n%s", out)
		}
	})
}

func TestDraftCommand_ExistingTargetConflicts(t *testing.T) {
	dir := t.TempDir()
	initWorkspace(t, dir)
	draftPath := filepath.Join(dir, "drafts", "on-mornings.md")
	if err := os.WriteFile(draftPath, []byte("existing draft"), 0o644); err != nil {
		t.Fatalf("writing existing draft: %v", err)
	}

	runInDir(t, dir, func() {
		_, err := runCommand(t, "draft", "On Mornings", "--notes", "n")
		if err == nil {
			t.Fatal("expected conflict error for existing target")
		}
		if !strings.Contains(err.Error(), "already exists") {
			t.Errorf("error = %q, want conflict message", err.Error())
		}
	})

	// The existing file must be untouched.
	data, err := os.ReadFile(draftPath)
	if err != nil || string(data) != "existing draft" {
		t.Errorf("existing draft modified: %q, %v", data, err)
	}
}

func TestDraftCommand_UnknownTemplate(t *testing.T) {
	dir := t.TempDir()
	initWorkspace(t, dir)

	runInDir(t, dir, func() {
		_, err := runCommand(t, "draft", "On Mornings", "--notes", "n", "--template", "draft/missing", "--dry-run")
		if err == nil {
			t.Fatal("expected error for unknown template")
		}
		if !strings.Contains(err.Error(), "draft/missing") {
			t.Errorf("error = %q, want to name the template", err.Error())
		}
	})
}
