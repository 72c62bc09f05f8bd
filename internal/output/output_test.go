package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSuccessJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	if err := p.Success(map[string]any{"message": "done", "count": 3}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["message"] != "done" {
		t.Errorf("message = %v, want done", got["message"])
	}
	if got["count"] != float64(3) {
		t.Errorf("count = %v, want 3", got["count"])
	}
}

func TestSuccessHumanMessage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	if err := p.Success(map[string]any{"message": "draft written"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "draft written" {
		t.Errorf("output = %q, want plain message", buf.String())
	}
}

func TestErrorJSONMode(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	p.Error(NewSystemError("disk full"))

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["error"] != "disk full" {
		t.Errorf("error = %v, want disk full", got["error"])
	}
	if got["code"] != float64(ExitSystemError) {
		t.Errorf("code = %v, want %d", got["code"], ExitSystemError)
	}
}

func TestErrorHumanGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, false, false).WithStderr(&errOut)

	p.Error(NewUserError("no workspace"))

	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if !strings.Contains(errOut.String(), "no workspace") {
		t.Errorf("stderr = %q, want error message", errOut.String())
	}
}

func TestErrorShowsCause(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, false, false).WithStderr(&errOut)

	p.Error(NewSystemErrorWithCause("request failed", bytes.ErrTooLarge))

	if !strings.Contains(errOut.String(), "request failed") {
		t.Errorf("stderr = %q, want wrapper message", errOut.String())
	}
	if !strings.Contains(errOut.String(), bytes.ErrTooLarge.Error()) {
		t.Errorf("stderr = %q, want the cause visible", errOut.String())
	}
}

func TestErrorUntyped(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	p.Error(bytes.ErrTooLarge)

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["code"] != float64(ExitUserError) {
		t.Errorf("untyped error code = %v, want %d", got["code"], ExitUserError)
	}
}

func TestWarnModes(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, true, false)
		p.Warn("header degraded in %s", "a.md")
		if !strings.Contains(buf.String(), "header degraded in a.md") {
			t.Errorf("output = %q", buf.String())
		}
	})
	t.Run("human to stderr", func(t *testing.T) {
		var out, errOut bytes.Buffer
		p := NewPrinter(&out, false, false).WithStderr(&errOut)
		p.Warn("corpus is empty")
		if out.Len() != 0 {
			t.Errorf("stdout = %q, want empty", out.String())
		}
		if !strings.Contains(errOut.String(), "corpus is empty") {
			t.Errorf("stderr = %q", errOut.String())
		}
	})
}

func TestStderrSuppressedInJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, true, false).WithStderr(&errOut)

	p.Stderr("progress hint\n")

	if errOut.Len() != 0 || out.Len() != 0 {
		t.Error("Stderr() should be a no-op in JSON mode")
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	p.Table([]string{"CATEGORY", "SEEN"}, [][]string{
		{"essays", "12"},
		{"notes", "3"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[1], "essays") {
		t.Errorf("row = %q", lines[1])
	}
	// Columns align: "essays" padded to header width.
	if !strings.Contains(lines[1], "essays    12") {
		t.Errorf("row not padded: %q", lines[1])
	}
}

func TestKeyValue(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	p.KeyValue("Author", "Grace")

	if strings.TrimSpace(buf.String()) != "Author: Grace" {
		t.Errorf("output = %q", buf.String())
	}
}
