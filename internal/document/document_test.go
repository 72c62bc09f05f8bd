package document

import (
	"reflect"
	"strings"
	"testing"
)

func TestDecodePlainBody(t *testing.T) {
	raw := "Just some prose.\nNo header at all.\n"

	doc := Decode(raw)
	if len(doc.Header) != 0 {
		t.Errorf("Header = %v, want empty", doc.Header)
	}
	if doc.Body != raw {
		t.Errorf("Body = %q, want original input", doc.Body)
	}
}

func TestDecodeWithHeader(t *testing.T) {
	raw := "---\ntitle: Morning Pages\nchars: 420\n---\n\nThe body starts here.\n"

	doc := Decode(raw)
	want := map[string]string{"title": "Morning Pages", "chars": "420"}
	if !reflect.DeepEqual(doc.Header, want) {
		t.Errorf("Header = %v, want %v", doc.Header, want)
	}
	if doc.Body != "The body starts here." {
		t.Errorf("Body = %q", doc.Body)
	}
}

func TestDecodeFallback(t *testing.T) {
	// Both degraded paths must preserve every original byte and never fail.
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "no closing delimiter",
			raw:  "---\ntitle: Unfinished\nbody text that never closes\n",
		},
		{
			name: "unparsable header span",
			raw:  "---\ntitle: [broken\n  nope::\n---\n\nBody.\n",
		},
		{
			name: "header span is a list",
			raw:  "---\n- one\n- two\n---\n\nBody.\n",
		},
		{
			name: "delimiter not at start",
			raw:  "preamble\n---\ntitle: x\n---\nbody\n",
		},
		{
			name: "empty input",
			raw:  "",
		},
		{
			name: "arbitrary bytes",
			raw:  "\x00\x01garbage\xffmore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Decode(tt.raw)
			if len(doc.Header) != 0 {
				t.Errorf("Header = %v, want empty", doc.Header)
			}
			if doc.Body != tt.raw {
				t.Errorf("Body = %q, want original input %q", doc.Body, tt.raw)
			}
		})
	}
}

func TestDecodeEmptyHeaderSpan(t *testing.T) {
	doc := Decode("---\n---\n\nBody only.\n")
	if len(doc.Header) != 0 {
		t.Errorf("Header = %v, want empty", doc.Header)
	}
	if doc.Body != "Body only." {
		t.Errorf("Body = %q", doc.Body)
	}
}

func TestEncodeEmptyHeader(t *testing.T) {
	body := "No header needed.\n"
	if got := Encode(nil, body); got != body {
		t.Errorf("Encode(nil) = %q, want body verbatim", got)
	}
	if got := Encode(map[string]string{}, body); got != body {
		t.Errorf("Encode(empty) = %q, want body verbatim", got)
	}
}

func TestEncodeShape(t *testing.T) {
	got := Encode(map[string]string{"title": "A Letter"}, "Dear reader,")

	if !strings.HasPrefix(got, Delimiter+"\n") {
		t.Errorf("Encode() should open with delimiter, got %q", got)
	}
	if !strings.Contains(got, "title: A Letter\n") {
		t.Errorf("Encode() missing header line, got %q", got)
	}
	if !strings.Contains(got, Delimiter+"\n\nDear reader,") {
		t.Errorf("Encode() missing blank line before body, got %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		body   string
	}{
		{
			name:   "simple",
			header: map[string]string{"title": "Essay"},
			body:   "One paragraph.",
		},
		{
			name:   "multiple keys",
			header: map[string]string{"title": "Essay", "author": "Grace", "chars": "12"},
			body:   "Line one.\n\nLine two.",
		},
		{
			name:   "values needing quoting",
			header: map[string]string{"title": "colon: inside", "note": "123"},
			body:   "Body.",
		},
		{
			name:   "body containing delimiter-like text",
			header: map[string]string{"title": "Rules"},
			body:   "A horizontal rule:\n\n---\n\ndone.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Decode(Encode(tt.header, tt.body))
			if !reflect.DeepEqual(doc.Header, tt.header) {
				t.Errorf("round trip header = %v, want %v", doc.Header, tt.header)
			}
			if doc.Body != tt.body {
				t.Errorf("round trip body = %q, want %q", doc.Body, tt.body)
			}
		})
	}
}
