// Package document encodes and decodes content files with an optional
// YAML frontmatter header.
//
// Decoding is deliberately resilient, the opposite of the strict config
// policy: a missing or garbled header never fails, it just yields an empty
// header and the complete original input as body. Ingestion must tolerate
// partial or malformed content without destroying bytes.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter is the marker line that opens and closes a frontmatter block.
const Delimiter = "---"

// Document is a parsed content file: a flat header map and free-form body.
// Header keys are unique; order is irrelevant.
type Document struct {
	Header map[string]string
	Body   string
}

// Decode splits raw content into header and body.
//
// If raw does not begin with the delimiter line, the whole input is body.
// If the closing delimiter is missing, or the span between delimiters is
// not a YAML mapping, Decode falls back to the same shape: empty header,
// original input untouched. It never returns an error.
func Decode(raw string) Document {
	if !strings.HasPrefix(raw, Delimiter+"\n") {
		return Document{Header: map[string]string{}, Body: raw}
	}

	// Prepend a newline so a closing delimiter on the very next line
	// (an empty header span) is still found.
	rest := raw[len(Delimiter)+1:]
	span, after, ok := strings.Cut("\n"+rest, "\n"+Delimiter)
	if !ok {
		// No closing delimiter: the header never ends, keep everything.
		return Document{Header: map[string]string{}, Body: raw}
	}

	header, ok := parseHeader(span)
	if !ok {
		// Span present but unparsable: preserve all original bytes.
		return Document{Header: map[string]string{}, Body: raw}
	}

	return Document{Header: header, Body: strings.TrimSpace(after)}
}

// Encode serializes a header and body back into delimited form.
// An empty header emits the body verbatim with no delimiters.
func Encode(header map[string]string, body string) string {
	if len(header) == 0 {
		return body
	}

	var buf bytes.Buffer
	buf.WriteString(Delimiter + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	// Encoding a flat string map cannot fail.
	_ = enc.Encode(header)
	_ = enc.Close()

	buf.WriteString(Delimiter + "\n\n")
	buf.WriteString(body)
	return buf.String()
}

// parseHeader parses the frontmatter span as a flat key-value mapping.
// Scalar values of any YAML type are flattened to their string form.
func parseHeader(span string) (map[string]string, bool) {
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(span), &raw); err != nil {
		return nil, false
	}

	header := make(map[string]string, len(raw))
	for key, val := range raw {
		switch v := val.(type) {
		case nil:
			header[key] = ""
		case string:
			header[key] = v
		default:
			header[key] = fmt.Sprint(v)
		}
	}
	return header, true
}
