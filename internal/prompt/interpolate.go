package prompt

import "strings"

// openToken and closeToken delimit a placeholder, e.g. {{style_samples}}.
const (
	openToken  = "{{"
	closeToken = "}}"
)

// Interpolate substitutes placeholder tokens in a single forward pass.
//
// Each {{name}} whose name is a key in bindings is replaced with the bound
// string verbatim; the inserted text is never re-scanned for further
// tokens. Tokens absent from bindings are left byte-identical in the
// output. Leaving unknown tokens inert is intentional: optional template
// regions stay untouched instead of erroring.
//
// No control flow is evaluated. Conditionals, loops, or nested templates
// embedded in a template are opaque text to this function.
func Interpolate(text string, bindings map[string]string) string {
	var out strings.Builder
	out.Grow(len(text))

	for {
		start := strings.Index(text, openToken)
		if start < 0 {
			out.WriteString(text)
			break
		}

		end := strings.Index(text[start+len(openToken):], closeToken)
		if end < 0 {
			// Unterminated token: the rest is literal text.
			out.WriteString(text)
			break
		}

		name := text[start+len(openToken) : start+len(openToken)+end]
		tokenEnd := start + len(openToken) + end + len(closeToken)

		out.WriteString(text[:start])
		if val, ok := bindings[name]; ok {
			out.WriteString(val)
		} else {
			out.WriteString(text[start:tokenEnd])
		}
		text = text[tokenEnd:]
	}

	return out.String()
}
