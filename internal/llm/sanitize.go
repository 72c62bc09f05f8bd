package llm

import (
	"strings"
)

// preamblePatterns are conversational prefixes that models leak ahead of the
// requested content. Matched case-insensitively against the first non-empty
// lines.
var preamblePatterns = []string{
	"here is",
	"here's",
	"i'll ",
	"i will ",
	"i've ",
	"i have ",
	"let me ",
	"sure,",
	"sure!",
	"okay,",
	"okay!",
	"certainly",
	"absolutely",
	"of course",
	"based on",
	"looking at",
	"after reviewing",
	"after reading",
	"having reviewed",
	"having read",
}

// signoffPatterns are conversational sign-offs models append after the
// actual content.
var signoffPatterns = []string{
	"let me know",
	"feel free to",
	"hope this helps",
	"is there anything",
	"would you like",
	"shall i ",
	"do you want",
	"i can also",
	"if you need",
	"if you'd like",
}

// Sanitize strips conversational preamble and sign-off lines from model
// output, a deterministic safety net on top of prompt instructions.
func Sanitize(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return content
	}

	content = stripPreamble(content)
	content = stripSignoff(content)

	return strings.TrimSpace(content)
}

// stripPreamble removes leading lines that match preamble patterns.
// At most 3 lines, to avoid eating actual content.
func stripPreamble(content string) string {
	lines := strings.SplitN(content, "\n", 5)
	stripped := 0

	for stripped < len(lines) && stripped < 3 {
		line := strings.TrimSpace(lines[stripped])
		if line == "" {
			stripped++
			continue
		}
		if matchesAnyPrefix(line, preamblePatterns) {
			stripped++
			continue
		}
		break
	}

	if stripped == 0 {
		return content
	}

	return strings.Join(lines[stripped:], "\n")
}

// stripSignoff removes trailing lines that match sign-off patterns.
func stripSignoff(content string) string {
	lines := strings.Split(content, "\n")

	end := len(lines)
	for end > 0 {
		line := strings.TrimSpace(lines[end-1])
		if line == "" {
			end--
			continue
		}
		if matchesAnyPrefix(line, signoffPatterns) {
			end--
			continue
		}
		break
	}

	if end == len(lines) {
		return content
	}

	return strings.Join(lines[:end], "\n")
}

func matchesAnyPrefix(line string, patterns []string) bool {
	lower := strings.ToLower(line)
	for _, p := range patterns {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}
