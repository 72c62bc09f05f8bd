// Package corpus collects writing samples from the workspace content tree
// and selects a budget-bounded, representative subset for style analysis.
package corpus

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rowanvale/inkwell/internal/document"
)

// UntitledFallback is the title used when a document header has none.
const UntitledFallback = "Untitled"

// Sample is one document viewed through a sampling pass: ephemeral,
// derived, never persisted.
type Sample struct {
	Category string
	Title    string
	Body     string
	Chars    int
}

// docExtensions are the file types treated as documents during collection.
var docExtensions = map[string]bool{
	".md":  true,
	".txt": true,
}

// Collect walks each category subdirectory under baseDir, in category-list
// order, decoding every document into a Sample. Missing category
// directories are skipped silently: a partial corpus is not an error.
// Within a category, samples follow filesystem enumeration order.
func Collect(categories []string, baseDir string) []Sample {
	var samples []Sample
	for _, category := range categories {
		dir := filepath.Join(baseDir, category)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		samples = append(samples, collectCategory(category, dir)...)
	}
	return samples
}

// collectCategory enumerates one category directory recursively.
func collectCategory(category, dir string) []Sample {
	var samples []Sample
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if !docExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			// Unreadable files degrade to absence, same as a missing
			// category directory.
			return nil
		}
		samples = append(samples, newSample(category, string(data)))
		return nil
	})
	return samples
}

// newSample decodes raw document content into a Sample. Header parse
// failures fall through to whole-body samples via the codec's fallback.
func newSample(category, raw string) Sample {
	doc := document.Decode(raw)

	title := doc.Header["title"]
	if title == "" {
		title = UntitledFallback
	}

	chars := 0
	if v, ok := doc.Header["chars"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			chars = n
		}
	}
	if chars == 0 {
		chars = utf8.RuneCountInString(doc.Body)
	}

	return Sample{
		Category: category,
		Title:    title,
		Body:     doc.Body,
		Chars:    chars,
	}
}
