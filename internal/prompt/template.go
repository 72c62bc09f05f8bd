// Package prompt resolves named prompt templates and fills their
// placeholders.
//
// Templates are resolved in order:
//  1. <workspace>/.inkwell/templates/<name>.md (workspace override)
//  2. Built-in templates (embedded in the binary)
//
// The two tiers use identical relative addressing, so a workspace file
// shadows the bundled one with the same name one-for-one.
package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rowanvale/inkwell/internal/document"
	"github.com/rowanvale/inkwell/internal/workspace"
)

// Template is a resolved prompt template. Name and Description come from
// the template file's frontmatter; Content is everything after it.
type Template struct {
	Name        string
	Description string
	Content     string
	Source      string // "workspace" or "built-in"
}

// Info describes an available template for listing.
type Info struct {
	Name        string
	Description string
	Source      string
	Shadows     string // non-empty when this entry hides a later tier's file
}

// source is one tier in the resolution order. Adding a third tier means
// appending an entry in sources, nothing else changes.
type source struct {
	label string
	read  func(name string) ([]byte, error)
	list  func() []string
}

// Resolve finds a template by name, checking the workspace override root
// before the bundled set. Names may carry a path segment for grouping,
// e.g. "draft/post". root may be empty when no workspace is located.
func Resolve(root, name string) (*Template, error) {
	if !validName(name) {
		return nil, fmt.Errorf("template %q not found", name)
	}
	for _, src := range sources(root) {
		data, err := src.read(name)
		if err != nil {
			continue
		}
		tmpl := parse(string(data))
		tmpl.Source = src.label
		if tmpl.Name == "" {
			tmpl.Name = name
		}
		return tmpl, nil
	}
	return nil, fmt.Errorf("template %q not found", name)
}

// List returns every available template, earlier tiers first. When a
// workspace file shadows a built-in of the same name, the workspace entry
// carries Shadows="built-in" and the built-in is omitted.
func List(root string) []Info {
	seen := make(map[string]int)
	var infos []Info

	for _, src := range sources(root) {
		for _, name := range src.list() {
			if i, ok := seen[name]; ok {
				infos[i].Shadows = src.label
				continue
			}

			info := Info{Name: name, Source: src.label}
			if data, err := src.read(name); err == nil {
				info.Description = parse(string(data)).Description
			}
			seen[name] = len(infos)
			infos = append(infos, info)
		}
	}
	return infos
}

// sources returns the ordered resolution tiers.
func sources(root string) []source {
	var tiers []source
	if root != "" {
		dir := workspace.TemplatesDir(root)
		tiers = append(tiers, source{
			label: "workspace",
			read:  func(name string) ([]byte, error) { return readOverride(dir, name) },
			list:  func() []string { return listOverrides(dir) },
		})
	}
	tiers = append(tiers, source{
		label: "built-in",
		read:  readBuiltin,
		list:  listBuiltins,
	})
	return tiers
}

// validName rejects names that would resolve outside the template roots.
// Names address files by forward-slash segments only; no absolute paths,
// no "." or ".." hops.
func validName(name string) bool {
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, `\`) {
		return false
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return false
		}
	}
	return true
}

// readOverride reads a named template from the override root.
func readOverride(dir, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)+".md"))
}

// listOverrides enumerates template names under the override root,
// including grouped names like "draft/post".
func listOverrides(dir string) []string {
	var names []string
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return nil
		}
		names = append(names, filepath.ToSlash(strings.TrimSuffix(rel, ".md")))
		return nil
	})
	return names
}

// parse splits a raw template file into frontmatter metadata and content.
// A template without frontmatter is all content.
func parse(raw string) *Template {
	doc := document.Decode(raw)
	return &Template{
		Name:        doc.Header["name"],
		Description: doc.Header["description"],
		Content:     strings.TrimSpace(doc.Body),
	}
}
