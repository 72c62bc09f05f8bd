package prompt

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed templates
var builtinFS embed.FS

// readBuiltin reads a bundled template by name.
func readBuiltin(name string) ([]byte, error) {
	data, err := builtinFS.ReadFile("templates/" + name + ".md")
	if err != nil {
		return nil, fmt.Errorf("reading builtin template %q: %w", name, err)
	}
	return data, nil
}

// listBuiltins returns the names of all bundled templates.
func listBuiltins() []string {
	var names []string
	_ = fs.WalkDir(builtinFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".md")
		names = append(names, name)
		return nil
	})
	return names
}
