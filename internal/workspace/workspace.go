// Package workspace locates the inkwell workspace root and derives the
// well-known paths inside it.
//
// A workspace is any directory containing the reserved .inkwell/ marker
// directory. Location walks upward from a starting directory, so commands
// work from anywhere inside the workspace tree.
package workspace

import (
	"errors"
	"os"
	"path/filepath"
)

// MarkerDir is the reserved directory name that identifies a workspace root.
const MarkerDir = ".inkwell"

// ErrNotFound is returned when no workspace marker exists between the
// starting directory and the filesystem root.
var ErrNotFound = errors.New("workspace not initialized")

// StyleCategories is the fixed, ordered list of corpus categories under the
// content directory. Order matters: collection and sampling follow it.
var StyleCategories = []string{"essays", "notes", "newsletters"}

// Locate walks upward from startDir looking for the marker directory.
// Returns the absolute path of the first directory that contains it,
// or ErrNotFound once the filesystem root is reached.
func Locate(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		info, statErr := os.Stat(filepath.Join(dir, MarkerDir))
		if statErr == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Root locates the workspace from the process working directory.
func Root() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return Locate(cwd)
}

// IsWorkspace reports whether dir itself is a workspace root.
func IsWorkspace(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, MarkerDir))
	return err == nil && info.IsDir()
}

// ConfigPath returns the config file path for a workspace root.
func ConfigPath(root string) string {
	return filepath.Join(root, MarkerDir, "config.yaml")
}

// TemplatesDir returns the workspace template-override root.
func TemplatesDir(root string) string {
	return filepath.Join(root, MarkerDir, "templates")
}

// EnvPath returns the workspace env file path, used to supply API keys
// without persisting them in config.
func EnvPath(root string) string {
	return filepath.Join(root, MarkerDir, "env")
}

// ContentDir returns the corpus base directory for a workspace root.
func ContentDir(root string) string {
	return filepath.Join(root, "content")
}

// CategoryDir returns the directory for one corpus category.
func CategoryDir(root, category string) string {
	return filepath.Join(ContentDir(root), category)
}

// DraftsDir returns the directory where generated drafts are written.
func DraftsDir(root string) string {
	return filepath.Join(root, "drafts")
}
