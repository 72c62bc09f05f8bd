package output

import (
	"io"
	"os"
)

// ResolveColorMode determines the effective isTTY value from the --color
// flag value and actual TTY detection:
//   - "never":  colors off
//   - "always": colors on
//   - "auto":   follow TTY detection
func ResolveColorMode(colorMode string, isTTY bool) bool {
	if colorMode == "never" {
		return false
	}
	if colorMode == "always" {
		return true
	}
	return isTTY
}

// IsTTY checks if a writer is a terminal. Only an *os.File backed by a
// character device qualifies.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}
