// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolve turns a user supplied path into one usable from the current
// working directory.
//
// Input normalization:
//   - "~" and "~/x" expand to the home directory
//   - absolute paths are only cleaned
//   - relative paths are joined onto base; an empty base leaves them
//     relative to the working directory
//   - "" stays ""
//
// base is typically the directory of the config file that named the path,
// so a config can refer to files next to it.
func Resolve(path, base string) string {
	if path == "" {
		return ""
	}
	path = expandHome(path)
	if filepath.IsAbs(path) || base == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// expandHome replaces a leading "~" with the home directory. Paths like
// "~user" and lookups without a home directory are returned unchanged.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
