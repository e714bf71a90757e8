// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It extracts the base name from os.Args[0] and removes common executable extensions
// (.exe on Windows) to provide a clean name for CLI usage strings.
//
// Parameters:
//   - fallback: Name returned when os.Args[0] is unavailable
//
// Returns:
//   - string: Clean executable name suitable for CLI usage
func GetExecutableName(fallback string) string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return fallback
	}

	name := filepath.Base(os.Args[0])

	// A Windows path on Unix (or the reverse) is not split by filepath.Base.
	if strings.Contains(name, "\\") || (strings.Contains(name, "/") && !strings.Contains(name, string(filepath.Separator))) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		for i := len(parts) - 1; i >= 0; i-- {
			if parts[i] != "" {
				name = parts[i]
				break
			}
		}
	}

	return strings.TrimSuffix(name, ".exe")
}

// DisplayPath returns the name used for a bundle file in reports.
//
// When full is false the path is returned as given. Otherwise relative paths are
// resolved against the working directory; if that fails the given path is kept.
//
// Parameters:
//   - path: Path as supplied on the command line
//   - full: Whether to display the full pathname
//
// Returns:
//   - string: Path for display
func DisplayPath(path string, full bool) string {
	if !full || filepath.IsAbs(path) {
		return path
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
