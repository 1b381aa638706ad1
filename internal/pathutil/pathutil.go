package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style separators to the current platform's separator
// and cleans the resulting path.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// ExpandHome replaces a leading "~" with home and normalizes the result.
func ExpandHome(p, home string) string {
	if p == "" {
		return ""
	}
	if home != "" {
		switch {
		case p == "~":
			p = home
		case strings.HasPrefix(p, "~/"), strings.HasPrefix(p, "~\\"):
			p = filepath.Join(home, p[2:])
		}
	}
	return NormalizePath(p)
}

// SamePath reports whether a and b name the same location once normalized.
// Relative paths are resolved against the working directory.
func SamePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	absA, errA := filepath.Abs(NormalizePath(a))
	absB, errB := filepath.Abs(NormalizePath(b))
	if errA != nil || errB != nil {
		return NormalizePath(a) == NormalizePath(b)
	}
	return absA == absB
}
