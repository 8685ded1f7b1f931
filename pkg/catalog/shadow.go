package catalog

import (
	"path/filepath"
	"strings"
)

// DefaultShadowDirNames are the directory names that mark an asset as
// including a drop shadow. Matching is an exact, case-insensitive segment
// comparison, never a substring match.
var DefaultShadowDirNames = []string{
	"device with shadow",
	"device with shadows",
}

// hasShadow reports whether any segment of path equals one of names,
// case-insensitively.
func hasShadow(path string, names map[string]bool) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if names[strings.ToLower(part)] {
			return true
		}
	}
	return false
}
