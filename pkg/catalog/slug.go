package catalog

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a string into a filesystem/URL safe slug: lower-cased,
// every run of non-alphanumeric characters collapsed to a single hyphen,
// leading and trailing hyphens trimmed. An empty result becomes "unknown".
func Slugify(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = nonSlugChars.ReplaceAllString(value, "-")
	value = strings.Trim(value, "-")
	if value == "" {
		return "unknown"
	}
	return value
}
