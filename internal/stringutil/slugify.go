package stringutil

import (
	"regexp"
	"strings"
)

// MaxSlugLength bounds slugs so they stay usable as directory names.
const MaxSlugLength = 48

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a habit name to a directory-safe slug: lowercase
// alphanumerics separated by single hyphens, at most MaxSlugLength long.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxSlugLength {
		s = strings.TrimRight(s[:MaxSlugLength], "-")
	}
	return s
}
