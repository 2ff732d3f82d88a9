package validation

import (
	"regexp"
	"strings"
)

var (
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugStrip      = regexp.MustCompile(`[^a-z0-9-]`)
	slugCollapse   = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL-safe slug from a title: lowercase, whitespace
// runs become single hyphens, everything outside [a-z0-9-] is stripped
// and hyphen runs are collapsed. The derivation is idempotent: feeding
// a slug back in yields the same slug.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
