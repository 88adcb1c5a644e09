// Package urlx provides URL-scheme normalization for imported website fields.
package urlx

import (
	"regexp"
	"strings"
)

// Matches: "https://bank.com", "ftp://host", "otpauth://totp/..."
var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// WithScheme returns the URL with an explicit scheme, defaulting to https
// when the source value carries none. Empty input stays empty.
func WithScheme(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if schemePattern.MatchString(trimmed) {
		return trimmed
	}
	return "https://" + trimmed
}
