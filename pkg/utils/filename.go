// =============================================================================
// CSV to Invoice Generator - Filename Sanitizer
// =============================================================================
//
// Vendor names and PO numbers come straight out of user-controlled exports
// and may contain path separators, punctuation, or anything else. This module
// reduces them to tokens that are safe inside an archive on every platform.
//
// =============================================================================

package utils

import "strings"

// SanitizeFilename maps arbitrary text into a safe filename token.
//
// Only alphanumeric characters, spaces, hyphens, and underscores survive;
// everything else is dropped, and surrounding whitespace is trimmed.
// The result can be empty (e.g. input that was purely punctuation) —
// callers must fall back to a default label such as "Invoice".
func SanitizeFilename(value string) string {
	var b strings.Builder
	b.Grow(len(value))

	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

// SanitizeFilenameOr sanitizes value and substitutes fallback when nothing
// survives sanitization.
func SanitizeFilenameOr(value, fallback string) string {
	if s := SanitizeFilename(value); s != "" {
		return s
	}
	return fallback
}
