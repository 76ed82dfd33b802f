package util

import (
	"strings"
	"unicode"
)

// HasText reports whether s contains at least one non-whitespace rune.
func HasText(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) >= 0
}

// Prefix returns the first size runes of s. If s is shorter than size it is
// returned unchanged; a non-positive size yields an empty string.
func Prefix(s string, size int) string {
	if size <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == size {
			return s[:i]
		}
		n++
	}
	return s
}

// Coalesce returns the first non-zero value, or the zero value if all are zero.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
