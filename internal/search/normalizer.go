package search

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonWordRegex = regexp.MustCompile(`[^a-z0-9_]+`)

// Normalize prepares free text for matching: lowercase, accents stripped,
// punctuation replaced by spaces, whitespace collapsed. Idempotent, so
// already-normalized text passes through unchanged.
func Normalize(s string) string {
	// Lowercase first so the non-word class below stays simple
	s = strings.ToLower(s)

	// Decompose and drop combining diacritical marks ("bujía" -> "bujia")
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ = transform.String(t, s)

	// Everything that is not a word character becomes a space
	s = nonWordRegex.ReplaceAllString(s, " ")

	// Collapse runs of whitespace and trim
	s = strings.Join(strings.Fields(s), " ")

	return s
}
