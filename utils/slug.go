// utils/slug.go - URL slug generation
package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^\w\s-]`)
	slugSeparators   = regexp.MustCompile(`[-\s]+`)
)

// Slugify converts a free-form name into a URL-safe slug. Accented
// characters are transliterated to ASCII ("Eletrônicos" -> "eletronicos").
// An empty result falls back to "item" so slugs are never blank.
func Slugify(value string) string {
	stripAccents := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(stripAccents, value)
	if err != nil {
		normalized = value
	}

	cleaned := slugInvalidChars.ReplaceAllString(normalized, "")
	cleaned = strings.ToLower(strings.TrimSpace(cleaned))
	cleaned = slugSeparators.ReplaceAllString(cleaned, "-")

	if cleaned == "" {
		return "item"
	}
	return cleaned
}
