// Package slug derives URL-safe identifiers from free text.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// space covers Unicode separators as well as ASCII whitespace, which is
// all RE2's \s matches.
const space = `\s\v\p{Z}\x{FEFF}`

var (
	disallowed = regexp.MustCompile(`[^\w` + space + `-]`)
	whitespace = regexp.MustCompile(`[` + space + `]+`)
)

// Generate turns text into a lowercase, hyphenated token with diacritics
// removed: "São Paulo Tech Week" becomes "sao-paulo-tech-week".
// Runs of whitespace collapse into a single hyphen; existing hyphens are kept.
func Generate(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, text)
	if err != nil {
		// Only invalid UTF-8 can fail here; fall back to the raw input.
		stripped = text
	}

	s := strings.ToLower(stripped)
	s = disallowed.ReplaceAllString(s, "")
	return whitespace.ReplaceAllString(s, "-")
}
