package normalizer

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics drops accents so French place and street names match
// their table spellings: "Québec" -> "Quebec", "Rue Sainte-Thérèse" ->
// "Rue Sainte-Therese"
func StripDiacritics(s string) string {
	marks := runes.Remove(runes.In(unicode.Mn))
	out, _, err := transform.String(transform.Chain(norm.NFD, marks, norm.NFC), s)
	if err != nil {
		return s
	}
	return out
}

// Fold builds the lookup key for a table entry or a token: diacritics
// removed, remaining non-ASCII letters transliterated, lower case,
// single spaces.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	folded := unidecode.Unidecode(StripDiacritics(s))
	return CollapseSpaces(strings.ToLower(folded))
}

// EqualFold compares two strings by their lookup keys
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
