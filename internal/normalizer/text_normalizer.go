package normalizer

import (
	"regexp"
	"strings"
)

// TextNormalizer cleans raw address text before segmentation. It never
// changes case; street and city tokens keep the spelling they were
// written with.
type TextNormalizer struct {
	reDisallowed *regexp.Regexp
	reSpaces     *regexp.Regexp
	reCommas     *regexp.Regexp
}

// NewTextNormalizer creates a new TextNormalizer
func NewTextNormalizer() *TextNormalizer {
	return &TextNormalizer{
		// letters, digits, whitespace and , ' & @ / - survive
		reDisallowed: regexp.MustCompile(`[^\p{L}\p{N}\s,'&@/\-]+`),
		reSpaces:     regexp.MustCompile(`\s+`),
		reCommas:     regexp.MustCompile(`\s*,[\s,]*`),
	}
}

var defaultNormalizer = NewTextNormalizer()

// Clean normalizes text with the shared TextNormalizer
func Clean(text string) string {
	return defaultNormalizer.Clean(text)
}

// Clean removes punctuation outside the allowed set, collapses whitespace
// and comma runs, and trims separators from both ends.
//
//	"cleaned: text!"         -> "cleaned text"
//	"it's working, yes...?"  -> "it's working, yes"
func (tn *TextNormalizer) Clean(text string) string {
	if text == "" {
		return ""
	}

	// 1. Drop disallowed punctuation
	working := tn.reDisallowed.ReplaceAllString(text, "")

	// 2. Collapse whitespace
	working = tn.reSpaces.ReplaceAllString(working, " ")

	// 3. One comma form: "a ,b" / "a,, b" -> "a, b"
	working = tn.reCommas.ReplaceAllString(working, ", ")

	// 4. Trim separators left over at the edges
	return TrimSeparators(working)
}

// TrimSeparators strips spaces and commas from both ends of s
func TrimSeparators(s string) string {
	return strings.Trim(s, " ,\t\n")
}

// CollapseSpaces trims s and reduces every whitespace run to one space
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
