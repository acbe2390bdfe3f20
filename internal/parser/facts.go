package parser

import (
	"regexp"
	"strings"

	"github.com/address-parser/usaddress/internal/normalizer"
)

var (
	// PO Box 12, P O Box 12, POB 12, Post Office Box 12 (after cleaning,
	// "P.O." has lost its dots). A bare "Box" needs a box number so
	// "Box Canyon Rd" stays a street.
	rePOBox = regexp.MustCompile(`(?i)\b(?:(?:p\s?o\s?b(?:ox)?|p\s?o\s+box|post\s+office\s+box)\s+#?\w+|box\s+#?\d\w*\b)`)

	reIntersection = regexp.MustCompile(`(?i)^\s*([^\d\s,][^,]*?)\s+(at|and|&|@)\s+([^\s,][^,]*?)\s*(?:,|$)`)
)

// Facts holds the predicates evaluated over cleaned text
type Facts struct {
	POBox        bool
	Intersection bool
	// CrossStreets are the two phrases of an intersection
	CrossStreets []string
}

// FactsDetector evaluates PO box and intersection predicates
type FactsDetector struct {
	streets *StreetResolver
}

// NewFactsDetector creates a new FactsDetector
func NewFactsDetector(streets *StreetResolver) *FactsDetector {
	return &FactsDetector{streets: streets}
}

// Detect evaluates every predicate over cleaned text
func (fd *FactsDetector) Detect(text string) Facts {
	facts := Facts{POBox: IsPOBox(text)}
	if a, b, ok := fd.crossStreets(text); ok {
		facts.Intersection = true
		facts.CrossStreets = []string{a, b}
	}
	return facts
}

// IsPOBox reports whether text contains a PO box designation
func IsPOBox(text string) bool {
	return findPOBox(text) != nil
}

// findPOBox returns the byte span of the PO box phrase, or nil. A bare
// "Box 12" only counts at the start of the text.
func findPOBox(text string) []int {
	for _, m := range rePOBox.FindAllStringIndex(text, -1) {
		phrase := strings.ToLower(text[m[0]:m[1]])
		if strings.HasPrefix(phrase, "box") && strings.TrimSpace(text[:m[0]]) != "" {
			continue
		}
		return m
	}
	return nil
}

// StripPOBox removes the PO box phrase from text
func StripPOBox(text string) string {
	m := findPOBox(text)
	if m == nil {
		return text
	}
	return normalizer.TrimSeparators(normalizer.CollapseSpaces(text[:m[0]] + " " + text[m[1]:]))
}

// IsIntersection reports whether text names two crossing streets
func (fd *FactsDetector) IsIntersection(text string) bool {
	_, _, ok := fd.crossStreets(text)
	return ok
}

// crossStreets splits "Means St at Optimism Way" into its two streets.
// The first phrase must not start with a house number, and for the
// "and"/"&" connectors at least one phrase has to look like a street.
func (fd *FactsDetector) crossStreets(text string) (string, string, bool) {
	m := reIntersection.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	first, connector, second := strings.TrimSpace(m[1]), strings.ToLower(m[2]), strings.TrimSpace(m[3])
	if !phraseLike(first) || !phraseLike(second) {
		return "", "", false
	}
	switch connector {
	case "at", "@":
		return first, second, true
	default:
		if fd.streetLike(first) || fd.streetLike(second) {
			return first, second, true
		}
		return "", "", false
	}
}

// streetLike reports whether phrase carries a suffix or an ordinal
func (fd *FactsDetector) streetLike(phrase string) bool {
	for _, tok := range strings.Fields(phrase) {
		if fd.streets.IsSuffix(tok) {
			return true
		}
		if _, ok := normalizer.OrdinalValue(tok); ok {
			return true
		}
	}
	return false
}

// phraseLike reports whether an intersection phrase has a letter and is
// more than a connector word
func phraseLike(phrase string) bool {
	if !containsLetter(phrase) {
		return false
	}
	switch strings.ToLower(phrase) {
	case "at", "and":
		return false
	}
	return true
}
