package normalizer

import (
	"regexp"
	"sort"
	"strings"
)

// Pattern types reported by PatternExtractor
const (
	PatternUSPostal = "US_POSTAL"
	PatternCAPostal = "CA_POSTAL"
	PatternHouseNo  = "HOUSE_NO"
)

// PatternExtractor finds postal codes and house numbers in cleaned text
type PatternExtractor struct {
	reUSPostal    *regexp.Regexp
	reCAPostal    *regexp.Regexp
	reHouseNumber *regexp.Regexp
	reUSPostalAll *regexp.Regexp
	reCAPostalAll *regexp.Regexp
}

// PatternResult is one match of a pattern
type PatternResult struct {
	Type  string `json:"type"`  // US_POSTAL, CA_POSTAL, HOUSE_NO
	Value string `json:"value"` // zip, postal code or house number
	Extra string `json:"extra"` // +4 extension for US_POSTAL
	Start int    `json:"start"` // byte offsets in the searched text
	End   int    `json:"end"`
}

// NewPatternExtractor creates a new PatternExtractor
func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{
		reUSPostal: regexp.MustCompile(`\b(\d{5})(?:\s*-\s*(\d{4}))?\b`),
		reCAPostal: regexp.MustCompile(`(?i)\b([a-z]\d[a-z])\s?(\d[a-z]\d)\b`),
		// 1600, 38A, 12-14, 123 1/2
		reHouseNumber: regexp.MustCompile(`^(\d+(?:-\d+)?[A-Za-z]?(?:\s+\d+/\d+)?)(?:\s+|,|$)`),
		reUSPostalAll: regexp.MustCompile(`^(\d{5})(?:\s*-\s*(\d{4}))?$`),
		reCAPostalAll: regexp.MustCompile(`(?i)^([a-z]\d[a-z])\s?(\d[a-z]\d)$`),
	}
}

// FindPostalCodes returns every US ZIP(+4) and Canadian postal code in
// text, ordered by position
func (pe *PatternExtractor) FindPostalCodes(text string) []PatternResult {
	var results []PatternResult

	for _, m := range pe.reUSPostal.FindAllStringSubmatchIndex(text, -1) {
		r := PatternResult{
			Type:  PatternUSPostal,
			Value: text[m[2]:m[3]],
			Start: m[0],
			End:   m[1],
		}
		if m[4] >= 0 {
			r.Extra = text[m[4]:m[5]]
		}
		results = append(results, r)
	}

	for _, m := range pe.reCAPostal.FindAllStringSubmatchIndex(text, -1) {
		results = append(results, PatternResult{
			Type:  PatternCAPostal,
			Value: strings.ToUpper(text[m[2]:m[3]] + " " + text[m[4]:m[5]]),
			Start: m[0],
			End:   m[1],
		})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Start < results[j].Start })
	return results
}

// ParsePostalCode splits a whole postal code field into zip and +4.
// Values that are not recognized postal codes come back verbatim.
func (pe *PatternExtractor) ParsePostalCode(value string) (zip, plus4 string, ok bool) {
	value = strings.TrimSpace(value)
	if m := pe.reUSPostalAll.FindStringSubmatch(value); m != nil {
		return m[1], m[2], true
	}
	if m := pe.reCAPostalAll.FindStringSubmatch(value); m != nil {
		return strings.ToUpper(m[1] + " " + m[2]), "", true
	}
	return value, "", false
}

// ExtractHouseNumber reads a leading house number and returns it with the
// text that follows it. Ordinal street names ("1st Ave") are not numbers.
func (pe *PatternExtractor) ExtractHouseNumber(text string) (*PatternResult, string) {
	text = strings.TrimSpace(text)
	m := pe.reHouseNumber.FindStringSubmatchIndex(text)
	if m == nil {
		return nil, text
	}
	result := &PatternResult{
		Type:  PatternHouseNo,
		Value: CollapseSpaces(text[m[2]:m[3]]),
		Start: m[2],
		End:   m[3],
	}
	return result, TrimSeparators(text[m[1]:])
}

// StartsWithNumber reports whether text begins with a house number
func (pe *PatternExtractor) StartsWithNumber(text string) bool {
	r, _ := pe.ExtractHouseNumber(text)
	return r != nil
}
