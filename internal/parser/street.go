package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/address-parser/usaddress/internal/normalizer"
	"github.com/address-parser/usaddress/internal/tables"
)

// maxTrailingDirectionals bounds how many directionals may follow a suffix
// ("Bowness Rd NW", "Main St N W")
const maxTrailingDirectionals = 2

// StreetResult is the resolved form of a street text
type StreetResult struct {
	// Suffix is the abbreviated street type ("Ave"), "" when none is found
	Suffix string
	// Parts are the name tokens without suffix and edge directionals
	Parts []string
	// Candidates are renderings of the street; the first is the literal text
	Candidates []string
}

// StreetResolver splits street text into directional, name and suffix
// parts and renders the candidate forms
type StreetResolver struct {
	tables *tables.Tables
}

// NewStreetResolver creates a new StreetResolver
func NewStreetResolver(t *tables.Tables) *StreetResolver {
	return &StreetResolver{tables: t}
}

// Resolve resolves street text that no longer carries its house number.
// With expand set, standardized, long and number-word forms follow the
// literal text in Candidates.
func (sr *StreetResolver) Resolve(text string, expand bool) StreetResult {
	tokens := strings.Fields(text)
	result := StreetResult{
		Parts:      []string{},
		Candidates: []string{},
	}
	if len(tokens) == 0 {
		return result
	}

	suffixIdx := sr.findSuffix(tokens)
	if suffixIdx >= 0 {
		s, _ := sr.tables.Suffix(tokens[suffixIdx])
		result.Suffix = s.Abbr
	}
	result.Parts = sr.nameParts(tokens, suffixIdx)

	literal := strings.Join(tokens, " ")
	if !expand {
		result.Candidates = []string{literal}
		return result
	}

	candidates := newCandidateSet()
	candidates.add(literal)

	standard := sr.standardForm(tokens, suffixIdx)
	candidates.add(strings.Join(standard, " "))
	candidates.add(strings.Join(sr.longForm(tokens, suffixIdx), " "))
	// a box number is not a street number
	if !IsPOBox(literal) {
		for _, alt := range numberAlternates(standard, suffixIdx) {
			candidates.add(alt)
		}
	}

	result.Candidates = candidates.list()
	return result
}

// IsSuffix reports whether token is a known street suffix spelling
func (sr *StreetResolver) IsSuffix(token string) bool {
	_, ok := sr.tables.Suffix(token)
	return ok
}

// IsDirectional reports whether token is a directional in either form
func (sr *StreetResolver) IsDirectional(token string) bool {
	_, ok := sr.tables.Directional(token)
	return ok
}

// findSuffix returns the index of the suffix token, or -1. The trailing
// window is tried first, skipping directionals that follow the suffix;
// then a leading suffix-type token ("Avenue of the Americas").
func (sr *StreetResolver) findSuffix(tokens []string) int {
	end := len(tokens) - 1
	for skipped := 0; end > 0 && skipped < maxTrailingDirectionals && sr.IsDirectional(tokens[end]); skipped++ {
		end--
	}
	if end >= 1 && sr.IsSuffix(tokens[end]) {
		return end
	}

	start := 0
	if len(tokens) > 1 && sr.IsDirectional(tokens[0]) {
		start = 1
	}
	if start < len(tokens)-1 && sr.IsSuffix(tokens[start]) {
		return start
	}
	return -1
}

// nameParts drops the suffix and the directionals at either end of the
// remaining tokens, unless nothing else would be left
func (sr *StreetResolver) nameParts(tokens []string, suffixIdx int) []string {
	rest := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if i != suffixIdx {
			rest = append(rest, tok)
		}
	}

	lo, hi := 0, len(rest)
	for lo < hi && sr.IsDirectional(rest[lo]) {
		lo++
	}
	for hi > lo && sr.IsDirectional(rest[hi-1]) {
		hi--
	}
	if lo == hi {
		return rest
	}
	return append([]string{}, rest[lo:hi]...)
}

// edgeDirectional reports whether the directional at i qualifies the
// whole street: first token, or anywhere after the suffix
func (sr *StreetResolver) edgeDirectional(tokens []string, i, suffixIdx int) bool {
	if !sr.IsDirectional(tokens[i]) || len(tokens) == 1 {
		return false
	}
	if i == 0 {
		return true
	}
	if suffixIdx >= 0 {
		return i > suffixIdx
	}
	return i == len(tokens)-1
}

// standardForm abbreviates suffix and directionals and writes ordinal
// street numbers as digits: "North Seventh Street" -> "N 7 St"
func (sr *StreetResolver) standardForm(tokens []string, suffixIdx int) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		switch {
		case i == suffixIdx:
			s, _ := sr.tables.Suffix(tok)
			out[i] = styleLike(tok, s.Abbr)
		case sr.edgeDirectional(tokens, i, suffixIdx):
			d, _ := sr.tables.Directional(tok)
			out[i] = d.Abbr
		default:
			if n, ok := normalizer.OrdinalValue(tok); ok {
				out[i] = strconv.Itoa(n)
			} else {
				out[i] = tok
			}
		}
	}
	return out
}

// longForm spells suffix and directionals out: "N Main Ave" -> "North Main Avenue"
func (sr *StreetResolver) longForm(tokens []string, suffixIdx int) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		switch {
		case i == suffixIdx:
			s, _ := sr.tables.Suffix(tok)
			out[i] = styleLike(tok, s.Long)
		case sr.edgeDirectional(tokens, i, suffixIdx):
			d, _ := sr.tables.Directional(tok)
			out[i] = styleLike(tok, d.Long)
		default:
			out[i] = tok
		}
	}
	return out
}

// numberAlternates spells the first numeric name token as words:
// "1 St" -> "one St", "first St"
func numberAlternates(tokens []string, suffixIdx int) []string {
	for i, tok := range tokens {
		if i == suffixIdx {
			continue
		}
		forms := normalizer.ExpandNumbers(tok)
		if len(forms) == 1 {
			continue
		}
		var out []string
		for _, form := range forms {
			if form == tok {
				continue
			}
			alt := append([]string{}, tokens...)
			alt[i] = styleLike(tok, form)
			out = append(out, strings.Join(alt, " "))
		}
		return out
	}
	return nil
}

// styleLike renders repl in the letter case of src: "AV" -> "AVE",
// "av" -> "ave", anything else keeps repl as given
func styleLike(src, repl string) string {
	hasLetter, upper, lower := false, true, true
	for _, r := range src {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if unicode.IsUpper(r) {
			lower = false
		} else {
			upper = false
		}
	}
	switch {
	case !hasLetter:
		return repl
	case upper && len([]rune(src)) > 1:
		return strings.ToUpper(repl)
	case lower:
		return strings.ToLower(repl)
	default:
		return repl
	}
}

// candidateSet keeps insertion order and drops case-insensitive duplicates
type candidateSet struct {
	seen  map[string]bool
	items []string
}

func newCandidateSet() *candidateSet {
	return &candidateSet{seen: make(map[string]bool)}
}

func (cs *candidateSet) add(s string) {
	s = normalizer.CollapseSpaces(s)
	if s == "" {
		return
	}
	key := strings.ToLower(s)
	if cs.seen[key] {
		return
	}
	cs.seen[key] = true
	cs.items = append(cs.items, s)
}

func (cs *candidateSet) list() []string {
	if cs.items == nil {
		return []string{}
	}
	return cs.items
}
