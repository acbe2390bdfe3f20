package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/address-parser/usaddress/internal/normalizer"
	"github.com/address-parser/usaddress/internal/tables"
	"go.uber.org/zap"
)

var reToken = regexp.MustCompile(`\S+`)

// commonWords are region abbreviations that read as plain words when
// written in lower case
var commonWords = map[string]bool{
	"al": true, "as": true, "co": true, "de": true, "hi": true, "id": true,
	"in": true, "la": true, "ma": true, "me": true, "oh": true, "ok": true,
	"on": true, "or": true, "pa": true,
}

// segment is the working state of one free-text parse. Every stage reads
// rest, records what it found and leaves the unconsumed text in rest.
type segment struct {
	rest string

	zip, plus4 string
	country    string
	state      string
	// stateName is the region name as written when the state was given
	// spelled out rather than abbreviated
	stateName string

	number      string
	streetText  string
	city        []string
	crossStreet string
}

// stage is one step of the extraction cascade
type stage struct {
	name string
	run  func(sg *Segmenter, seg *segment)
}

// stages run in this order; later stages see only what earlier ones left
var stages = []stage{
	{"postal", (*Segmenter).extractPostal},
	{"country", (*Segmenter).extractCountry},
	{"region", (*Segmenter).extractRegion},
	{"po_box", (*Segmenter).stripPOBox},
	{"city_street", (*Segmenter).extractCityAndStreet},
}

// Segmenter peels postal code, country, region, city and number+street
// off free text
type Segmenter struct {
	tables    *tables.Tables
	streets   *StreetResolver
	facts     *FactsDetector
	extractor *normalizer.PatternExtractor
	logger    *zap.Logger
}

// NewSegmenter creates a new Segmenter
func NewSegmenter(t *tables.Tables, streets *StreetResolver, facts *FactsDetector, logger *zap.Logger) *Segmenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Segmenter{
		tables:    t,
		streets:   streets,
		facts:     facts,
		extractor: normalizer.NewPatternExtractor(),
		logger:    logger,
	}
}

// Segment runs the cascade over cleaned text
func (sg *Segmenter) Segment(text string) *segment {
	seg := &segment{rest: text}
	for _, st := range stages {
		before := seg.rest
		st.run(sg, seg)
		if before != seg.rest {
			sg.logger.Debug("segment stage matched",
				zap.String("stage", st.name),
				zap.String("before", before),
				zap.String("rest", seg.rest))
		}
	}

	// "Pennsylvania 19131", "1400 Av of the Americas New York": a
	// spelled-out region also seeds the city when no city was found
	if len(seg.city) == 0 && seg.stateName != "" {
		seg.city = []string{seg.stateName}
	}
	return seg
}

// extractPostal takes the last postal code that is followed by nothing or
// by a country only
func (sg *Segmenter) extractPostal(seg *segment) {
	codes := sg.extractor.FindPostalCodes(seg.rest)
	for i := len(codes) - 1; i >= 0; i-- {
		code := codes[i]
		residue := normalizer.TrimSeparators(seg.rest[code.End:])
		if residue != "" {
			if _, ok := sg.tables.Country(residue); !ok {
				continue
			}
			seg.country = residue
		}
		seg.zip = code.Value
		seg.plus4 = code.Extra
		seg.rest = normalizer.TrimSeparators(seg.rest[:code.Start])
		return
	}
}

// extractCountry looks for a trailing country when no postal code carried
// one. Codes that double as region abbreviations ("CA") are left to the
// region stage.
func (sg *Segmenter) extractCountry(seg *segment) {
	if seg.country != "" || seg.zip != "" {
		return
	}
	for _, w := range trailingWindows(seg.rest, sg.tables.MaxCountryWords()) {
		if _, ok := sg.tables.Country(w.text); !ok {
			continue
		}
		if w.words == 1 {
			if _, isRegion := sg.tables.RegionByAbbr(w.text); isRegion {
				return
			}
		}
		seg.country = w.text
		seg.rest = normalizer.TrimSeparators(seg.rest[:w.start])
		return
	}
}

// extractRegion takes the longest trailing region name, or a trailing
// abbreviation, and stores the abbreviation
func (sg *Segmenter) extractRegion(seg *segment) {
	for _, w := range trailingWindows(seg.rest, sg.tables.MaxRegionWords()) {
		if r, ok := sg.tables.RegionByName(w.text); ok {
			seg.state = r.Abbr
			if !strings.EqualFold(w.text, r.Abbr) {
				seg.stateName = w.text
			}
			seg.rest = normalizer.TrimSeparators(seg.rest[:w.start])
			return
		}
		if w.words != 1 {
			continue
		}
		r, ok := sg.tables.RegionByAbbr(w.text)
		if !ok || !sg.acceptAbbreviation(seg, w) {
			continue
		}
		seg.state = r.Abbr
		seg.rest = normalizer.TrimSeparators(seg.rest[:w.start])
		return
	}
}

// acceptAbbreviation decides whether a trailing two-letter token is a
// region. Tokens after a comma or before a postal code always are.
// Otherwise tokens that also spell a suffix or directional ("Ct", "NE")
// must be upper case and must not follow a street suffix; lower-case
// tokens are accepted unless they are ordinary words ("in", "or").
func (sg *Segmenter) acceptAbbreviation(seg *segment, w window) bool {
	prefix := strings.TrimRight(seg.rest[:w.start], " ")
	if strings.HasSuffix(prefix, ",") || seg.zip != "" {
		return true
	}
	ambiguous := sg.streets.IsSuffix(w.text) || sg.streets.IsDirectional(w.text)
	if !isUpper(w.text) {
		return !ambiguous && !commonWords[strings.ToLower(w.text)]
	}
	if !ambiguous {
		return true
	}
	fields := strings.Fields(prefix)
	return len(fields) == 0 || !sg.streets.IsSuffix(fields[len(fields)-1])
}

// stripPOBox removes the PO box phrase so it is not read as a street
func (sg *Segmenter) stripPOBox(seg *segment) {
	seg.rest = StripPOBox(seg.rest)
}

// extractCityAndStreet splits what is left into city, house number and
// street
func (sg *Segmenter) extractCityAndStreet(seg *segment) {
	rest := seg.rest
	if rest == "" {
		return
	}
	seg.rest = ""

	if strings.Contains(rest, ",") {
		clauses := splitClauses(rest)
		if len(clauses) > 1 && !sg.extractor.StartsWithNumber(clauses[len(clauses)-1]) {
			seg.city = sg.cityCandidates(clauses[len(clauses)-1])
			clauses = clauses[:len(clauses)-1]
		}
		// further clauses are unit designators ("Apt A") and are dropped
		sg.extractNumberAndStreet(seg, clauses[0], false)
		return
	}

	if sg.extractor.StartsWithNumber(rest) {
		sg.extractNumberAndStreet(seg, rest, seg.state != "" || seg.zip != "")
		return
	}

	if a, b, ok := sg.facts.crossStreets(rest); ok {
		seg.streetText = a
		seg.crossStreet = b
		return
	}

	seg.city = sg.cityCandidates(rest)
}

// extractNumberAndStreet reads the house number and street of one clause.
// When splitCity is set the clause may end in a city name that had no
// comma before it.
func (sg *Segmenter) extractNumberAndStreet(seg *segment, clause string, splitCity bool) {
	num, rest := sg.extractor.ExtractHouseNumber(clause)
	if num == nil {
		seg.streetText = clause
		return
	}
	seg.number = num.Value

	tokens := strings.Fields(rest)
	if len(tokens) == 0 {
		return
	}

	end, bySuffix := sg.streetEnd(tokens, splitCity)
	seg.streetText = strings.Join(tokens[:end], " ")
	switch {
	case end == len(tokens):
	case len(seg.city) > 0:
		// a city clause was already found; what trails the suffix is a
		// unit ("Apt 4")
	case bySuffix:
		seg.city = sg.cityCandidates(strings.Join(tokens[end:], " "))
	default:
		seg.city = sg.cityWindows(tokens, end)
	}
}

// streetEnd returns how many tokens belong to the street: up to the first
// suffix and its directionals; else all but the last token when a city is
// expected after the street. bySuffix tells which rule applied.
func (sg *Segmenter) streetEnd(tokens []string, splitCity bool) (int, bool) {
	if sg.streets.IsSuffix(tokens[0]) {
		// "Av of the Americas"
		return len(tokens), false
	}
	for i := 1; i < len(tokens); i++ {
		if !sg.streets.IsSuffix(tokens[i]) {
			continue
		}
		end := i + 1
		for skipped := 0; end < len(tokens) && skipped < maxTrailingDirectionals && sg.streets.IsDirectional(tokens[end]); skipped++ {
			end++
		}
		return end, true
	}
	if splitCity && len(tokens) > 1 {
		return len(tokens) - 1, false
	}
	return len(tokens), false
}

// cityWindows lists city guesses for a street that had no suffix to end
// it: the last token first, then longer trailing runs that still leave a
// street word. "Pennsylvania New Hope" gives "Hope", "New Hope".
func (sg *Segmenter) cityWindows(tokens []string, end int) []string {
	set := newCandidateSet()
	for start := end; start >= 1; start-- {
		for _, c := range sg.cityCandidates(strings.Join(tokens[start:], " ")) {
			set.add(c)
		}
	}
	return set.list()
}

// cityCandidates returns the city as written followed by its place-name
// abbreviation alternates ("St Louis" / "Saint Louis")
func (sg *Segmenter) cityCandidates(city string) []string {
	city = normalizer.CollapseSpaces(city)
	if !containsLetter(city) {
		return []string{}
	}
	set := newCandidateSet()
	set.add(city)

	tokens := strings.Fields(city)
	swapped := make([]string, len(tokens))
	changed := false
	for i, tok := range tokens {
		swapped[i] = tok
		n, ok := sg.tables.NameAbbr(tok)
		if !ok {
			continue
		}
		if normalizer.EqualFold(tok, n.Long) {
			swapped[i] = styleLike(tok, n.Abbr)
		} else {
			swapped[i] = styleLike(tok, n.Long)
		}
		changed = true
	}
	if changed {
		set.add(strings.Join(swapped, " "))
	}
	return set.list()
}

// window is a run of trailing tokens
type window struct {
	text  string
	start int
	words int
}

// trailingWindows lists the trailing token runs of s, longest first, up
// to max tokens. Runs that cross a comma are skipped.
func trailingWindows(s string, max int) []window {
	spans := reToken.FindAllStringIndex(s, -1)
	n := len(spans)
	if max > n {
		max = n
	}
	out := make([]window, 0, max)
	for k := max; k >= 1; k-- {
		start := spans[n-k][0]
		text := s[start:]
		if strings.Contains(text, ",") {
			continue
		}
		out = append(out, window{text: text, start: start, words: k})
	}
	return out
}

// splitClauses splits on commas and drops empty clauses
func splitClauses(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
