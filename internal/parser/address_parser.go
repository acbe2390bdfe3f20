package parser

import (
	"strings"

	"github.com/address-parser/usaddress/internal/normalizer"
	"github.com/address-parser/usaddress/internal/tables"
	"go.uber.org/zap"
)

// Result is the set of components derived from one input
type Result struct {
	Text         string
	Number       string
	Street       []string
	StreetParts  []string
	StreetSuffix string
	City         []string
	State        string
	Zip          string
	Plus4        string
	Country      string
	CrossStreet  string
	POBox        bool
	Intersection bool
}

// FieldSet is input that is already split into named fields. Fields left
// empty are not derived from the others.
type FieldSet struct {
	Street     string
	City       string
	State      string
	Region     string
	PostalCode string
	Number     string
	Country    string
	// Address is free text parsed as a whole; the other fields override
	// what it yields
	Address string
}

// IsEmpty reports whether no field carries text
func (f FieldSet) IsEmpty() bool {
	for _, v := range []string{f.Street, f.City, f.State, f.Region, f.PostalCode, f.Number, f.Country, f.Address} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// AddressParser turns free text or field sets into a Result
type AddressParser struct {
	tables    *tables.Tables
	streets   *StreetResolver
	facts     *FactsDetector
	segmenter *Segmenter
	extractor *normalizer.PatternExtractor
	logger    *zap.Logger
}

// NewAddressParser creates a new AddressParser
func NewAddressParser(t *tables.Tables, logger *zap.Logger) *AddressParser {
	if t == nil {
		t = tables.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	streets := NewStreetResolver(t)
	facts := NewFactsDetector(streets)

	return &AddressParser{
		tables:    t,
		streets:   streets,
		facts:     facts,
		segmenter: NewSegmenter(t, streets, facts, logger),
		extractor: normalizer.NewPatternExtractor(),
		logger:    logger,
	}
}

// ParseText parses a free-text address
func (ap *AddressParser) ParseText(text string, expand bool) *Result {
	// 1. Clean
	cleaned := normalizer.Clean(text)
	result := newResult(cleaned)

	// 2. Facts over the whole cleaned text
	facts := ap.facts.Detect(cleaned)
	result.POBox = facts.POBox
	result.Intersection = facts.Intersection

	// 3. Segment
	seg := ap.segmenter.Segment(cleaned)
	result.Number = seg.number
	if seg.city != nil {
		result.City = seg.city
	}
	result.State = seg.state
	result.Zip = seg.zip
	result.Plus4 = seg.plus4
	result.Country = seg.country
	result.CrossStreet = seg.crossStreet

	// 4. Street
	ap.applyStreet(result, seg.streetText, expand)

	ap.logger.Debug("parsed address text",
		zap.String("text", cleaned),
		zap.String("number", result.Number),
		zap.Strings("street", result.Street),
		zap.Strings("city", result.City),
		zap.String("state", result.State),
		zap.String("zip", result.Zip),
		zap.String("country", result.Country))

	return result
}

// ParseFields parses a field set. Present fields are taken as given and
// only cleaned; the one inference is a house number leading the street
// when no number field was supplied.
func (ap *AddressParser) ParseFields(f FieldSet, expand bool) *Result {
	var result *Result
	if address := normalizer.Clean(f.Address); address != "" {
		result = ap.ParseText(address, expand)
	} else {
		result = newResult("")
	}

	number := normalizer.Clean(f.Number)
	street := normalizer.Clean(f.Street)
	if street != "" {
		if number == "" {
			if num, rest := ap.extractor.ExtractHouseNumber(street); num != nil {
				number = num.Value
				street = rest
			}
		}
		result.Number = ""

		// the street field may name an intersection on its own
		facts := ap.facts.Detect(street)
		result.Intersection = facts.Intersection
		result.CrossStreet = ""
		if facts.Intersection {
			ap.applyStreet(result, facts.CrossStreets[0], expand)
			result.CrossStreet = facts.CrossStreets[1]
		} else {
			ap.applyStreet(result, street, expand)
		}
		if facts.POBox {
			result.POBox = true
		}
	}
	if number != "" {
		result.Number = number
	}

	if city := normalizer.Clean(f.City); city != "" {
		result.City = ap.segmenter.cityCandidates(city)
	}

	country := normalizer.Clean(f.Country)
	if country != "" {
		result.Country = country
	}

	state := normalizer.Clean(f.State)
	if state == "" {
		state = normalizer.Clean(f.Region)
	}
	switch {
	case state != "":
		if r, ok := ap.tables.Region(state); ok {
			state = r.Abbr
		}
		result.State = state
	case result.State == "" && country != "":
		// country-only records report the country as their state
		result.State = country
	}

	if postal := normalizer.Clean(f.PostalCode); postal != "" {
		zip, plus4, _ := ap.extractor.ParsePostalCode(postal)
		result.Zip = zip
		result.Plus4 = plus4
	}

	if f.Address == "" || result.Text == "" {
		region := result.State
		if region == country {
			region = ""
		}
		result.Text = joinFields(result.Number, street, firstOf(result.City), region, result.Zip, result.Plus4, country)
	}
	ap.logger.Debug("parsed address fields",
		zap.String("text", result.Text),
		zap.String("number", result.Number),
		zap.Strings("street", result.Street),
		zap.String("state", result.State))

	return result
}

// Streets exposes the street resolver
func (ap *AddressParser) Streets() *StreetResolver {
	return ap.streets
}

func (ap *AddressParser) applyStreet(result *Result, text string, expand bool) {
	if text == "" {
		return
	}
	street := ap.streets.Resolve(text, expand)
	result.Street = street.Candidates
	result.StreetParts = street.Parts
	result.StreetSuffix = street.Suffix
}

func newResult(text string) *Result {
	return &Result{
		Text:        text,
		Street:      []string{},
		StreetParts: []string{},
		City:        []string{},
	}
}

// joinFields renders "number street, city, state zip-plus4, country"
func joinFields(number, street, city, state, zip, plus4, country string) string {
	line := strings.TrimSpace(number + " " + street)
	postal := zip
	if plus4 != "" {
		postal += "-" + plus4
	}
	region := strings.TrimSpace(state + " " + postal)

	var clauses []string
	for _, c := range []string{line, city, region, country} {
		if c != "" {
			clauses = append(clauses, c)
		}
	}
	return normalizer.Clean(strings.Join(clauses, ", "))
}

func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
