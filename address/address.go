// Package address parses US and Canadian postal addresses, given as free
// text or as named fields, into their components: house number, street,
// city, state or province, postal code and country.
//
//	a, err := address.New("1600 Pennsylvania Av., Washington DC 20500")
//	if err != nil {
//		return err
//	}
//	a.Number()  // "1600"
//	a.Street()  // ["Pennsylvania Av" "Pennsylvania Ave" "Pennsylvania Avenue"]
//	a.State()   // "DC"
//
// An Address never changes after it is built. Parsers are safe for
// concurrent use.
package address

import (
	"strings"
	"sync"

	"github.com/address-parser/usaddress/internal/normalizer"
	"github.com/address-parser/usaddress/internal/parser"
)

// Address is a parsed address. Absent values are "" and absent lists are
// empty; every slice returned is a copy.
type Address struct {
	result  parser.Result
	streets *parser.StreetResolver
	weights parser.SimilarityWeights
}

// Parser parses inputs with a fixed set of options
type Parser struct {
	parser *parser.AddressParser
	opts   options
}

var (
	defaultOnce   sync.Once
	defaultParser *parser.AddressParser
)

// NewParser creates a new Parser
func NewParser(opts ...Option) *Parser {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var ap *parser.AddressParser
	if o.tables == nil && o.logger == nil {
		// the default configuration shares one parser
		defaultOnce.Do(func() {
			defaultParser = parser.NewAddressParser(nil, nil)
		})
		ap = defaultParser
	} else {
		ap = parser.NewAddressParser(o.tables, o.logger)
	}

	return &Parser{parser: ap, opts: o}
}

// Parse parses in. It fails only with ErrNoInput; text that does not look
// like an address yields an Address with unresolved components.
func (p *Parser) Parse(in Input) (*Address, error) {
	var result *parser.Result

	switch v := in.(type) {
	case Text:
		if strings.TrimSpace(string(v)) == "" {
			return nil, ErrNoInput
		}
		result = p.parser.ParseText(string(v), p.opts.expandStreets)
	case Fields:
		fs := v.fieldSet()
		if fs.IsEmpty() {
			return nil, ErrNoInput
		}
		result = p.parser.ParseFields(fs, p.opts.expandStreets)
	case *Fields:
		if v == nil {
			return nil, ErrNoInput
		}
		return p.Parse(*v)
	default:
		return nil, ErrNoInput
	}

	return &Address{
		result:  *result,
		streets: p.parser.Streets(),
		weights: p.opts.weights,
	}, nil
}

// ExpandStreets reports whether the parser renders expanded street forms
func (p *Parser) ExpandStreets() bool {
	return p.opts.expandStreets
}

// Parse parses in with the given options
func Parse(in Input, opts ...Option) (*Address, error) {
	return NewParser(opts...).Parse(in)
}

// New parses free text
func New(text string, opts ...Option) (*Address, error) {
	return Parse(Text(text), opts...)
}

// NewFromFields parses pre-split fields
func NewFromFields(f Fields, opts ...Option) (*Address, error) {
	return Parse(f, opts...)
}

// Text is the cleaned input text. For Fields input it is the fields
// joined as "number street, city, state zip, country".
func (a *Address) Text() string { return a.result.Text }

// Number is the house number, "" when none was found
func (a *Address) Number() string { return a.result.Number }

// Street lists the street renderings. The first is the street as written;
// with street expansion on, standardized and spelled-out forms follow.
func (a *Address) Street() []string { return clone(a.result.Street) }

// StreetParts are the street name tokens without suffix and directionals
func (a *Address) StreetParts() []string { return clone(a.result.StreetParts) }

// StreetSuffix is the abbreviated street type ("Ave"), "" when none
func (a *Address) StreetSuffix() string { return a.result.StreetSuffix }

// City lists the city as written followed by its alternates
// ("St Louis", "Saint Louis")
func (a *Address) City() []string { return clone(a.result.City) }

// State is the state or province abbreviation when one is known. For
// Fields input with only a country, it is the country.
func (a *Address) State() string { return a.result.State }

// Zip is the US ZIP code or the Canadian postal code
func (a *Address) Zip() string { return a.result.Zip }

// Plus4 is the ZIP+4 extension; it is set only when Zip is
func (a *Address) Plus4() string { return a.result.Plus4 }

// Country is the country exactly as it was written
func (a *Address) Country() string { return a.result.Country }

// CrossStreet is the second street of an intersection
func (a *Address) CrossStreet() string { return a.result.CrossStreet }

// POBox reports whether the address is a post office box
func (a *Address) POBox() bool { return a.result.POBox }

// Intersection reports whether the address names two crossing streets
func (a *Address) Intersection() bool { return a.result.Intersection }

// StreetScore rates how well a reference street name, for instance from
// a gazetteer, matches this address's street, from 0 to 1
func (a *Address) StreetScore(name string) float64 {
	return a.streets.ScoreStreet(a.result.Street, name, a.weights)
}

// ExpandNumbers returns the digit, cardinal and ordinal forms of a number
// token. See the package function.
func (a *Address) ExpandNumbers(token string) []string {
	return ExpandNumbers(token)
}

// ExpandNumbers returns the sorted digit, cardinal and ordinal forms of a
// number token: "5", "five" and "fifth" each give [5 fifth five]. Other
// tokens come back alone.
func ExpandNumbers(token string) []string {
	return normalizer.ExpandNumbers(token)
}

// Clean normalizes address text the way Parse does before segmenting it
func Clean(text string) string {
	return normalizer.Clean(text)
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
