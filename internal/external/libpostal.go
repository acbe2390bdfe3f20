//go:build libpostal

// Package external adapts third-party address parsers to the address
// package's structured input. It needs libpostal installed and is built
// only with the libpostal tag.
package external

import (
	"strings"

	"github.com/address-parser/usaddress/address"
	"github.com/openvenues/gopostal/expand"
	"github.com/openvenues/gopostal/parser"
)

// Components is the libpostal reading of one address
type Components struct {
	House, Road, Unit, City, State, Postcode, Country string
	// Coverage is the share of input words libpostal assigned a label
	Coverage float64
}

// ExtractWithLibpostal labels raw with libpostal. The first expansion is
// parsed; it spells abbreviations out, which the street resolver folds
// back to their standard form.
func ExtractWithLibpostal(raw string) Components {
	opts := expand.GetDefaultExpansionOptions()
	opts.Languages = []string{"en", "fr"}
	exps := expand.ExpandAddressOptions(raw, opts)
	best := raw
	if len(exps) > 0 {
		best = exps[0]
	}

	comps := parser.ParseAddress(best)
	covered, total := 0, len(strings.Fields(best))
	lp := Components{}
	for _, c := range comps {
		switch c.Label {
		case "house_number":
			lp.House = c.Value
		case "road":
			lp.Road = c.Value
		case "unit":
			lp.Unit = c.Value
		case "city":
			lp.City = c.Value
		case "state":
			lp.State = c.Value
		case "postcode":
			lp.Postcode = c.Value
		case "country":
			lp.Country = c.Value
		}
		covered += len(strings.Fields(c.Value))
	}
	if total > 0 {
		lp.Coverage = float64(covered) / float64(total)
	}
	return lp
}

// FieldsFromLibpostal parses raw with libpostal and maps its labels to
// structured input
func FieldsFromLibpostal(raw string) address.Fields {
	lp := ExtractWithLibpostal(raw)
	return address.Fields{
		Number:     lp.House,
		Street:     lp.Road,
		City:       lp.City,
		State:      lp.State,
		PostalCode: lp.Postcode,
		Country:    lp.Country,
	}
}
