// Package tables holds the read-only abbreviation tables used by the
// address parser: street suffixes, directionals, regions (US states and
// Canadian provinces), countries and place-name abbreviations.
package tables

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/address-parser/usaddress/internal/normalizer"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Suffix is a street type designator in its two display forms
type Suffix struct {
	Abbr string // "Ave"
	Long string // "Avenue"
}

// Directional is a compass qualifier in its two display forms
type Directional struct {
	Abbr string // "NW"
	Long string // "Northwest"
}

// Region is a state, district, territory or province
type Region struct {
	Abbr    string
	Name    string
	Country string
}

// Country is a country code with the names it is written as
type Country struct {
	Code  string
	Names []string
}

// NameAbbr is an abbreviation found inside place names ("St" for "Saint")
type NameAbbr struct {
	Abbr string
	Long string
}

// Tables is an immutable set of lookup structures. All lookups fold the
// key (case, diacritics) so callers may pass text as written.
type Tables struct {
	suffixes      map[string]Suffix
	directionals  map[string]Directional
	regionsByName map[string]Region
	regionsByAbbr map[string]Region
	countries     map[string]Country
	names         map[string]NameAbbr

	maxRegionWords  int
	maxCountryWords int
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	defaultErr    error
)

// Default returns the tables built from the embedded data. The value is
// built once and shared.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables, defaultErr = Load(Source{})
	})
	if defaultErr != nil {
		// embedded data is part of the binary; failing here is a build defect
		panic(fmt.Sprintf("tables: embedded data: %v", defaultErr))
	}
	return defaultTables
}

// Load builds a Tables value from src
func Load(src Source) (*Tables, error) {
	config, err := loadRulesConfig(src)
	if err != nil {
		return nil, err
	}

	title := cases.Title(language.English)
	t := &Tables{
		suffixes:      make(map[string]Suffix),
		directionals:  make(map[string]Directional),
		regionsByName: make(map[string]Region),
		regionsByAbbr: make(map[string]Region),
		countries:     make(map[string]Country),
		names:         make(map[string]NameAbbr),
	}

	for _, rule := range config.suffixes {
		if rule.Abbr == "" {
			return nil, fmt.Errorf("suffix table: entry without abbreviation (%q)", rule.Long)
		}
		s := Suffix{Abbr: title.String(rule.Abbr), Long: title.String(rule.Long)}
		for _, key := range append([]string{rule.Abbr, rule.Long}, rule.Variants...) {
			if key != "" {
				t.suffixes[normalizer.Fold(key)] = s
			}
		}
	}

	for _, rule := range config.directionals {
		d := Directional{Abbr: strings.ToUpper(rule.Abbr), Long: title.String(rule.Long)}
		t.directionals[normalizer.Fold(rule.Abbr)] = d
		t.directionals[normalizer.Fold(rule.Long)] = d
	}

	for _, rule := range config.regions {
		r := Region{Abbr: strings.ToUpper(rule.Abbr), Name: rule.Name, Country: rule.Country}
		t.regionsByAbbr[normalizer.Fold(rule.Abbr)] = r
		for _, name := range append([]string{rule.Name}, rule.Aliases...) {
			key := normalizer.Fold(name)
			t.regionsByName[key] = r
			if n := len(strings.Fields(key)); n > t.maxRegionWords {
				t.maxRegionWords = n
			}
		}
	}

	for _, rule := range config.countries {
		c := Country{Code: strings.ToUpper(rule.Code), Names: rule.Names}
		for _, name := range append([]string{rule.Code}, rule.Names...) {
			key := normalizer.Fold(name)
			t.countries[key] = c
			if n := len(strings.Fields(key)); n > t.maxCountryWords {
				t.maxCountryWords = n
			}
		}
	}

	for _, rule := range config.names {
		n := NameAbbr{Abbr: rule.Abbr, Long: rule.Long}
		t.names[normalizer.Fold(rule.Long)] = n
		for _, key := range append([]string{rule.Abbr}, rule.Variants...) {
			t.names[normalizer.Fold(key)] = n
		}
	}

	return t, nil
}

// Suffix looks up a street suffix by any of its spellings
func (t *Tables) Suffix(token string) (Suffix, bool) {
	s, ok := t.suffixes[normalizer.Fold(token)]
	return s, ok
}

// Directional looks up a directional by its short or long form
func (t *Tables) Directional(token string) (Directional, bool) {
	d, ok := t.directionals[normalizer.Fold(token)]
	return d, ok
}

// RegionByName looks up a region by its full name or an alias
func (t *Tables) RegionByName(name string) (Region, bool) {
	r, ok := t.regionsByName[normalizer.Fold(name)]
	return r, ok
}

// RegionByAbbr looks up a region by its postal abbreviation
func (t *Tables) RegionByAbbr(abbr string) (Region, bool) {
	r, ok := t.regionsByAbbr[normalizer.Fold(abbr)]
	return r, ok
}

// Region resolves either form, abbreviation first
func (t *Tables) Region(text string) (Region, bool) {
	if r, ok := t.RegionByAbbr(text); ok {
		return r, true
	}
	return t.RegionByName(text)
}

// Country looks up a country by code or name
func (t *Tables) Country(text string) (Country, bool) {
	c, ok := t.countries[normalizer.Fold(text)]
	return c, ok
}

// NameAbbr looks up a place-name abbreviation by either form
func (t *Tables) NameAbbr(token string) (NameAbbr, bool) {
	n, ok := t.names[normalizer.Fold(token)]
	return n, ok
}

// MaxRegionWords is the word count of the longest region name
func (t *Tables) MaxRegionWords() int { return t.maxRegionWords }

// MaxCountryWords is the word count of the longest country name
func (t *Tables) MaxCountryWords() int { return t.maxCountryWords }

// Suffixes lists every distinct suffix, ordered by abbreviation
func (t *Tables) Suffixes() []Suffix {
	seen := make(map[Suffix]bool)
	out := make([]Suffix, 0, len(t.suffixes))
	for _, s := range t.suffixes {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Abbr < out[j].Abbr })
	return out
}
