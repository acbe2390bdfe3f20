package parser

import (
	"reflect"
	"testing"

	"github.com/address-parser/usaddress/internal/tables"
)

func newTestResolver() *StreetResolver {
	return NewStreetResolver(tables.Default())
}

func TestResolve_Suffix(t *testing.T) {
	sr := newTestResolver()

	testCases := []struct {
		input  string
		suffix string
	}{
		{"", ""},
		{"Pennsylvania", ""},
		{"South Pennsylvania", ""},
		{"Pennsylvania Av", "Ave"},
		{"Pennsylvania Aven", "Ave"},
		{"Pennsylvania Avenu", "Ave"},
		{"Pennsylvania Avenue", "Ave"},
		{"Pennsylvania Ave", "Ave"},
		{"Gravenstein Highway North", "Hwy"},
		{"Bowness Rd NW", "Rd"},
		{"Main St N W", "St"},
		{"Avenue of the Americas", "Ave"},
		{"N Avenue of the Americas", "Ave"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := sr.Resolve(tc.input, true)
			if result.Suffix != tc.suffix {
				t.Errorf("Resolve(%q).Suffix = %q, expected %q", tc.input, result.Suffix, tc.suffix)
			}
		})
	}
}

// every suffix written in its long form resolves to its abbreviation
func TestResolve_SuffixRoundTrip(t *testing.T) {
	tbl := tables.Default()
	sr := NewStreetResolver(tbl)

	for _, s := range tbl.Suffixes() {
		result := sr.Resolve("Main "+s.Long, true)
		if result.Suffix != s.Abbr {
			t.Errorf("Resolve(%q).Suffix = %q, expected %q", "Main "+s.Long, result.Suffix, s.Abbr)
		}
	}
}

func TestResolve_Candidates(t *testing.T) {
	sr := newTestResolver()

	testCases := []struct {
		name     string
		input    string
		expand   bool
		expected []string
	}{
		{
			name:     "Abbreviated_Suffix",
			input:    "Pennsylvania Av",
			expand:   true,
			expected: []string{"Pennsylvania Av", "Pennsylvania Ave", "Pennsylvania Avenue"},
		},
		{
			name:     "No_Expansion",
			input:    "Pennsylvania Av",
			expand:   false,
			expected: []string{"Pennsylvania Av"},
		},
		{
			name:     "Ordinal_Word",
			input:    "N Seventh St",
			expand:   true,
			expected: []string{"N Seventh St", "N 7 St", "North Seventh Street", "N seven St"},
		},
		{
			name:     "Ordinal_Word_Literal",
			input:    "First St",
			expand:   true,
			expected: []string{"First St", "1 St", "First Street", "one St"},
		},
		{
			name:     "Trailing_Directional",
			input:    "Gravenstein Highway North",
			expand:   true,
			expected: []string{"Gravenstein Highway North", "Gravenstein Hwy N"},
		},
		{
			name:     "Leading_Suffix",
			input:    "Avenue of the Americas",
			expand:   true,
			expected: []string{"Avenue of the Americas", "Ave of the Americas"},
		},
		{
			name:     "Upper_Case",
			input:    "37 AV NW",
			expand:   true,
			expected: []string{"37 AV NW", "37 AVE NW", "37 AVENUE NORTHWEST", "thirty-seven AVE NW", "thirty-seventh AVE NW"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := sr.Resolve(tc.input, tc.expand)
			if !reflect.DeepEqual(result.Candidates, tc.expected) {
				t.Errorf("Resolve(%q).Candidates = %q, expected %q", tc.input, result.Candidates, tc.expected)
			}
		})
	}
}

func TestResolve_Parts(t *testing.T) {
	sr := newTestResolver()

	testCases := []struct {
		input    string
		expected []string
	}{
		{"North Pennsylvania Av", []string{"Pennsylvania"}},
		{"Yukon Street", []string{"Yukon"}},
		{"Central Park West", []string{"Central"}},
		{"Old Banff Coach Rd SW", []string{"Old", "Banff", "Coach"}},
		{"Avenue of the Americas", []string{"of", "the", "Americas"}},
		{"North", []string{"North"}},
		{"", []string{}},
	}

	for _, tc := range testCases {
		result := sr.Resolve(tc.input, false)
		if !reflect.DeepEqual(result.Parts, tc.expected) {
			t.Errorf("Resolve(%q).Parts = %q, expected %q", tc.input, result.Parts, tc.expected)
		}
	}
}

func TestStyleLike(t *testing.T) {
	testCases := []struct {
		src, repl, expected string
	}{
		{"AV", "Ave", "AVE"},
		{"av", "Ave", "ave"},
		{"Av", "Ave", "Ave"},
		{"7", "seven", "seven"},
		{"N", "North", "North"},
	}

	for _, tc := range testCases {
		if result := styleLike(tc.src, tc.repl); result != tc.expected {
			t.Errorf("styleLike(%q, %q) = %q, expected %q", tc.src, tc.repl, result, tc.expected)
		}
	}
}
