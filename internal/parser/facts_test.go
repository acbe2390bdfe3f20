package parser

import (
	"reflect"
	"testing"
)

func TestIsPOBox(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"PO Box 1111 Herndon VA 20171", true},
		{"P O Box 12, Austin TX", true},
		{"POB 12, Austin TX", true},
		{"Post Office Box 5", true},
		{"po box 77", true},
		{"Box 12, Austin TX", true},
		{"12 Box Elder St, Logan UT", false},
		{"1600 Pennsylvania Av, Washington DC", false},
		{"Boxwood Ln", false},
		{"Box Canyon Rd, Sedona AZ", false},
		{"Box #12, Austin TX", true},
	}

	for _, tc := range testCases {
		if result := IsPOBox(tc.input); result != tc.expected {
			t.Errorf("IsPOBox(%q) = %v, expected %v", tc.input, result, tc.expected)
		}
	}
}

func TestStripPOBox(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"PO Box 1111 Herndon", "Herndon"},
		{"Herndon, PO Box 1111", "Herndon"},
		{"100 Main St", "100 Main St"},
	}

	for _, tc := range testCases {
		if result := StripPOBox(tc.input); result != tc.expected {
			t.Errorf("StripPOBox(%q) = %q, expected %q", tc.input, result, tc.expected)
		}
	}
}

func TestDetect_Intersection(t *testing.T) {
	fd := NewFactsDetector(newTestResolver())

	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "At", input: "Means St at Optimism Way", expected: []string{"Means St", "Optimism Way"}},
		{name: "Ampersand", input: "Main St & 5th Ave, Springfield", expected: []string{"Main St", "5th Ave"}},
		{name: "At_Sign", input: "Broadway @ Houston", expected: []string{"Broadway", "Houston"}},
		{name: "And_Without_Streets", input: "Smith and Wesson", expected: nil},
		{name: "House_Number", input: "1600 Pennsylvania Av at Main St", expected: nil},
		{name: "Plain_Address", input: "Herndon, VA", expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			facts := fd.Detect(tc.input)
			if facts.Intersection != (tc.expected != nil) {
				t.Errorf("Intersection = %v for %q", facts.Intersection, tc.input)
			}
			if !reflect.DeepEqual(facts.CrossStreets, tc.expected) {
				t.Errorf("CrossStreets = %q, expected %q", facts.CrossStreets, tc.expected)
			}
			if fd.IsIntersection(tc.input) != facts.Intersection {
				t.Error("IsIntersection disagrees with Detect")
			}
		})
	}
}
