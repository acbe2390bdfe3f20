package normalizer

import (
	"reflect"
	"strconv"
	"testing"
)

func TestExpandNumbers(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "Digits", input: "5", expected: []string{"5", "fifth", "five"}},
		{name: "Cardinal", input: "five", expected: []string{"5", "fifth", "five"}},
		{name: "Ordinal", input: "fifth", expected: []string{"5", "fifth", "five"}},
		{name: "Ordinal_Abbreviation", input: "5th", expected: []string{"5", "fifth", "five"}},
		{name: "Capitalized", input: "Seventh", expected: []string{"7", "seven", "seventh"}},
		{name: "Compound", input: "21", expected: []string{"21", "twenty-first", "twenty-one"}},
		{name: "Compound_Word", input: "twenty-one", expected: []string{"21", "twenty-first", "twenty-one"}},
		{name: "Out_Of_Range", input: "100", expected: []string{"100"}},
		{name: "Zero", input: "0", expected: []string{"0"}},
		{name: "Word", input: "Main", expected: []string{"Main"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ExpandNumbers(tc.input)
			if !reflect.DeepEqual(result, tc.expected) {
				t.Errorf("ExpandNumbers(%q) = %v, expected %v", tc.input, result, tc.expected)
			}
		})
	}
}

// every form of a value expands to the same set
func TestExpandNumbers_Symmetry(t *testing.T) {
	for n := 1; n <= MaxExpandedNumber; n++ {
		digits := strconv.Itoa(n)
		expected := ExpandNumbers(digits)
		if len(expected) != 3 {
			t.Fatalf("ExpandNumbers(%q) = %v, expected three forms", digits, expected)
		}
		for _, form := range []string{Cardinal(n), Ordinal(n)} {
			if result := ExpandNumbers(form); !reflect.DeepEqual(result, expected) {
				t.Errorf("ExpandNumbers(%q) = %v, expected %v", form, result, expected)
			}
		}
	}
}

func TestOrdinalValue(t *testing.T) {
	testCases := []struct {
		input string
		value int
		ok    bool
	}{
		{"Seventh", 7, true},
		{"7th", 7, true},
		{"22nd", 22, true},
		{"thirty-third", 33, true},
		{"7", 0, false},
		{"seven", 0, false},
		{"St", 0, false},
	}

	for _, tc := range testCases {
		value, ok := OrdinalValue(tc.input)
		if ok != tc.ok || value != tc.value {
			t.Errorf("OrdinalValue(%q) = (%d, %v), expected (%d, %v)", tc.input, value, ok, tc.value, tc.ok)
		}
	}
}

func TestCardinalOrdinal_Range(t *testing.T) {
	if Cardinal(0) != "" || Cardinal(MaxExpandedNumber+1) != "" {
		t.Error("Cardinal outside range should be empty")
	}
	if Ordinal(40) != "fortieth" {
		t.Errorf("Ordinal(40) = %q", Ordinal(40))
	}
	if Cardinal(13) != "thirteen" {
		t.Errorf("Cardinal(13) = %q", Cardinal(13))
	}
}
