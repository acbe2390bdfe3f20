package normalizer

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// MaxExpandedNumber is the largest value ExpandNumbers spells out
const MaxExpandedNumber = 99

var unitCardinals = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var unitOrdinals = []string{
	"", "first", "second", "third", "fourth", "fifth", "sixth", "seventh",
	"eighth", "ninth", "tenth", "eleventh", "twelfth", "thirteenth",
	"fourteenth", "fifteenth", "sixteenth", "seventeenth", "eighteenth",
	"nineteenth",
}

var tensCardinals = []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}

var tensOrdinals = []string{"", "", "twentieth", "thirtieth", "fortieth", "fiftieth", "sixtieth", "seventieth", "eightieth", "ninetieth"}

var reNumberToken = regexp.MustCompile(`(?i)^(\d+)(st|nd|rd|th)?$`)

// cardinalValues and ordinalValues map spelled forms back to their value
var (
	cardinalValues = make(map[string]int)
	ordinalValues  = make(map[string]int)
)

func init() {
	for n := 1; n <= MaxExpandedNumber; n++ {
		cardinalValues[Cardinal(n)] = n
		ordinalValues[Ordinal(n)] = n
	}
}

// Cardinal spells n as a cardinal word ("twenty-one"), or returns "" when
// n is outside 1..MaxExpandedNumber
func Cardinal(n int) string {
	switch {
	case n < 1 || n > MaxExpandedNumber:
		return ""
	case n < 20:
		return unitCardinals[n]
	case n%10 == 0:
		return tensCardinals[n/10]
	default:
		return tensCardinals[n/10] + "-" + unitCardinals[n%10]
	}
}

// Ordinal spells n as an ordinal word ("twenty-first"), or returns "" when
// n is outside 1..MaxExpandedNumber
func Ordinal(n int) string {
	switch {
	case n < 1 || n > MaxExpandedNumber:
		return ""
	case n < 20:
		return unitOrdinals[n]
	case n%10 == 0:
		return tensOrdinals[n/10]
	default:
		return tensCardinals[n/10] + "-" + unitOrdinals[n%10]
	}
}

// NumberValue reads a numeric-ish token: digits ("5"), ordinal
// abbreviation ("5th"), cardinal word ("five") or ordinal word ("fifth").
func NumberValue(token string) (int, bool) {
	if m := reNumberToken.FindStringSubmatch(token); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return n, true
	}
	key := strings.ToLower(token)
	if n, ok := cardinalValues[key]; ok {
		return n, true
	}
	if n, ok := ordinalValues[key]; ok {
		return n, true
	}
	return 0, false
}

// OrdinalValue reads only ordinal forms: "seventh", "7th". Street
// numbering such as "N Seventh St" is standardized through it.
func OrdinalValue(token string) (int, bool) {
	if m := reNumberToken.FindStringSubmatch(token); m != nil && m[2] != "" {
		n, err := strconv.Atoi(m[1])
		return n, err == nil
	}
	n, ok := ordinalValues[strings.ToLower(token)]
	return n, ok
}

// ExpandNumbers returns the equivalent surface forms of a numeric token,
// sorted: "5", "five" and "fifth" all give ["5" "fifth" "five"]. Tokens
// that are not numbers, or are out of range, come back unchanged.
func ExpandNumbers(token string) []string {
	n, ok := NumberValue(token)
	if !ok || n < 1 || n > MaxExpandedNumber {
		return []string{token}
	}
	forms := []string{strconv.Itoa(n), Cardinal(n), Ordinal(n)}
	sort.Strings(forms)
	return forms
}
