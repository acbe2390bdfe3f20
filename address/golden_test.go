package address

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// GoldenTest is one free-text fixture. List fields (street, city) pass
// when the expected value is among the candidates, ignoring case.
type GoldenTest struct {
	Raw    string            `json:"raw"`
	Expect map[string]string `json:"expect"`
}

func TestGoldenTests(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "golden", "*.json"))
	if err != nil {
		t.Fatalf("cannot list golden files: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no golden files found")
	}

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			testGoldenFile(t, file)
		})
	}
}

func testGoldenFile(t *testing.T, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read %s: %v", path, err)
	}

	var tests []GoldenTest
	if err := json.Unmarshal(data, &tests); err != nil {
		t.Fatalf("cannot decode %s: %v", path, err)
	}

	for _, test := range tests {
		t.Run(test.Raw, func(t *testing.T) {
			a, err := New(test.Raw)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", test.Raw, err)
			}
			for key, want := range test.Expect {
				checkField(t, a, key, want)
			}
		})
	}
}

func checkField(t *testing.T, a *Address, key, want string) {
	t.Helper()

	var scalar string
	switch key {
	case "street":
		assertMember(t, key, a.Street(), want)
		return
	case "city":
		assertMember(t, key, a.City(), want)
		return
	case "number":
		scalar = a.Number()
	case "state":
		scalar = a.State()
	case "zip":
		scalar = a.Zip()
	case "plus4":
		scalar = a.Plus4()
	case "country":
		scalar = a.Country()
	case "text":
		scalar = a.Text()
	default:
		t.Fatalf("unknown golden key %q", key)
	}
	if scalar != want {
		t.Errorf("%s = %q, expected %q", key, scalar, want)
	}
}

func assertMember(t *testing.T, key string, values []string, want string) {
	t.Helper()
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return
		}
	}
	t.Errorf("%s = %q, expected to contain %q", key, values, want)
}
