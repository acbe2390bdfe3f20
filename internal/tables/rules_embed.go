package tables

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/suffixes.yaml
var suffixYAML []byte

//go:embed data/directionals.yaml
var directionalYAML []byte

//go:embed data/regions.yaml
var regionYAML []byte

//go:embed data/countries.yaml
var countryYAML []byte

//go:embed data/names.yaml
var nameYAML []byte

// suffixRule is one street suffix entry as stored in suffixes.yaml
type suffixRule struct {
	Abbr     string   `yaml:"abbr"`
	Long     string   `yaml:"long"`
	Variants []string `yaml:"variants"`
}

type directionalRule struct {
	Abbr string `yaml:"abbr"`
	Long string `yaml:"long"`
}

type regionRule struct {
	Abbr    string   `yaml:"abbr"`
	Name    string   `yaml:"name"`
	Country string   `yaml:"country"`
	Aliases []string `yaml:"aliases"`
}

type countryRule struct {
	Code  string   `yaml:"code"`
	Names []string `yaml:"names"`
}

// nameRule maps an abbreviation used inside place names to its long form
type nameRule struct {
	Abbr     string   `yaml:"abbr"`
	Long     string   `yaml:"long"`
	Variants []string `yaml:"variants"`
}

// Source holds the raw YAML documents a Tables value is built from.
// Empty fields fall back to the embedded defaults.
type Source struct {
	Suffixes     []byte
	Directionals []byte
	Regions      []byte
	Countries    []byte
	Names        []byte
}

// rulesConfig is the decoded form of a Source
type rulesConfig struct {
	suffixes     []suffixRule
	directionals []directionalRule
	regions      []regionRule
	countries    []countryRule
	names        []nameRule
}

// loadRulesConfig decodes every document of src, substituting the
// embedded data for the missing ones
func loadRulesConfig(src Source) (*rulesConfig, error) {
	config := &rulesConfig{}

	if err := decode("suffixes", orDefault(src.Suffixes, suffixYAML), &config.suffixes); err != nil {
		return nil, err
	}
	if err := decode("directionals", orDefault(src.Directionals, directionalYAML), &config.directionals); err != nil {
		return nil, err
	}
	if err := decode("regions", orDefault(src.Regions, regionYAML), &config.regions); err != nil {
		return nil, err
	}
	if err := decode("countries", orDefault(src.Countries, countryYAML), &config.countries); err != nil {
		return nil, err
	}
	if err := decode("names", orDefault(src.Names, nameYAML), &config.names); err != nil {
		return nil, err
	}

	return config, nil
}

func decode(name string, data []byte, out interface{}) error {
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s table: %w", name, err)
	}
	return nil
}

func orDefault(data, fallback []byte) []byte {
	if len(data) == 0 {
		return fallback
	}
	return data
}
