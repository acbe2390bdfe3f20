package address

import "github.com/address-parser/usaddress/internal/tables"

// Tables are the abbreviation tables a Parser resolves suffixes,
// directionals, regions, countries and place names against
type Tables = tables.Tables

// TableSource holds YAML documents to build Tables from. Documents left
// empty fall back to the embedded ones.
//
//	t, err := address.LoadTables(address.TableSource{
//		Suffixes: []byte(`- {abbr: Gate, long: Gate, variants: [GA]}`),
//	})
type TableSource = tables.Source

// LoadTables builds Tables from src, for use with WithTables
func LoadTables(src TableSource) (*Tables, error) {
	return tables.Load(src)
}

// DefaultTables returns the embedded tables
func DefaultTables() *Tables {
	return tables.Default()
}
