package address

import "github.com/address-parser/usaddress/internal/parser"

// Input is what Parse accepts: Text or Fields
type Input interface {
	isInput()
}

// Text is a free-text address such as "1600 Pennsylvania Av, Washington DC"
type Text string

func (Text) isInput() {}

// Fields is an address already split into named fields. Every field that
// is set is taken as given; fields left empty stay unresolved.
type Fields struct {
	Street     string `json:"street,omitempty" yaml:"street,omitempty"`
	City       string `json:"city,omitempty" yaml:"city,omitempty"`
	State      string `json:"state,omitempty" yaml:"state,omitempty"`
	Region     string `json:"region,omitempty" yaml:"region,omitempty"` // alias of State
	PostalCode string `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	Number     string `json:"number,omitempty" yaml:"number,omitempty"`
	Country    string `json:"country,omitempty" yaml:"country,omitempty"`
	// Address holds free text to parse; the other fields override it
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
}

func (Fields) isInput() {}

func (f Fields) fieldSet() parser.FieldSet {
	return parser.FieldSet{
		Street:     f.Street,
		City:       f.City,
		State:      f.State,
		Region:     f.Region,
		PostalCode: f.PostalCode,
		Number:     f.Number,
		Country:    f.Country,
		Address:    f.Address,
	}
}
