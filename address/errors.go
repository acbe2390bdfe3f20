package address

import "errors"

// ErrNoInput is returned when there is nothing to parse: empty or blank
// text, a Fields value with no field set, or a nil Input.
var ErrNoInput = errors.New("address: no input to parse")
