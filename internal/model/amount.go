package model

import (
	"encoding/json"

	"github.com/spf13/cast"
)

// Amount is a monetary value. Upstream payloads encode amounts
// inconsistently (number, numeric string, sometimes garbage), so decoding is
// total: anything that cannot be coerced to a number becomes zero.
type Amount float64

// Float returns the amount as a float64.
func (a Amount) Float() float64 { return float64(a) }

// Positive reports whether the amount is greater than zero.
func (a Amount) Positive() bool { return a > 0 }

// UnmarshalJSON accepts numbers and numeric strings; unparsable values decode
// as zero rather than failing the whole payload.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*a = 0
		return nil
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

// Quantity is an item count with the same tolerant decoding as Amount.
// Zero means "not given"; renderers treat that as one unit.
type Quantity int

// UnmarshalJSON accepts numbers and numeric strings; unparsable values decode
// as zero.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*q = 0
		return nil
	}
	n, err := cast.ToIntE(raw)
	if err != nil {
		*q = 0
		return nil
	}
	*q = Quantity(n)
	return nil
}
