package money

import (
	"math"
	"strconv"
)

// Amount is a currency value rendered on the wire as a JSON number with
// exactly two fraction digits.
type Amount float64

// Round returns the amount rounded half away from zero to cents.
func (a Amount) Round() Amount {
	return Amount(math.Round(float64(a)*100) / 100)
}

// String formats the amount with two fraction digits.
func (a Amount) String() string {
	return strconv.FormatFloat(float64(a.Round()), 'f', 2, 64)
}

// MarshalJSON emits e.g. 20.00 rather than 20.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts any JSON number.
func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*a = Amount(v)
	return nil
}

// Times multiplies the amount by a count, as in seats booked times price.
func (a Amount) Times(n int) Amount {
	return Amount(float64(a) * float64(n)).Round()
}
