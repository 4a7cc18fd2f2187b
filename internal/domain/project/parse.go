package project

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseHours converts user input to an hour value rounded to two digits.
// Blank input yields an absent value.
func ParseHours(field, input string) (decimal.NullDecimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.NullDecimal{}, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s is not a valid decimal number", input),
		}
	}
	return boundHours(field, d)
}

// boundHours rejects magnitudes no column can hold before anything rounds
// or compares d, since both rescale to a common exponent.
func boundHours(field string, d decimal.Decimal) (decimal.NullDecimal, error) {
	if hoursMagnitude(d) > maxHoursDigits {
		msg := "must not exceed 99999.99"
		if d.IsNegative() {
			msg = "must not be negative"
		}
		return decimal.NullDecimal{}, &ValidationError{Field: field, Message: msg}
	}
	return NormalizeHours(decimal.NewNullDecimal(d)), nil
}
