package project

import (
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

const (
	MaxNameLength = 128
	MinDifficulty = 1
	MaxDifficulty = 5
)

// MaxHours is the largest value a NUMERIC(7,2) column holds.
var MaxHours = decimal.RequireFromString("99999.99")

// maxHoursDigits is the integer digit count of MaxHours.
const maxHoursDigits = 5

// Validate checks the field rules shared by create and update.
func (p *Project) Validate() error {
	err := validation.ValidateStruct(p,
		validation.Field(&p.Name,
			validation.Required.Error("a project name is required"),
			validation.RuneLength(1, MaxNameLength),
		),
		validation.Field(&p.EstimatedHours, validation.By(hoursInRange)),
		validation.Field(&p.ActualHours, validation.By(hoursInRange)),
		validation.Field(&p.Difficulty,
			validation.NilOrNotEmpty.Error("must be between 1 and 5"),
			validation.Min(MinDifficulty).Error("must be between 1 and 5"),
			validation.Max(MaxDifficulty).Error("must be between 1 and 5"),
		),
	)
	return toValidationError(err)
}

func hoursInRange(value any) error {
	h, ok := value.(decimal.NullDecimal)
	if !ok {
		return fmt.Errorf("unexpected hours type %T", value)
	}
	if !h.Valid || h.Decimal.IsZero() {
		return nil
	}
	if h.Decimal.IsNegative() {
		return errors.New("must not be negative")
	}
	if hoursMagnitude(h.Decimal) > maxHoursDigits || h.Decimal.GreaterThan(MaxHours) {
		return errors.New("must not exceed 99999.99")
	}
	return nil
}

// toValidationError reduces ozzo's per-field error map to the first field in
// name order so callers always see a single *ValidationError.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}
	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return &ValidationError{Field: fields[0], Message: fieldErrs[fields[0]].Error()}
}
