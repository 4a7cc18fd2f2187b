package sqlite

import (
	"fmt"
	"strings"
)

func isCheckViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "CHECK constraint failed")
}

func isNotNullViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "NOT NULL constraint failed")
}

// describe labels constraint failures so the console can print something
// more useful than the raw driver text.
func describe(err error) error {
	switch {
	case isCheckViolation(err):
		return fmt.Errorf("value out of range: %w", err)
	case isNotNullViolation(err):
		return fmt.Errorf("required value missing: %w", err)
	default:
		return err
	}
}
