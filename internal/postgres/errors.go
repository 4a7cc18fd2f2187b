package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isPgCheckViolation checks if error is a check constraint violation
func isPgCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23514 = check_violation
		return pgErr.Code == "23514"
	}
	return false
}

// isPgNotNullViolation checks if error is a not-null constraint violation
func isPgNotNullViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23502 = not_null_violation
		return pgErr.Code == "23502"
	}
	return false
}

// isPgNoRowsError checks if error is a "no rows" error
func isPgNoRowsError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func describe(err error) error {
	switch {
	case isPgCheckViolation(err):
		return fmt.Errorf("value out of range: %w", err)
	case isPgNotNullViolation(err):
		return fmt.Errorf("required value missing: %w", err)
	default:
		return err
	}
}
