package repository

import (
	"errors"
	"fmt"
)

// ErrProjectMissing is the cause recorded when an update matched no row.
var ErrProjectMissing = errors.New("the project does not exist")

// StoreError wraps a failure of the backing store: a statement that could
// not execute, a lost connection, or an update that matched no row.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Wrap returns nil for a nil err, otherwise a *StoreError for op.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
