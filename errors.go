package minimarket

import (
	"errors"
	"fmt"
)

// ValidationError reports an operation attempted with invalid input.
// Nothing was mutated when one is returned.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// StorageError reports a failure of the persistence layer itself. It is
// fatal for the current operation and is never retried; the store keeps
// whatever it last durably held.
type StorageError struct {
	Collection string
	Op         string // "read", "write" or "decode"
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("could not %s collection %q: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageError(op, collection string, err error) error {
	return &StorageError{Collection: collection, Op: op, Err: err}
}
