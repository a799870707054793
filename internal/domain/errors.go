package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAuthRequired     = errors.New("login required")
	ErrPermissionDenied = errors.New("admin access only")
	ErrEmptyCart        = errors.New("cart is empty")
)

// ValidationError reports malformed input on a single field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a reference to a product id that does not resolve.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ID)
}

// PersistenceError wraps a failed write-through. The operation that hit it
// must not have committed any in-memory state.
type PersistenceError struct {
	Record string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Record, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
