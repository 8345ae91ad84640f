package utils

import (
	"errors"
	"fmt"
)

// Error taxonomy. Handlers map these onto the HTTP surface: validation -> 400,
// not found -> 404, store -> 500. Nothing else crosses the boundary raw.
var (
	ErrNotFound = errors.New("resource not found")
)

// StoreError wraps a persistence failure. The engine never retries; the detail
// stays server-side and the client sees an opaque 500.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
