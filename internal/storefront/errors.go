package storefront

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches any NotFoundError via errors.Is.
	ErrNotFound = errors.New("not found")
	// ErrEmptyID is returned when a single-entity fetch gets an empty id.
	ErrEmptyID = errors.New("id is required")
	// ErrMissingData is returned when a response carries neither data nor errors.
	ErrMissingData = errors.New("response has no data")
)

// FetchError wraps the failure of a fetch operation.
type FetchError struct {
	Operation string
	Err       error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// NotFoundError reports a single-entity fetch that resolved to null.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
