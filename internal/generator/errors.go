package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPoolEnabled is returned when generation is requested before any
	// class was enabled. Callers must treat it as a fatal misuse.
	ErrNoPoolEnabled = errors.New("cannot generate a password with no character classes enabled")

	ErrInvalidLength = errors.New("password length must not be negative")
	ErrInvalidCount  = errors.New("password count must not be negative")
)

// InitializationError reports that the secure random source could not be
// acquired.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialize secure random source: %v", e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}
