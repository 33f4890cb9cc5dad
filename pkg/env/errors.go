package env

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingVariable is returned when a required variable is absent or
	// empty and no default was supplied.
	ErrMissingVariable = errors.New("variable is not defined")

	// ErrLoadingFile is returned when a .env file cannot be read or parsed.
	ErrLoadingFile = errors.New("failed to load env file")
)

// VariableError reports which variable a read failed on.
// Unwrap exposes the cause, so errors.Is works with ErrMissingVariable and
// the cast sentinels.
type VariableError struct {
	Name string
	Err  error
}

func (e *VariableError) Error() string {
	return fmt.Sprintf("environment variable %q: %v", e.Name, e.Err)
}

func (e *VariableError) Unwrap() error {
	return e.Err
}
