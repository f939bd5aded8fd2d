package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeDuration indicates a duration below zero.
	ErrNegativeDuration = errors.New("config: duration must not be negative")

	// ErrNonPositive indicates a value that must be greater than zero.
	ErrNonPositive = errors.New("config: value must be positive")

	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// Error ties a validation failure to the offending field.
type Error struct {
	Field string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Field, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
