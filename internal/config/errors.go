package config

import (
	"errors"
	"fmt"
)

// ErrUnknownKey indicates a Set or Get on a key no setting uses.
var ErrUnknownKey = errors.New("unknown config key")

// ValidationError indicates a value that failed validation.
type ValidationError struct {
	// Key is the dot-separated setting key.
	Key string

	// Value is the rejected value.
	Value any

	// Reason describes why the value was rejected.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %v for %s: %s", e.Value, e.Key, e.Reason)
}

// ParseError indicates a config file that could not be parsed.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string

	// Err is the underlying parse error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
