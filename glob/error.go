package glob

import (
	"errors"
	"fmt"
)

// Common glob errors
var (
	// ErrUnterminatedBracket indicates a '[' without a matching ']'
	ErrUnterminatedBracket = errors.New(`the right bracket "]" is not found`)

	// ErrInvalidConfig indicates invalid configuration was provided
	ErrInvalidConfig = errors.New("invalid glob configuration")
)

// PatternError wraps a compilation error with the offending glob.
type PatternError struct {
	// Pattern is the segment glob that failed to compile.
	Pattern string

	// Offset is the byte offset of the construct that failed.
	Offset int

	Err error
}

// Error implements the error interface
func (e *PatternError) Error() string {
	return fmt.Sprintf("glob %q: %v at offset %d", e.Pattern, e.Err, e.Offset)
}

// Unwrap returns the underlying error
func (e *PatternError) Unwrap() error {
	return e.Err
}

// ConfigError names the invalid Config field.
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrInvalidConfig, e.Field, e.Reason)
}

// Unwrap returns ErrInvalidConfig
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
