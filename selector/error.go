package selector

import (
	"errors"
	"fmt"
)

// EndOfInput is the token placeholder used in errors raised at the end of
// the query.
const EndOfInput = `\0`

// Common selector errors
var (
	// ErrInvalidCharacter indicates a character outside the selector alphabet
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrUnterminatedLiteral indicates a quoted literal without its closing quote
	ErrUnterminatedLiteral = errors.New("the end of the literal is required")

	// ErrSelectorExpected indicates a missing selector
	ErrSelectorExpected = errors.New("selector required")

	// ErrSeparatorExpected indicates a missing combinator or comma
	ErrSeparatorExpected = errors.New("separator required")

	// ErrInvalidConfig indicates invalid configuration was provided
	ErrInvalidConfig = errors.New("invalid selector configuration")
)

// SyntaxError reports where a query failed to compile.
type SyntaxError struct {
	// Query is the selector string being compiled.
	Query string

	// Token is the offending token text, or EndOfInput.
	Token string

	// Offset is the byte offset of Token in Query.
	Offset int

	Err error
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v before '%s' at offset %d in %q", e.Err, e.Token, e.Offset, e.Query)
}

// Unwrap returns the underlying error
func (e *SyntaxError) Unwrap() error {
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
