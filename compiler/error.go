package compiler

import (
	"errors"
	"fmt"
)

// Common compiler errors
var (
	// ErrUnsupportedKind indicates a pattern specification of a kind the
	// compiler cannot turn into a step
	ErrUnsupportedKind = errors.New("unsupported pattern kind")

	// ErrNilPattern indicates a nil pattern or a nil step function
	ErrNilPattern = errors.New("nil pattern")
)

// UnsupportedKindError names the offending kind of pattern specification.
type UnsupportedKindError struct {
	Kind string
}

// Error implements the error interface
func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("the pattern should not be of the %s kind", e.Kind)
}

// Unwrap returns ErrUnsupportedKind
func (e *UnsupportedKindError) Unwrap() error {
	return ErrUnsupportedKind
}

// PatternError reports which position of a pattern list failed to compile.
type PatternError struct {
	Index int
	Err   error
}

// Error implements the error interface
func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern #%d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error
func (e *PatternError) Unwrap() error {
	return e.Err
}

func unsupported(v any) error {
	return &UnsupportedKindError{Kind: fmt.Sprintf("%T", v)}
}
