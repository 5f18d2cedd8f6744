package compiler

import (
	"github.com/coregx/coregex"

	"github.com/uiui611/array-matcher/step"
)

// Pattern is a pattern specification: one of Literal, Regex, Alternatives,
// Constant, Func or Alternation. The set is closed.
type Pattern[T any] interface {
	isPattern(T)
}

// Literal matches an element structurally equal to Value.
type Literal[T any] struct {
	Value any
}

// Regex matches an element whose text contains a match of Re.
type Regex[T any] struct {
	Re *coregex.Regex
}

// Alternatives matches a single element accepted by any of its patterns.
// This is a one-position OR, unlike the whole-pattern Alternation marker.
type Alternatives[T any] []Pattern[T]

// Constant ignores the element: true always matches (and consumes one
// position), false always fails.
type Constant[T any] bool

// Func is a step used as is.
type Func[T any] step.Step[T]

// Alternation is the whole-pattern alternation marker.
type Alternation[T any] struct{}

func (Literal[T]) isPattern(T)      {}
func (Regex[T]) isPattern(T)        {}
func (Alternatives[T]) isPattern(T) {}
func (Constant[T]) isPattern(T)     {}
func (Func[T]) isPattern(T)         {}
func (Alternation[T]) isPattern(T)  {}

// Lit returns a Literal pattern.
func Lit[T any](v any) Pattern[T] {
	return Literal[T]{Value: v}
}

// Re compiles expr with coregex and returns a Regex pattern.
func Re[T any](expr string) (Pattern[T], error) {
	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, err
	}
	return Regex[T]{Re: re}, nil
}

// MustRe is like Re but panics if expr does not compile.
func MustRe[T any](expr string) Pattern[T] {
	return Regex[T]{Re: coregex.MustCompile(expr)}
}

// Alt returns an Alternatives pattern.
func Alt[T any](alts ...Pattern[T]) Pattern[T] {
	return Alternatives[T](alts)
}

// Const returns a Constant pattern.
func Const[T any](b bool) Pattern[T] {
	return Constant[T](b)
}

// Fn returns a Func pattern.
func Fn[T any](s step.Step[T]) Pattern[T] {
	return Func[T](s)
}

// Or returns the alternation marker.
func Or[T any]() Pattern[T] {
	return Alternation[T]{}
}

// orMarker is the untyped alternation marker accepted by FromValue.
type orMarker struct{}

// OrMarker is the alternation marker for dynamically typed specifications
// passed through FromValue.
var OrMarker any = orMarker{}

// FromValue converts a dynamically typed specification into a Pattern.
//
// Accepted kinds:
//   - string (literal)
//   - *coregex.Regex (compiled regular expression)
//   - []any (alternatives, converted element-wise) and []string (literal alternatives)
//   - bool (constant)
//   - step.Step[T], func(T, bool) step.Signal, func(T) step.Signal,
//     func(T) bool, func(T, bool) bool (step functions)
//   - OrMarker
//   - a Pattern[T] (returned unchanged)
//
// Anything else fails with an *UnsupportedKindError.
//
// A func(T) step.Signal is also called at the end of the target, with the
// zero T. A func(T) bool is not; it fails there.
func FromValue[T any](v any) (Pattern[T], error) {
	switch x := v.(type) {
	case Pattern[T]:
		return x, nil
	case string:
		return Literal[T]{Value: x}, nil
	case *coregex.Regex:
		if x == nil {
			return nil, ErrNilPattern
		}
		return Regex[T]{Re: x}, nil
	case []any:
		alts := make(Alternatives[T], 0, len(x))
		for _, a := range x {
			p, err := FromValue[T](a)
			if err != nil {
				return nil, err
			}
			alts = append(alts, p)
		}
		return alts, nil
	case []string:
		alts := make(Alternatives[T], 0, len(x))
		for _, s := range x {
			alts = append(alts, Literal[T]{Value: s})
		}
		return alts, nil
	case bool:
		return Constant[T](x), nil
	case orMarker:
		return Alternation[T]{}, nil
	}

	fn, err := stepFromFunc[T](v)
	if err != nil {
		return nil, err
	}
	return Func[T](fn), nil
}

func stepFromFunc[T any](v any) (step.Step[T], error) {
	var fn step.Step[T]
	switch f := v.(type) {
	case step.Step[T]:
		fn = f
	case func(T, bool) step.Signal:
		fn = f
	case func(T) step.Signal:
		if f != nil {
			fn = func(elem T, _ bool) step.Signal { return f(elem) }
		}
	case func(T) bool:
		if f != nil {
			fn = step.Pred(f)
		}
	case func(T, bool) bool:
		if f != nil {
			fn = func(elem T, ok bool) step.Signal { return step.Bool(f(elem, ok)) }
		}
	default:
		return nil, unsupported(v)
	}
	if fn == nil {
		return nil, ErrNilPattern
	}
	return fn, nil
}
