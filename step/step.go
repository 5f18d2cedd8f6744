// Package step defines the unit the match engine evaluates: a Step inspects
// one target element and answers with a Signal telling the engine how many
// elements to consume.
//
// Every front end (the base compiler, the glob compiler, the selector
// compiler) ultimately produces a list of Steps.
package step

import "fmt"

// Signal is the result of evaluating a Step against one target element.
//
// The zero value is Fail, so a Step that returns nothing useful aborts its
// branch. Values outside the declared set are treated by the engine as OK.
type Signal uint8

const (
	// Fail rejects the current branch.
	Fail Signal = iota

	// OK matches and consumes exactly one element.
	OK

	// NoConsume matches without consuming; the next Step sees the same element.
	NoConsume

	// NoOrOneConsume matches and consumes zero or one element (zero is tried first).
	NoOrOneConsume

	// AnyConsume matches and consumes zero or more elements, preferring fewer.
	AnyConsume
)

// String returns a human-readable signal name.
func (s Signal) String() string {
	switch s {
	case Fail:
		return "FAIL"
	case OK:
		return "OK"
	case NoConsume:
		return "NO_CONSUME"
	case NoOrOneConsume:
		return "NO_OR_ONE_CONSUME"
	case AnyConsume:
		return "ANY_CONSUME"
	default:
		return fmt.Sprintf("Signal(%d)", uint8(s))
	}
}

// Step evaluates a single target element.
//
// ok is false when the target is exhausted; elem is then the zero value.
// Steps that must not succeed on an exhausted target check ok themselves.
type Step[T any] func(elem T, ok bool) Signal

// Bool converts a boolean test result into OK or Fail.
func Bool(matched bool) Signal {
	if matched {
		return OK
	}
	return Fail
}

// Pred adapts a predicate to a Step. The predicate is never called on an
// exhausted target; that position always fails.
func Pred[T any](pred func(elem T) bool) Step[T] {
	return func(elem T, ok bool) Signal {
		if !ok {
			return Fail
		}
		return Bool(pred(elem))
	}
}

// Equal returns a Step matching elements equal to want.
func Equal[T comparable](want T) Step[T] {
	return func(elem T, ok bool) Signal {
		return Bool(ok && elem == want)
	}
}

// Always returns a Step that ignores the element and reports sig.
func Always[T any](sig Signal) Step[T] {
	return func(T, bool) Signal { return sig }
}

// AnyConsumer returns a Step that absorbs zero or more elements.
func AnyConsumer[T any]() Step[T] {
	return Always[T](AnyConsume)
}

// Present returns a Step matching any single element, failing at the end.
func Present[T any]() Step[T] {
	return func(_ T, ok bool) Signal { return Bool(ok) }
}

// And folds steps into one Step for a single target position: the result is
// OK when every step reports a non-Fail signal.
func And[T any](steps ...Step[T]) Step[T] {
	return func(elem T, ok bool) Signal {
		for _, s := range steps {
			if s(elem, ok) == Fail {
				return Fail
			}
		}
		return OK
	}
}
