// Package engine implements the backtracking sequence matcher.
//
// A Program is an ordered list of Steps interleaved with alternation
// markers. Matching succeeds when some alternative consumes the whole target
// exactly, honoring each Step's Signal:
//   - OK: consume one element
//   - NoConsume: consume nothing (zero-width assertion)
//   - NoOrOneConsume: consume zero or one element, zero first
//   - AnyConsume: consume zero or more elements, fewer first
//
// Alternation is whole-pattern and ordered: alternatives are tried left to
// right and the first success wins.
//
// Worst case: the engine explores consumption amounts depth-first without
// memoization, so running time is combinatorial in the number of
// NoOrOneConsume/AnyConsume steps and the target length, and recursion depth
// grows with the pattern length. Callers matching untrusted patterns against
// long targets must bound these themselves.
package engine

import (
	"github.com/uiui611/array-matcher/internal/cursor"
	"github.com/uiui611/array-matcher/step"
)

// Op is one element of a compiled pattern: either a Step or an alternation
// marker. The zero Op holds a nil Step; construct Ops with StepOp and Or.
type Op[T any] struct {
	step step.Step[T]
	alt  bool
}

// StepOp wraps a Step.
func StepOp[T any](s step.Step[T]) Op[T] {
	return Op[T]{step: s}
}

// Or returns the alternation marker. It splits a pattern into ordered
// whole-pattern alternatives and is never evaluated against an element.
func Or[T any]() Op[T] {
	return Op[T]{alt: true}
}

// IsAlternation reports whether op is the alternation marker.
func (op Op[T]) IsAlternation() bool {
	return op.alt
}

// Step returns the wrapped Step, or nil for the alternation marker.
func (op Op[T]) Step() step.Step[T] {
	return op.step
}

// Program is a compiled pattern. It is immutable after NewProgram and is
// safe for concurrent use by multiple goroutines.
type Program[T any] struct {
	groups [][]step.Step[T]
	size   int
}

// NewProgram builds a Program from ops. The ops slice is copied.
//
// Markers split ops into alternatives. A marker at either end, or two
// adjacent markers, yield an empty alternative, which matches only an empty
// target. Empty alternatives are kept, not dropped: NewProgram(Or[T]())
// matches the empty target, and so does "a" followed by a trailing marker.
func NewProgram[T any](ops ...Op[T]) *Program[T] {
	groups := make([][]step.Step[T], 0, 1)
	current := make([]step.Step[T], 0, len(ops))
	for _, op := range ops {
		if op.alt {
			groups = append(groups, current)
			current = make([]step.Step[T], 0, len(ops))
			continue
		}
		current = append(current, op.step)
	}
	groups = append(groups, current)
	return &Program[T]{groups: groups, size: len(ops)}
}

// Alternatives returns the number of whole-pattern alternatives.
func (p *Program[T]) Alternatives() int {
	return len(p.groups)
}

// Len returns the number of ops the program was built from, markers included.
func (p *Program[T]) Len() int {
	return p.size
}

// Match reports whether target is consumed exactly by one of the
// program's alternatives. Alternatives are tried in order.
func (p *Program[T]) Match(target []T) bool {
	for _, group := range p.groups {
		if matchSequence(cursor.New(group), cursor.New(target)) {
			return true
		}
	}
	return false
}

// Match compiles ops into a throwaway Program and matches target against it.
func Match[T any](ops []Op[T], target []T) bool {
	return NewProgram(ops...).Match(target)
}

// MatchSteps matches target against a single alternative made of steps.
func MatchSteps[T any](steps []step.Step[T], target []T) bool {
	return matchSequence(cursor.New(steps), cursor.New(target))
}

// matchSequence runs the remaining pattern against the remaining target.
// Both cursors are passed by value, so every recursive call works on its own
// fork and the caller's positions are untouched.
func matchSequence[T any](pattern cursor.Cursor[step.Step[T]], target cursor.Cursor[T]) bool {
	for pattern.HasMore() {
		s, _ := pattern.Advance()
		elem, ok := target.Current()

		switch s(elem, ok) {
		case step.Fail:
			return false

		case step.NoConsume:

		case step.NoOrOneConsume:
			if !target.HasMore() && !pattern.HasMore() {
				return true
			}
			if matchSequence(pattern, target) {
				return true
			}
			target.Advance()
			return matchSequence(pattern, target)

		case step.AnyConsume:
			if !target.HasMore() && !pattern.HasMore() {
				return true
			}
			for gap := target; gap.HasMore(); gap.Advance() {
				if matchSequence(pattern, gap) {
					return true
				}
			}
			// A trailing AnyConsume absorbs whatever is left.
			return !pattern.HasMore()

		default:
			target.Advance()
		}
	}
	return !target.HasMore()
}
