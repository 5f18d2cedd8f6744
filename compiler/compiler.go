// Package compiler turns pattern specifications into engine programs.
//
// A Compiler has one method per pattern kind. Base implements all of them;
// specializations embed Base and override only the kinds they treat
// differently. The glob compiler, for instance, overrides AcceptLiteral so a
// string becomes a segment glob, and the selector compiler overrides
// AcceptLiteral and AcceptRegex to look at an object's tag field.
//
// Dispatch happens in Accept, which receives the full Compiler value, so an
// overriding method is honored even when reached through Alternatives.
//
// Example:
//
//	prog, err := compiler.Compile[string](compiler.Base[string]{},
//		compiler.Lit[string]("first"),
//		compiler.MustRe[string](`^sec[oa]nd$`),
//		compiler.Alt[string](compiler.Lit[string]("4"), compiler.Lit[string]("fourth")),
//		compiler.Fn(step.AnyConsumer[string]()),
//		compiler.Lit[string]("end"),
//	)
//	prog.Match([]string{"first", "second", "fourth", "fifth", "end"}) // true
package compiler

import (
	"fmt"
	"reflect"

	"github.com/coregx/coregex"

	"github.com/uiui611/array-matcher/engine"
	"github.com/uiui611/array-matcher/step"
)

// Compiler turns each kind of pattern into a Step.
type Compiler[T any] interface {
	// AcceptLiteral handles Literal patterns.
	AcceptLiteral(value any) (step.Step[T], error)

	// AcceptRegex handles Regex patterns.
	AcceptRegex(re *coregex.Regex) (step.Step[T], error)

	// AcceptAlternatives handles Alternatives patterns. alts holds the
	// already accepted alternatives, in order.
	AcceptAlternatives(alts []step.Step[T]) (step.Step[T], error)

	// AcceptFunc handles Func patterns.
	AcceptFunc(fn step.Step[T]) (step.Step[T], error)

	// AcceptConstant handles Constant patterns.
	AcceptConstant(b bool) (step.Step[T], error)
}

// Base is the default Compiler.
type Base[T any] struct{}

var _ Compiler[string] = Base[string]{}

// AcceptLiteral matches elements structurally equal to value.
func (Base[T]) AcceptLiteral(value any) (step.Step[T], error) {
	if s, isString := value.(string); isString {
		return func(elem T, ok bool) step.Signal {
			if !ok {
				return step.Fail
			}
			es, isString := any(elem).(string)
			return step.Bool(isString && es == s)
		}, nil
	}
	return func(elem T, ok bool) step.Signal {
		return step.Bool(ok && reflect.DeepEqual(any(elem), value))
	}, nil
}

// AcceptRegex matches elements whose text contains a match of re. Elements
// without a textual form never match.
func (Base[T]) AcceptRegex(re *coregex.Regex) (step.Step[T], error) {
	if re == nil {
		return nil, ErrNilPattern
	}
	return func(elem T, ok bool) step.Signal {
		if !ok {
			return step.Fail
		}
		text, hasText := Text(elem)
		return step.Bool(hasText && re.MatchString(text))
	}, nil
}

// AcceptAlternatives matches one element accepted by any alternative.
//
// The result is always OK or Fail: an alternative answering NoConsume,
// NoOrOneConsume or AnyConsume counts as accepting the element and the
// position consumes exactly one element.
func (Base[T]) AcceptAlternatives(alts []step.Step[T]) (step.Step[T], error) {
	return func(elem T, ok bool) step.Signal {
		for _, alt := range alts {
			if alt(elem, ok) != step.Fail {
				return step.OK
			}
		}
		return step.Fail
	}, nil
}

// AcceptFunc uses fn as is.
func (Base[T]) AcceptFunc(fn step.Step[T]) (step.Step[T], error) {
	if fn == nil {
		return nil, ErrNilPattern
	}
	return fn, nil
}

// AcceptConstant returns a step that always answers OK (true) or Fail
// (false). OK still consumes one position.
func (Base[T]) AcceptConstant(b bool) (step.Step[T], error) {
	if b {
		return step.Always[T](step.OK), nil
	}
	return step.Always[T](step.Fail), nil
}

// Accept compiles one pattern with c. The alternation marker passes
// through unchanged.
func Accept[T any](c Compiler[T], p Pattern[T]) (engine.Op[T], error) {
	switch x := p.(type) {
	case Alternation[T]:
		return engine.Or[T](), nil
	case Literal[T]:
		return wrap(c.AcceptLiteral(x.Value))
	case Regex[T]:
		return wrap(c.AcceptRegex(x.Re))
	case Alternatives[T]:
		steps := make([]step.Step[T], 0, len(x))
		for _, alt := range x {
			op, err := Accept(c, alt)
			if err != nil {
				return engine.Op[T]{}, err
			}
			if op.IsAlternation() {
				return engine.Op[T]{}, &UnsupportedKindError{Kind: "alternation marker inside alternatives"}
			}
			steps = append(steps, op.Step())
		}
		return wrap(c.AcceptAlternatives(steps))
	case Func[T]:
		return wrap(c.AcceptFunc(step.Step[T](x)))
	case Constant[T]:
		return wrap(c.AcceptConstant(bool(x)))
	case nil:
		return engine.Op[T]{}, ErrNilPattern
	default:
		return engine.Op[T]{}, unsupported(p)
	}
}

func wrap[T any](s step.Step[T], err error) (engine.Op[T], error) {
	if err != nil {
		return engine.Op[T]{}, err
	}
	return engine.StepOp(s), nil
}

// Compile accepts every pattern with c and returns the resulting Program.
func Compile[T any](c Compiler[T], patterns ...Pattern[T]) (*engine.Program[T], error) {
	ops, err := AcceptAll(c, patterns...)
	if err != nil {
		return nil, err
	}
	return engine.NewProgram(ops...), nil
}

// AcceptAll accepts every pattern with c, in order.
func AcceptAll[T any](c Compiler[T], patterns ...Pattern[T]) ([]engine.Op[T], error) {
	ops := make([]engine.Op[T], 0, len(patterns))
	for i, p := range patterns {
		op, err := Accept(c, p)
		if err != nil {
			return nil, &PatternError{Index: i, Err: err}
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// CompileValues converts values with FromValue and compiles them with c.
func CompileValues[T any](c Compiler[T], values ...any) (*engine.Program[T], error) {
	patterns := make([]Pattern[T], 0, len(values))
	for i, v := range values {
		p, err := FromValue[T](v)
		if err != nil {
			return nil, &PatternError{Index: i, Err: err}
		}
		patterns = append(patterns, p)
	}
	return Compile(c, patterns...)
}

// Text returns the textual form of v used by regular-expression steps.
func Text(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	case rune:
		return string(x), true
	case fmt.Stringer:
		return x.String(), true
	default:
		return "", false
	}
}
