// Package arraymatcher matches sequences against patterns whose elements
// consume a variable number of target elements, with backtracking and
// whole-pattern alternation.
//
// A pattern is a list of steps. Each step inspects one target element and
// answers with a Signal: match one element, match without consuming, match
// zero or one, match any number, or fail. The engine tries consumption
// amounts in order, fewest first, and backtracks on failure.
//
// Three front ends compile onto the engine:
//   - Compile builds a matcher from dynamic specifications (strings,
//     regular expressions, alternatives, booleans, step functions)
//   - Glob builds a path matcher from a glob such as "src/**/*.go"
//   - QuerySelector builds a matcher over tagged objects from a CSS-like
//     query such as "ul > li.active"
//
// Basic usage:
//
//	m := arraymatcher.MustCompile[string]("first", arraymatcher.AnyConsumer[string](), "end")
//	m.Match([]string{"first", "a", "b", "end"}) // true
//
//	g := arraymatcher.MustGlob("first/**/*.txt")
//	g.MatchPath("first/a/b/x.txt") // true
//
//	s := arraymatcher.MustQuerySelector("#list > .item")
//	s.Match([]any{
//		map[string]any{"id": "list"},
//		map[string]any{"classList": []any{"item"}},
//	}) // true
//
// Alternation:
//
//	m := arraymatcher.MustCompile[string]("a", arraymatcher.Or, "b")
//	m.Match([]string{"b"}) // true
//
// Performance characteristics:
//   - Compilation happens once; a compiled matcher is immutable and safe for
//     concurrent use
//   - Steps answering NoOrOneConsume or AnyConsume make matching
//     combinatorial in the worst case; there is no step or time budget
//   - Glob segments without wildcards compile to string equality, and
//     segments with long literal runs are guarded by an Aho-Corasick prefilter
//
// Errors are reported at compile time only. Matching never fails; it
// answers true or false.
package arraymatcher

import (
	"github.com/uiui611/array-matcher/compiler"
	"github.com/uiui611/array-matcher/engine"
	"github.com/uiui611/array-matcher/glob"
	"github.com/uiui611/array-matcher/selector"
	"github.com/uiui611/array-matcher/step"
)

// Signal is what a Step answers for one target element.
type Signal = step.Signal

// Signals.
const (
	Fail           = step.Fail
	OK             = step.OK
	NoConsume      = step.NoConsume
	NoOrOneConsume = step.NoOrOneConsume
	AnyConsume     = step.AnyConsume
)

// Step inspects one target element; ok is false at the end of the target.
type Step[T any] = step.Step[T]

// Or is the whole-pattern alternation marker accepted by Compile.
var Or = compiler.OrMarker

// AnyConsumer returns a Step matching any number of elements.
func AnyConsumer[T any]() Step[T] {
	return step.AnyConsumer[T]()
}

// Matcher matches complete target sequences.
type Matcher[T any] interface {
	Match(target []T) bool
}

var (
	_ Matcher[string] = (*engine.Program[string])(nil)
	_ Matcher[string] = (*glob.Glob)(nil)
	_ Matcher[any]    = (*selector.Selector)(nil)
)

// Compile compiles dynamic specifications with the base compiler. See
// compiler.FromValue for the accepted kinds.
//
// Example:
//
//	m, err := arraymatcher.Compile[string]("first", coregex.MustCompile(`^sec`), []any{"4", "fourth"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m.Match([]string{"first", "second", "fourth"}) // true
func Compile[T any](specs ...any) (*engine.Program[T], error) {
	return compiler.CompileValues[T](compiler.Base[T]{}, specs...)
}

// MustCompile is like Compile but panics if the specifications cannot be
// compiled.
func MustCompile[T any](specs ...any) *engine.Program[T] {
	prog, err := Compile[T](specs...)
	if err != nil {
		panic("arraymatcher: Compile(...): " + err.Error())
	}
	return prog
}

// Glob compiles a "/"-separated glob.
func Glob(pattern string) (*glob.Glob, error) {
	return glob.Compile(pattern)
}

// MustGlob is like Glob but panics if the glob cannot be compiled.
func MustGlob(pattern string) *glob.Glob {
	g, err := Glob(pattern)
	if err != nil {
		panic("arraymatcher: Glob(`" + pattern + "`): " + err.Error())
	}
	return g
}

// GlobWithConfig compiles a glob with config.Glob.
func GlobWithConfig(pattern string, config Config) (*glob.Glob, error) {
	return glob.CompileWithConfig(pattern, config.Glob)
}

// GlobSegments compiles a glob given as one pattern per segment.
func GlobSegments(segments ...string) (*glob.Glob, error) {
	return glob.CompileSegments(segments)
}

// QuerySelector compiles a query given as parts: strings are parsed as
// selectors, anything else is converted with compiler.FromValue.
func QuerySelector(query ...any) (*selector.Selector, error) {
	return selector.CompileParts(query...)
}

// MustQuerySelector is like QuerySelector but panics if the query cannot be
// compiled.
func MustQuerySelector(query ...any) *selector.Selector {
	s, err := QuerySelector(query...)
	if err != nil {
		panic("arraymatcher: QuerySelector(...): " + err.Error())
	}
	return s
}

// QuerySelectorWithConfig compiles query parts, as QuerySelector does,
// with config.Selector.
func QuerySelectorWithConfig(query []any, config Config) (*selector.Selector, error) {
	return selector.CompilePartsWithConfig(query, config.Selector)
}
