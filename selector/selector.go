// Package selector compiles CSS-like queries into matchers over sequences of
// tagged objects.
//
// A query is matched against a path of objects, from the outermost to the
// innermost. The last compound selector must match the last object; the
// first one may match anywhere before it.
//
// Syntax:
//   - name matches an object whose tag name is name
//   - #name matches an object whose identity is name
//   - .name matches an object whose class list contains name
//   - * matches any object, but an object must be present: "a>*" does not
//     match a path ending at a
//   - selectors written back to back (div.item#main) must all match one object
//   - "a b" lets any number of objects sit between a and b
//   - "a>b" requires b to follow a directly
//   - "a,b" matches the whole path against a, then against b
//
// Names may also be quoted with ', " or `, with backslash escaping.
//
// Example:
//
//	s := selector.MustCompile(".container target")
//	s.Match([]any{
//		selector.Element{},
//		selector.Element{Class: []string{"container"}},
//		selector.Element{},
//		selector.Element{Tag: "target"},
//	}) // true
package selector

import (
	"github.com/coregx/coregex"

	"github.com/uiui611/array-matcher/compiler"
	"github.com/uiui611/array-matcher/engine"
	"github.com/uiui611/array-matcher/step"
)

// Compiler is the base compiler over tagged objects: string literals and
// regular expressions are compared against the tag name instead of the
// object itself. Every other pattern kind keeps the base behavior.
type Compiler struct {
	compiler.Base[any]
	fields fields
}

var _ compiler.Compiler[any] = (*Compiler)(nil)

// NewCompiler returns a selector compiler using config.
func NewCompiler(config Config) (*Compiler, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Compiler{fields: fields{config: config}}, nil
}

// AcceptLiteral matches objects whose tag name equals a string value.
// Other literal values are compared structurally with the object.
func (c *Compiler) AcceptLiteral(value any) (step.Step[any], error) {
	if _, ok := value.(string); !ok {
		return c.Base.AcceptLiteral(value)
	}
	name, err := compiler.Base[string]{}.AcceptLiteral(value)
	if err != nil {
		return nil, err
	}
	return c.onTag(name), nil
}

// AcceptRegex matches objects whose tag name contains a match of re.
func (c *Compiler) AcceptRegex(re *coregex.Regex) (step.Step[any], error) {
	name, err := compiler.Base[string]{}.AcceptRegex(re)
	if err != nil {
		return nil, err
	}
	return c.onTag(name), nil
}

// onTag runs a string step on the tag name. Objects without one are
// presented to it as the end of input.
func (c *Compiler) onTag(s step.Step[string]) step.Step[any] {
	return func(obj any, ok bool) step.Signal {
		if !ok {
			return s("", false)
		}
		tag, hasTag := c.fields.tag(obj)
		return s(tag, hasTag)
	}
}

func (c *Compiler) idStep(label string) step.Step[any] {
	return func(obj any, ok bool) step.Signal {
		if !ok {
			return step.Fail
		}
		id, hasID := c.fields.id(obj)
		return step.Bool(hasID && id == label)
	}
}

func (c *Compiler) classStep(label string) step.Step[any] {
	return func(obj any, ok bool) step.Signal {
		return step.Bool(ok && c.fields.hasClass(obj, label))
	}
}

// Selector is a compiled query. It is safe for concurrent use.
type Selector struct {
	prog  *engine.Program[any]
	query string
}

// Compile compiles a query with the default configuration.
func Compile(query string) (*Selector, error) {
	return CompileWithConfig(query, DefaultConfig())
}

// MustCompile is like Compile but panics if the query cannot be compiled.
func MustCompile(query string) *Selector {
	s, err := Compile(query)
	if err != nil {
		panic("selector: Compile(" + quote(query) + "): " + err.Error())
	}
	return s
}

// CompileParts compiles a query given as parts: strings are parsed as
// queries, each with its own implicit leading gap, and any other part is
// converted with compiler.FromValue. Parts are concatenated in order.
func CompileParts(parts ...any) (*Selector, error) {
	return CompilePartsWithConfig(parts, DefaultConfig())
}

// CompileWithConfig is Compile with an explicit configuration.
func CompileWithConfig(query string, config Config) (*Selector, error) {
	return CompilePartsWithConfig([]any{query}, config)
}

// CompilePartsWithConfig is CompileParts with an explicit configuration.
func CompilePartsWithConfig(parts []any, config Config) (*Selector, error) {
	c, err := NewCompiler(config)
	if err != nil {
		return nil, err
	}

	var ops []engine.Op[any]
	var query string
	for i, part := range parts {
		if s, ok := part.(string); ok {
			parsed, err := parse(c, s)
			if err != nil {
				return nil, err
			}
			ops = append(ops, parsed...)
			if query != "" {
				query += " "
			}
			query += s
			continue
		}

		p, err := compiler.FromValue[any](part)
		if err != nil {
			return nil, &compiler.PatternError{Index: i, Err: err}
		}
		op, err := compiler.Accept[any](c, p)
		if err != nil {
			return nil, &compiler.PatternError{Index: i, Err: err}
		}
		ops = append(ops, op)
	}
	return &Selector{prog: engine.NewProgram(ops...), query: query}, nil
}

// CompilePatterns compiles patterns with the selector compiler, without any
// query parsing or implicit gap.
func CompilePatterns(config Config, patterns ...compiler.Pattern[any]) (*Selector, error) {
	c, err := NewCompiler(config)
	if err != nil {
		return nil, err
	}
	prog, err := compiler.Compile[any](c, patterns...)
	if err != nil {
		return nil, err
	}
	return &Selector{prog: prog}, nil
}

// Match reports whether the object path matches the query.
func (s *Selector) Match(objects []any) bool {
	return s.prog.Match(objects)
}

// Program returns the compiled program.
func (s *Selector) Program() *engine.Program[any] {
	return s.prog
}

// String returns the string parts of the query, joined by spaces.
func (s *Selector) String() string {
	return s.query
}

// Objects converts a typed slice into the []any form Match takes.
func Objects[T any](items []T) []any {
	objects := make([]any, len(items))
	for i, item := range items {
		objects[i] = item
	}
	return objects
}

func quote(s string) string {
	return "`" + s + "`"
}
