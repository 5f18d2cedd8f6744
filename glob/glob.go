// Package glob compiles path globs into segment matchers.
//
// A glob is matched against a path already split into segments. Each
// segment glob is matched character by character by a nested run of the
// match engine, so the same backtracking rules apply at both levels.
//
// Syntax:
//   - "**" as a whole segment matches zero or more segments
//   - '*' matches zero or more characters within a segment
//   - '?' matches exactly one character
//   - "[abc]" and "[a-z]" match one character from a set or inclusive range
//   - any other character matches itself
//
// There is no escaping, negation or brace expansion.
//
// Example:
//
//	g := glob.MustCompile("first/**/*.txt")
//	g.Match([]string{"first", "a", "b", "x.txt"}) // true
//	g.MatchPath("first/x.txt")                    // true
//	g.MatchPath("first/x.bin")                    // false
package glob

import (
	"strings"
	"unicode/utf8"

	"github.com/uiui611/array-matcher/compiler"
	"github.com/uiui611/array-matcher/engine"
	"github.com/uiui611/array-matcher/prefilter"
	"github.com/uiui611/array-matcher/step"
)

// Compiler is the base compiler with string literals treated as segment
// globs. Regex, alternatives, constant and function patterns keep the base
// behavior, applied per segment.
type Compiler struct {
	compiler.Base[string]
	config Config
}

var _ compiler.Compiler[string] = (*Compiler)(nil)

// NewCompiler returns a glob compiler using config.
func NewCompiler(config Config) (*Compiler, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Compiler{config: config}, nil
}

// AcceptLiteral compiles a string as a segment glob. Other literal values
// are compared structurally, as in the base compiler.
func (c *Compiler) AcceptLiteral(value any) (step.Step[string], error) {
	s, ok := value.(string)
	if !ok {
		return c.Base.AcceptLiteral(value)
	}
	return c.Segment(s)
}

// Segment compiles one segment glob into a segment-level step.
func (c *Compiler) Segment(glob string) (step.Step[string], error) {
	if glob == "**" {
		return step.AnyConsumer[string](), nil
	}

	tokens, err := tokenize(glob)
	if err != nil {
		return nil, err
	}

	chars := make([]step.Step[rune], len(tokens))
	for i, t := range tokens {
		chars[i] = charStep(t)
	}

	// Invalid UTF-8 in a segment decodes to RuneError, which byte-level
	// filtering cannot see, so such globs skip the prefilter.
	var pf prefilter.Prefilter
	if c.config.EnablePrefilter && utf8.ValidString(glob) && !strings.ContainsRune(glob, utf8.RuneError) {
		pf = prefilter.NewBuilder(literalRuns(tokens)).
			WithMinLiteralLen(c.config.MinLiteralLen).
			Build()
	}

	if pf != nil && pf.IsComplete() {
		return func(segment string, ok bool) step.Signal {
			return step.Bool(ok && segment == glob)
		}, nil
	}

	return func(segment string, ok bool) step.Signal {
		if !ok {
			return step.Fail
		}
		if pf != nil && !pf.IsMatch([]byte(segment)) {
			return step.Fail
		}
		return step.Bool(engine.MatchSteps(chars, []rune(segment)))
	}, nil
}

// Glob is a compiled glob. It is safe for concurrent use.
type Glob struct {
	prog      *engine.Program[string]
	pattern   string
	separator string
}

// Compile compiles a separator-delimited glob with the default
// configuration.
func Compile(pattern string) (*Glob, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if the glob cannot be compiled.
func MustCompile(pattern string) *Glob {
	g, err := Compile(pattern)
	if err != nil {
		panic("glob: Compile(" + quote(pattern) + "): " + err.Error())
	}
	return g
}

// CompileWithConfig compiles a separator-delimited glob.
func CompileWithConfig(pattern string, config Config) (*Glob, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	g, err := CompileSegmentsWithConfig(strings.Split(pattern, config.Separator), config)
	if err != nil {
		return nil, err
	}
	g.pattern = pattern
	return g, nil
}

// CompileSegments compiles a glob given as one pattern per segment.
func CompileSegments(segments []string) (*Glob, error) {
	return CompileSegmentsWithConfig(segments, DefaultConfig())
}

// CompileSegmentsWithConfig compiles a glob given as one pattern per segment.
func CompileSegmentsWithConfig(segments []string, config Config) (*Glob, error) {
	patterns := make([]compiler.Pattern[string], len(segments))
	for i, s := range segments {
		patterns[i] = compiler.Lit[string](s)
	}
	g, err := CompilePatternsWithConfig(config, patterns...)
	if err != nil {
		return nil, err
	}
	g.pattern = strings.Join(segments, config.Separator)
	return g, nil
}

// CompilePatterns compiles per-segment patterns with the glob compiler:
// string literals are segment globs and every other pattern kind keeps its
// base meaning.
func CompilePatterns(patterns ...compiler.Pattern[string]) (*Glob, error) {
	return CompilePatternsWithConfig(DefaultConfig(), patterns...)
}

// CompilePatternsWithConfig is CompilePatterns with an explicit configuration.
func CompilePatternsWithConfig(config Config, patterns ...compiler.Pattern[string]) (*Glob, error) {
	c, err := NewCompiler(config)
	if err != nil {
		return nil, err
	}
	prog, err := compiler.Compile[string](c, patterns...)
	if err != nil {
		return nil, err
	}
	return &Glob{prog: prog, separator: config.Separator}, nil
}

// Match reports whether the path segments match the glob.
func (g *Glob) Match(segments []string) bool {
	return g.prog.Match(segments)
}

// MatchPath splits path on the configured separator and matches the
// resulting segments.
func (g *Glob) MatchPath(path string) bool {
	return g.prog.Match(strings.Split(path, g.separator))
}

// Program returns the compiled segment program.
func (g *Glob) Program() *engine.Program[string] {
	return g.prog
}

// String returns the source glob. Globs built from arbitrary patterns have
// an empty source.
func (g *Glob) String() string {
	return g.pattern
}

func quote(s string) string {
	return "`" + s + "`"
}
