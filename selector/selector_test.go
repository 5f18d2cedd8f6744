package selector

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/coregx/coregex"

	"github.com/uiui611/array-matcher/compiler"
	"github.com/uiui611/array-matcher/step"
)

func tag(name string) map[string]any {
	return map[string]any{"tagName": name}
}

func id(name string) map[string]any {
	return map[string]any{"id": name}
}

func classes(names ...any) map[string]any {
	return map[string]any{"classList": names}
}

func TestSelectorMatch(t *testing.T) {
	empty := map[string]any{}

	tests := []struct {
		name    string
		query   string
		objects []any
		want    bool
	}{
		{"name", "target", []any{tag("first"), tag("target")}, true},
		{"name mismatch", "target", []any{tag("first"), tag("end")}, false},
		{"name not last", "target", []any{tag("target"), tag("end")}, false},
		{"leading space", " target", []any{tag("first"), tag("target")}, true},
		{"trailing space", "target ", []any{tag("first"), tag("target")}, true},
		{"empty path", "target", []any{}, false},

		{"class", ".target-class", []any{empty, classes("target-class")}, true},
		{"class among others", ".target-class", []any{empty, classes("not-target-class", "target-class")}, true},
		{"class not last", ".target-class", []any{empty, classes("target-class"), empty}, false},
		{"class mismatch", ".target-class", []any{empty, classes("end")}, false},
		{"class field is not a list", ".x", []any{map[string]any{"classList": "x"}}, false},

		{"id", "#target-id", []any{empty, id("target-id")}, true},
		{"id not last", "#target-id", []any{id("target-id"), id("non-target-id")}, false},
		{"id on tagged path", "#t", []any{tag("a"), map[string]any{"tagName": "b", "id": "t"}}, true},

		{"child", "target>end", []any{tag("target"), tag("end")}, true},
		{"child after prefix", "target>end", []any{tag("first"), tag("target"), tag("end")}, true},
		{"child gap", "target>end", []any{tag("target"), tag("second"), tag("end")}, false},
		{"child with spaces", "target > end", []any{tag("target"), tag("end")}, true},
		{"child with spaces gap", "target > end", []any{tag("target"), tag("second"), tag("end")}, false},
		{"child adjacency", "a>b", []any{tag("a"), tag("c"), tag("b")}, false},

		{"descendant", "target end", []any{tag("target"), tag("end")}, true},
		{"descendant gap", "target end", []any{tag("target"), tag("second"), tag("end")}, true},
		{"descendant mismatch", "target end", []any{tag("target"), tag("second"), tag("third")}, false},
		{"descendant allows gaps", "a b", []any{tag("a"), tag("c"), tag("b")}, true},

		{"compound", "target.target-class", []any{empty, map[string]any{"tagName": "target", "classList": []any{"target-class"}}}, true},
		{"compound wrong tag", "target.target-class", []any{empty, map[string]any{"tagName": "first", "classList": []any{"target-class"}}}, false},
		{"compound wrong class", "target.target-class", []any{empty, map[string]any{"tagName": "target", "classList": []any{"other-class"}}}, false},
		{"compound id class", "#main.item", []any{map[string]any{"id": "main", "classList": []string{"item"}}}, true},

		{"comma first", "target,end", []any{empty, tag("target")}, true},
		{"comma second is anchored", "target,end", []any{empty, tag("end")}, false},
		{"comma neither", "target,end", []any{tag("target"), tag("noTarget")}, false},
		{"comma second", "a,b", []any{tag("b")}, true},
		{"comma with spaces", "target , end", []any{empty, tag("target")}, true},
		{"comma with spaces second", "target , end", []any{empty, tag("end")}, false},
		{"comma with spaces neither", "target , end", []any{empty, tag("noTarget")}, false},

		{"wildcard", "*", []any{empty}, true},
		{"wildcard needs an object", "a>*", []any{tag("a")}, false},
		{"wildcard child", "a>*", []any{tag("a"), tag("x")}, true},

		{"quoted name", `"my tag"`, []any{tag("my tag")}, true},
		{"quoted id", `#'a.b'`, []any{id("a.b")}, true},
		{"escaped quote", `"a\"b"`, []any{tag(`a"b`)}, true},
		{"unicode name", "日本", []any{tag("日本")}, true},

		{"elements", ".container target", []any{
			Element{},
			Element{Class: []string{"container"}},
			Element{},
			Element{Tag: "target"},
		}, true},
		{"element id", "#x", []any{Element{Identifier: "x"}}, true},
		{"string map", "a#b", []any{map[string]string{"tagName": "a", "id": "b"}}, true},
		{"untagged object", "a", []any{42}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Compile(tt.query)
			if err != nil {
				t.Fatalf("Compile(%q) failed: %v", tt.query, err)
			}
			if got := s.Match(tt.objects); got != tt.want {
				t.Errorf("Compile(%q).Match(%v) = %v, want %v", tt.query, tt.objects, got, tt.want)
			}
		})
	}
}

type classSet map[string]bool

func (s classSet) Contains(name string) bool { return s[name] }

type node struct {
	set classSet
}

func (n node) Classes() ClassSet { return n.set }

func TestClassTester(t *testing.T) {
	s := MustCompile(".open")
	if !s.Match([]any{node{set: classSet{"open": true}}}) {
		t.Error("ClassTester object with the class should match")
	}
	if s.Match([]any{node{set: classSet{"closed": true}}}) {
		t.Error("ClassTester object without the class should not match")
	}
	if s.Match([]any{node{}}) {
		t.Error("nil class set should not match")
	}
	if !s.Match([]any{map[string]any{"classList": classSet{"open": true}}}) {
		t.Error("class set in a map should match")
	}
}

// nilSet is a ClassSet with a pointer receiver.
type nilSet struct{ names []string }

func (s *nilSet) Contains(name string) bool { return slices.Contains(s.names, name) }

type nilSetNode struct{}

func (nilSetNode) Classes() ClassSet { return (*nilSet)(nil) }

func TestNilObjects(t *testing.T) {
	objects := []any{
		nil,
		(*Element)(nil),
		map[string]any(nil),
		nilSetNode{},
	}
	for _, query := range []string{"a", "#x", ".x", "a#x.x"} {
		s := MustCompile(query)
		for _, obj := range objects {
			if s.Match([]any{obj}) {
				t.Errorf("%q matched %#v", query, obj)
			}
		}
	}
	if MustCompile(".x").Match([]any{map[string]any{"classList": (*nilSet)(nil)}}) {
		t.Error("nil class set in a map should not match")
	}
	if !MustCompile("*").Match([]any{nil}) {
		t.Error("a nil object is still present for *")
	}
	if !MustCompile("a").Match([]any{&Element{Tag: "a"}}) {
		t.Error("non-nil *Element should still match")
	}
}

func TestCompileParts(t *testing.T) {
	isLast := func(obj any) bool {
		m, ok := obj.(map[string]any)
		return ok && m["last"] == true
	}

	s, err := CompileParts("root>item", isLast)
	if err != nil {
		t.Fatalf("CompileParts failed: %v", err)
	}
	if !s.Match([]any{tag("root"), tag("item"), map[string]any{"last": true}}) {
		t.Error("function part should match the object after the query")
	}
	if s.Match([]any{tag("root"), tag("item"), map[string]any{}}) {
		t.Error("function part should reject the object")
	}

	// Each string part brings its own leading gap.
	s, err = CompileParts("a", "b")
	if err != nil {
		t.Fatalf("CompileParts failed: %v", err)
	}
	if !s.Match([]any{tag("a"), tag("x"), tag("b")}) {
		t.Error("second part should skip objects before it")
	}
	if got := s.String(); got != "a b" {
		t.Errorf("String() = %q, want %q", got, "a b")
	}

	// A trailing signal function is asked about the end of the path too.
	s, err = CompileParts("a", func(any) step.Signal { return step.AnyConsume })
	if err != nil {
		t.Fatalf("CompileParts failed: %v", err)
	}
	if !s.Match([]any{tag("a")}) {
		t.Error("trailing AnyConsume function should match after the last object")
	}
	if !s.Match([]any{tag("a"), tag("b"), tag("c")}) {
		t.Error("trailing AnyConsume function should absorb the remaining objects")
	}

	// Alternatives and regular expressions compare tag names.
	s, err = CompileParts([]any{"x", coregex.MustCompile(`^h[1-6]$`)})
	if err != nil {
		t.Fatalf("CompileParts failed: %v", err)
	}
	if !s.Match([]any{tag("h2")}) || !s.Match([]any{tag("x")}) {
		t.Error("alternatives should compare the tag name")
	}
	if s.Match([]any{tag("h7")}) {
		t.Error("h7 should not match")
	}
}

func TestCompilePatterns(t *testing.T) {
	s, err := CompilePatterns(DefaultConfig(),
		compiler.Lit[any]("html"),
		compiler.Fn(step.AnyConsumer[any]()),
		compiler.MustRe[any](`^d`),
		compiler.Or[any](),
		compiler.Const[any](true),
	)
	if err != nil {
		t.Fatalf("CompilePatterns failed: %v", err)
	}

	tests := []struct {
		objects []any
		want    bool
	}{
		{[]any{tag("html"), tag("body"), tag("div")}, true},
		{[]any{tag("html"), tag("dl")}, true},
		{[]any{tag("body"), tag("div")}, false},
		{[]any{42}, true},
		// A true constant answers OK at the end of input too.
		{[]any{}, true},
	}
	for _, tt := range tests {
		if got := s.Match(tt.objects); got != tt.want {
			t.Errorf("Match(%v) = %v, want %v", tt.objects, got, tt.want)
		}
	}
}

func TestCompileWithConfig(t *testing.T) {
	config := Config{TagField: "name", IDField: "key", ClassField: "tags"}
	s, err := CompileWithConfig("list>item#k.on", config)
	if err != nil {
		t.Fatalf("CompileWithConfig failed: %v", err)
	}
	objects := []any{
		map[string]any{"name": "list"},
		map[string]any{"name": "item", "key": "k", "tags": []any{"on"}},
	}
	if !s.Match(objects) {
		t.Error("configured keys should be read")
	}
	if s.Match([]any{tag("list"), map[string]any{"tagName": "item", "id": "k", "classList": []any{"on"}}}) {
		t.Error("default keys should not be read")
	}

	_, err = CompileWithConfig("a", Config{TagField: "t", IDField: "i"})
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "ClassField" {
		t.Fatalf("expected ConfigError for ClassField, got %v", err)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("ConfigError should wrap ErrInvalidConfig")
	}
}

func TestCompilePartsWithConfig(t *testing.T) {
	config := DefaultConfig()
	config.TagField = "name"
	s, err := CompilePartsWithConfig([]any{"list", func(obj any) bool { return obj == nil }}, config)
	if err != nil {
		t.Fatalf("CompilePartsWithConfig failed: %v", err)
	}
	if !s.Match([]any{map[string]any{"name": "list"}, nil}) {
		t.Error("configured tag key should be read before the function part")
	}
	if s.Match([]any{tag("list"), nil}) {
		t.Error("default tag key should not be read")
	}
	if got := s.String(); got != "list" {
		t.Errorf("String() = %q, want %q", got, "list")
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		query  string
		err    error
		token  string
		offset int
	}{
		{"", ErrSelectorExpected, EndOfInput, 0},
		{"   ", ErrSelectorExpected, EndOfInput, 3},
		{"a@b", ErrInvalidCharacter, "@", 1},
		{"a b!", ErrInvalidCharacter, "!", 3},
		{`"abc`, ErrUnterminatedLiteral, `"`, 0},
		{`a 'b\'`, ErrUnterminatedLiteral, "'", 2},
		{"a>", ErrSelectorExpected, EndOfInput, 2},
		{"a >", ErrSelectorExpected, EndOfInput, 3},
		{"a,", ErrSelectorExpected, EndOfInput, 2},
		{"a > > b", ErrSelectorExpected, ">", 4},
		{">a", ErrSelectorExpected, ">", 0},
		{"#", ErrSelectorExpected, EndOfInput, 1},
		{"#.a", ErrSelectorExpected, ".", 1},
		{". a", ErrSelectorExpected, " ", 1},
		{"a[b", ErrSeparatorExpected, "[", 1},
		{"a+b", ErrSeparatorExpected, "+", 1},
		{"a:b", ErrSeparatorExpected, ":", 1},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			_, err := Compile(tt.query)
			if err == nil {
				t.Fatalf("Compile(%q) should fail", tt.query)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("Compile(%q) error = %v, want %v", tt.query, err, tt.err)
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("Compile(%q) error %T is not a *SyntaxError", tt.query, err)
			}
			if syntaxErr.Token != tt.token || syntaxErr.Offset != tt.offset {
				t.Errorf("Compile(%q) error at %q offset %d, want %q offset %d",
					tt.query, syntaxErr.Token, syntaxErr.Offset, tt.token, tt.offset)
			}
			if syntaxErr.Query != tt.query {
				t.Errorf("Query = %q, want %q", syntaxErr.Query, tt.query)
			}
			if !strings.Contains(err.Error(), tt.token) {
				t.Errorf("error %q should name %q", err, tt.token)
			}
		})
	}
}

func TestCompilePartsErrors(t *testing.T) {
	_, err := CompileParts("a", 42)
	if !errors.Is(err, compiler.ErrUnsupportedKind) {
		t.Fatalf("expected ErrUnsupportedKind, got %v", err)
	}
	var patErr *compiler.PatternError
	if !errors.As(err, &patErr) || patErr.Index != 1 {
		t.Errorf("expected PatternError at index 1, got %v", err)
	}

	if _, err := CompileParts("a", "b c >"); !errors.Is(err, ErrSelectorExpected) {
		t.Errorf("expected ErrSelectorExpected from the second part, got %v", err)
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustCompile should panic on an invalid query")
		}
		msg, ok := r.(string)
		if !ok || !strings.HasPrefix(msg, "selector: Compile(`a@`)") {
			t.Errorf("unexpected panic value %v", r)
		}
	}()
	MustCompile("a@")
}

func TestObjects(t *testing.T) {
	elements := []Element{{Tag: "ul"}, {Tag: "li", Class: []string{"active"}}}
	if !MustCompile("ul>li.active").Match(Objects(elements)) {
		t.Error("Objects should adapt typed slices")
	}
}

func FuzzCompile(f *testing.F) {
	f.Add("a > b.c , #d")
	f.Add(`"x\"y" *`)
	f.Add("a@")
	f.Add(", ,")

	path := []any{
		map[string]any{"tagName": "a", "id": "d"},
		map[string]any{"tagName": "b", "classList": []any{"c"}},
	}
	f.Fuzz(func(t *testing.T, query string) {
		s, err := Compile(query)
		if err != nil {
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("Compile(%q) returned %T, want *SyntaxError", query, err)
			}
			return
		}
		if s.Match(path) != s.Match(path) {
			t.Errorf("Compile(%q).Match is not deterministic", query)
		}
	})
}
