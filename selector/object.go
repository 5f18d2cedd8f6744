package selector

import (
	"reflect"
	"slices"
)

// Tagged is an object with a tag name.
type Tagged interface {
	TagName() string
}

// Identified is an object with an identity.
type Identified interface {
	ID() string
}

// Classed is an object exposing its class list.
type Classed interface {
	ClassList() []string
}

// ClassSet answers class membership.
type ClassSet interface {
	Contains(name string) bool
}

// ClassTester is an object exposing its classes as a ClassSet.
type ClassTester interface {
	Classes() ClassSet
}

// Element is a plain tagged object.
type Element struct {
	Tag        string   `json:"tagName"`
	Identifier string   `json:"id"`
	Class      []string `json:"classList"`
}

// TagName returns the tag name.
func (e Element) TagName() string { return e.Tag }

// ID returns the identity.
func (e Element) ID() string { return e.Identifier }

// ClassList returns the class list.
func (e Element) ClassList() []string { return e.Class }

// fields reads tag names, identities and classes from objects. The method
// interfaces take precedence; maps are read through the configured keys.
type fields struct {
	config Config
}

func (f fields) tag(obj any) (string, bool) {
	if isNil(obj) {
		return "", false
	}
	if t, ok := obj.(Tagged); ok {
		return t.TagName(), true
	}
	return f.lookup(obj, f.config.TagField)
}

func (f fields) id(obj any) (string, bool) {
	if isNil(obj) {
		return "", false
	}
	if i, ok := obj.(Identified); ok {
		return i.ID(), true
	}
	return f.lookup(obj, f.config.IDField)
}

func (f fields) hasClass(obj any, name string) bool {
	if isNil(obj) {
		return false
	}
	switch x := obj.(type) {
	case Classed:
		return slices.Contains(x.ClassList(), name)
	case ClassTester:
		set := x.Classes()
		return !isNil(set) && set.Contains(name)
	case map[string]any:
		return classListContains(x[f.config.ClassField], name)
	}
	return false
}

func (f fields) lookup(obj any, key string) (string, bool) {
	switch m := obj.(type) {
	case map[string]any:
		s, ok := m[key].(string)
		return s, ok
	case map[string]string:
		s, ok := m[key]
		return s, ok
	}
	return "", false
}

// classListContains handles the class list shapes found in maps: string
// slices, decoded JSON arrays and class sets.
func classListContains(list any, name string) bool {
	switch x := list.(type) {
	case []string:
		return slices.Contains(x, name)
	case []any:
		for _, v := range x {
			if s, ok := v.(string); ok && s == name {
				return true
			}
		}
	case ClassSet:
		return !isNil(x) && x.Contains(name)
	}
	return false
}

// isNil reports whether v is nil or a nil value of a nilable kind, such as
// a nil *Element held in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
