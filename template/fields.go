package template

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// Value is an extracted field value that is either present (possibly nil or "")
// or absent (the path was unreachable or the pattern did not match).
// The zero Value is absent.
type Value struct {
	v       any
	present bool
}

// Some returns a present Value.
func Some(v any) Value {
	return Value{v: v, present: true}
}

// None returns an absent Value.
func None() Value {
	return Value{}
}

// Get returns the value and whether it is present.
func (v Value) Get() (any, bool) {
	return v.v, v.present
}

// Present reports whether the value is present.
func (v Value) Present() bool {
	return v.present
}

// OrNil returns the value, or nil when absent.
func (v Value) OrNil() any {
	return v.v
}

func (v Value) String() string {
	if !v.present {
		return "<absent>"
	}

	return fmt.Sprint(v.v)
}

// Fields is a flat field map: placeholder path to Value, in insertion order.
// The zero value is an empty map ready to use.
type Fields struct {
	keys   []string
	values map[string]Value
}

// NewFields returns an empty field map.
func NewFields() *Fields {
	return &Fields{}
}

// FieldsFromMap builds a field map from m with every value present. Keys are
// inserted in sorted order.
func FieldsFromMap(m map[string]any) *Fields {
	f := &Fields{}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		f.Set(key, Some(m[key]))
	}

	return f
}

// Set binds path to v. A path that is already bound keeps its position and
// takes the new value.
func (f *Fields) Set(path string, v Value) {
	if f.values == nil {
		f.values = make(map[string]Value)
	}

	if _, exists := f.values[path]; !exists {
		f.keys = append(f.keys, path)
	}

	f.values[path] = v
}

// Get returns the value bound to path.
func (f *Fields) Get(path string) (Value, bool) {
	if f == nil {
		return Value{}, false
	}

	v, ok := f.values[path]

	return v, ok
}

// Len returns the number of bound paths.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}

	return len(f.keys)
}

// Keys returns the bound paths in insertion order.
func (f *Fields) Keys() []string {
	if f == nil {
		return nil
	}

	return slices.Clone(f.keys)
}

// Merge folds others into f in argument order. On a collision the later value
// wins and the path keeps its first position.
func (f *Fields) Merge(others ...*Fields) *Fields {
	for _, other := range others {
		if other == nil {
			continue
		}

		for _, key := range other.keys {
			f.Set(key, other.values[key])
		}
	}

	return f
}

// Map returns the plain map form. Absent values become nil entries so the set
// of keys stays the set of placeholders.
func (f *Fields) Map() map[string]any {
	out := make(map[string]any, f.Len())
	if f == nil {
		return out
	}

	for _, key := range f.keys {
		out[key] = f.values[key].v
	}

	return out
}

// Present returns the plain map form without absent values.
func (f *Fields) Present() map[string]any {
	out := make(map[string]any, f.Len())
	if f == nil {
		return out
	}

	for _, key := range f.keys {
		if v := f.values[key]; v.present {
			out[key] = v.v
		}
	}

	return out
}

// asFields interprets a nested Func result in the "to" direction.
func asFields(out any) (*Fields, error) {
	switch actual := out.(type) {
	case nil:
		return &Fields{}, nil
	case *Fields:
		if actual == nil {
			return &Fields{}, nil
		}

		return actual, nil
	case Fields:
		return &actual, nil
	case map[string]any:
		return FieldsFromMap(actual), nil
	}

	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: func result %T is not a field map", ErrShapeMismatch, out)
	}

	m := make(map[string]any, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}

	return FieldsFromMap(m), nil
}
