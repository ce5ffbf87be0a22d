package pathexpr

import (
	"reflect"
	"strconv"
	"strings"
)

// Lookup resolves path against root. The second result is false when any
// segment is unreachable or the path does not parse.
func Lookup(root any, path string) (any, bool) {
	p, err := Parse(path)
	if err != nil {
		return nil, false
	}

	return p.Lookup(root)
}

// Lookup resolves the parsed path against root.
func (p Path) Lookup(root any) (any, bool) {
	current := root

	for _, seg := range p.Segments {
		next, ok := step(current, seg)
		if !ok {
			return nil, false
		}

		current = next
	}

	return current, true
}

func step(current any, seg Segment) (any, bool) {
	switch actual := current.(type) {
	case nil:
		return nil, false
	case map[string]any:
		v, ok := actual[seg.Key]
		return v, ok
	case []any:
		idx, ok := indexOf(seg)
		if !ok || idx >= len(actual) {
			return nil, false
		}

		return actual[idx], true
	}

	return stepReflect(reflect.ValueOf(current), seg)
}

func stepReflect(rv reflect.Value, seg Segment) (any, bool) {
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}

		v := rv.MapIndex(reflect.ValueOf(seg.Key).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}

		return v.Interface(), true

	case reflect.Slice, reflect.Array:
		idx, ok := indexOf(seg)
		if !ok || idx >= rv.Len() {
			return nil, false
		}

		return rv.Index(idx).Interface(), true

	case reflect.Struct:
		return structField(rv, seg.Key)

	default:
		return nil, false
	}
}

// indexOf accepts both index segments and numeric keys, so "first.0" and
// "first['0']" reach the same element of a sequence.
func indexOf(seg Segment) (int, bool) {
	if seg.IsIndex {
		return seg.Index, true
	}

	idx, err := strconv.Atoi(seg.Key)
	if err != nil || idx < 0 {
		return 0, false
	}

	return idx, true
}

// structField matches exported fields by name, then by mapstructure tag.
func structField(rv reflect.Value, name string) (any, bool) {
	rt := rv.Type()

	if f, ok := rt.FieldByName(name); ok && f.IsExported() {
		v, err := rv.FieldByIndexErr(f.Index)
		if err != nil {
			return nil, false
		}

		return v.Interface(), true
	}

	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}

		tag, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if tag == name {
			return rv.Field(i).Interface(), true
		}
	}

	return nil, false
}
