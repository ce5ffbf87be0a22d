package template

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"unterpolate/internal/pathexpr"
)

// Interpolate substitutes the placeholders of pattern with values resolved
// against value.
//
// A pattern without placeholders is returned unchanged. A pattern that is a
// single placeholder returns the resolved value verbatim, whatever its type
// (nil when the path is unreachable). Otherwise each placeholder is replaced by
// the string form of its value; unreachable and falsey values (nil, false,
// numeric zero, "") become "".
func Interpolate(pattern string, value any, ctx Context) (any, error) {
	out, err := interpolate(pattern, value, ctx)
	if err != nil {
		return nil, &Error{Op: DirectionFrom.String(), Err: err}
	}

	return out, nil
}

func interpolate(pattern string, value any, ctx Context) (any, error) {
	found, err := scan(pattern, ctx.match())
	if err != nil {
		return nil, err
	}

	if len(found) == 0 {
		return pattern, nil
	}

	if isFullMatch(pattern, found) {
		resolved, ok := pathexpr.Lookup(value, found[0].path)
		if !ok {
			ctx.logger().Debug("placeholder is unreachable", "pattern", pattern, "path", found[0].path)
		}

		return resolved, nil
	}

	var sb strings.Builder

	last := 0
	for _, ph := range found {
		sb.WriteString(pattern[last:ph.start])

		resolved, ok := pathexpr.Lookup(value, ph.path)
		if !ok {
			ctx.logger().Debug("placeholder is unreachable", "pattern", pattern, "path", ph.path)
		}

		sb.WriteString(stringify(resolved))

		last = ph.end
	}

	sb.WriteString(pattern[last:])

	return sb.String(), nil
}

func stringify(v any) string {
	if isFalsey(v) {
		return ""
	}

	switch actual := v.(type) {
	case string:
		return actual
	case []byte:
		return string(actual)
	case fmt.Stringer:
		return actual.String()
	default:
		return fmt.Sprint(actual)
	}
}

// isFalsey reports whether v is nil, false, a numeric zero (or NaN) or "".
func isFalsey(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.String:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
