// Package jqfunc builds template functions out of jq expressions.
//
// A function is declared as one expression per direction:
//
//	to:   '{prop: (. / 2)}'
//	from: '.prop * 2'
//
// The "to" expression receives the parent value at the function's position and
// should produce an object of fields; the "from" expression receives the whole
// child value. Both can read the traversal direction from $direction.
package jqfunc

import (
	"fmt"
	"reflect"

	"github.com/itchyny/gojq"

	"unterpolate/template"
)

// Def is a pair of jq expressions, one per direction. An empty expression
// leaves that direction unsupported.
type Def struct {
	Name string
	To   string
	From string
}

// Function is a compiled Def.
type Function struct {
	name string
	to   *gojq.Code
	from *gojq.Code
}

// Compile parses and compiles both expressions of def.
func Compile(def Def) (*Function, error) {
	f := &Function{name: def.Name}

	var err error

	if f.to, err = compile(def.To); err != nil {
		return nil, fmt.Errorf("function %q: to: %w", def.Name, err)
	}

	if f.from, err = compile(def.From); err != nil {
		return nil, fmt.Errorf("function %q: from: %w", def.Name, err)
	}

	return f, nil
}

func compile(expression string) (*gojq.Code, error) {
	if expression == "" {
		return nil, nil
	}

	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, err
	}

	return gojq.Compile(query, gojq.WithVariables([]string{"$direction"}))
}

// Supports reports whether the function has an expression for d.
func (f *Function) Supports(d template.Direction) bool {
	return f.code(d) != nil
}

// Func returns the template node running the expression for the traversal direction.
func (f *Function) Func() template.Func {
	return func(value any, ctx template.Context) (any, error) {
		code := f.code(ctx.Direction)
		if code == nil {
			return nil, fmt.Errorf("function %q has no %s expression", f.name, ctx.Direction)
		}

		out, err := run(code, normalize(value), ctx.Direction.String())
		if err != nil {
			return nil, fmt.Errorf("function %q: %s: %w", f.name, ctx.Direction, err)
		}

		return out, nil
	}
}

func (f *Function) code(d template.Direction) *gojq.Code {
	switch d {
	case template.DirectionTo:
		return f.to
	case template.DirectionFrom:
		return f.from
	default:
		return nil
	}
}

// run collects every output of the query: none is nil, one is returned as is,
// more are returned as a sequence.
func run(code *gojq.Code, input any, direction string) (any, error) {
	iter := code.Run(input, direction)

	var results []any

	for {
		value, ok := iter.Next()
		if !ok {
			break
		}

		if err, ok := value.(error); ok {
			return nil, err
		}

		results = append(results, value)
	}

	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}

// normalize converts Go values into the shapes gojq accepts: map[string]any,
// []any, int, float64, string, bool and nil.
func normalize(v any) any {
	switch actual := v.(type) {
	case nil, bool, string, int, float64:
		return actual
	case map[string]any:
		out := make(map[string]any, len(actual))
		for k, item := range actual {
			out[k] = normalize(item)
		}

		return out
	case []any:
		out := make([]any, len(actual))
		for i, item := range actual {
			out[i] = normalize(item)
		}

		return out
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil
		}

		return normalize(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String()
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalize(rv.Index(i).Interface())
		}

		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = normalize(iter.Value().Interface())
		}

		return out
	default:
		return fmt.Sprint(v)
	}
}
