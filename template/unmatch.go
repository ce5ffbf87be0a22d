package template

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// Unmatch extracts the placeholder values of pattern out of value.
//
// When value is a string, pattern is turned into a matcher where every
// placeholder captures "(.*)"; each placeholder path is bound to its capture,
// or to an absent Value when the match fails. When value is not a string the
// pattern must hold at most one placeholder, which is bound to value unchanged;
// more than one placeholder is ErrShapeMismatch.
func Unmatch(pattern string, value any, ctx Context) (*Fields, error) {
	fields, err := unmatch(pattern, Some(value), ctx)
	if err != nil {
		return nil, &Error{Op: DirectionTo.String(), Err: err}
	}

	return fields, nil
}

func unmatch(pattern string, value Value, ctx Context) (*Fields, error) {
	found, err := scan(pattern, ctx.match())
	if err != nil {
		return nil, err
	}

	fields := NewFields()

	text, isString := asString(value.v)
	if !isString || !value.present {
		switch len(found) {
		case 0:
			return fields, nil
		case 1:
			fields.Set(found[0].path, value)
			return fields, nil
		default:
			return nil, fmt.Errorf("%w: pattern %q has %d placeholders but the value is %T, not a string",
				ErrShapeMismatch, pattern, len(found), value.v)
		}
	}

	source := matcherSource(pattern, found, ctx.QuoteLiterals)

	matcher, err := regexp.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}

	groups := matcher.FindStringSubmatch(text)
	if groups == nil {
		ctx.logger().Debug("pattern did not match", "pattern", pattern, "value", text)
	}

	for i, ph := range found {
		if groups == nil {
			fields.Set(ph.path, None())
			continue
		}

		fields.Set(ph.path, Some(groups[i+1]))
	}

	return fields, nil
}

// asString accepts string and any type whose underlying type is string.
func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String(), true
	}

	return "", false
}

func matcherSource(pattern string, found []placeholder, quote bool) string {
	literal := func(s string) string {
		if quote {
			return regexp.QuoteMeta(s)
		}

		return s
	}

	var sb strings.Builder

	last := 0
	for _, ph := range found {
		sb.WriteString(literal(pattern[last:ph.start]))
		sb.WriteString("(.*)")

		last = ph.end
	}

	sb.WriteString(literal(pattern[last:]))

	return sb.String()
}
