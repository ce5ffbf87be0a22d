// Package flat expands flat maps of dotted paths into nested values.
package flat

import (
	"maps"
	"slices"
	"strconv"

	"unterpolate/internal/pathexpr"
)

// Unflatten expands dotted-path keys into nested maps.
// "first.second" -> {"first": {"second": ...}}, and numeric segments
// ("first.childA.0") create []any sequences.
//
// Keys are applied in sorted order, so the result is deterministic: when a key
// is both a leaf and a prefix of another key ("a" and "a.b"), the longer key
// replaces the leaf.
//
// Values of flat are never modified: a map or sequence value that a longer key
// writes into is copied first.
func Unflatten(flat map[string]any) map[string]any {
	out := make(map[string]any, len(flat))

	for _, key := range slices.Sorted(maps.Keys(flat)) {
		segs := split(key)
		out[segs[0].Key] = assign(out[segs[0].Key], segs[1:], flat[key])
	}

	return out
}

// split falls back to a single literal segment for keys that are not valid paths.
func split(key string) []pathexpr.Segment {
	p, err := pathexpr.Parse(key)
	if err != nil || len(p.Segments) == 0 {
		return []pathexpr.Segment{{Key: key}}
	}

	// A leading index ("[0].a") still keys into the root map.
	if p.Segments[0].IsIndex {
		p.Segments[0] = pathexpr.Segment{Key: p.Segments[0].Key}
	}

	return p.Segments
}

func assign(container any, segs []pathexpr.Segment, value any) any {
	if len(segs) == 0 {
		return value
	}

	seg := segs[0]

	switch c := container.(type) {
	case map[string]any:
		c = maps.Clone(c)
		if c == nil {
			c = map[string]any{}
		}

		c[seg.Key] = assign(c[seg.Key], segs[1:], value)

		return c

	case []any:
		if !seg.IsIndex {
			return assign(promote(c), segs, value)
		}

		c = slices.Clone(c)
		for len(c) <= seg.Index {
			c = append(c, nil)
		}

		c[seg.Index] = assign(c[seg.Index], segs[1:], value)

		return c

	default:
		if seg.IsIndex {
			return assign([]any{}, segs, value)
		}

		return assign(map[string]any{}, segs, value)
	}
}

// promote turns a sequence into a map keyed by position once a non-numeric key
// has to be stored next to its elements.
func promote(items []any) map[string]any {
	m := make(map[string]any, len(items)+1)
	for i, v := range items {
		if v != nil {
			m[strconv.Itoa(i)] = v
		}
	}

	return m
}
