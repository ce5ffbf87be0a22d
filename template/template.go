package template

import (
	"maps"
	"slices"
)

// Template describes how a parent value maps to a child value. It is a closed
// sum type: Func, Pattern, Sequence and Mapping are the only implementations.
type Template interface {
	Kind() Kind

	sealed()
}

// Func is a user-supplied template node. It receives the value at its position
// and the traversal Context; ctx.Direction tells whether it is extracting (to)
// or reconstructing (from).
//
// In the "from" direction the result is used verbatim. In the "to" direction a
// nested Func must return nil, *Fields, Fields or a string-keyed map, which is
// merged with its siblings; a top-level Func result is unflattened when it is
// one of those field maps and returned unchanged otherwise.
type Func func(value any, ctx Context) (any, error)

// Pattern is literal text interleaved with placeholders, e.g. "{year}-{month}".
type Pattern string

// Sequence pairs templates positionally with the elements of a sequence value.
type Sequence []Template

// Mapping pairs templates by key with the entries of a mapping value.
type Mapping map[string]Template

func (Func) Kind() Kind     { return KindFunc }
func (Pattern) Kind() Kind  { return KindPattern }
func (Sequence) Kind() Kind { return KindSequence }
func (Mapping) Kind() Kind  { return KindMapping }

func (Func) sealed()     {}
func (Pattern) sealed()  {}
func (Sequence) sealed() {}
func (Mapping) sealed()  {}

// Keys returns the mapping keys in sorted order, which is the order the "to"
// walker merges children in.
func (m Mapping) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// Walk visits tpl and every nested template depth-first. The trail passed to fn
// is the position of the node, e.g. "$", "$.first", "$.fourth[1]".
// Returning false from fn skips the children of that node.
func Walk(tpl Template, fn func(trail string, tpl Template) bool) {
	walk("$", tpl, fn)
}

func walk(trail string, tpl Template, fn func(string, Template) bool) {
	if !fn(trail, tpl) {
		return
	}

	switch t := tpl.(type) {
	case Sequence:
		for i, sub := range t {
			walk(indexTrail(trail, i), sub, fn)
		}
	case Mapping:
		for _, key := range t.Keys() {
			walk(keyTrail(trail, key), t[key], fn)
		}
	}
}
