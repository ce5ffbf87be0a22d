// Package template maps values in both directions through a declarative template.
//
// A template describes a "parent" value (a joined string, a positional array,
// a loose record) in terms of the named fields of a nested "child" value:
//
//	tpl := template.Pattern("{year}-{month}-{day}")
//
//	child, _ := template.To(tpl, "2019-10-01")
//	// map[string]any{"year": "2019", "month": "10", "day": "01"}
//
//	parent, _ := template.From(tpl, child)
//	// "2019-10-01"
//
// # Template Cases
//
//   - Pattern: literal text with "{path}" placeholders. Paths use dots and
//     numeric segments ("first.second", "first.0" or "first[0]").
//   - Sequence: templates paired with sequence elements by index.
//   - Mapping: templates paired with mapping entries by key.
//   - Func: user code, told the direction through Context.Direction.
//
// # Directions
//
// To walks the template alongside the parent value, extracts a flat field map
// from each Pattern, merges the maps (later entries win) and unflattens the
// result once: "first.second" becomes {"first": {"second": ...}}.
//
// From walks the template alongside the child value and substitutes the
// placeholders back. A pattern made of exactly one placeholder moves the whole
// value, whatever its type, in both directions.
//
// # Errors
//
// Unreachable placeholders are not errors: they interpolate as "" and extract
// as absent values (nil in the unflattened result). A pattern with several
// placeholders paired with a non-string value fails with ErrShapeMismatch.
// Errors returned by Func nodes are passed through unchanged.
package template
