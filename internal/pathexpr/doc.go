// Package pathexpr resolves dotted and bracketed path expressions against
// nested Go values.
//
// # Path Syntax
//
//   - Keys: "name", "first.second"
//   - Dot-numeric indexes: "first.0"
//   - Bracket indexes: "first[0]"
//   - Quoted bracket keys: "first['odd.key']"
//
// Dot-numeric and bracket indexes are equivalent; Normalize rewrites the former
// into the latter before parsing.
//
// # Supported Values
//
// Lookup walks map[string]any and []any directly, and falls back to reflection
// for any string-keyed map, slice, array, struct (exported field name or
// mapstructure tag) and pointers to those. An unreachable segment is reported
// through the boolean result, never as an error.
package pathexpr
