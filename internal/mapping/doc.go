// Package mapping loads template files: YAML documents holding a template,
// the placeholder options it runs with, and jq-backed functions it references.
//
// # Schema Overview
//
//	version: "1"
//	options:
//	  match: '\$\{(.+?)\}'   # placeholder rule, first group is the path
//	  quote_literals: true   # escape regexp characters in literal text
//	functions:
//	  halve:
//	    to: '{prop: (. / 2)}'
//	    from: '.prop * 2'
//	template:
//	  first: !fn halve
//	  date: "{year}-{month}-{day}"
//
// # Template Nodes
//
// Scalars become patterns, sequences and mappings keep their shape, and a
// scalar tagged !fn names a function. Functions come from the file's
// functions section or from a FuncRegistry supplied by the caller; file
// functions shadow registry entries of the same name.
//
// # Validation
//
// Validate reports problems as diagnostics instead of failing on the first
// one: unknown functions (with suggestions), jq that does not compile, match
// rules without a capture group, patterns whose matcher does not compile, and
// placeholder paths that more than one leaf writes.
package mapping
