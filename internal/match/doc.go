// Package match provides name normalization, Levenshtein distance calculation,
// and "did you mean" suggestions for names referenced from mapping files.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names by similarity to an unknown one
package match
