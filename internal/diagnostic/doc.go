// Package diagnostic provides structured errors, warnings and hints produced
// while checking mapping files.
//
// Key capabilities:
//   - Unknown function references with "did you mean" suggestions
//   - Patterns that cannot be turned into matchers
//   - Ambiguous extraction (several placeholders, colliding paths)
package diagnostic
