// Package match provides name normalization and Levenshtein similarity for
// suggesting record property names when a mapping path names an unknown one.
//
// Key functions:
//   - NormalizeName: normalizes property names for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names by similarity to an unknown one
package match
