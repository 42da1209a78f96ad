// Package match provides name normalization, Levenshtein distance and
// candidate ranking for brick UI names.
//
// Key functions:
//   - NormalizeName: folds a UI name for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks known names against an unknown one
//   - Suggest: returns the closest known names for an unmapped brick
package match
