package syntax

import (
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Levenshtein returns the edit distance between a and b, counting
// insertions, deletions and substitutions of runes at unit cost.
func Levenshtein(a, b string) int {
	return fuzzy.LevenshteinDistance(a, b)
}

// Similarity returns a score in [0, 1] of how alike a and b are:
// the share of the longer string that survives the edit distance.
// Identical strings, including two empty strings, score 1.
func Similarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}

	return float64(longest-Levenshtein(a, b)) / float64(longest)
}
