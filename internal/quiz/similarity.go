package quiz

import (
	"strings"

	"github.com/agext/levenshtein"
)

// Similarity scores how close two answer strings are, in [0, 1].
// Case is ignored for the edit distance; length normalization uses the
// original strings. Two empty strings are identical.
func Similarity(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}

	dist := levenshtein.Distance(strings.ToLower(a), strings.ToLower(b), nil)
	return 1 - float64(dist)/float64(maxLen)
}
