package services

import "unicode/utf8"

// Similarity computes normalised edit-distance similarity in [0,1]:
// 1 - levenshtein(a,b) / max(len(a), len(b)). Identical strings score
// 1.0 (two empty strings are a degenerate exact match); an empty string
// against a non-empty one scores 0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}

	return 1 - float64(levenshtein(ra, rb))/float64(longest)
}

// levenshtein computes the classic edit distance (insertion, deletion,
// substitution each cost 1) with two rolling rows, keeping memory
// proportional to the shorter string.
func levenshtein(a, b []rune) int {
	// Keep b as the shorter side so the rows stay small.
	if len(b) > len(a) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minOf(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func minOf(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// utf8Len reports the rune length of s. Scoring token-length cutoffs use
// rune counts so multi-byte input is not over-counted.
func utf8Len(s string) int {
	return utf8.RuneCountInString(s)
}
