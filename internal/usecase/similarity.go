package usecase

import "strings"

// DefaultFuzzyThreshold is the minimum word similarity accepted as a
// fuzzy match.
const DefaultFuzzyThreshold = 0.7

// levenshteinDistance calculates the edit distance between two strings.
// Comparison is case-insensitive: both inputs are lowercased first.
func levenshteinDistance(s1, s2 string) int {
	s1 = strings.ToLower(s1)
	s2 = strings.ToLower(s2)

	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	// Use two rows instead of full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// Similarity returns a normalized similarity score in [0,1] between two
// strings: (maxLen - distance) / maxLen. Two empty strings are maximally
// similar by definition.
func Similarity(s1, s2 string) float64 {
	longer := len([]rune(s1))
	if l := len([]rune(s2)); l > longer {
		longer = l
	}
	if longer == 0 {
		return 1.0
	}
	return float64(longer-levenshteinDistance(s1, s2)) / float64(longer)
}

// FuzzyContains reports whether text contains query, either as an exact
// case-insensitive substring or via a single whitespace-split word whose
// similarity to the query meets the threshold.
//
// Fuzzy matching is word-granular: a typo spanning two words is not caught.
func FuzzyContains(text, query string, threshold float64) bool {
	if text == "" || query == "" {
		return false
	}

	textLower := strings.ToLower(text)
	queryLower := strings.ToLower(query)

	// Exact containment short-circuits without any distance computation
	if strings.Contains(textLower, queryLower) {
		return true
	}

	for _, word := range strings.Fields(textLower) {
		if Similarity(word, queryLower) >= threshold {
			return true
		}
	}

	return false
}
