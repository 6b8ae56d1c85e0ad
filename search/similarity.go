package search

import "strings"

// Similarity computes a symmetric lexical similarity between two strings in
// [0, 1]. Case-insensitive: equal strings score 1.0, otherwise the Jaccard
// index of their whitespace-separated word sets. Two blank strings score 0.0.
func Similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == "" && b == "" {
		return 0.0
	}
	if a == b {
		return 1.0
	}

	setA := wordSet(a)
	setB := wordSet(b)

	union := len(setB)
	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}
