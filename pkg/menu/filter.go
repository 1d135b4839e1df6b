package menu

import "strings"

// Filter returns, in their original order, the candidates that start with
// query. Matching is a literal, case-sensitive prefix test. An empty query
// returns candidates unchanged.
func Filter(candidates []string, query string) []string {
	if query == "" {
		return candidates
	}
	matches := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(c, query) {
			matches = append(matches, c)
		}
	}
	return matches
}
