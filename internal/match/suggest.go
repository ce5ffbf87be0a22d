package match

import (
	"sort"
	"strings"
)

// DefaultSuggestThreshold is the minimum similarity for a name to be suggested.
const DefaultSuggestThreshold = 0.6

// Suggestion is a known name ranked against an unknown one.
type Suggestion struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name and returns those at or above
// threshold, best first. Ties keep alphabetical order.
func Rank(name string, candidates []string, threshold float64) []Suggestion {
	var ranked []Suggestion

	for _, c := range candidates {
		score := NormalizedLevenshteinScore(name, c)

		// A prefix relation ("split" vs "splitDate") is a strong hint even when
		// the edit distance is large.
		if n, nc := NormalizeIdent(name), NormalizeIdent(c); n != "" && nc != "" &&
			(strings.HasPrefix(nc, n) || strings.HasPrefix(n, nc)) {
			score = max(score, threshold)
		}

		if score >= threshold {
			ranked = append(ranked, Suggestion{Name: c, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}

		return ranked[i].Name < ranked[j].Name
	})

	return ranked
}

// Suggest returns up to limit candidate names similar to name, best first.
func Suggest(name string, candidates []string, limit int) []string {
	ranked := Rank(name, candidates, DefaultSuggestThreshold)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	names := make([]string, 0, len(ranked))
	for _, s := range ranked {
		names = append(names, s.Name)
	}

	return names
}
