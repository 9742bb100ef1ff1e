package textmatch

import (
	"sort"
	"strings"
)

// Match pairs an item with its relevance score.
type Match[T any] struct {
	Item  T
	Score float64
}

// Score rates how well query matches haystack, in [0,1].
// Predictable tiers over clever ranking: exact match, prefix, substring,
// then a token-hit ratio for multi-word queries.
func Score(haystack, query string) float64 {
	h := normalize(haystack)
	q := normalize(query)
	if q == "" || h == "" {
		return 0
	}

	if h == q {
		return 1
	}
	if strings.HasPrefix(h, q) {
		return 0.95
	}
	if strings.Contains(h, q) {
		return 0.85
	}

	tokens := strings.Fields(q)
	if len(tokens) == 0 {
		return 0
	}

	hits := 0
	for _, token := range tokens {
		if strings.Contains(h, token) {
			hits++
		}
	}

	ratio := float64(hits) / float64(len(tokens))
	if ratio >= 0.5 {
		return 0.4 + ratio*0.4
	}
	return 0
}

// Top scores every item against query and returns the best matches,
// highest score first, truncated to limit. Items scoring zero are dropped.
func Top[T any](items []T, query string, text func(T) string, limit int) []Match[T] {
	scored := make([]Match[T], 0, len(items))
	for _, item := range items {
		score := Score(text(item), query)
		if score > 0 {
			scored = append(scored, Match[T]{Item: item, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
