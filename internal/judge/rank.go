// Package judge provides composite scoring and stable ranking of colour
// theme and template candidates.
package judge

import "sort"

// ScoredCandidate ties a candidate's original position to its composite
// score. Rankings sort by score descending and break ties by ascending
// original index, so equal candidates keep their input order.
type ScoredCandidate struct {
	OriginalIndex int     `json:"original_index"`
	Score         float64 `json:"score"`
}

// RankDescending turns per-candidate scores into a permutation of input
// indices ordered best-first. Always returns a total ordering: an empty
// input yields an empty (non-nil) permutation and ties never fail.
func RankDescending(scores []float64) []int {
	candidates := make([]ScoredCandidate, len(scores))
	for i, score := range scores {
		candidates[i] = ScoredCandidate{OriginalIndex: i, Score: score}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	order := make([]int, len(candidates))
	for i, c := range candidates {
		order[i] = c.OriginalIndex
	}
	return order
}
