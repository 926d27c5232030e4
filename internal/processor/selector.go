package processor

import (
	"cmp"
	"slices"
)

const (
	DefaultRatio        = 0.3
	DefaultMinSentences = 1
)

// SelectCount returns how many of total sentences go into the summary:
// floor(total * ratio), at least minSentences and never more than total.
func SelectCount(total int, ratio float64, minSentences int) int {
	if total <= 0 {
		return 0
	}
	count := max(int(float64(total)*ratio), minSentences, 1)
	return min(count, total)
}

// SelectTop picks the k highest scores, highest first. Equal scores keep
// document order.
func SelectTop(scores []SentenceScore, k int) []SentenceScore {
	ranked := slices.Clone(scores)
	slices.SortStableFunc(ranked, cmpScore)

	k = min(max(k, 0), len(ranked))
	return ranked[:k]
}

func cmpScore(a, b SentenceScore) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}
