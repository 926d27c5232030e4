package processor

import (
	"iter"

	"github.com/wgomg/synopsis/internal/nlp"
)

// BuildFrequencies counts every content word that is not a stopword and
// scales the counts by the most frequent one.
func BuildFrequencies(tokens iter.Seq[nlp.Token], stopwords *nlp.StopwordSet) *FrequencyTable {
	counts := make(map[string]int)
	for tok := range tokens {
		if !tok.IsWord() || stopwords.Contains(tok.Norm) {
			continue
		}
		counts[tok.Norm]++
	}

	maxCount := 1
	for _, c := range counts {
		maxCount = max(maxCount, c)
	}

	freq := make(map[string]float64, len(counts))
	for word, c := range counts {
		freq[word] = float64(c) / float64(maxCount)
	}

	return &FrequencyTable{freq: freq}
}

// Get returns the frequency of a normalized form and whether it was counted.
func (t *FrequencyTable) Get(norm string) (float64, bool) {
	f, ok := t.freq[norm]
	return f, ok
}

func (t *FrequencyTable) Len() int {
	return len(t.freq)
}

// Max returns the highest frequency, 0 for an empty table.
func (t *FrequencyTable) Max() float64 {
	m := 0.0
	for _, f := range t.freq {
		m = max(m, f)
	}
	return m
}
