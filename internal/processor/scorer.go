package processor

import "github.com/wgomg/synopsis/internal/nlp"

// ScoreSentences returns one score per sentence, indexed by position.
// Earlier sentences get a larger positional bonus: (N - i) / N.
func ScoreSentences(sentences []nlp.Sentence, freq *FrequencyTable) []SentenceScore {
	n := len(sentences)
	scores := make([]SentenceScore, n)

	for i, sent := range sentences {
		content := 0.0
		for _, tok := range sent.Tokens {
			if f, ok := freq.Get(tok.Norm); ok {
				content += f
			}
		}

		bonus := float64(n-i) / float64(n)
		scores[i] = SentenceScore{
			Index:           i,
			ContentScore:    content,
			PositionalBonus: bonus,
			Score:           content + bonus,
		}
	}

	return scores
}
