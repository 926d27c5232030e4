package processor

import "github.com/wgomg/synopsis/internal/nlp"

// FrequencyTable maps normalized word forms to a frequency in (0, 1].
type FrequencyTable struct {
	freq map[string]float64
}

type SentenceScore struct {
	Index           int
	ContentScore    float64
	PositionalBonus float64
	Score           float64
}

// Result is the outcome of one summarization call.
type Result struct {
	Summary           string `json:"summary"`
	OriginalWordCount int    `json:"original_word_count"`
	SummaryWordCount  int    `json:"summary_word_count"`
	SentenceCount     int    `json:"sentence_count"`
	SelectedCount     int    `json:"selected_count"`
}

type Options struct {
	Ratio          float64
	MinSentences   int
	RequireContent bool
}

type Summarizer struct {
	model *nlp.Model
	opts  Options
}
