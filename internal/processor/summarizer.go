package processor

import (
	"strings"
	"unicode/utf8"

	"github.com/wgomg/synopsis/internal/nlp"
	"github.com/wgomg/synopsis/internal/utils"
)

// NewSummarizer returns a Summarizer sharing model across calls. Zero option
// values fall back to the defaults.
func NewSummarizer(model *nlp.Model, opts Options) *Summarizer {
	if opts.Ratio <= 0 {
		opts.Ratio = DefaultRatio
	}
	if opts.MinSentences <= 0 {
		opts.MinSentences = DefaultMinSentences
	}
	return &Summarizer{model: model, opts: opts}
}

func (s *Summarizer) Options() Options {
	return s.opts
}

// Summarize extracts the highest scoring sentences of text.
//
// The original word count is a whitespace split of the raw text while the
// summary word count is the number of non-space tokens of the summary, so the
// two are not directly comparable.
func (s *Summarizer) Summarize(text string) (Result, error) {
	if !utf8.ValidString(text) {
		return Result{}, ErrInvalidEncoding
	}

	sentences := s.model.Splitter.Split(text)
	if len(sentences) == 0 {
		if s.opts.RequireContent {
			return Result{}, ErrEmptyInput
		}
		return Result{OriginalWordCount: utils.CountWords(text)}, nil
	}

	freq := BuildFrequencies(s.model.Tokenizer.Tokens(text), s.model.Stopwords)
	scores := ScoreSentences(sentences, freq)

	count := SelectCount(len(sentences), s.opts.Ratio, s.opts.MinSentences)
	selected := SelectTop(scores, count)

	parts := make([]string, len(selected))
	for i, sc := range selected {
		parts[i] = sentences[sc.Index].Text
	}
	summary := strings.Join(parts, " ")

	return Result{
		Summary:           summary,
		OriginalWordCount: utils.CountWords(text),
		SummaryWordCount:  s.model.Tokenizer.CountNonSpace(summary),
		SentenceCount:     len(sentences),
		SelectedCount:     len(selected),
	}, nil
}
