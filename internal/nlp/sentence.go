package nlp

import (
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Sentence is a contiguous span of the input. Start and End are byte offsets
// of the untrimmed span; Text is the span without surrounding whitespace.
type Sentence struct {
	Index  int
	Start  int
	End    int
	Text   string
	Tokens []Token
}

// SentenceTokenizer is the boundary detector used by Splitter.
type SentenceTokenizer interface {
	Tokenize(text string) []*sentences.Sentence
}

// Splitter segments text into sentences and tokenizes each of them.
type Splitter struct {
	boundaries SentenceTokenizer
	tokenizer  *Tokenizer
}

// NewEnglishSplitter loads the Punkt English model.
func NewEnglishSplitter(tokenizer *Tokenizer) (*Splitter, error) {
	punkt, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, &InitError{Resource: "english sentence model", Err: err}
	}
	return NewSplitter(punkt, tokenizer), nil
}

func NewSplitter(boundaries SentenceTokenizer, tokenizer *Tokenizer) *Splitter {
	return &Splitter{boundaries: boundaries, tokenizer: tokenizer}
}

// Split returns the sentences of text in document order. Spans holding only
// whitespace are dropped, so blank input yields no sentences.
func (s *Splitter) Split(text string) []Sentence {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []Sentence
	cursor := 0
	for _, raw := range s.boundaries.Tokenize(text) {
		start := cursor
		if idx := strings.Index(text[cursor:], raw.Text); idx >= 0 {
			start = cursor + idx
		}
		end := start + len(raw.Text)
		cursor = end

		trimmed := strings.TrimSpace(raw.Text)
		if trimmed == "" {
			continue
		}
		out = append(out, Sentence{
			Index:  len(out),
			Start:  start,
			End:    end,
			Text:   trimmed,
			Tokens: s.tokenizer.Collect(trimmed),
		})
	}
	return out
}
