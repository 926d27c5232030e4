// Package nlp holds the language resources used by the summarizer: word
// tokenization, sentence segmentation and the stopword list.
package nlp

// Options selects the stopwords a Model is built with.
type Options struct {
	ExtraStopwords []string
	StopwordsFile  string
}

// Model bundles the resources shared by every summarization call. It is built
// once at startup and only read afterwards, so it is safe for concurrent use.
type Model struct {
	Stopwords *StopwordSet
	Tokenizer *Tokenizer
	Splitter  *Splitter
}

func NewModel(opts Options) (*Model, error) {
	stopwords := NewStopwordSet(opts.ExtraStopwords...)
	if opts.StopwordsFile != "" {
		var err error
		stopwords, err = LoadStopwordFile(opts.StopwordsFile, opts.ExtraStopwords...)
		if err != nil {
			return nil, err
		}
	}

	tokenizer := NewTokenizer(stopwords)
	splitter, err := NewEnglishSplitter(tokenizer)
	if err != nil {
		return nil, err
	}

	return &Model{
		Stopwords: stopwords,
		Tokenizer: tokenizer,
		Splitter:  splitter,
	}, nil
}
