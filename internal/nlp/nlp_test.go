package nlp

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopwordSet(t *testing.T) {
	s := NewStopwordSet("Foo", "  ")

	assert.True(t, s.Contains("the"))
	assert.True(t, s.Contains("n't"))
	for _, w := range DomainStopwords {
		assert.True(t, s.Contains(w), "domain stopword %q", w)
	}
	assert.True(t, s.Contains("foo"))
	assert.False(t, s.Contains("cat"))
	assert.False(t, s.Contains(""))

	var nilSet *StopwordSet
	assert.False(t, nilSet.Contains("the"))
	assert.Equal(t, 0, nilSet.Len())
}

func TestLoadStopwordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nCat\n\ndog\n"), 0o644))

	s, err := LoadStopwordFile(path)
	require.NoError(t, err)
	assert.True(t, s.Contains("cat"))
	assert.True(t, s.Contains("dog"))
	assert.True(t, s.Contains("the"))
	assert.False(t, s.Contains("# comment"))
}

func TestLoadStopwordFileMissing(t *testing.T) {
	_, err := LoadStopwordFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	var initErr *InitError
	require.True(t, errors.As(err, &initErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestTokenizerClassification(t *testing.T) {
	tok := NewTokenizer(NewStopwordSet())

	tokens := tok.Collect("The Cat, sat!")
	var texts []string
	for _, tk := range tokens {
		texts = append(texts, tk.Text)
	}
	assert.Equal(t, []string{"The", " ", "Cat", ",", " ", "sat", "!"}, texts)

	assert.Equal(t, "the", tokens[0].Norm)
	assert.True(t, tokens[0].IsStop)
	assert.True(t, tokens[1].IsSpace)
	assert.False(t, tokens[1].IsWord())
	assert.Equal(t, "cat", tokens[2].Norm)
	assert.True(t, tokens[2].IsWord())
	assert.False(t, tokens[2].IsStop)
	assert.True(t, tokens[3].IsPunct)
	assert.True(t, tokens[6].IsPunct)
}

func TestTokenizerReconstructsInput(t *testing.T) {
	tok := NewTokenizer(nil)
	text := "Dr. Smith   arrived\nat 10.30 a.m. — late again."

	var b strings.Builder
	for tk := range tok.Tokens(text) {
		b.WriteString(tk.Text)
	}
	assert.Equal(t, text, b.String())
}

func TestTokenizerStopsEarly(t *testing.T) {
	tok := NewTokenizer(nil)
	n := 0
	for range tok.Tokens("one two three four") {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestCountNonSpace(t *testing.T) {
	tok := NewTokenizer(nil)

	assert.Equal(t, 0, tok.CountNonSpace(""))
	assert.Equal(t, 0, tok.CountNonSpace(" \n\t "))
	assert.Equal(t, 6, tok.CountNonSpace("The bird flew fast today."))
}

func TestSplitter(t *testing.T) {
	m, err := NewModel(Options{})
	require.NoError(t, err)

	text := "The cat sat. The dog ran. The bird flew fast today."
	sents := m.Splitter.Split(text)
	require.Len(t, sents, 3)

	want := []string{"The cat sat.", "The dog ran.", "The bird flew fast today."}
	for i, s := range sents {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, want[i], s.Text)
		assert.Equal(t, s.Text, strings.TrimSpace(text[s.Start:s.End]))
		assert.NotEmpty(t, s.Tokens)
	}
	assert.Equal(t, 0, sents[0].Start)
	assert.Equal(t, len(text), sents[2].End)
	assert.Equal(t, sents[0].End, sents[1].Start)
	assert.Equal(t, sents[1].End, sents[2].Start)
}

func TestSplitterBlankInput(t *testing.T) {
	m, err := NewModel(Options{})
	require.NoError(t, err)

	assert.Empty(t, m.Splitter.Split(""))
	assert.Empty(t, m.Splitter.Split("   \n\t"))
}

func TestNewModelStopwordsFileError(t *testing.T) {
	_, err := NewModel(Options{StopwordsFile: filepath.Join(t.TempDir(), "nope")})

	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
	assert.Contains(t, initErr.Error(), "stopwords file")
}

func TestTokenizerContractions(t *testing.T) {
	tok := NewTokenizer(NewStopwordSet())

	tests := []struct {
		name  string
		text  string
		words []string
	}{
		{"negation", "don't", []string{"do", "n't"}},
		{"irregular negation", "Can't", []string{"Ca", "n't"}},
		{"possessive", "it's", []string{"it", "'s"}},
		{"curly apostrophe", "It’s", []string{"It", "’s"}},
		{"future", "we'll", []string{"we", "'ll"}},
		{"plain word", "apostrophe", []string{"apostrophe"}},
		{"bare clitic", "'s", []string{"'s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var texts []string
			for tk := range tok.Tokens(tt.text) {
				texts = append(texts, tk.Text)
			}
			assert.Equal(t, tt.words, texts)
		})
	}
}

func TestTokenizerContractionStopwords(t *testing.T) {
	tok := NewTokenizer(NewStopwordSet())
	text := "It’s here, isn't it?"

	tokens := tok.Collect(text)
	var texts []string
	for _, tk := range tokens {
		texts = append(texts, tk.Text)
		if tk.IsWord() {
			assert.True(t, tk.IsStop, "%q should be a stopword", tk.Text)
		}
	}
	assert.Equal(t, []string{"It", "’s", " ", "here", ",", " ", "is", "n't", " ", "it", "?"}, texts)
	assert.Equal(t, text, strings.Join(texts, ""))
}

func TestTokenizerContractionStopsEarly(t *testing.T) {
	tok := NewTokenizer(nil)
	var texts []string
	for tk := range tok.Tokens("don't stop") {
		texts = append(texts, tk.Text)
		break
	}
	assert.Equal(t, []string{"do"}, texts)
}

func TestSplitterCRLF(t *testing.T) {
	m, err := NewModel(Options{})
	require.NoError(t, err)

	text := "Hello world.\r\n\r\nSecond line here."
	sents := m.Splitter.Split(text)
	require.Len(t, sents, 2)

	assert.Equal(t, "Hello world.", sents[0].Text)
	assert.Equal(t, "Second line here.", sents[1].Text)
	assert.Equal(t, 0, sents[0].Start)
	assert.LessOrEqual(t, sents[0].End, sents[1].Start)
	assert.Empty(t, strings.TrimSpace(text[sents[0].End:sents[1].Start]))
	assert.Empty(t, strings.TrimSpace(text[sents[1].End:]))
	for _, s := range sents {
		assert.Equal(t, s.Text, strings.TrimSpace(text[s.Start:s.End]))
	}
}
