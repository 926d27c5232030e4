package nlp

import (
	"iter"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Token is a lexical unit of the input. Tokens are never modified after the
// tokenizer yields them.
type Token struct {
	Text    string
	Norm    string
	IsPunct bool
	IsSpace bool
	IsStop  bool
}

// IsWord reports whether the token carries content (not punctuation or space).
func (t Token) IsWord() bool {
	return !t.IsPunct && !t.IsSpace
}

// Tokenizer splits text on Unicode word boundaries (UAX #29) and separates
// English clitics from the words they attach to.
type Tokenizer struct {
	stopwords *StopwordSet
}

func NewTokenizer(stopwords *StopwordSet) *Tokenizer {
	return &Tokenizer{stopwords: stopwords}
}

// Tokens yields the tokens of text lazily, in document order.
func (t *Tokenizer) Tokens(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		// a Caser keeps state between calls and must not be shared
		lower := cases.Lower(language.Und)

		rest := text
		state := -1
		var segment string
		for len(rest) > 0 {
			segment, rest, state = uniseg.FirstWordInString(rest, state)
			base, clitic := splitClitic(segment)
			if !yield(t.newToken(base, lower)) {
				return
			}
			if clitic != "" && !yield(t.newToken(clitic, lower)) {
				return
			}
		}
	}
}

// clitics are English contraction suffixes kept as tokens of their own, so
// "don't" yields "do" and "n't". Longer suffixes come first.
var clitics = []string{
	"n't", "n\u2019t",
	"'ll", "'re", "'ve", "'s", "'m", "'d",
	"\u2019ll", "\u2019re", "\u2019ve", "\u2019s", "\u2019m", "\u2019d",
}

// splitClitic separates a trailing clitic from a word segment. Segments that
// are only a clitic, or carry none, are returned whole.
func splitClitic(segment string) (string, string) {
	for _, c := range clitics {
		if len(segment) <= len(c) {
			continue
		}
		cut := len(segment) - len(c)
		if strings.EqualFold(segment[cut:], c) {
			return segment[:cut], segment[cut:]
		}
	}
	return segment, ""
}

// Collect tokenizes text eagerly.
func (t *Tokenizer) Collect(text string) []Token {
	var tokens []Token
	for tok := range t.Tokens(text) {
		tokens = append(tokens, tok)
	}
	return tokens
}

// CountNonSpace returns the number of tokens in text that are not whitespace.
func (t *Tokenizer) CountNonSpace(text string) int {
	count := 0
	for tok := range t.Tokens(text) {
		if !tok.IsSpace {
			count++
		}
	}
	return count
}

func (t *Tokenizer) newToken(segment string, lower cases.Caser) Token {
	norm := lower.String(segment)
	tok := Token{
		Text:    segment,
		Norm:    norm,
		IsSpace: strings.TrimSpace(segment) == "",
	}
	if !tok.IsSpace {
		tok.IsPunct = allRunes(segment, unicode.IsPunct)
		tok.IsStop = t.stopwords.Contains(norm)
	}
	return tok
}

func allRunes(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return s != ""
}
