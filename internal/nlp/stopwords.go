package nlp

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed stopwords_en.txt
var embeddedStopwords string

// DomainStopwords are always excluded on top of the base English list.
var DomainStopwords = []string{"your", "specific", "domain", "words"}

// StopwordSet is a read-only set of normalized word forms.
type StopwordSet struct {
	words map[string]struct{}
}

// NewStopwordSet builds a set from the embedded English list, the domain
// additions and any extra words supplied by the caller.
func NewStopwordSet(extra ...string) *StopwordSet {
	s := &StopwordSet{words: make(map[string]struct{}, 400)}
	s.addFrom(strings.NewReader(embeddedStopwords))
	s.add(DomainStopwords...)
	s.add(extra...)
	return s
}

// LoadStopwordFile extends a fresh set with one word per line from path.
// Blank lines and lines starting with '#' are ignored.
func LoadStopwordFile(path string, extra ...string) (*StopwordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InitError{Resource: "stopwords file " + path, Err: err}
	}
	defer f.Close()

	s := NewStopwordSet(extra...)
	if err := s.addFrom(f); err != nil {
		return nil, &InitError{Resource: "stopwords file " + path, Err: err}
	}
	return s, nil
}

func (s *StopwordSet) add(words ...string) {
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s.words[w] = struct{}{}
		}
	}
}

func (s *StopwordSet) addFrom(r io.Reader) error {
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.add(line)
	}
	if err := scan.Err(); err != nil {
		return fmt.Errorf("read stopwords: %w", err)
	}
	return nil
}

// Contains reports whether the normalized form is a stopword.
func (s *StopwordSet) Contains(norm string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[norm]
	return ok
}

func (s *StopwordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}
