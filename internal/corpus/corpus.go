// Package corpus holds the target text for a typing session.
package corpus

import (
	"errors"
	"strings"
)

// ErrEmptyCorpus is returned when the supplied text is empty after trimming.
var ErrEmptyCorpus = errors.New("corpus is empty")

// Word marks a run of non-space runes as [Start, End) rune indices.
type Word struct {
	Start int
	End   int
}

// Corpus is an immutable rune sequence with word-boundary markers.
// It must not change once a session has started against it.
type Corpus struct {
	runes []rune
	words []Word
}

// New builds a Corpus from text. Leading and trailing whitespace is
// trimmed; text that is empty after trimming fails with ErrEmptyCorpus.
func New(text string) (*Corpus, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyCorpus
	}
	runes := []rune(trimmed)
	return &Corpus{
		runes: runes,
		words: findWords(runes),
	}, nil
}

// Len returns the number of runes in the corpus.
func (c *Corpus) Len() int {
	return len(c.runes)
}

// Rune returns the rune at index i.
func (c *Corpus) Rune(i int) rune {
	return c.runes[i]
}

// Runes returns a copy of the corpus runes.
func (c *Corpus) Runes() []rune {
	out := make([]rune, len(c.runes))
	copy(out, c.runes)
	return out
}

// Words returns the word-boundary markers in corpus order.
func (c *Corpus) Words() []Word {
	out := make([]Word, len(c.words))
	copy(out, c.words)
	return out
}

// WordAt returns the word containing the cursor, or the next word when the
// cursor sits on a space. Reports false when the cursor is past the text.
func (c *Corpus) WordAt(cursor int) (Word, bool) {
	if cursor < 0 {
		cursor = 0
	}
	for _, w := range c.words {
		if cursor < w.End {
			return w, true
		}
	}
	return Word{}, false
}

// String returns the corpus text.
func (c *Corpus) String() string {
	return string(c.runes)
}

func findWords(runes []rune) []Word {
	words := []Word{}
	start := -1
	for i, r := range runes {
		if r == ' ' {
			if start != -1 {
				words = append(words, Word{Start: start, End: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, Word{Start: start, End: len(runes)})
	}
	return words
}
