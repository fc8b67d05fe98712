// Package generator builds practice text for typing sessions.
package generator

import (
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// Generator produces randomized practice text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Generator using the given random source.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Words selects count words uniformly and applies caps/punctuation rules.
func (g *Generator) Words(words []string, count int, capsPct, punctPct float64, punctSet []rune) []string {
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		word := words[g.rnd.Intn(len(words))]
		word = applyCaps(g.rnd, word, capsPct)
		word = applyPunct(g.rnd, word, punctPct, punctSet)
		result = append(result, word)
	}
	return result
}

// Text joins generated words into a single practice string.
func (g *Generator) Text(words []string, count int, capsPct, punctPct float64, punctSet []rune) string {
	return strings.Join(g.Words(words, count, capsPct, punctPct, punctSet), " ")
}

var pangrams = []string{
	"The quick brown fox jumps over the lazy dog.",
	"Pack my box with five dozen liquor jugs.",
	"How vexingly quick daft zebras jump!",
	"Sphinx of black quartz, judge my vow.",
	"Waltz, bad nymph, for quick jigs vex.",
}

// Sentence returns a single random practice sentence.
func (g *Generator) Sentence() string {
	return pangrams[g.rnd.Intn(len(pangrams))]
}

// Sentences joins n random sentences into a single practice string.
// Timed sessions use a large n so the buffer outlasts the clock.
func (g *Generator) Sentences(n int) string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Sentence())
	}
	return strings.Join(out, " ")
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}
