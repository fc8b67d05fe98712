package corpus

import (
	"errors"
	"testing"
)

func TestNewTrimsAndSplitsWords(t *testing.T) {
	c, err := New("  one two  ")
	if err != nil {
		t.Fatalf("new corpus: %v", err)
	}
	if c.Len() != 7 {
		t.Fatalf("expected 7 runes, got %d", c.Len())
	}
	words := c.Words()
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	if words[0] != (Word{Start: 0, End: 3}) {
		t.Fatalf("unexpected first word: %+v", words[0])
	}
	if words[1] != (Word{Start: 4, End: 7}) {
		t.Fatalf("unexpected second word: %+v", words[1])
	}
}

func TestNewEmptyFails(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		c, err := New(text)
		if !errors.Is(err, ErrEmptyCorpus) {
			t.Fatalf("expected ErrEmptyCorpus for %q, got %v", text, err)
		}
		if c != nil {
			t.Fatalf("expected nil corpus for %q", text)
		}
	}
}

func TestWordAt(t *testing.T) {
	c, err := New("one two")
	if err != nil {
		t.Fatalf("new corpus: %v", err)
	}
	w, ok := c.WordAt(1)
	if !ok || w.Start != 0 {
		t.Fatalf("expected first word at cursor 1, got %+v ok=%v", w, ok)
	}
	// Cursor on the separating space belongs to the next word.
	w, ok = c.WordAt(3)
	if !ok || w.Start != 4 {
		t.Fatalf("expected second word at cursor 3, got %+v ok=%v", w, ok)
	}
	if _, ok := c.WordAt(7); ok {
		t.Fatalf("expected no word past end of corpus")
	}
}

func TestRunesReturnsCopy(t *testing.T) {
	c, err := New("abc")
	if err != nil {
		t.Fatalf("new corpus: %v", err)
	}
	runes := c.Runes()
	runes[0] = 'z'
	if c.Rune(0) != 'a' {
		t.Fatalf("corpus mutated through Runes copy")
	}
}
