package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.txt")
	if err := os.WriteFile(path, []byte("one\n\n  two  \nthree\n"), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	words, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(words))
	}
	if words[1] != "two" {
		t.Fatalf("expected trimmed word, got %q", words[1])
	}
}

func TestLoadEmptyFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for empty word list")
	}
}

func TestDefaultNonEmpty(t *testing.T) {
	words := Default()
	if len(words) == 0 {
		t.Fatalf("expected embedded default word list")
	}
	filter := FilterForLang("en")
	for _, w := range words {
		if !filter(w) {
			t.Fatalf("embedded word %q fails english filter", w)
		}
	}
}

func TestFilterEnglishASCII(t *testing.T) {
	filter := FilterForLang("en")
	if !filter("hello") {
		t.Fatalf("expected hello to pass english filter")
	}
	for _, word := range []string{"résumé", "naïve", "don’t", "co-op", ""} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestApply(t *testing.T) {
	words := Apply([]string{"ok", "No", "fine"}, FilterForLang("en"))
	if len(words) != 2 || words[0] != "ok" || words[1] != "fine" {
		t.Fatalf("unexpected filtered words: %v", words)
	}
}
