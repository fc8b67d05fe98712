// Package wordlist loads word lists for practice text.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"
)

//go:embed data/en.txt
var embeddedEnglish string

// Load reads one word per line from the provided file path.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

var defaultWords = sync.OnceValue(func() []string {
	var words []string
	for _, line := range strings.Split(embeddedEnglish, "\n") {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words
})

// Default returns the embedded English word list.
func Default() []string {
	src := defaultWords()
	out := make([]string, len(src))
	copy(out, src)
	return out
}
