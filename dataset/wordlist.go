package dataset

import (
	"bufio"
	"io"
	"strings"
)

// Wordlist is a case-insensitive set of known-weak passwords.
type Wordlist struct {
	words map[string]struct{}
}

func NewWordlist(words ...string) Wordlist {
	w := Wordlist{
		words: make(map[string]struct{}, len(words)),
	}

	for _, word := range words {
		w.add(word)
	}

	return w
}

func LoadWordlist(r io.Reader) (Wordlist, error) {
	w := NewWordlist()

	if err := w.read(r); err != nil {
		return Wordlist{}, err
	}

	return w, nil
}

func (w Wordlist) Contains(word string) bool {
	_, found := w.words[strings.ToLower(word)]
	return found
}

func (w Wordlist) Len() int {
	return len(w.words)
}

func (w Wordlist) add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}

	w.words[word] = struct{}{}
}

func (w Wordlist) read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w.add(scanner.Text())
	}

	return scanner.Err()
}
