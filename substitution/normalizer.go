package substitution

import "strings"

//go:generate counterfeiter . Wordlist

type Wordlist interface {
	Contains(word string) bool
}

type Normalizer struct {
	mapping Mapping
}

func NewNormalizer(mapping Mapping) *Normalizer {
	return &Normalizer{
		mapping: mapping,
	}
}

// Normalize lower-cases password and then applies each substitution in
// mapping order.
func (n *Normalizer) Normalize(password string) string {
	normalized := strings.ToLower(password)

	for _, sub := range n.mapping {
		normalized = strings.ReplaceAll(normalized, sub.Symbol, sub.Letter)
	}

	return normalized
}

// MatchWordlist reports whether the normalized password is in words and, if
// so, the word it normalized to.
func (n *Normalizer) MatchWordlist(password string, words Wordlist) (bool, string) {
	normalized := n.Normalize(password)

	if words.Contains(normalized) {
		return true, normalized
	}

	return false, ""
}
