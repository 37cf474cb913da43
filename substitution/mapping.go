package substitution

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

var ErrMappingNotFound = errors.New("substitution mapping not found")

// Substitution replaces every occurrence of Symbol with Letter.
type Substitution struct {
	Symbol string
	Letter string
}

// Mapping is applied in order; later substitutions see the output of
// earlier ones.
type Mapping []Substitution

// LoadMapping parses symbol=letter pairs, one per line, in file order. A
// repeated symbol keeps its first position and takes the last letter.
func LoadMapping(r io.Reader) (Mapping, error) {
	mapping := Mapping{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		idx := strings.Index(line, "=")
		if idx == -1 {
			continue
		}

		symbol, letter := line[:idx], line[idx+1:]
		if symbol == "" {
			continue
		}

		mapping = mapping.set(symbol, letter)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return mapping, nil
}

func LoadMappingFile(path string) (Mapping, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, ErrMappingNotFound
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadMapping(f)
}

func (m Mapping) set(symbol, letter string) Mapping {
	for i := range m {
		if m[i].Symbol == symbol {
			m[i].Letter = letter
			return m
		}
	}

	return append(m, Substitution{
		Symbol: symbol,
		Letter: letter,
	})
}
