package dataset

import (
	"bytes"
	"strings"

	_ "embed"

	"github.com/pivotal-cf/smartguard/patterns"
	"github.com/pivotal-cf/smartguard/substitution"
)

// DefaultSpecialCharacters counts towards the symbol character class.
const DefaultSpecialCharacters = ` !@#$%^&*()_+-=[]{};':"\|,.<>/?`

//go:embed data/common_passwords.txt
var commonPasswords string

//go:embed data/substitutions.txt
var substitutions []byte

// Dataset is the read-only reference data an audit is scored against. It is
// built once and shared.
type Dataset struct {
	CommonPasswords   Wordlist
	Substitutions     substitution.Mapping
	KeyboardPatterns  []string
	SpecialCharacters string
}

func Default() Dataset {
	return Dataset{
		CommonPasswords:   DefaultCommonPasswords(),
		Substitutions:     DefaultSubstitutions(),
		KeyboardPatterns:  patterns.DefaultKeyboardRows,
		SpecialCharacters: DefaultSpecialCharacters,
	}
}

func DefaultCommonPasswords() Wordlist {
	w, err := LoadWordlist(strings.NewReader(commonPasswords))
	if err != nil {
		panic("embedded wordlist is unreadable: " + err.Error())
	}

	return w
}

func DefaultSubstitutions() substitution.Mapping {
	mapping, err := substitution.LoadMapping(bytes.NewReader(substitutions))
	if err != nil {
		panic("embedded substitutions are unreadable: " + err.Error())
	}

	return mapping
}
