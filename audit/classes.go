package audit

import (
	"strings"
	"unicode"
)

type characterClasses struct {
	upper   bool
	lower   bool
	digit   bool
	special bool
}

func classify(password string, specials string) characterClasses {
	var c characterClasses

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			c.upper = true
		case unicode.IsLower(r):
			c.lower = true
		case unicode.IsDigit(r):
			c.digit = true
		case strings.ContainsRune(specials, r):
			c.special = true
		}
	}

	return c
}

func (c characterClasses) count() int {
	n := 0
	for _, present := range []bool{c.upper, c.lower, c.digit, c.special} {
		if present {
			n++
		}
	}

	return n
}
