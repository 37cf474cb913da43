package patterns

import (
	"fmt"
	"strings"
)

const windowSize = 3

// DefaultKeyboardRows are the contiguous rows of an English QWERTY keyboard.
var DefaultKeyboardRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"1234567890",
}

//go:generate counterfeiter . Detector

type Detector interface {
	Detect(password string) []string
}

type detector struct {
	rows []row
}

type row struct {
	forward  string
	backward string
}

func NewDetector(rows []string) Detector {
	d := &detector{
		rows: make([]row, len(rows)),
	}

	for i := range rows {
		d.rows[i] = row{
			forward:  rows[i],
			backward: reverse(rows[i]),
		}
	}

	return d
}

func NewDefaultDetector() Detector {
	return NewDetector(DefaultKeyboardRows)
}

// Detect reports at most one finding per keyboard row: the first three
// character window of the lower-cased password found on that row in either
// direction.
func (d *detector) Detect(password string) []string {
	lower := []rune(strings.ToLower(password))
	findings := []string{}

	for _, r := range d.rows {
		for i := 0; i+windowSize <= len(lower); i++ {
			chunk := string(lower[i : i+windowSize])

			if strings.Contains(r.forward, chunk) || strings.Contains(r.backward, chunk) {
				findings = append(findings, Finding(chunk))
				break
			}
		}
	}

	return findings
}

func Finding(chunk string) string {
	return fmt.Sprintf("Keyboard sequence found: '%s'", chunk)
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
