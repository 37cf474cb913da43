package audit

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/pivotal-cf/smartguard/dataset"
	"github.com/pivotal-cf/smartguard/entropy"
	"github.com/pivotal-cf/smartguard/patterns"
	"github.com/pivotal-cf/smartguard/substitution"
)

const (
	maxLengthPoints  = 40
	pointsPerChar    = 4
	pointsPerClass   = 7.5
	maxEntropyPoints = 20
	pointsPerBit     = 5
	minLength        = 8
	minClasses       = 3
	penalty          = 10
	maxScore         = 100
)

const (
	knownLeakedFeedback   = "This is a known leaked password."
	knownLeakedSuggestion = "Change this immediately. Never use common words."
	substitutedFeedback   = "This is just the word '%s' with simple substitutions."
	substitutedSuggestion = "Substitutions like '@' for 'a' are easily guessed by hackers."
	tooShortFeedback      = "Password is too short."
	tooShortSuggestion    = "Make it at least 12 characters long."
	mixClassesSuggestion  = "Mix uppercase, lowercase, numbers, and symbols."
	lowVarietyFeedback    = "Character variety is low (repetitive)."
	keyboardRowSuggestion = "Avoid keyboard rows like 'qwerty' or 'asdf'."
	repeatedCharsFeedback = "Too many repeated characters."
)

// A check either settles the audit on its own or defers to the next one.
type check func(a *Auditor, password string) (Result, bool)

// terminalChecks run in order before scoring; the first to fire wins.
var terminalChecks = []check{
	knownWeak,
	disguisedCommon,
}

type Auditor struct {
	dataset    dataset.Dataset
	detector   patterns.Detector
	normalizer *substitution.Normalizer
}

func New(d dataset.Dataset) *Auditor {
	return &Auditor{
		dataset:    d,
		detector:   patterns.NewDetector(d.KeyboardPatterns),
		normalizer: substitution.NewNormalizer(d.Substitutions),
	}
}

// Audit scores password. It holds no state between calls and is safe for
// concurrent use.
func (a *Auditor) Audit(password string) Result {
	for _, c := range terminalChecks {
		if result, done := c(a, password); done {
			return result
		}
	}

	return a.score(password)
}

func knownWeak(a *Auditor, password string) (Result, bool) {
	if !a.dataset.CommonPasswords.Contains(strings.ToLower(password)) {
		return Result{}, false
	}

	return Result{
		Score:       0,
		Rating:      Critical,
		Feedback:    []string{knownLeakedFeedback},
		Suggestions: []string{knownLeakedSuggestion},
	}, true
}

func disguisedCommon(a *Auditor, password string) (Result, bool) {
	found, word := a.normalizer.MatchWordlist(password, a.dataset.CommonPasswords)
	if !found {
		return Result{}, false
	}

	return Result{
		Score:       10,
		Rating:      VeryWeak,
		Feedback:    []string{fmt.Sprintf(substitutedFeedback, word)},
		Suggestions: []string{substitutedSuggestion},
	}, true
}

func (a *Auditor) score(password string) Result {
	var score float64
	feedback := []string{}
	suggestions := []string{}

	length := utf8.RuneCountInString(password)

	score += math.Min(float64(length*pointsPerChar), maxLengthPoints)
	if length < minLength {
		feedback = append(feedback, tooShortFeedback)
		suggestions = append(suggestions, tooShortSuggestion)
	}

	classes := classify(password, a.dataset.SpecialCharacters).count()
	score += float64(classes) * pointsPerClass
	if classes < minClasses {
		suggestions = append(suggestions, mixClassesSuggestion)
	}

	if entropy.IsLowVariety(password) {
		feedback = append(feedback, lowVarietyFeedback)
	} else {
		score += math.Min(entropy.Shannon(password)*pointsPerBit, maxEntropyPoints)
	}

	findings := a.detector.Detect(password)
	if len(findings) > 0 {
		score -= float64(len(findings) * penalty)
		feedback = append(feedback, findings...)
		suggestions = append(suggestions, keyboardRowSuggestion)
	}

	if 2*distinct(password) < length {
		score -= penalty
		feedback = append(feedback, repeatedCharsFeedback)
	}

	final := clamp(int(score))

	return Result{
		Score:       final,
		Rating:      RatingForScore(final),
		Feedback:    feedback,
		Suggestions: suggestions,
	}
}

func distinct(password string) int {
	seen := make(map[rune]struct{})
	for _, r := range password {
		seen[r] = struct{}{}
	}

	return len(seen)
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}

	if score > maxScore {
		return maxScore
	}

	return score
}
