package audit

type Rating string

const (
	Critical   Rating = "CRITICAL"
	VeryWeak   Rating = "VERY WEAK"
	Weak       Rating = "WEAK"
	Moderate   Rating = "MODERATE"
	Strong     Rating = "STRONG"
	VeryStrong Rating = "VERY STRONG"
)

// Ratings lists every rating from worst to best.
var Ratings = []Rating{Critical, VeryWeak, Weak, Moderate, Strong, VeryStrong}

// RatingForScore applies the scoring thresholds. The two terminal ratings,
// Critical and VeryWeak, are never derived from a score.
func RatingForScore(score int) Rating {
	switch {
	case score < 40:
		return Weak
	case score < 70:
		return Moderate
	case score < 90:
		return Strong
	default:
		return VeryStrong
	}
}

type Result struct {
	Score       int      `json:"score" yaml:"score"`
	Rating      Rating   `json:"rating" yaml:"rating"`
	Feedback    []string `json:"feedback" yaml:"feedback"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
}
