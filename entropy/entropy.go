package entropy

import "math"

// LowVarietyThreshold is the per-character entropy at or below which a
// password is considered repetitive.
const LowVarietyThreshold = 3.0

// Shannon returns the Shannon entropy of candidate in bits per character.
// Terms are summed in order of first occurrence so the result is identical
// on every call.
func Shannon(candidate string) float64 {
	counts := make(map[rune]int)
	var order []rune
	length := 0

	for _, r := range candidate {
		if _, seen := counts[r]; !seen {
			order = append(order, r)
		}
		counts[r]++
		length++
	}

	if length == 0 {
		return 0
	}

	var bits float64
	for _, r := range order {
		p := float64(counts[r]) / float64(length)
		bits -= p * math.Log2(p)
	}

	return bits
}

func IsLowVariety(candidate string) bool {
	return Shannon(candidate) <= LowVarietyThreshold
}
