package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pivotal-cf/smartguard/audit"
	"github.com/pivotal-cf/smartguard/metrics"
)

//go:generate counterfeiter . Reporter

type Reporter interface {
	Report(audit.Result) error
}

func NewTextReporter(w io.Writer) Reporter {
	return &textReporter{w: w}
}

type textReporter struct {
	w io.Writer
}

func (r *textReporter) Report(result audit.Result) error {
	var b strings.Builder

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "--- Analysis Result ---")
	fmt.Fprintf(&b, "Score: %d/100\n", result.Score)
	fmt.Fprintf(&b, "Rating: %s\n", colorRating(result.Rating))

	if len(result.Feedback) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "  Issues Found:")
		for _, item := range result.Feedback {
			fmt.Fprintf(&b, "   - %s\n", item)
		}
	}

	if len(result.Suggestions) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, " Suggestions:")
		for _, item := range result.Suggestions {
			fmt.Fprintf(&b, "   - %s\n", item)
		}
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, strings.Repeat("-", 30))
	fmt.Fprintln(&b)

	_, err := io.WriteString(r.w, b.String())
	return err
}

// NewJSONReporter writes one JSON document per line.
func NewJSONReporter(w io.Writer) Reporter {
	return &jsonReporter{enc: json.NewEncoder(w)}
}

type jsonReporter struct {
	enc *json.Encoder
}

func (r *jsonReporter) Report(result audit.Result) error {
	return r.enc.Encode(result)
}

func auditCounterName(rating audit.Rating) string {
	return "audits." + string(rating)
}

// WriteSummary prints how many passwords got each rating.
func WriteSummary(w io.Writer, tally *metrics.Tally) {
	var total int
	var parts []string

	for _, rating := range audit.Ratings {
		n := tally.Count(auditCounterName(rating))
		if n == 0 {
			continue
		}

		total += n
		parts = append(parts, fmt.Sprintf("%s: %d", rating, n))
	}

	if total == 0 {
		return
	}

	fmt.Fprintf(w, "Audited %d password(s) (%s)\n", total, strings.Join(parts, ", "))
}
