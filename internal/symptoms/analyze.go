package symptoms

import "strings"

// Result is the outcome of analyzing a symptom description.
type Result struct {
	Conditions []string `json:"conditions"`
	Advice     string   `json:"advice"`
	Urgent     bool     `json:"urgent"`
}

const fallbackAdvice = "Your symptoms don't match our database. Please consult with a healthcare provider for proper evaluation."

// Analyze scans the symptom table against the input text and accumulates
// every entry whose keyword appears as a substring, case-insensitively.
// Conditions are deduplicated (first-seen order), advice strings are joined
// with spaces in table order, and urgency is the OR of matched flags.
//
// All matches accumulate: "high fever" in the input fires both the "fever"
// and "high fever" entries. Longer phrases do not suppress shorter ones;
// that is the product rule, not an oversight.
//
// Analyze never fails. Input with no recognized keyword, including the
// empty string, yields the fixed consultation fallback.
func Analyze(input string) Result {
	text := strings.ToLower(input)

	var (
		conditions []string
		advice     []string
		urgent     bool
	)
	seen := make(map[string]bool)

	for _, e := range table {
		if !strings.Contains(text, e.Keyword) {
			continue
		}
		for _, c := range e.Conditions {
			if !seen[c] {
				seen[c] = true
				conditions = append(conditions, c)
			}
		}
		advice = append(advice, e.Advice)
		if e.Urgent {
			urgent = true
		}
	}

	if len(conditions) == 0 {
		return Result{
			Conditions: []string{"General Consultation Recommended"},
			Advice:     fallbackAdvice,
			Urgent:     false,
		}
	}

	return Result{
		Conditions: conditions,
		Advice:     strings.Join(advice, " "),
		Urgent:     urgent,
	}
}
