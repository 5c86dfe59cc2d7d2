package scoring

import "strings"

// IsCorrect reports whether a single-letter MCQ guess matches the
// canonical answer letter. Comparison is case-insensitive and trimmed;
// an empty guess is never correct.
func IsCorrect(guess, canonical string) bool {
	g := strings.ToUpper(strings.TrimSpace(guess))
	if g == "" {
		return false
	}
	return g == strings.ToUpper(strings.TrimSpace(canonical))
}

// IsFillInCorrect grades a free-text guess against a canonical answer
// holding one or more accepted variants separated by "|". The guess and
// every variant are trimmed and lowercased; only an exact normalized
// match is accepted, never fuzzy or partial matching.
func IsFillInCorrect(guess, canonical string) bool {
	g := strings.ToLower(strings.TrimSpace(guess))
	if g == "" {
		return false
	}
	for _, variant := range strings.Split(canonical, "|") {
		if g == strings.ToLower(strings.TrimSpace(variant)) {
			return true
		}
	}
	return false
}

// AcceptedVariants splits a canonical fill-in answer into its trimmed
// accepted variants, dropping empty ones.
func AcceptedVariants(canonical string) []string {
	var out []string
	for _, v := range strings.Split(canonical, "|") {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
