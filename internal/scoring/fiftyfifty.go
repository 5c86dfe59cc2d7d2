package scoring

import (
	"math/rand"
	"strings"
)

// FiftyFifty reduces an MCQ option list to the correct option and one
// incorrect option chosen uniformly at random, preserving the original
// display order. Only the presented options change; answer checking is
// unaffected. Lists that cannot be reduced (fewer than two options, or
// no option matching the answer letter) are returned unchanged.
func FiftyFifty(options []string, answerLetter string, rng *rand.Rand) []string {
	if len(options) < 2 {
		return options
	}

	letter := strings.ToUpper(strings.TrimSpace(answerLetter))
	correctIdx := -1
	var wrongIdxs []int
	for i, opt := range options {
		if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(opt)), letter+".") {
			correctIdx = i
		} else {
			wrongIdxs = append(wrongIdxs, i)
		}
	}
	if correctIdx < 0 || len(wrongIdxs) == 0 {
		return options
	}

	keptWrong := wrongIdxs[rng.Intn(len(wrongIdxs))]
	if correctIdx < keptWrong {
		return []string{options[correctIdx], options[keptWrong]}
	}
	return []string{options[keptWrong], options[correctIdx]}
}
