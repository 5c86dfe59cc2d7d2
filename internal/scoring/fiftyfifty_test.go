package scoring_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbatra/quizforge/internal/scoring"
)

func TestFiftyFifty_KeepsCorrectAndOneWrong(t *testing.T) {
	options := []string{"A. Osmium", "B. Oxygen", "C. Gold", "D. Silver"}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		reduced := scoring.FiftyFifty(options, "B", rng)

		require.Len(t, reduced, 2)
		assert.Contains(t, reduced, "B. Oxygen")

		wrong := 0
		for _, opt := range reduced {
			if !strings.HasPrefix(opt, "B.") {
				wrong++
			}
		}
		assert.Equal(t, 1, wrong)
	}
}

func TestFiftyFifty_PreservesDisplayOrder(t *testing.T) {
	options := []string{"A. Osmium", "B. Oxygen", "C. Gold", "D. Silver"}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		reduced := scoring.FiftyFifty(options, "D", rng)

		require.Len(t, reduced, 2)
		// The answer is the last option, so it always comes second.
		assert.Equal(t, "D. Silver", reduced[1])
	}
}

func TestFiftyFifty_PathologicalInputsUnchanged(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	single := []string{"A. Only"}
	assert.Equal(t, single, scoring.FiftyFifty(single, "A", rng))

	noMatch := []string{"A. One", "B. Two"}
	assert.Equal(t, noMatch, scoring.FiftyFifty(noMatch, "Z", rng))

	assert.Empty(t, scoring.FiftyFifty(nil, "A", rng))
}
