package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hbatra/quizforge/internal/scoring"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name        string
		numerator   int
		denominator int
		expected    int
	}{
		{
			name:        "exact division",
			numerator:   5,
			denominator: 10,
			expected:    50,
		},
		{
			name:        "truncates toward zero",
			numerator:   2,
			denominator: 3,
			expected:    66,
		},
		{
			name:        "zero denominator",
			numerator:   5,
			denominator: 0,
			expected:    0,
		},
		{
			name:        "negative denominator",
			numerator:   5,
			denominator: -1,
			expected:    0,
		},
		{
			name:        "full marks",
			numerator:   7,
			denominator: 7,
			expected:    100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scoring.Percent(tt.numerator, tt.denominator))
		})
	}
}

func TestStandard_Score(t *testing.T) {
	outcomes := []scoring.Outcome{
		scoring.OutcomeCorrect,
		scoring.OutcomeWrong,
		scoring.OutcomeBlank,
		scoring.OutcomeCorrect,
	}

	r := scoring.Standard{}.Score(outcomes)

	assert.Equal(t, 50, r.Percent)
	assert.Equal(t, 2, r.Correct)
	assert.Equal(t, 1, r.Wrong)
	assert.Equal(t, 1, r.Blank)
	assert.Equal(t, 4, r.Asked)
}

func TestStandard_TimeoutCountsAsBlank(t *testing.T) {
	r := scoring.Standard{}.Score([]scoring.Outcome{
		scoring.OutcomeCorrect,
		scoring.OutcomeTimedOut,
	})

	assert.Equal(t, 50, r.Percent)
	assert.Equal(t, 1, r.Blank)
	assert.Equal(t, 0, r.Wrong)
}

func TestStandard_EmptyRun(t *testing.T) {
	r := scoring.Standard{}.Score(nil)

	assert.Equal(t, 0, r.Percent)
	assert.Equal(t, 0, r.Asked)
}

func TestNegativeMarking_Score(t *testing.T) {
	tests := []struct {
		name            string
		penalty         float64
		outcomes        []scoring.Outcome
		expectedPercent int
		expectedRaw     float64
	}{
		{
			name:    "quarter penalty",
			penalty: 0.25,
			outcomes: []scoring.Outcome{
				scoring.OutcomeCorrect,
				scoring.OutcomeCorrect,
				scoring.OutcomeWrong,
				scoring.OutcomeWrong,
			},
			// (2 - 0.5) / 4 = 37.5% floored to 37
			expectedPercent: 37,
			expectedRaw:     1.5,
		},
		{
			name:    "one each of correct, wrong and blank",
			penalty: 0.25,
			outcomes: []scoring.Outcome{
				scoring.OutcomeCorrect,
				scoring.OutcomeWrong,
				scoring.OutcomeBlank,
			},
			expectedPercent: 25,
			expectedRaw:     0.75,
		},
		{
			name:    "blanks carry no penalty",
			penalty: 0.25,
			outcomes: []scoring.Outcome{
				scoring.OutcomeCorrect,
				scoring.OutcomeBlank,
				scoring.OutcomeBlank,
				scoring.OutcomeBlank,
			},
			expectedPercent: 25,
			expectedRaw:     1,
		},
		{
			name:    "negative raw clamps to zero percent",
			penalty: 1,
			outcomes: []scoring.Outcome{
				scoring.OutcomeWrong,
				scoring.OutcomeWrong,
				scoring.OutcomeCorrect,
			},
			expectedPercent: 0,
			expectedRaw:     -1,
		},
		{
			name:            "empty run",
			penalty:         0.25,
			outcomes:        nil,
			expectedPercent: 0,
			expectedRaw:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := scoring.NegativeMarking{Penalty: tt.penalty}.Score(tt.outcomes)

			assert.Equal(t, tt.expectedPercent, r.Percent)
			assert.Equal(t, tt.expectedRaw, r.Raw)
		})
	}
}

func TestSkipAware_Score(t *testing.T) {
	r := scoring.SkipAware{}.Score([]scoring.Outcome{
		scoring.OutcomeCorrect,
		scoring.OutcomeSkipped,
		scoring.OutcomeSkipped,
		scoring.OutcomeWrong,
	})

	// Skips are excluded from the denominator: 1 of 2 answered.
	assert.Equal(t, 50, r.Percent)
	assert.Equal(t, 2, r.Skipped)
	assert.Equal(t, 2, r.Asked)
}

func TestSkipAware_AllSkipped(t *testing.T) {
	r := scoring.SkipAware{}.Score([]scoring.Outcome{
		scoring.OutcomeSkipped,
		scoring.OutcomeSkipped,
	})

	assert.Equal(t, 0, r.Percent)
	assert.Equal(t, 0, r.Asked)
}

func TestStreak_StopAfter(t *testing.T) {
	p := scoring.Streak{}

	assert.False(t, p.StopAfter(scoring.OutcomeCorrect))
	assert.True(t, p.StopAfter(scoring.OutcomeWrong))
	assert.True(t, p.StopAfter(scoring.OutcomeBlank))
	assert.True(t, p.StopAfter(scoring.OutcomeTimedOut))
}

func TestStreak_Score(t *testing.T) {
	tests := []struct {
		name            string
		outcomes        []scoring.Outcome
		expectedCorrect int
		expectedAsked   int
		expectedPercent int
	}{
		{
			name: "streak broken on third question",
			outcomes: []scoring.Outcome{
				scoring.OutcomeCorrect,
				scoring.OutcomeCorrect,
				scoring.OutcomeWrong,
			},
			expectedCorrect: 2,
			expectedAsked:   3,
			expectedPercent: 66,
		},
		{
			name:            "first answer wrong",
			outcomes:        []scoring.Outcome{scoring.OutcomeWrong},
			expectedCorrect: 0,
			expectedAsked:   1,
			expectedPercent: 0,
		},
		{
			name: "full clear",
			outcomes: []scoring.Outcome{
				scoring.OutcomeCorrect,
				scoring.OutcomeCorrect,
			},
			expectedCorrect: 2,
			expectedAsked:   2,
			expectedPercent: 100,
		},
		{
			name:            "empty run",
			outcomes:        nil,
			expectedCorrect: 0,
			expectedAsked:   0,
			expectedPercent: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := scoring.Streak{}.Score(tt.outcomes)

			assert.Equal(t, tt.expectedCorrect, r.Correct)
			assert.Equal(t, tt.expectedAsked, r.Asked)
			assert.Equal(t, tt.expectedPercent, r.Percent)
		})
	}
}
