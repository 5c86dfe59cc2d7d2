package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbatra/quizforge/internal/repository/jsonfile"
	"github.com/hbatra/quizforge/internal/services"
)

func newQuizService(t *testing.T) services.QuizService {
	t.Helper()
	return services.NewQuizService(jsonfile.NewScoreRepository(t.TempDir()))
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases",
			input:    "Alice",
			expected: "alice",
		},
		{
			name:     "collapses inner whitespace",
			input:    "  Alice   Smith ",
			expected: "alice smith",
		},
		{
			name:     "empty stays empty",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, services.NormalizeName(tt.input))
		})
	}
}

func TestRecordScore_AnonymousNotRecorded(t *testing.T) {
	ctx := context.Background()
	svc := newQuizService(t)

	require.NoError(t, svc.RecordScore(ctx, "", 90))
	require.NoError(t, svc.RecordScore(ctx, "   ", 90))

	best, err := svc.HighScore(ctx)
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestHighScore(t *testing.T) {
	ctx := context.Background()
	svc := newQuizService(t)

	require.NoError(t, svc.RecordScore(ctx, "Alice", 60))
	require.NoError(t, svc.RecordScore(ctx, "Bob", 90))
	require.NoError(t, svc.RecordScore(ctx, "Carol", 75))

	best, err := svc.HighScore(ctx)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "Bob", best.Name)
	assert.Equal(t, 90, best.Score)
}

func TestHighScore_TieKeepsEarliest(t *testing.T) {
	ctx := context.Background()
	svc := newQuizService(t)

	require.NoError(t, svc.RecordScore(ctx, "Alice", 90))
	require.NoError(t, svc.RecordScore(ctx, "Bob", 90))

	best, err := svc.HighScore(ctx)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "Alice", best.Name)
}

func TestUserAttempts_NameMatchingIsNormalized(t *testing.T) {
	ctx := context.Background()
	svc := newQuizService(t)

	require.NoError(t, svc.RecordScore(ctx, "Alice Smith", 50))
	require.NoError(t, svc.RecordScore(ctx, "alice  smith", 70))
	require.NoError(t, svc.RecordScore(ctx, "Bob", 99))

	records, err := svc.UserAttempts(ctx, "ALICE SMITH")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 50, records[0].Score)
	assert.Equal(t, 70, records[1].Score)
}

func TestFirstAndLatest(t *testing.T) {
	ctx := context.Background()
	svc := newQuizService(t)

	first, latest, err := svc.FirstAndLatest(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, first)
	assert.Nil(t, latest)

	require.NoError(t, svc.RecordScore(ctx, "alice", 40))
	require.NoError(t, svc.RecordScore(ctx, "alice", 60))
	require.NoError(t, svc.RecordScore(ctx, "alice", 80))

	first, latest, err = svc.FirstAndLatest(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, first)
	require.NotNil(t, latest)
	assert.Equal(t, 40, first.Score)
	assert.Equal(t, 80, latest.Score)
}

func TestFirstAndLatest_SingleAttempt(t *testing.T) {
	ctx := context.Background()
	svc := newQuizService(t)

	require.NoError(t, svc.RecordScore(ctx, "alice", 55))

	first, latest, err := svc.FirstAndLatest(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, first, latest)
}
