package attempts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbatra/quizforge/internal/attempts"
	"github.com/hbatra/quizforge/internal/repository/jsonfile"
)

func newLimiter(t *testing.T, now func() time.Time) attempts.Limiter {
	t.Helper()
	return attempts.NewLimiter(jsonfile.NewAttemptRepository(t.TempDir()), now)
}

func fixedClock(day string) func() time.Time {
	return func() time.Time {
		ts, _ := time.Parse("2006-01-02", day)
		return ts
	}
}

func TestLimiter_QuotaExhaustion(t *testing.T) {
	ctx := context.Background()
	l := newLimiter(t, fixedClock("2026-09-01"))

	for i := 0; i < 3; i++ {
		allowed, remaining, err := l.CanAttempt(ctx, "alice", 3)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 3-i, remaining)

		require.NoError(t, l.RecordAttempt(ctx, "alice"))
	}

	allowed, remaining, err := l.CanAttempt(ctx, "alice", 3)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	l := newLimiter(t, fixedClock("2026-09-01"))

	require.NoError(t, l.RecordAttempt(ctx, "alice"))
	require.NoError(t, l.RecordAttempt(ctx, "alice"))
	require.NoError(t, l.RecordAttempt(ctx, "alice"))

	allowed, remaining, err := l.CanAttempt(ctx, "bob", 3)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 3, remaining)

	// The same name scoped to an assessment is a different key.
	allowed, _, err = l.CanAttempt(ctx, attempts.AssessmentAttemptKey("alice", "Algebra"), 3)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLimiter_DateRollover(t *testing.T) {
	ctx := context.Background()
	repo := jsonfile.NewAttemptRepository(t.TempDir())

	day1 := attempts.NewLimiter(repo, fixedClock("2026-09-01"))
	require.NoError(t, day1.RecordAttempt(ctx, "alice"))
	require.NoError(t, day1.RecordAttempt(ctx, "alice"))
	require.NoError(t, day1.RecordAttempt(ctx, "alice"))

	allowed, _, err := day1.CanAttempt(ctx, "alice", 3)
	require.NoError(t, err)
	assert.False(t, allowed)

	day2 := attempts.NewLimiter(repo, fixedClock("2026-09-02"))
	allowed, remaining, err := day2.CanAttempt(ctx, "alice", 3)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 3, remaining)
}

func TestLimiter_OverusedKeyClampsToZero(t *testing.T) {
	ctx := context.Background()
	l := newLimiter(t, fixedClock("2026-09-01"))

	require.NoError(t, l.RecordAttempt(ctx, "alice"))
	require.NoError(t, l.RecordAttempt(ctx, "alice"))

	// A lower cap than what is already recorded must not go negative.
	allowed, remaining, err := l.CanAttempt(ctx, "alice", 1)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestAttemptKeys(t *testing.T) {
	assert.Equal(t, "alice", attempts.AttemptKey("  alice "))
	assert.Equal(t, "alice::Algebra", attempts.AssessmentAttemptKey(" alice", "Algebra"))
}
