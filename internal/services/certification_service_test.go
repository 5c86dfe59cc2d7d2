package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbatra/quizforge/internal/attempts"
	apperrors "github.com/hbatra/quizforge/internal/errors"
	"github.com/hbatra/quizforge/internal/repository/jsonfile"
	"github.com/hbatra/quizforge/internal/services"
)

func newCertService(t *testing.T) (services.CertificationService, services.QuizService) {
	t.Helper()
	dataDir := t.TempDir()

	now := func() time.Time {
		return time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	}
	limiter := attempts.NewLimiter(jsonfile.NewCertAttemptRepository(dataDir), now)
	quizSvc := services.NewQuizService(jsonfile.NewScoreRepository(dataDir))
	certSvc := services.NewCertificationService(
		limiter, jsonfile.NewCertResultRepository(dataDir), quizSvc, 1, now)
	return certSvc, quizSvc
}

func TestCert_CanAttemptRequiresName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCertService(t)

	_, _, err := svc.CanAttempt(ctx, "   ")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
}

func TestCert_SingleDailyAttempt(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCertService(t)

	allowed, remaining, err := svc.CanAttempt(ctx, "Alice")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining)

	require.NoError(t, svc.RecordAttempt(ctx, "Alice"))

	allowed, remaining, err = svc.CanAttempt(ctx, "Alice")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestCert_RecordResult(t *testing.T) {
	ctx := context.Background()
	svc, quizSvc := newCertService(t)

	result, err := svc.RecordResult(ctx, " Alice ", 85, 70, 30)
	require.NoError(t, err)
	assert.Equal(t, "Alice", result.Name)
	assert.Equal(t, 85, result.Score)
	assert.True(t, result.Passed)
	assert.Equal(t, 70, result.PassMark)
	assert.Equal(t, 30, result.TotalQuestions)
	assert.Equal(t, "2026-09-01T10:30:00", result.Timestamp)

	// The exam score also lands in the shared high score list.
	best, err := quizSvc.HighScore(ctx)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, 85, best.Score)
}

func TestCert_PassBoundary(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCertService(t)

	exact, err := svc.RecordResult(ctx, "Alice", 70, 70, 30)
	require.NoError(t, err)
	assert.True(t, exact.Passed, "hitting the pass mark exactly is a pass")

	below, err := svc.RecordResult(ctx, "Bob", 69, 70, 30)
	require.NoError(t, err)
	assert.False(t, below.Passed)
}

func TestCert_HistoryFor(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCertService(t)

	_, err := svc.RecordResult(ctx, "Alice Smith", 80, 70, 30)
	require.NoError(t, err)
	_, err = svc.RecordResult(ctx, "Bob", 90, 70, 30)
	require.NoError(t, err)

	history, err := svc.HistoryFor(ctx, "alice  SMITH")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Alice Smith", history[0].Name)

	all, err := svc.AllResults(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
