package services

import (
	"context"
	"strings"
	"time"

	"github.com/hbatra/quizforge/internal/attempts"
	"github.com/hbatra/quizforge/internal/errors"
	"github.com/hbatra/quizforge/internal/logger"
	"github.com/hbatra/quizforge/internal/models"
	"github.com/hbatra/quizforge/internal/repository"
)

// CertificationService gates and records certification exams.
// Certification has its own attempt namespace and a stricter daily cap.
type CertificationService interface {
	CanAttempt(ctx context.Context, name string) (bool, int, error)
	RecordAttempt(ctx context.Context, name string) error
	// RecordResult logs the exam outcome and also appends the percent
	// to the regular high score list.
	RecordResult(ctx context.Context, name string, percent, passMark, totalQuestions int) (*models.CertResult, error)
	HistoryFor(ctx context.Context, name string) ([]models.CertResult, error)
	AllResults(ctx context.Context) ([]models.CertResult, error)
}

type certificationService struct {
	limiter   attempts.Limiter
	results   repository.CertResultRepository
	quizSvc   QuizService
	maxPerDay int
	now       func() time.Time
}

// NewCertificationService creates a new CertificationService. A nil now
// func defaults to time.Now.
func NewCertificationService(limiter attempts.Limiter, results repository.CertResultRepository, quizSvc QuizService, maxPerDay int, now func() time.Time) CertificationService {
	if now == nil {
		now = time.Now
	}
	return &certificationService{
		limiter:   limiter,
		results:   results,
		quizSvc:   quizSvc,
		maxPerDay: maxPerDay,
		now:       now,
	}
}

func (s *certificationService) CanAttempt(ctx context.Context, name string) (bool, int, error) {
	if strings.TrimSpace(name) == "" {
		return false, 0, errors.NewValidationError("name", "cannot be empty for certification")
	}
	return s.limiter.CanAttempt(ctx, attempts.AttemptKey(name), s.maxPerDay)
}

func (s *certificationService) RecordAttempt(ctx context.Context, name string) error {
	return s.limiter.RecordAttempt(ctx, attempts.AttemptKey(name))
}

func (s *certificationService) RecordResult(ctx context.Context, name string, percent, passMark, totalQuestions int) (*models.CertResult, error) {
	log := logger.FromContext(ctx)

	result := models.CertResult{
		Name:           strings.TrimSpace(name),
		Score:          percent,
		Passed:         percent >= passMark,
		PassMark:       passMark,
		TotalQuestions: totalQuestions,
		Timestamp:      s.now().Format("2006-01-02T15:04:05"),
	}
	if err := s.results.Append(ctx, result); err != nil {
		log.Error("failed to record certification result: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if err := s.quizSvc.RecordScore(ctx, result.Name, percent); err != nil {
		return nil, err
	}
	log.Info("certification result recorded: name=%s, percent=%d, passed=%v", result.Name, percent, result.Passed)
	return &result, nil
}

func (s *certificationService) HistoryFor(ctx context.Context, name string) ([]models.CertResult, error) {
	results, err := s.AllResults(ctx)
	if err != nil {
		return nil, err
	}
	target := NormalizeName(name)
	var out []models.CertResult
	for _, r := range results {
		if NormalizeName(r.Name) == target {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *certificationService) AllResults(ctx context.Context) ([]models.CertResult, error) {
	results, err := s.results.Load(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return results, nil
}
