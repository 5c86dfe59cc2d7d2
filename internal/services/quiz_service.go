package services

import (
	"context"
	"strings"

	"github.com/hbatra/quizforge/internal/errors"
	"github.com/hbatra/quizforge/internal/logger"
	"github.com/hbatra/quizforge/internal/models"
	"github.com/hbatra/quizforge/internal/repository"
)

// QuizService handles score persistence and score history queries
type QuizService interface {
	// RecordScore appends one attempt record. Anonymous runs (empty
	// name) are not recorded; every mode shares this rule.
	RecordScore(ctx context.Context, name string, percent int) error
	HighScore(ctx context.Context) (*models.ScoreRecord, error)
	UserAttempts(ctx context.Context, name string) ([]models.ScoreRecord, error)
	FirstAndLatest(ctx context.Context, name string) (first, latest *models.ScoreRecord, err error)
}

type quizService struct {
	scoreRepo repository.ScoreRepository
}

// NewQuizService creates a new QuizService
func NewQuizService(scoreRepo repository.ScoreRepository) QuizService {
	return &quizService{scoreRepo: scoreRepo}
}

// NormalizeName lowercases a name and collapses inner whitespace, the
// key used for all history lookups.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func (s *quizService) RecordScore(ctx context.Context, name string, percent int) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(name) == "" {
		log.Debug("anonymous run, score not recorded: percent=%d", percent)
		return nil
	}
	if err := s.scoreRepo.Append(ctx, models.ScoreRecord{Name: name, Score: percent}); err != nil {
		log.Error("failed to record score: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("score recorded: name=%s, percent=%d", name, percent)
	return nil
}

func (s *quizService) HighScore(ctx context.Context) (*models.ScoreRecord, error) {
	log := logger.FromContext(ctx)

	records, err := s.scoreRepo.Load(ctx)
	if err != nil {
		log.Error("failed to load scores: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	best := records[0]
	for _, r := range records[1:] {
		if r.Score > best.Score {
			best = r
		}
	}
	return &best, nil
}

func (s *quizService) UserAttempts(ctx context.Context, name string) ([]models.ScoreRecord, error) {
	log := logger.FromContext(ctx)

	records, err := s.scoreRepo.Load(ctx)
	if err != nil {
		log.Error("failed to load scores: %v", err)
		return nil, errors.NewInternalError(err)
	}
	target := NormalizeName(name)
	var out []models.ScoreRecord
	for _, r := range records {
		if NormalizeName(r.Name) == target {
			out = append(out, r)
		}
	}
	return out, nil
}

// FirstAndLatest returns a user's first and most recent attempt,
// defined purely by list position among their records.
func (s *quizService) FirstAndLatest(ctx context.Context, name string) (*models.ScoreRecord, *models.ScoreRecord, error) {
	attempts, err := s.UserAttempts(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	if len(attempts) == 0 {
		return nil, nil, nil
	}
	return &attempts[0], &attempts[len(attempts)-1], nil
}
