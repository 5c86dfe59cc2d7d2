package repository

import (
	"context"

	"github.com/hbatra/quizforge/internal/models"
)

// ScoreRepository handles the append-only high score list
type ScoreRepository interface {
	Load(ctx context.Context) ([]models.ScoreRecord, error)
	Save(ctx context.Context, records []models.ScoreRecord) error
	Append(ctx context.Context, record models.ScoreRecord) error
}

// AttemptRepository handles per-user daily attempt counters, a nested
// map of attempt key -> ISO date -> count
type AttemptRepository interface {
	Load(ctx context.Context) (map[string]map[string]int, error)
	Save(ctx context.Context, counters map[string]map[string]int) error
}

// AssessmentRepository handles user-created assessments
type AssessmentRepository interface {
	Load(ctx context.Context) ([]models.Assessment, error)
	Save(ctx context.Context, assessments []models.Assessment) error
}

// LinkRepository handles user-added reference links keyed by
// "MCQ-<n>" / "FILL-<n>"
type LinkRepository interface {
	Load(ctx context.Context) (map[string][]string, error)
	Save(ctx context.Context, links map[string][]string) error
}

// CertResultRepository handles the append-only certification result log
type CertResultRepository interface {
	Load(ctx context.Context) ([]models.CertResult, error)
	Append(ctx context.Context, result models.CertResult) error
}
