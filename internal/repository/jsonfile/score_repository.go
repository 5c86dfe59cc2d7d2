package jsonfile

import (
	"context"

	"github.com/hbatra/quizforge/internal/logger"
	"github.com/hbatra/quizforge/internal/models"
	"github.com/hbatra/quizforge/internal/repository"
)

type scoreRepository struct {
	path string
}

// NewScoreRepository creates a ScoreRepository backed by
// high_scores.json in the given data directory.
func NewScoreRepository(dataDir string) repository.ScoreRepository {
	return &scoreRepository{path: join(dataDir, ScoresFile)}
}

func (r *scoreRepository) Load(ctx context.Context) ([]models.ScoreRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("score_repo")

	var records []models.ScoreRecord
	if err := readJSON(ctx, r.path, &records); err != nil {
		return nil, err
	}
	log.Debug("loaded %d score records", len(records))
	return records, nil
}

func (r *scoreRepository) Save(ctx context.Context, records []models.ScoreRecord) error {
	if records == nil {
		records = []models.ScoreRecord{}
	}
	return writeJSON(ctx, r.path, records, "")
}

func (r *scoreRepository) Append(ctx context.Context, record models.ScoreRecord) error {
	log := logger.FromContext(ctx).WithPrefix("score_repo")

	records, err := r.Load(ctx)
	if err != nil {
		return err
	}
	records = append(records, record)
	if err := r.Save(ctx, records); err != nil {
		return err
	}
	log.Debug("score recorded: name=%s, score=%d", record.Name, record.Score)
	return nil
}
