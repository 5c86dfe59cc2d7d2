package jsonfile

import (
	"context"

	"github.com/hbatra/quizforge/internal/logger"
	"github.com/hbatra/quizforge/internal/models"
	"github.com/hbatra/quizforge/internal/repository"
)

type certResultRepository struct {
	path string
}

// NewCertResultRepository creates a CertResultRepository backed by
// certification_results.json in the given data directory.
func NewCertResultRepository(dataDir string) repository.CertResultRepository {
	return &certResultRepository{path: join(dataDir, CertResultsFile)}
}

func (r *certResultRepository) Load(ctx context.Context) ([]models.CertResult, error) {
	var results []models.CertResult
	if err := readJSON(ctx, r.path, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *certResultRepository) Append(ctx context.Context, result models.CertResult) error {
	log := logger.FromContext(ctx).WithPrefix("cert_result_repo")

	results, err := r.Load(ctx)
	if err != nil {
		return err
	}
	results = append(results, result)
	if err := writeJSON(ctx, r.path, results, "  "); err != nil {
		return err
	}
	log.Debug("certification result recorded: name=%s, score=%d, passed=%v", result.Name, result.Score, result.Passed)
	return nil
}
