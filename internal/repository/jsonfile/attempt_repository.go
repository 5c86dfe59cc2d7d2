package jsonfile

import (
	"context"

	"github.com/hbatra/quizforge/internal/logger"
	"github.com/hbatra/quizforge/internal/repository"
)

type attemptRepository struct {
	path string
}

// NewAttemptRepository creates an AttemptRepository backed by
// attempts.json in the given data directory.
func NewAttemptRepository(dataDir string) repository.AttemptRepository {
	return &attemptRepository{path: join(dataDir, AttemptsFile)}
}

// NewCertAttemptRepository creates an AttemptRepository over the
// separate certification namespace, cert_attempts.json.
func NewCertAttemptRepository(dataDir string) repository.AttemptRepository {
	return &attemptRepository{path: join(dataDir, CertAttemptsFile)}
}

func (r *attemptRepository) Load(ctx context.Context) (map[string]map[string]int, error) {
	counters := make(map[string]map[string]int)
	if err := readJSON(ctx, r.path, &counters); err != nil {
		return nil, err
	}
	return counters, nil
}

func (r *attemptRepository) Save(ctx context.Context, counters map[string]map[string]int) error {
	log := logger.FromContext(ctx).WithPrefix("attempt_repo")

	if counters == nil {
		counters = make(map[string]map[string]int)
	}
	if err := writeJSON(ctx, r.path, counters, "  "); err != nil {
		return err
	}
	log.Debug("attempt counters saved: %d keys", len(counters))
	return nil
}
