package jsonfile

import (
	"context"

	"github.com/hbatra/quizforge/internal/logger"
	"github.com/hbatra/quizforge/internal/models"
	"github.com/hbatra/quizforge/internal/repository"
)

type assessmentRepository struct {
	path string
}

// NewAssessmentRepository creates an AssessmentRepository backed by
// custom_assessment.json in the given data directory.
func NewAssessmentRepository(dataDir string) repository.AssessmentRepository {
	return &assessmentRepository{path: join(dataDir, AssessmentsFile)}
}

func (r *assessmentRepository) Load(ctx context.Context) ([]models.Assessment, error) {
	log := logger.FromContext(ctx).WithPrefix("assessment_repo")

	var assessments []models.Assessment
	if err := readJSON(ctx, r.path, &assessments); err != nil {
		return nil, err
	}
	log.Debug("loaded %d assessments", len(assessments))
	return assessments, nil
}

func (r *assessmentRepository) Save(ctx context.Context, assessments []models.Assessment) error {
	if assessments == nil {
		assessments = []models.Assessment{}
	}
	return writeJSON(ctx, r.path, assessments, "")
}
