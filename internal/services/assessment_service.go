package services

import (
	"context"
	"strings"

	"github.com/hbatra/quizforge/internal/errors"
	"github.com/hbatra/quizforge/internal/logger"
	"github.com/hbatra/quizforge/internal/models"
	"github.com/hbatra/quizforge/internal/repository"
)

// AssessmentService handles custom assessment CRUD. Every mutation
// validates before saving; an invalid selection never causes a partial
// write.
type AssessmentService interface {
	List(ctx context.Context) ([]models.Assessment, error)
	Get(ctx context.Context, index int) (*models.Assessment, error)
	Create(ctx context.Context, a models.Assessment) error
	Delete(ctx context.Context, index int) error
	AddQuestion(ctx context.Context, index int, question string, options []string, answer string) error
	EditQuestion(ctx context.Context, index, questionIndex int, question string, options []string, answer string) error
	DeleteQuestion(ctx context.Context, index, questionIndex int) error
}

type assessmentService struct {
	repo repository.AssessmentRepository
}

// NewAssessmentService creates a new AssessmentService
func NewAssessmentService(repo repository.AssessmentRepository) AssessmentService {
	return &assessmentService{repo: repo}
}

// validate enforces the parallel-list invariant: questions, options and
// answers must stay the same length, with four labeled options and a
// single letter answer per question.
func validate(a models.Assessment) error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.NewValidationError("name", "cannot be empty")
	}
	if len(a.Questions) != len(a.Options) || len(a.Questions) != len(a.Answers) {
		return errors.NewValidationError("assessment", "questions, options and answers must have the same length")
	}
	for i := range a.Questions {
		if err := validateQuestion(a.Questions[i], a.Options[i], a.Answers[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateQuestion(question string, options []string, answer string) error {
	if strings.TrimSpace(question) == "" {
		return errors.NewValidationError("question", "cannot be empty")
	}
	if len(options) != 4 {
		return errors.NewValidationError("options", "exactly four options are required")
	}
	letter := strings.ToUpper(strings.TrimSpace(answer))
	switch letter {
	case "A", "B", "C", "D":
		return nil
	default:
		return errors.NewValidationError("answer", "must be one of A, B, C, D")
	}
}

func (s *assessmentService) List(ctx context.Context) ([]models.Assessment, error) {
	assessments, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return assessments, nil
}

func (s *assessmentService) Get(ctx context.Context, index int) (*models.Assessment, error) {
	assessments, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(assessments) {
		return nil, errors.NewNotFoundError("assessment", index+1)
	}
	return &assessments[index], nil
}

func (s *assessmentService) Create(ctx context.Context, a models.Assessment) error {
	log := logger.FromContext(ctx)

	if err := validate(a); err != nil {
		return err
	}
	assessments, err := s.List(ctx)
	if err != nil {
		return err
	}
	assessments = append(assessments, a)
	if err := s.repo.Save(ctx, assessments); err != nil {
		log.Error("failed to save assessments: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("assessment created: name=%s, questions=%d", a.Name, len(a.Questions))
	return nil
}

func (s *assessmentService) Delete(ctx context.Context, index int) error {
	log := logger.FromContext(ctx)

	assessments, err := s.List(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(assessments) {
		return errors.NewNotFoundError("assessment", index+1)
	}
	name := assessments[index].Name
	assessments = append(assessments[:index], assessments[index+1:]...)
	if err := s.repo.Save(ctx, assessments); err != nil {
		log.Error("failed to save assessments: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("assessment deleted: name=%s", name)
	return nil
}

func (s *assessmentService) AddQuestion(ctx context.Context, index int, question string, options []string, answer string) error {
	return s.mutate(ctx, index, func(a *models.Assessment) error {
		if err := validateQuestion(question, options, answer); err != nil {
			return err
		}
		a.Questions = append(a.Questions, question)
		a.Options = append(a.Options, options)
		a.Answers = append(a.Answers, strings.ToUpper(strings.TrimSpace(answer)))
		return nil
	})
}

func (s *assessmentService) EditQuestion(ctx context.Context, index, questionIndex int, question string, options []string, answer string) error {
	return s.mutate(ctx, index, func(a *models.Assessment) error {
		if questionIndex < 0 || questionIndex >= len(a.Questions) {
			return errors.NewNotFoundError("question", questionIndex+1)
		}
		if err := validateQuestion(question, options, answer); err != nil {
			return err
		}
		a.Questions[questionIndex] = question
		a.Options[questionIndex] = options
		a.Answers[questionIndex] = strings.ToUpper(strings.TrimSpace(answer))
		return nil
	})
}

func (s *assessmentService) DeleteQuestion(ctx context.Context, index, questionIndex int) error {
	return s.mutate(ctx, index, func(a *models.Assessment) error {
		if questionIndex < 0 || questionIndex >= len(a.Questions) {
			return errors.NewNotFoundError("question", questionIndex+1)
		}
		a.Questions = append(a.Questions[:questionIndex], a.Questions[questionIndex+1:]...)
		a.Options = append(a.Options[:questionIndex], a.Options[questionIndex+1:]...)
		a.Answers = append(a.Answers[:questionIndex], a.Answers[questionIndex+1:]...)
		return nil
	})
}

// mutate loads, applies fn to the selected assessment and saves only
// when fn succeeds.
func (s *assessmentService) mutate(ctx context.Context, index int, fn func(*models.Assessment) error) error {
	log := logger.FromContext(ctx)

	assessments, err := s.List(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(assessments) {
		return errors.NewNotFoundError("assessment", index+1)
	}
	if err := fn(&assessments[index]); err != nil {
		return err
	}
	if err := validate(assessments[index]); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, assessments); err != nil {
		log.Error("failed to save assessments: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}
