package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbatra/quizforge/internal/errors"
	"github.com/hbatra/quizforge/internal/logger"
	"github.com/hbatra/quizforge/internal/quizbank"
)

// Export file names inside the data directory.
const (
	ExportedQuestionsFile = "exported_questions.json"
	ExportedAnswersFile   = "exported_answers.json"
)

// ExportService writes pretty-printed snapshots of the static question
// bank and its derived answer key.
type ExportService interface {
	ExportQuestions(ctx context.Context) (string, error)
	ExportAnswers(ctx context.Context) (string, error)
}

type exportService struct {
	dataDir string
}

// NewExportService creates a new ExportService writing into dataDir.
func NewExportService(dataDir string) ExportService {
	return &exportService{dataDir: dataDir}
}

type mcqAnswerExport struct {
	Number            int      `json:"number"`
	Question          string   `json:"question"`
	Options           []string `json:"options"`
	CorrectLetter     string   `json:"correct_letter"`
	CorrectOptionText string   `json:"correct_option_text"`
	Topic             string   `json:"topic"`
	Difficulty        string   `json:"difficulty"`
}

type fillAnswerExport struct {
	Number          int      `json:"number"`
	Question        string   `json:"question"`
	AcceptedAnswers []string `json:"accepted_answers"`
	RawAnswer       string   `json:"raw_answer"`
	Topic           string   `json:"topic"`
	Difficulty      string   `json:"difficulty"`
}

type answerKeyExport struct {
	MCQAnswers    []mcqAnswerExport  `json:"mcq_answers"`
	FillInAnswers []fillAnswerExport `json:"fill_in_answers"`
}

func (s *exportService) ExportQuestions(ctx context.Context) (string, error) {
	return s.write(ctx, ExportedQuestionsFile, quizbank.All())
}

func (s *exportService) ExportAnswers(ctx context.Context) (string, error) {
	key := answerKeyExport{
		MCQAnswers:    []mcqAnswerExport{},
		FillInAnswers: []fillAnswerExport{},
	}
	for i, q := range quizbank.All() {
		letter := strings.ToUpper(strings.TrimSpace(q.Answer))
		key.MCQAnswers = append(key.MCQAnswers, mcqAnswerExport{
			Number:            i + 1,
			Question:          q.Text,
			Options:           q.Options,
			CorrectLetter:     letter,
			CorrectOptionText: quizbank.OptionText(q.Options, letter),
			Topic:             q.Topic,
			Difficulty:        string(q.Difficulty),
		})
	}
	for i, q := range quizbank.FillIns() {
		var accepted []string
		for _, v := range strings.Split(q.Answer, "|") {
			if t := strings.TrimSpace(v); t != "" {
				accepted = append(accepted, t)
			}
		}
		key.FillInAnswers = append(key.FillInAnswers, fillAnswerExport{
			Number:          i + 1,
			Question:        q.Text,
			AcceptedAnswers: accepted,
			RawAnswer:       q.Answer,
			Topic:           q.Topic,
			Difficulty:      string(q.Difficulty),
		})
	}
	return s.write(ctx, ExportedAnswersFile, key)
}

func (s *exportService) write(ctx context.Context, name string, v any) (string, error) {
	log := logger.FromContext(ctx)

	path := filepath.Join(s.dataDir, name)
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return "", errors.NewInternalError(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Error("failed to write export %s: %v", path, err)
		return "", errors.NewStorageError(path, err)
	}
	log.Info("export written: %s", path)
	return path, nil
}
