package services_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbatra/quizforge/internal/models"
	"github.com/hbatra/quizforge/internal/quizbank"
	"github.com/hbatra/quizforge/internal/services"
)

func TestExportQuestions(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()
	svc := services.NewExportService(dataDir)

	path, err := svc.ExportQuestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, services.ExportedQuestionsFile), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var exported []models.Question
	require.NoError(t, json.Unmarshal(data, &exported))
	assert.Len(t, exported, len(quizbank.All()))
	assert.Equal(t, quizbank.All()[0].Text, exported[0].Text)
}

func TestExportAnswers(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()
	svc := services.NewExportService(dataDir)

	path, err := svc.ExportAnswers(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, services.ExportedAnswersFile), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var key struct {
		MCQAnswers []struct {
			Number            int    `json:"number"`
			CorrectLetter     string `json:"correct_letter"`
			CorrectOptionText string `json:"correct_option_text"`
		} `json:"mcq_answers"`
		FillInAnswers []struct {
			Number          int      `json:"number"`
			AcceptedAnswers []string `json:"accepted_answers"`
		} `json:"fill_in_answers"`
	}
	require.NoError(t, json.Unmarshal(data, &key))

	require.Len(t, key.MCQAnswers, len(quizbank.All()))
	require.Len(t, key.FillInAnswers, len(quizbank.FillIns()))

	first := key.MCQAnswers[0]
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, "B", first.CorrectLetter)
	assert.Equal(t, "B. Oxygen", first.CorrectOptionText)

	// The multi-variant fill-in answer is split into its variants.
	assert.Equal(t, []string{"mitochondria", "mitochondrion"}, key.FillInAnswers[2].AcceptedAnswers)
}
