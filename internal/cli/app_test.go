package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbatra/quizforge/internal/attempts"
	"github.com/hbatra/quizforge/internal/cli"
	"github.com/hbatra/quizforge/internal/config"
	"github.com/hbatra/quizforge/internal/repository/jsonfile"
	"github.com/hbatra/quizforge/internal/services"
	"github.com/hbatra/quizforge/internal/terminal"
)

type fixture struct {
	app     *cli.App
	out     *bytes.Buffer
	quizSvc services.QuizService
}

// newFixture builds an App over a temp data directory with the given
// scripted user input, one line per element.
func newFixture(t *testing.T, cfg config.Config, lines ...string) *fixture {
	t.Helper()

	dataDir := t.TempDir()
	cfg.DataDir = dataDir

	scoreRepo := jsonfile.NewScoreRepository(dataDir)
	quizSvc := services.NewQuizService(scoreRepo)
	certLimiter := attempts.NewLimiter(jsonfile.NewCertAttemptRepository(dataDir), nil)
	certSvc := services.NewCertificationService(
		certLimiter, jsonfile.NewCertResultRepository(dataDir), quizSvc, cfg.MaxCertAttemptsPerDay, nil)

	out := &bytes.Buffer{}
	app := &cli.App{
		Cfg:           cfg,
		QuizService:   quizSvc,
		AssessmentSvc: services.NewAssessmentService(jsonfile.NewAssessmentRepository(dataDir)),
		CertService:   certSvc,
		LinkService:   services.NewLinkService(jsonfile.NewLinkRepository(dataDir)),
		ExportService: services.NewExportService(dataDir),
		Limiter:       attempts.NewLimiter(jsonfile.NewAttemptRepository(dataDir), nil),
		In:            terminal.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n")),
		Out:           out,
	}
	return &fixture{app: app, out: out, quizSvc: quizSvc}
}

func testConfig() config.Config {
	return config.Config{
		LogLevel:               "ERROR",
		QuestionTimeoutSeconds: 5,
		MaxAttemptsPerDay:      3,
		MaxCertAttemptsPerDay:  1,
		DefaultPassMark:        70,
		NegativeMark:           0.25,
	}
}

func TestApp_AnonymousQuickQuiz(t *testing.T) {
	// Menu 1, no name, one question, correct answer (Q1 is B), exit.
	f := newFixture(t, testConfig(), "1", "", "1", "B", "0")

	f.app.Run(context.Background())

	output := f.out.String()
	assert.Contains(t, output, "QUIZ MENU")
	assert.Contains(t, output, "CORRECT!")
	assert.Contains(t, output, "Your score is: 100%")
	assert.Contains(t, output, "Goodbye!")

	best, err := f.quizSvc.HighScore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, best, "anonymous scores must not be recorded")
}

func TestApp_NamedQuickQuizRecordsScore(t *testing.T) {
	f := newFixture(t, testConfig(), "1", "Alice", "1", "B", "0")

	f.app.Run(context.Background())

	assert.Contains(t, f.out.String(), "attempt(s) left today")

	best, err := f.quizSvc.HighScore(context.Background())
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "Alice", best.Name)
	assert.Equal(t, 100, best.Score)
}

func TestApp_DailyQuotaBlocksNamedRuns(t *testing.T) {
	cfg := testConfig()
	cfg.MaxAttemptsPerDay = 1

	// First run consumes the only attempt; the second is refused.
	f := newFixture(t, cfg,
		"1", "Alice", "1", "B",
		"1", "Alice",
		"0")

	f.app.Run(context.Background())

	assert.Contains(t, f.out.String(), "used all your quiz attempts for today")
}

func TestApp_EndOfInputExits(t *testing.T) {
	f := newFixture(t, testConfig(), "9")

	// Input ends without an explicit exit choice; Run must return.
	f.app.Run(context.Background())

	assert.Contains(t, f.out.String(), "Invalid choice")
}

func TestApp_InvalidMenuChoiceReprompts(t *testing.T) {
	f := newFixture(t, testConfig(), "banana", "0")

	f.app.Run(context.Background())

	assert.Contains(t, f.out.String(), "Invalid choice. Please try again.")
	assert.Contains(t, f.out.String(), "Goodbye!")
}
