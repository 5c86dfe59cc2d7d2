package main

import (
	"context"
	"os"

	"github.com/hbatra/quizforge/internal/attempts"
	"github.com/hbatra/quizforge/internal/cli"
	"github.com/hbatra/quizforge/internal/config"
	"github.com/hbatra/quizforge/internal/logger"
	"github.com/hbatra/quizforge/internal/repository/jsonfile"
	"github.com/hbatra/quizforge/internal/services"
	"github.com/hbatra/quizforge/internal/terminal"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log.Debug("configuration loaded")
	log.Debug("data_dir=%s", cfg.DataDir)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("question_timeout_seconds=%d", cfg.QuestionTimeoutSeconds)
	log.Debug("max_attempts_per_day=%d", cfg.MaxAttemptsPerDay)
	log.Debug("max_cert_attempts_per_day=%d", cfg.MaxCertAttemptsPerDay)
	log.Debug("default_pass_mark=%d", cfg.DefaultPassMark)
	log.Debug("negative_mark=%v", cfg.NegativeMark)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Error("failed to create data directory %s: %v", cfg.DataDir, err)
		os.Exit(1)
	}

	// Repositories
	scoreRepo := jsonfile.NewScoreRepository(cfg.DataDir)
	attemptRepo := jsonfile.NewAttemptRepository(cfg.DataDir)
	certAttemptRepo := jsonfile.NewCertAttemptRepository(cfg.DataDir)
	assessmentRepo := jsonfile.NewAssessmentRepository(cfg.DataDir)
	linkRepo := jsonfile.NewLinkRepository(cfg.DataDir)
	certResultRepo := jsonfile.NewCertResultRepository(cfg.DataDir)

	// Limiters share one repository per namespace; certification gets
	// its own so exam attempts never count against regular quizzes.
	quizLimiter := attempts.NewLimiter(attemptRepo, nil)
	certLimiter := attempts.NewLimiter(certAttemptRepo, nil)

	// Services
	quizService := services.NewQuizService(scoreRepo)
	assessmentService := services.NewAssessmentService(assessmentRepo)
	certService := services.NewCertificationService(certLimiter, certResultRepo, quizService, cfg.MaxCertAttemptsPerDay, nil)
	linkService := services.NewLinkService(linkRepo)
	exportService := services.NewExportService(cfg.DataDir)

	app := &cli.App{
		Cfg:           cfg,
		QuizService:   quizService,
		AssessmentSvc: assessmentService,
		CertService:   certService,
		LinkService:   linkService,
		ExportService: exportService,
		Limiter:       quizLimiter,
		In:            terminal.NewReader(os.Stdin),
		Out:           os.Stdout,
	}

	ctx := logger.NewContext(context.Background(), log)
	app.Run(ctx)
}
