package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/hbatra/quizforge/internal/models"
	"github.com/hbatra/quizforge/internal/quiz"
	"github.com/hbatra/quizforge/internal/quizbank"
	"github.com/hbatra/quizforge/internal/scoring"
)

func (a *App) certificationMenu(ctx context.Context) {
	for !a.eof {
		headerBanner.Fprintln(a.Out, "\n====== CERTIFICATION ======")
		fmt.Fprintln(a.Out, "1. Take the certification exam")
		fmt.Fprintln(a.Out, "2. My certification history")
		fmt.Fprintln(a.Out, "3. All certification attempts")
		fmt.Fprintln(a.Out, "0. Back")

		switch a.menuChoice() {
		case "1":
			a.certificationExam(ctx)
		case "2":
			a.certificationHistory(ctx)
		case "3":
			a.allCertifications(ctx)
		case "0":
			return
		default:
			fmt.Fprintln(a.Out, "Invalid choice. Please try again.")
		}
	}
}

// certificationExam runs the full shuffled bank under exam rules. The
// attempt is recorded before any question is shown so abandoning the
// exam still consumes the daily allowance.
func (a *App) certificationExam(ctx context.Context) {
	name := a.askString("Enter your full name (required for the certificate): ")
	if name == "" {
		fmt.Fprintln(a.Out, "Certification requires a name.")
		return
	}

	allowed, remaining, err := a.CertService.CanAttempt(ctx, name)
	if err != nil {
		a.printError(err)
		return
	}
	if !allowed {
		fmt.Fprintln(a.Out, "You have used your certification attempt for today. Try again tomorrow.")
		return
	}
	fmt.Fprintf(a.Out, "You have %d certification attempt(s) left today.\n", remaining)

	passMark := a.askIntOr(
		fmt.Sprintf("Pass mark percent (default %d): ", a.Cfg.DefaultPassMark),
		a.Cfg.DefaultPassMark,
		fmt.Sprintf("Invalid input. Using the default pass mark of %d%%.", a.Cfg.DefaultPassMark),
	)
	if passMark < 0 || passMark > 100 {
		fmt.Fprintf(a.Out, "Pass mark must be 0 to 100. Using %d%%.\n", a.Cfg.DefaultPassMark)
		passMark = a.Cfg.DefaultPassMark
	}

	timed := a.askString("Time each question? (y/N): ") == "y"
	cfg := quiz.Config{Policy: scoring.Standard{}, Shuffle: true}
	if timed {
		cfg.PerQuestionTimeout = time.Duration(a.Cfg.QuestionTimeoutSeconds) * time.Second
	}

	if err := a.CertService.RecordAttempt(ctx, name); err != nil {
		a.printError(err)
		return
	}

	items := quiz.MCQItems(quizbank.All())
	fmt.Fprintf(a.Out, "\nCertification exam: %d questions, pass mark %d%%. Good luck!\n", len(items), passMark)
	out := a.session.Run(ctx, items, cfg)

	result, err := a.CertService.RecordResult(ctx, name, out.Result.Percent, passMark, len(items))
	if err != nil {
		a.printError(err)
		return
	}
	if result.Passed {
		successBanner.Fprintf(a.Out, "\nCONGRATULATIONS %s! You passed with %d%%.\n", result.Name, result.Score)
	} else {
		failBanner.Fprintf(a.Out, "\nSorry %s, %d%% is below the %d%% pass mark.\n", result.Name, result.Score, passMark)
	}
}

func (a *App) certificationHistory(ctx context.Context) {
	name := a.askString("Enter your name: ")
	if name == "" {
		fmt.Fprintln(a.Out, "Name cannot be empty.")
		return
	}
	results, err := a.CertService.HistoryFor(ctx, name)
	if err != nil {
		a.printError(err)
		return
	}
	if len(results) == 0 {
		fmt.Fprintf(a.Out, "No certification attempts found for '%s'.\n", name)
		return
	}
	headerBanner.Fprintln(a.Out, "\n===== MY CERTIFICATION HISTORY =====")
	a.printCertResults(results)
}

func (a *App) allCertifications(ctx context.Context) {
	results, err := a.CertService.AllResults(ctx)
	if err != nil {
		a.printError(err)
		return
	}
	if len(results) == 0 {
		fmt.Fprintln(a.Out, "No certification attempts recorded yet.")
		return
	}
	headerBanner.Fprintln(a.Out, "\n===== ALL CERTIFICATION ATTEMPTS =====")
	a.printCertResults(results)
}

func (a *App) printCertResults(results []models.CertResult) {
	for _, r := range results {
		status := "FAILED"
		if r.Passed {
			status = "PASSED"
		}
		fmt.Fprintf(a.Out, "%s | %-20s | %3d%% (pass mark %d%%) | %s\n",
			r.Timestamp, r.Name, r.Score, r.PassMark, status)
	}
}
