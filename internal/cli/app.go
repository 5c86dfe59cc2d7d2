// Package cli implements the nested text-menu interface. Menus accept
// "0" to go back; bad menu input re-prompts, while bad in-quiz numeric
// input falls back to a documented default instead of aborting.
package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/hbatra/quizforge/internal/attempts"
	"github.com/hbatra/quizforge/internal/config"
	"github.com/hbatra/quizforge/internal/logger"
	"github.com/hbatra/quizforge/internal/quiz"
	"github.com/hbatra/quizforge/internal/services"
	"github.com/hbatra/quizforge/internal/terminal"
)

// App wires the services to the terminal menus.
type App struct {
	Cfg             config.Config
	QuizService     services.QuizService
	AssessmentSvc   services.AssessmentService
	CertService     services.CertificationService
	LinkService     services.LinkService
	ExportService   services.ExportService
	Limiter         attempts.Limiter
	In              terminal.LineReader
	Out             io.Writer
	Rng             *rand.Rand

	session *quiz.Session
	eof     bool
}

var (
	headerBanner  = color.New(color.FgCyan, color.Bold)
	successBanner = color.New(color.FgGreen, color.Bold)
	failBanner    = color.New(color.FgRed, color.Bold)
)

// Run drives the main menu until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	log := logger.FromContext(ctx)
	log.Debug("starting menu loop")

	if a.Rng == nil {
		a.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	a.session = quiz.NewSession(a.In, a.Out, a.Rng)

	for !a.eof {
		headerBanner.Fprintln(a.Out, "\n====== QUIZ MENU ======")
		fmt.Fprintln(a.Out, "1. Quick quiz")
		fmt.Fprintln(a.Out, "2. Quiz modes")
		fmt.Fprintln(a.Out, "3. Assessments")
		fmt.Fprintln(a.Out, "4. Review & tools")
		fmt.Fprintln(a.Out, "5. Certification exam")
		fmt.Fprintln(a.Out, "0. Exit")

		switch a.menuChoice() {
		case "1":
			a.quickQuiz(ctx)
		case "2":
			a.quizModesMenu(ctx)
		case "3":
			a.assessmentsMenu(ctx)
		case "4":
			a.reviewMenu(ctx)
		case "5":
			a.certificationMenu(ctx)
		case "0":
			fmt.Fprintln(a.Out, "Goodbye!")
			return
		default:
			fmt.Fprintln(a.Out, "Invalid choice. Please try again.")
		}
	}
}

// menuChoice reads one menu selection. End of input behaves like "0".
func (a *App) menuChoice() string {
	return a.askString("Enter choice: ")
}

func (a *App) readLine() string {
	line, err := a.In.ReadLine()
	if err != nil {
		a.eof = true
		return "0"
	}
	return strings.TrimSpace(line)
}

func (a *App) askString(prompt string) string {
	fmt.Fprint(a.Out, prompt)
	return a.readLine()
}

// askIntOr asks for a number and substitutes def on non-numeric input,
// printing the fallback message instead of aborting.
func (a *App) askIntOr(prompt string, def int, fallbackMsg string) int {
	raw := a.askString(prompt)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(a.Out, fallbackMsg)
		return def
	}
	return n
}

// askIntInRange re-prompts until the user enters a number in [min, max].
func (a *App) askIntInRange(prompt string, min, max int) int {
	for !a.eof {
		raw := a.askString(prompt)
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(a.Out, "Please enter a valid number.")
			continue
		}
		if n < min || n > max {
			fmt.Fprintf(a.Out, "Please enter a value between %d and %d.\n", min, max)
			continue
		}
		return n
	}
	return min
}

// askFloatOr asks for a float and substitutes def on bad input.
func (a *App) askFloatOr(prompt string, def float64, fallbackMsg string) float64 {
	raw := a.askString(prompt)
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		fmt.Fprintln(a.Out, fallbackMsg)
		return def
	}
	return f
}

// askName prompts for an optional player name. Empty means anonymous:
// the run is not gated and the score is not recorded.
func (a *App) askName() string {
	return a.askString("Enter your name (press Enter to stay anonymous): ")
}

// gateNamedRun applies the daily quota to named runs: check, inform the
// user how many attempts remain, then record before the quiz starts so
// a retry after seeing questions still counts.
func (a *App) gateNamedRun(ctx context.Context, key string) bool {
	if key == "" {
		return true
	}
	allowed, remaining, err := a.Limiter.CanAttempt(ctx, key, a.Cfg.MaxAttemptsPerDay)
	if err != nil {
		a.printError(err)
		return false
	}
	if !allowed {
		fmt.Fprintln(a.Out, "You have used all your quiz attempts for today. Try again tomorrow.")
		return false
	}
	fmt.Fprintf(a.Out, "You have %d attempt(s) left today.\n", remaining)
	if err := a.Limiter.RecordAttempt(ctx, key); err != nil {
		a.printError(err)
		return false
	}
	return true
}

// recordScore persists the result for named runs.
func (a *App) recordScore(ctx context.Context, name string, percent int) {
	if err := a.QuizService.RecordScore(ctx, name, percent); err != nil {
		a.printError(err)
	}
}

// printError renders any failure as a message and returns control to
// the menu; nothing in the CLI is fatal.
func (a *App) printError(err error) {
	failBanner.Fprintf(a.Out, "%v\n", err)
}
