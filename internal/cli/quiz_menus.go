package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/hbatra/quizforge/internal/attempts"
	"github.com/hbatra/quizforge/internal/models"
	"github.com/hbatra/quizforge/internal/quiz"
	"github.com/hbatra/quizforge/internal/quizbank"
	"github.com/hbatra/quizforge/internal/scoring"
)

func (a *App) quickQuiz(ctx context.Context) {
	name := a.askName()
	if !a.gateNamedRun(ctx, attempts.AttemptKey(name)) {
		return
	}
	items := quiz.MCQItems(a.pickQuestionCount(quizbank.All()))
	out := a.session.Run(ctx, items, quiz.Config{Policy: scoring.Standard{}})
	a.recordScore(ctx, name, out.Result.Percent)
}

func (a *App) quizModesMenu(ctx context.Context) {
	for !a.eof {
		headerBanner.Fprintln(a.Out, "\n====== QUIZ MODES ======")
		fmt.Fprintln(a.Out, "1. Timed quiz")
		fmt.Fprintln(a.Out, "2. Quiz by topic")
		fmt.Fprintln(a.Out, "3. Quiz by difficulty")
		fmt.Fprintln(a.Out, "4. Negative marking quiz")
		fmt.Fprintln(a.Out, "5. Age-based quiz")
		fmt.Fprintln(a.Out, "6. 50/50 lifeline quiz")
		fmt.Fprintln(a.Out, "7. Challenge (beat the clock)")
		fmt.Fprintln(a.Out, "8. Streak mode (until first wrong)")
		fmt.Fprintln(a.Out, "9. Skip-allowed quiz")
		fmt.Fprintln(a.Out, "10. Fill-in-the-blanks quiz")
		fmt.Fprintln(a.Out, "11. Wrong-answer training")
		fmt.Fprintln(a.Out, "12. My attempt summary")
		fmt.Fprintln(a.Out, "13. Learning mode")
		fmt.Fprintln(a.Out, "0. Back")

		switch a.menuChoice() {
		case "1":
			a.timedQuiz(ctx)
		case "2":
			a.topicQuiz(ctx)
		case "3":
			a.difficultyQuiz(ctx)
		case "4":
			a.negativeMarkQuiz(ctx)
		case "5":
			a.ageBasedQuiz(ctx)
		case "6":
			a.fiftyFiftyQuiz(ctx)
		case "7":
			a.challengeQuiz(ctx)
		case "8":
			a.streakQuiz(ctx)
		case "9":
			a.skipQuiz(ctx)
		case "10":
			a.fillInQuiz(ctx)
		case "11":
			a.wrongAnswerQuiz(ctx)
		case "12":
			a.attemptSummary(ctx)
		case "13":
			a.learningMode(ctx)
		case "0":
			return
		default:
			fmt.Fprintln(a.Out, "Invalid choice. Please try again.")
		}
	}
}

func (a *App) timedQuiz(ctx context.Context) {
	name := a.askName()
	items := quiz.MCQItems(a.pickQuestionCount(quizbank.All()))
	out := a.session.Run(ctx, items, quiz.Config{
		Policy:             scoring.Standard{},
		PerQuestionTimeout: time.Duration(a.Cfg.QuestionTimeoutSeconds) * time.Second,
	})
	a.recordScore(ctx, name, out.Result.Percent)
}

func (a *App) topicQuiz(ctx context.Context) {
	topics := quizbank.Topics()
	fmt.Fprintln(a.Out, "\nAvailable topics:")
	for i, t := range topics {
		fmt.Fprintf(a.Out, "%d. %s\n", i+1, t)
	}
	sel := a.askIntOr("Enter topic number: ", 0, "Invalid input.")
	if sel < 1 || sel > len(topics) {
		fmt.Fprintln(a.Out, "Invalid selection.")
		return
	}
	name := a.askName()
	items := quiz.MCQItems(quizbank.ByTopic(topics[sel-1]))
	out := a.session.Run(ctx, items, quiz.Config{Policy: scoring.Standard{}})
	a.recordScore(ctx, name, out.Result.Percent)
}

func (a *App) difficultyQuiz(ctx context.Context) {
	fmt.Fprintln(a.Out, "\n1. Easy\n2. Medium\n3. Hard")
	var level models.Difficulty
	switch a.menuChoice() {
	case "1":
		level = models.Easy
	case "2":
		level = models.Medium
	case "3":
		level = models.Hard
	default:
		fmt.Fprintln(a.Out, "Invalid selection.")
		return
	}
	name := a.askName()
	items := quiz.MCQItems(quizbank.ByDifficulty(level))
	out := a.session.Run(ctx, items, quiz.Config{Policy: scoring.Standard{}})
	a.recordScore(ctx, name, out.Result.Percent)
}

func (a *App) negativeMarkQuiz(ctx context.Context) {
	name := a.askName()
	penalty := a.askFloatOr(
		fmt.Sprintf("Penalty per wrong answer (default %.2f): ", a.Cfg.NegativeMark),
		a.Cfg.NegativeMark,
		fmt.Sprintf("Invalid input. Using default penalty of %.2f.", a.Cfg.NegativeMark),
	)
	fmt.Fprintf(a.Out, "\nNegative marking is ON: -%v for each wrong answer\n", penalty)

	items := quiz.MCQItems(a.pickQuestionCount(quizbank.All()))
	out := a.session.Run(ctx, items, quiz.Config{Policy: scoring.NegativeMarking{Penalty: penalty}})

	r := out.Result
	fmt.Fprintln(a.Out, "----------------------")
	fmt.Fprintln(a.Out, "NEGATIVE QUIZ RESULTS")
	fmt.Fprintln(a.Out, "----------------------")
	fmt.Fprintf(a.Out, "Total questions : %d\n", r.Asked)
	fmt.Fprintf(a.Out, "Correct answers : %d\n", r.Correct)
	fmt.Fprintf(a.Out, "Wrong answers   : %d\n", r.Wrong)
	fmt.Fprintf(a.Out, "Negative mark   : -%v per wrong answer\n", penalty)
	fmt.Fprintf(a.Out, "Total penalty   : -%v marks\n", penalty*float64(r.Wrong))
	fmt.Fprintf(a.Out, "Final score     : %.2f / %d\n", r.Raw, r.Asked)

	a.recordScore(ctx, name, r.Percent)
}

// ageBasedQuiz maps the player's age to a difficulty level: under 13
// gets Easy, teenagers get Medium, adults get Hard.
func (a *App) ageBasedQuiz(ctx context.Context) {
	age := a.askIntOr("Enter your age: ", 0, "Invalid input. Using easy questions.")
	level := models.Easy
	switch {
	case age >= 18:
		level = models.Hard
	case age >= 13:
		level = models.Medium
	}
	fmt.Fprintf(a.Out, "Selected difficulty: %s\n", level)

	name := a.askName()
	items := quiz.MCQItems(quizbank.ByDifficulty(level))
	out := a.session.Run(ctx, items, quiz.Config{Policy: scoring.Standard{}})
	a.recordScore(ctx, name, out.Result.Percent)
}

func (a *App) fiftyFiftyQuiz(ctx context.Context) {
	name := a.askName()
	fmt.Fprintln(a.Out, "You may type 50 on one question to remove two wrong options.")
	items := quiz.MCQItems(a.pickQuestionCount(quizbank.All()))
	out := a.session.Run(ctx, items, quiz.Config{Policy: scoring.Standard{}, FiftyFifty: true})
	a.recordScore(ctx, name, out.Result.Percent)
}

func (a *App) challengeQuiz(ctx context.Context) {
	name := a.askName()
	minutes := a.askIntInRange("Enter challenge duration in minutes (2 to 5): ", 2, 5)
	fmt.Fprintf(a.Out, "\nChallenge started for %d minutes! Answer as many as you can.\n", minutes)

	items := quiz.MCQItems(quizbank.All())
	out := a.session.RunChallenge(ctx, items, time.Duration(minutes)*time.Minute)

	r := out.Result
	fmt.Fprintln(a.Out, "----------------------")
	fmt.Fprintln(a.Out, "CHALLENGE RESULTS")
	fmt.Fprintln(a.Out, "----------------------")
	fmt.Fprintf(a.Out, "Total time        : %d minutes\n", minutes)
	fmt.Fprintf(a.Out, "Questions answered: %d\n", r.Asked)
	fmt.Fprintf(a.Out, "Correct answers   : %d\n", r.Correct)
	fmt.Fprintf(a.Out, "Accuracy          : %d%%\n", r.Percent)

	a.recordScore(ctx, name, r.Percent)
}

func (a *App) streakQuiz(ctx context.Context) {
	name := a.askName()
	items := quiz.MCQItems(quizbank.All())
	out := a.session.Run(ctx, items, quiz.Config{Policy: scoring.Streak{}, Shuffle: true})

	r := out.Result
	fmt.Fprintln(a.Out, "-------------------------")
	fmt.Fprintln(a.Out, "STREAK MODE QUIZ RESULTS")
	fmt.Fprintln(a.Out, "-------------------------")
	fmt.Fprintf(a.Out, "Questions answered : %d\n", r.Asked)
	fmt.Fprintf(a.Out, "Correct in a row   : %d\n", r.Correct)
	if r.Correct == r.Asked && r.Asked == len(items) && r.Asked > 0 {
		successBanner.Fprintln(a.Out, "Amazing! You answered ALL questions correctly!")
	}

	// Streak runs are recorded even for an empty question set.
	a.recordScore(ctx, name, r.Percent)
}

func (a *App) skipQuiz(ctx context.Context) {
	name := a.askName()
	fmt.Fprintln(a.Out, "Type S (or press Enter) to skip a question; skips do not count against you.")
	items := quiz.MCQItems(a.pickQuestionCount(quizbank.All()))
	out := a.session.Run(ctx, items, quiz.Config{Policy: scoring.SkipAware{}, AllowSkip: true})

	r := out.Result
	fmt.Fprintf(a.Out, "Questions skipped  : %d\n", r.Skipped)
	fmt.Fprintf(a.Out, "Questions answered : %d\n", r.Asked)

	a.recordScore(ctx, name, r.Percent)
}

func (a *App) fillInQuiz(ctx context.Context) {
	name := a.askName()
	items := quiz.FillInItems(quizbank.FillIns())
	out := a.session.Run(ctx, items, quiz.Config{Policy: scoring.Standard{}})
	a.recordScore(ctx, name, out.Result.Percent)
}

func (a *App) attemptSummary(ctx context.Context) {
	name := a.askString("Enter your name: ")
	if name == "" {
		fmt.Fprintln(a.Out, "Name cannot be empty.")
		return
	}
	records, err := a.QuizService.UserAttempts(ctx, name)
	if err != nil {
		a.printError(err)
		return
	}
	if len(records) == 0 {
		fmt.Fprintf(a.Out, "\nNo quiz attempts found for '%s'.\n", name)
		return
	}
	best, sum := 0, 0
	for _, r := range records {
		if r.Score > best {
			best = r.Score
		}
		sum += r.Score
	}
	headerBanner.Fprintln(a.Out, "\n===== ATTEMPT SUMMARY =====")
	fmt.Fprintf(a.Out, "User           : %s\n", name)
	fmt.Fprintf(a.Out, "Total attempts : %d\n", len(records))
	fmt.Fprintf(a.Out, "Best score     : %d%%\n", best)
	fmt.Fprintf(a.Out, "Average score  : %d%%\n", sum/len(records))
	fmt.Fprintln(a.Out, "===========================")
}

// pickQuestionCount asks how many questions to use and trims the set.
// Bad input falls back to the full set.
func (a *App) pickQuestionCount(qs []models.Question) []models.Question {
	if len(qs) == 0 {
		return qs
	}
	n := a.askIntOr(
		fmt.Sprintf("How many questions? (1 to %d, Enter for all): ", len(qs)),
		len(qs),
		"Invalid input. Using all available questions.",
	)
	if n < 1 || n > len(qs) {
		if n != len(qs) {
			fmt.Fprintln(a.Out, "Out of range. Using all available questions.")
		}
		return qs
	}
	return qs[:n]
}
