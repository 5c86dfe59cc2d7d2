package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/hbatra/quizforge/internal/quizbank"
	"github.com/hbatra/quizforge/internal/scoring"
)

// wrongAnswerQuiz inverts the goal: the player must pick an incorrect
// option on purpose. Picking the real answer costs the point. Input is
// re-prompted until a valid letter arrives.
func (a *App) wrongAnswerQuiz(ctx context.Context) {
	name := a.askName()
	fmt.Fprintln(a.Out, "\nWrong-answer training: pick any option EXCEPT the correct one!")

	questions := a.pickQuestionCount(quizbank.All())
	avoided := 0
	for _, q := range questions {
		fmt.Fprintln(a.Out, "----------------------")
		fmt.Fprintln(a.Out, q.Text)
		for _, opt := range q.Options {
			fmt.Fprintln(a.Out, opt)
		}

		guess := a.askLetter("Pick a WRONG option (A, B, C, D): ")
		if a.eof {
			return
		}
		if scoring.IsCorrect(guess, q.Answer) {
			failBanner.Fprintln(a.Out, "That was the correct answer! No point.")
		} else {
			successBanner.Fprintln(a.Out, "Good dodge! That one is wrong.")
			avoided++
		}
	}

	percent := scoring.Percent(avoided, len(questions))
	fmt.Fprintln(a.Out, "------------------------------")
	fmt.Fprintln(a.Out, "WRONG-ANSWER TRAINING RESULTS")
	fmt.Fprintln(a.Out, "------------------------------")
	fmt.Fprintf(a.Out, "Correct answers avoided: %d / %d\n", avoided, len(questions))
	fmt.Fprintf(a.Out, "Your score is: %d%%\n", percent)

	a.recordScore(ctx, name, percent)
}

// learningMode reveals the answer after each question and lets the
// player self-grade. Nothing is persisted.
func (a *App) learningMode(ctx context.Context) {
	fmt.Fprintln(a.Out, "\nLearning mode: study each answer, then grade yourself.")
	fmt.Fprintln(a.Out, "Answer y if you knew it, n if not, q to quit.")

	knew, seen := 0, 0
	for _, q := range quizbank.All() {
		fmt.Fprintln(a.Out, "----------------------")
		fmt.Fprintln(a.Out, q.Text)
		for _, opt := range q.Options {
			fmt.Fprintln(a.Out, opt)
		}
		fmt.Fprintf(a.Out, "Answer: %s\n", quizbank.OptionText(q.Options, q.Answer))

		stop := false
		for !a.eof {
			switch strings.ToLower(a.askString("Did you know it? (y/n/q): ")) {
			case "y":
				knew++
			case "n":
			case "q":
				stop = true
			default:
				fmt.Fprintln(a.Out, "Please answer y, n or q.")
				continue
			}
			break
		}
		if stop || a.eof {
			break
		}
		seen++
	}

	if seen == 0 {
		fmt.Fprintln(a.Out, "No questions reviewed.")
		return
	}
	fmt.Fprintf(a.Out, "\nYou knew %d of %d reviewed questions (%d%%). Nothing was saved.\n",
		knew, seen, scoring.Percent(knew, seen))
}

// askLetter re-prompts until the user enters one of A to D.
func (a *App) askLetter(prompt string) string {
	for !a.eof {
		guess := strings.ToUpper(a.askString(prompt))
		switch guess {
		case "A", "B", "C", "D":
			return guess
		}
		fmt.Fprintln(a.Out, "Invalid input. Please enter A, B, C or D.")
	}
	return ""
}
