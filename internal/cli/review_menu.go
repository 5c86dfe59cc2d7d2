package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/hbatra/quizforge/internal/quizbank"
	"github.com/hbatra/quizforge/internal/scoring"
)

func (a *App) reviewMenu(ctx context.Context) {
	for !a.eof {
		headerBanner.Fprintln(a.Out, "\n====== REVIEW & TOOLS ======")
		fmt.Fprintln(a.Out, "1. View all questions")
		fmt.Fprintln(a.Out, "2. View the answer key")
		fmt.Fprintln(a.Out, "3. Reference links")
		fmt.Fprintln(a.Out, "4. High score")
		fmt.Fprintln(a.Out, "5. Compare my first and latest attempt")
		fmt.Fprintln(a.Out, "6. Export questions to JSON")
		fmt.Fprintln(a.Out, "7. Export the answer key to JSON")
		fmt.Fprintln(a.Out, "0. Back")

		switch a.menuChoice() {
		case "1":
			a.viewQuestions()
		case "2":
			a.viewAnswerKey()
		case "3":
			a.linksMenu(ctx)
		case "4":
			a.showHighScore(ctx)
		case "5":
			a.compareAttempts(ctx)
		case "6":
			a.exportQuestions(ctx)
		case "7":
			a.exportAnswers(ctx)
		case "0":
			return
		default:
			fmt.Fprintln(a.Out, "Invalid choice. Please try again.")
		}
	}
}

func (a *App) viewQuestions() {
	headerBanner.Fprintln(a.Out, "\n===== QUESTION BANK =====")
	for i, q := range quizbank.All() {
		fmt.Fprintf(a.Out, "\nQ%d. %s  [%s / %s]\n", i+1, q.Text, q.Topic, q.Difficulty)
		for _, opt := range q.Options {
			fmt.Fprintf(a.Out, "   %s\n", opt)
		}
	}
	headerBanner.Fprintln(a.Out, "\n===== FILL IN THE BLANKS =====")
	for i, q := range quizbank.FillIns() {
		fmt.Fprintf(a.Out, "\nF%d. %s  [%s / %s]\n", i+1, q.Text, q.Topic, q.Difficulty)
	}
}

func (a *App) viewAnswerKey() {
	headerBanner.Fprintln(a.Out, "\n===== ANSWER KEY =====")
	for i, q := range quizbank.All() {
		fmt.Fprintf(a.Out, "Q%d. %s\n", i+1, quizbank.OptionText(q.Options, q.Answer))
	}
	headerBanner.Fprintln(a.Out, "\n===== FILL-IN ANSWERS =====")
	for i, q := range quizbank.FillIns() {
		fmt.Fprintf(a.Out, "F%d. %s\n", i+1, strings.Join(scoring.AcceptedVariants(q.Answer), " / "))
	}
}

func (a *App) linksMenu(ctx context.Context) {
	for !a.eof {
		headerBanner.Fprintln(a.Out, "\n====== REFERENCE LINKS ======")
		fmt.Fprintln(a.Out, "1. View links for a question")
		fmt.Fprintln(a.Out, "2. View links for a fill-in question")
		fmt.Fprintln(a.Out, "3. Add a link to a question")
		fmt.Fprintln(a.Out, "4. Add a link to a fill-in question")
		fmt.Fprintln(a.Out, "5. Delete one of my links")
		fmt.Fprintln(a.Out, "0. Back")

		switch a.menuChoice() {
		case "1":
			a.viewLinks(ctx, false)
		case "2":
			a.viewLinks(ctx, true)
		case "3":
			a.addLink(ctx, false)
		case "4":
			a.addLink(ctx, true)
		case "5":
			a.deleteLink(ctx)
		case "0":
			return
		default:
			fmt.Fprintln(a.Out, "Invalid choice. Please try again.")
		}
	}
}

func (a *App) pickQuestionIndex(fillIn bool) int {
	max := len(quizbank.All())
	if fillIn {
		max = len(quizbank.FillIns())
	}
	n := a.askIntOr(fmt.Sprintf("Enter question number (1 to %d): ", max), 0, "Invalid input.")
	if n < 1 || n > max {
		fmt.Fprintln(a.Out, "Invalid question number.")
		return -1
	}
	return n
}

func (a *App) viewLinks(ctx context.Context, fillIn bool) {
	n := a.pickQuestionIndex(fillIn)
	if n < 0 {
		return
	}
	var (
		links []string
		err   error
	)
	if fillIn {
		links, err = a.LinkService.FillLinks(ctx, n)
	} else {
		links, err = a.LinkService.MCQLinks(ctx, n)
	}
	if err != nil {
		a.printError(err)
		return
	}
	if len(links) == 0 {
		fmt.Fprintln(a.Out, "No links stored for this question.")
		return
	}
	fmt.Fprintf(a.Out, "\nReference links for question %d:\n", n)
	for i, link := range links {
		fmt.Fprintf(a.Out, "%d. %s\n", i+1, link)
	}
}

func (a *App) addLink(ctx context.Context, fillIn bool) {
	n := a.pickQuestionIndex(fillIn)
	if n < 0 {
		return
	}
	link := a.askString("Enter the link URL: ")
	var err error
	if fillIn {
		err = a.LinkService.AddFillLink(ctx, n, link)
	} else {
		err = a.LinkService.AddMCQLink(ctx, n, link)
	}
	if err != nil {
		a.printError(err)
		return
	}
	successBanner.Fprintln(a.Out, "Link saved.")
}

// deleteLink removes one user-added link. Built-in links cannot be
// deleted, so only the user's own list is shown.
func (a *App) deleteLink(ctx context.Context) {
	n := a.pickQuestionIndex(false)
	if n < 0 {
		return
	}
	user, err := a.LinkService.UserMCQLinks(ctx, n)
	if err != nil {
		a.printError(err)
		return
	}
	if len(user) == 0 {
		fmt.Fprintln(a.Out, "You have not added any links to this question.")
		return
	}
	fmt.Fprintln(a.Out, "\nYour links:")
	for i, link := range user {
		fmt.Fprintf(a.Out, "%d. %s\n", i+1, link)
	}
	pos := a.askIntOr("Enter the number of the link to delete (or 0 to paste its text): ", -1, "Invalid input.")
	var removed string
	if pos == 0 {
		text := a.askString("Paste the exact link text: ")
		removed, err = a.LinkService.DeleteMCQLinkByText(ctx, n, text)
	} else {
		removed, err = a.LinkService.DeleteMCQLinkByPosition(ctx, n, pos)
	}
	if err != nil {
		a.printError(err)
		return
	}
	successBanner.Fprintf(a.Out, "Deleted: %s\n", removed)
}

func (a *App) showHighScore(ctx context.Context) {
	best, err := a.QuizService.HighScore(ctx)
	if err != nil {
		a.printError(err)
		return
	}
	if best == nil {
		fmt.Fprintln(a.Out, "No scores recorded yet.")
		return
	}
	successBanner.Fprintf(a.Out, "High score: %d%% by %s\n", best.Score, best.Name)
}

func (a *App) compareAttempts(ctx context.Context) {
	name := a.askString("Enter your name: ")
	if name == "" {
		fmt.Fprintln(a.Out, "Name cannot be empty.")
		return
	}
	first, latest, err := a.QuizService.FirstAndLatest(ctx, name)
	if err != nil {
		a.printError(err)
		return
	}
	if first == nil {
		fmt.Fprintf(a.Out, "No attempts found for '%s'.\n", name)
		return
	}
	headerBanner.Fprintln(a.Out, "\n===== PROGRESS =====")
	fmt.Fprintf(a.Out, "First attempt  : %d%%\n", first.Score)
	fmt.Fprintf(a.Out, "Latest attempt : %d%%\n", latest.Score)
	switch {
	case latest.Score > first.Score:
		successBanner.Fprintf(a.Out, "You improved by %d points. Keep it up!\n", latest.Score-first.Score)
	case latest.Score < first.Score:
		fmt.Fprintf(a.Out, "You dropped by %d points. More practice needed.\n", first.Score-latest.Score)
	default:
		fmt.Fprintln(a.Out, "Your score has stayed the same.")
	}
}

func (a *App) exportQuestions(ctx context.Context) {
	path, err := a.ExportService.ExportQuestions(ctx)
	if err != nil {
		a.printError(err)
		return
	}
	successBanner.Fprintf(a.Out, "Questions exported to %s\n", path)
}

func (a *App) exportAnswers(ctx context.Context) {
	path, err := a.ExportService.ExportAnswers(ctx)
	if err != nil {
		a.printError(err)
		return
	}
	successBanner.Fprintf(a.Out, "Answer key exported to %s\n", path)
}
