package cli

import (
	"context"
	"fmt"

	"github.com/hbatra/quizforge/internal/attempts"
	"github.com/hbatra/quizforge/internal/models"
	"github.com/hbatra/quizforge/internal/quiz"
	"github.com/hbatra/quizforge/internal/scoring"
)

func (a *App) assessmentsMenu(ctx context.Context) {
	for !a.eof {
		headerBanner.Fprintln(a.Out, "\n====== ASSESSMENTS ======")
		fmt.Fprintln(a.Out, "1. Take an assessment")
		fmt.Fprintln(a.Out, "2. Create an assessment")
		fmt.Fprintln(a.Out, "3. Add a question")
		fmt.Fprintln(a.Out, "4. Edit a question")
		fmt.Fprintln(a.Out, "5. Delete a question")
		fmt.Fprintln(a.Out, "6. View an assessment")
		fmt.Fprintln(a.Out, "7. Delete an assessment")
		fmt.Fprintln(a.Out, "0. Back")

		switch a.menuChoice() {
		case "1":
			a.takeAssessment(ctx)
		case "2":
			a.createAssessment(ctx)
		case "3":
			a.addAssessmentQuestion(ctx)
		case "4":
			a.editAssessmentQuestion(ctx)
		case "5":
			a.deleteAssessmentQuestion(ctx)
		case "6":
			a.viewAssessment(ctx)
		case "7":
			a.deleteAssessment(ctx)
		case "0":
			return
		default:
			fmt.Fprintln(a.Out, "Invalid choice. Please try again.")
		}
	}
}

// chooseAssessment lists stored assessments and returns the 0-based
// index of the user's pick, or -1 when nothing was selected.
func (a *App) chooseAssessment(ctx context.Context) int {
	list, err := a.AssessmentSvc.List(ctx)
	if err != nil {
		a.printError(err)
		return -1
	}
	if len(list) == 0 {
		fmt.Fprintln(a.Out, "No assessments exist yet. Create one first.")
		return -1
	}
	fmt.Fprintln(a.Out, "\nAvailable assessments:")
	for i, as := range list {
		fmt.Fprintf(a.Out, "%d. %s (%d questions)\n", i+1, as.Name, len(as.Questions))
	}
	sel := a.askIntOr("Enter assessment number: ", 0, "Invalid input.")
	if sel < 1 || sel > len(list) {
		fmt.Fprintln(a.Out, "Invalid selection.")
		return -1
	}
	return sel - 1
}

func (a *App) takeAssessment(ctx context.Context) {
	idx := a.chooseAssessment(ctx)
	if idx < 0 {
		return
	}
	as, err := a.AssessmentSvc.Get(ctx, idx)
	if err != nil {
		a.printError(err)
		return
	}
	if len(as.Questions) == 0 {
		fmt.Fprintln(a.Out, "This assessment has no questions yet.")
		return
	}

	name := a.askName()
	// Assessments are quota-tracked per assessment name, separately
	// from the shared quiz quota.
	if name != "" && !a.gateNamedRun(ctx, attempts.AssessmentAttemptKey(name, as.Name)) {
		return
	}

	fmt.Fprintf(a.Out, "\nStarting assessment: %s\n", as.Name)
	out := a.session.Run(ctx, quiz.AssessmentItems(*as), quiz.Config{Policy: scoring.Standard{}})
	a.recordScore(ctx, name, out.Result.Percent)
}

func (a *App) createAssessment(ctx context.Context) {
	name := a.askString("Enter a name for the new assessment: ")
	if name == "" {
		fmt.Fprintln(a.Out, "Assessment name cannot be empty.")
		return
	}
	as := models.Assessment{Name: name, Questions: []string{}, Options: [][]string{}, Answers: []string{}}
	count := a.askIntOr("How many questions to add now? (Enter for none): ", 0, "Invalid input. Starting empty.")
	for i := 0; i < count && !a.eof; i++ {
		fmt.Fprintf(a.Out, "\nQuestion %d of %d\n", i+1, count)
		q, opts, ans, ok := a.askQuestionForm()
		if !ok {
			return
		}
		as.Questions = append(as.Questions, q)
		as.Options = append(as.Options, opts)
		as.Answers = append(as.Answers, ans)
	}
	if err := a.AssessmentSvc.Create(ctx, as); err != nil {
		a.printError(err)
		return
	}
	successBanner.Fprintf(a.Out, "Assessment '%s' created with %d question(s).\n", name, len(as.Questions))
}

func (a *App) addAssessmentQuestion(ctx context.Context) {
	idx := a.chooseAssessment(ctx)
	if idx < 0 {
		return
	}
	q, opts, ans, ok := a.askQuestionForm()
	if !ok {
		return
	}
	if err := a.AssessmentSvc.AddQuestion(ctx, idx, q, opts, ans); err != nil {
		a.printError(err)
		return
	}
	successBanner.Fprintln(a.Out, "Question added.")
}

func (a *App) editAssessmentQuestion(ctx context.Context) {
	idx := a.chooseAssessment(ctx)
	if idx < 0 {
		return
	}
	qIdx := a.pickAssessmentQuestion(ctx, idx)
	if qIdx < 0 {
		return
	}
	fmt.Fprintln(a.Out, "Enter the replacement question:")
	q, opts, ans, ok := a.askQuestionForm()
	if !ok {
		return
	}
	if err := a.AssessmentSvc.EditQuestion(ctx, idx, qIdx, q, opts, ans); err != nil {
		a.printError(err)
		return
	}
	successBanner.Fprintln(a.Out, "Question updated.")
}

func (a *App) deleteAssessmentQuestion(ctx context.Context) {
	idx := a.chooseAssessment(ctx)
	if idx < 0 {
		return
	}
	qIdx := a.pickAssessmentQuestion(ctx, idx)
	if qIdx < 0 {
		return
	}
	if err := a.AssessmentSvc.DeleteQuestion(ctx, idx, qIdx); err != nil {
		a.printError(err)
		return
	}
	successBanner.Fprintln(a.Out, "Question deleted.")
}

func (a *App) viewAssessment(ctx context.Context) {
	idx := a.chooseAssessment(ctx)
	if idx < 0 {
		return
	}
	as, err := a.AssessmentSvc.Get(ctx, idx)
	if err != nil {
		a.printError(err)
		return
	}
	headerBanner.Fprintf(a.Out, "\n===== %s =====\n", as.Name)
	if len(as.Questions) == 0 {
		fmt.Fprintln(a.Out, "(no questions)")
		return
	}
	for i := range as.Questions {
		fmt.Fprintf(a.Out, "\nQ%d. %s\n", i+1, as.Questions[i])
		for _, opt := range as.Options[i] {
			fmt.Fprintf(a.Out, "   %s\n", opt)
		}
		fmt.Fprintf(a.Out, "   Answer: %s\n", as.Answers[i])
	}
}

func (a *App) deleteAssessment(ctx context.Context) {
	idx := a.chooseAssessment(ctx)
	if idx < 0 {
		return
	}
	if a.askString("Type yes to confirm deletion: ") != "yes" {
		fmt.Fprintln(a.Out, "Deletion cancelled.")
		return
	}
	if err := a.AssessmentSvc.Delete(ctx, idx); err != nil {
		a.printError(err)
		return
	}
	successBanner.Fprintln(a.Out, "Assessment deleted.")
}

// pickAssessmentQuestion lists the questions of one assessment and
// returns the chosen 0-based index, or -1.
func (a *App) pickAssessmentQuestion(ctx context.Context, idx int) int {
	as, err := a.AssessmentSvc.Get(ctx, idx)
	if err != nil {
		a.printError(err)
		return -1
	}
	if len(as.Questions) == 0 {
		fmt.Fprintln(a.Out, "This assessment has no questions.")
		return -1
	}
	for i, q := range as.Questions {
		fmt.Fprintf(a.Out, "%d. %s\n", i+1, q)
	}
	sel := a.askIntOr("Enter question number: ", 0, "Invalid input.")
	if sel < 1 || sel > len(as.Questions) {
		fmt.Fprintln(a.Out, "Invalid selection.")
		return -1
	}
	return sel - 1
}

// askQuestionForm collects one full MCQ: text, four options and the
// answer letter. Option labels are added automatically.
func (a *App) askQuestionForm() (question string, options []string, answer string, ok bool) {
	question = a.askString("Question text: ")
	if question == "" {
		fmt.Fprintln(a.Out, "Question text cannot be empty.")
		return "", nil, "", false
	}
	for _, label := range []string{"A", "B", "C", "D"} {
		text := a.askString(fmt.Sprintf("Option %s: ", label))
		if a.eof {
			return "", nil, "", false
		}
		options = append(options, fmt.Sprintf("%s. %s", label, text))
	}
	answer = a.askLetter("Correct answer (A, B, C, D): ")
	if a.eof {
		return "", nil, "", false
	}
	return question, options, answer, true
}
