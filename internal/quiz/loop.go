// Package quiz runs the interactive question loop shared by every
// mode. Modes differ only in the question set, the scoring policy and
// the timing rules; the loop itself is written once.
package quiz

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/hbatra/quizforge/internal/logger"
	"github.com/hbatra/quizforge/internal/models"
	"github.com/hbatra/quizforge/internal/scoring"
	"github.com/hbatra/quizforge/internal/terminal"
)

// Item is one question as presented by the loop. Options is nil for
// fill-in questions, which are graded as free text.
type Item struct {
	Prompt  string
	Options []string
	Answer  string
	FillIn  bool
}

// MCQItems converts bank questions into loop items.
func MCQItems(qs []models.Question) []Item {
	items := make([]Item, len(qs))
	for i, q := range qs {
		items[i] = Item{Prompt: q.Text, Options: q.Options, Answer: q.Answer}
	}
	return items
}

// FillInItems converts fill-in questions into loop items.
func FillInItems(qs []models.FillInQuestion) []Item {
	items := make([]Item, len(qs))
	for i, q := range qs {
		items[i] = Item{Prompt: q.Text, Answer: q.Answer, FillIn: true}
	}
	return items
}

// AssessmentItems converts a custom assessment into loop items.
func AssessmentItems(a models.Assessment) []Item {
	items := make([]Item, len(a.Questions))
	for i := range a.Questions {
		items[i] = Item{Prompt: a.Questions[i], Options: a.Options[i], Answer: a.Answers[i]}
	}
	return items
}

// Config selects the behavior of one run.
type Config struct {
	Policy             scoring.Policy
	AllowSkip          bool
	PerQuestionTimeout time.Duration // 0 disables per-question timing
	Shuffle            bool
	FiftyFifty         bool // one 50/50 lifeline per run
}

// RunOutcome is what a completed run reports back to the caller.
type RunOutcome struct {
	Result  scoring.Result
	Guesses []string
	Answers []string
}

// Session binds the loop to a terminal.
type Session struct {
	in  terminal.LineReader
	out io.Writer
	rng *rand.Rand
}

// NewSession creates a Session. A nil rng falls back to a time-seeded one.
func NewSession(in terminal.LineReader, out io.Writer, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{in: in, out: out, rng: rng}
}

var (
	correctBanner = color.New(color.FgGreen, color.Bold)
	wrongBanner   = color.New(color.FgRed, color.Bold)
)

// Run presents each item in turn, grades the guesses and scores the run
// with the configured policy. It prints the shared results block; mode
// specific summaries are up to the caller.
func (s *Session) Run(ctx context.Context, items []Item, cfg Config) RunOutcome {
	log := logger.FromContext(ctx).WithPrefix("quiz")
	log.Debug("starting run: policy=%s, questions=%d, timed=%v", cfg.Policy.Name(), len(items), cfg.PerQuestionTimeout > 0)

	if cfg.Shuffle {
		items = shuffled(items, s.rng)
	}
	if cfg.PerQuestionTimeout > 0 {
		fmt.Fprintf(s.out, "You have %d seconds for each question!\n", int(cfg.PerQuestionTimeout.Seconds()))
	}

	var (
		outcomes     []scoring.Outcome
		guesses      []string
		answers      []string
		lifelineUsed bool
	)

	for _, item := range items {
		fmt.Fprintln(s.out, "----------------------")
		fmt.Fprintln(s.out, item.Prompt)
		for _, opt := range item.Options {
			fmt.Fprintln(s.out, opt)
		}

		guess, timedOut, eof := s.readGuess(s.promptFor(item, cfg), cfg.PerQuestionTimeout)
		if eof {
			break
		}

		// A 50/50 request replaces the options for this question only.
		for cfg.FiftyFifty && !item.FillIn && strings.EqualFold(guess, "50") {
			if lifelineUsed {
				fmt.Fprintln(s.out, "You have already used your 50/50 lifeline.")
			} else {
				lifelineUsed = true
				fmt.Fprintln(s.out, "50/50 lifeline! Two options remain:")
				for _, opt := range scoring.FiftyFifty(item.Options, item.Answer, s.rng) {
					fmt.Fprintln(s.out, opt)
				}
			}
			guess, timedOut, eof = s.readGuess(s.promptFor(item, cfg), cfg.PerQuestionTimeout)
			if eof {
				break
			}
		}
		if eof {
			break
		}

		if !item.FillIn {
			guess = strings.ToUpper(guess)
		}
		guesses = append(guesses, guess)
		answers = append(answers, item.Answer)

		outcome := s.grade(item, guess, timedOut, cfg.AllowSkip)
		outcomes = append(outcomes, outcome)

		if cfg.Policy.StopAfter(outcome) {
			fmt.Fprintln(s.out, "Quiz over! First wrong answer reached.")
			break
		}
	}

	result := cfg.Policy.Score(outcomes)
	s.printResults(guesses, answers, result)
	log.Debug("run finished: policy=%s, percent=%d, asked=%d", cfg.Policy.Name(), result.Percent, result.Asked)
	return RunOutcome{Result: result, Guesses: guesses, Answers: answers}
}

// RunChallenge draws shuffled questions, reshuffling on exhaustion,
// until the wall-clock budget runs out or a timed read expires. Only
// answered questions count toward the score.
func (s *Session) RunChallenge(ctx context.Context, items []Item, budget time.Duration) RunOutcome {
	log := logger.FromContext(ctx).WithPrefix("quiz")
	log.Debug("starting challenge: questions=%d, budget=%s", len(items), budget)

	order := s.rng.Perm(len(items))
	var (
		outcomes []scoring.Outcome
		guesses  []string
		answers  []string
	)

	pos := 0
	deadline := time.Now().Add(budget)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			fmt.Fprintln(s.out, "\nTime is up for the challenge!")
			break
		}
		if len(items) == 0 {
			break
		}
		if pos >= len(order) {
			order = s.rng.Perm(len(items))
			pos = 0
		}
		item := items[order[pos]]
		pos++

		fmt.Fprintln(s.out, "----------------------")
		fmt.Fprintf(s.out, "Time remaining: %d seconds\n", int(remaining.Seconds()))
		fmt.Fprintln(s.out, item.Prompt)
		for _, opt := range item.Options {
			fmt.Fprintln(s.out, opt)
		}

		guess, timedOut, eof := s.readGuess(s.promptFor(item, Config{}), remaining)
		if eof {
			break
		}
		if timedOut {
			fmt.Fprintln(s.out, "\nTime's up while answering!")
			break
		}

		guess = strings.ToUpper(guess)
		guesses = append(guesses, guess)
		answers = append(answers, item.Answer)
		outcomes = append(outcomes, s.grade(item, guess, false, false))
	}

	result := scoring.Standard{}.Score(outcomes)
	s.printResults(guesses, answers, result)
	log.Debug("challenge finished: percent=%d, answered=%d", result.Percent, result.Asked)
	return RunOutcome{Result: result, Guesses: guesses, Answers: answers}
}

func (s *Session) promptFor(item Item, cfg Config) string {
	switch {
	case item.FillIn:
		return "Your answer: "
	case cfg.AllowSkip:
		return "Enter (A, B, C, D, or S to skip): "
	case cfg.FiftyFifty:
		return "Enter (A, B, C, D, or 50 for a 50/50 lifeline): "
	default:
		return "Enter (A, B, C, D): "
	}
}

// readGuess prints the prompt and reads one line, with an optional
// deadline. A timeout is distinct from the user submitting an empty
// line; end of input ends the run.
func (s *Session) readGuess(prompt string, timeout time.Duration) (guess string, timedOut, eof bool) {
	fmt.Fprint(s.out, prompt)
	if timeout > 0 {
		line, ok, err := s.in.ReadLineTimeout(timeout)
		if err != nil {
			return "", false, true
		}
		if !ok {
			fmt.Fprintln(s.out)
			return "", true, false
		}
		return strings.TrimSpace(line), false, false
	}
	line, err := s.in.ReadLine()
	if err != nil {
		return "", false, true
	}
	return strings.TrimSpace(line), false, false
}

func (s *Session) grade(item Item, guess string, timedOut, allowSkip bool) scoring.Outcome {
	if timedOut {
		fmt.Fprintln(s.out, "Time's up!")
		return scoring.OutcomeTimedOut
	}
	if allowSkip && (guess == "" || guess == "S") {
		fmt.Fprintln(s.out, "Question skipped.")
		return scoring.OutcomeSkipped
	}

	correct := scoring.IsCorrect(guess, item.Answer)
	if item.FillIn {
		correct = scoring.IsFillInCorrect(guess, item.Answer)
	}
	if correct {
		correctBanner.Fprintln(s.out, "CORRECT!")
		return scoring.OutcomeCorrect
	}
	if guess == "" {
		fmt.Fprintln(s.out, "No answer selected.")
		s.printCorrectAnswer(item)
		return scoring.OutcomeBlank
	}
	wrongBanner.Fprintln(s.out, "INCORRECT!")
	s.printCorrectAnswer(item)
	return scoring.OutcomeWrong
}

func (s *Session) printCorrectAnswer(item Item) {
	if item.FillIn {
		fmt.Fprintf(s.out, "Accepted answer(s): %s\n", strings.Join(scoring.AcceptedVariants(item.Answer), " / "))
		return
	}
	fmt.Fprintf(s.out, "%s is the correct answer\n", item.Answer)
}

func (s *Session) printResults(guesses, answers []string, result scoring.Result) {
	fmt.Fprintln(s.out, "----------------------")
	fmt.Fprintln(s.out, "       RESULTS        ")
	fmt.Fprintln(s.out, "----------------------")
	fmt.Fprint(s.out, "Answers: ")
	for _, a := range answers {
		fmt.Fprintf(s.out, "%s ", a)
	}
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, "Guesses: ")
	for _, g := range guesses {
		fmt.Fprintf(s.out, "%s ", g)
	}
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "\nYour score is: %d%%\n", result.Percent)
}

func shuffled(items []Item, rng *rand.Rand) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
