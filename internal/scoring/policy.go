package scoring

import "math"

// Outcome is the graded result of one presented question. A timeout is
// distinct from a typed empty guess for presentation, but every policy
// scores the two identically.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeWrong
	OutcomeBlank
	OutcomeSkipped
	OutcomeTimedOut
)

// Result holds the final percent and the auxiliary counters a mode
// reports after a completed run.
type Result struct {
	Percent int
	Correct int
	Wrong   int
	Blank   int
	Skipped int
	Asked   int
	Raw     float64
}

// Policy turns a sequence of per-question outcomes into a Result.
// StopAfter lets a policy end the quiz loop early (streak mode).
type Policy interface {
	Name() string
	Score(outcomes []Outcome) Result
	StopAfter(o Outcome) bool
}

// Percent computes floor(100 * numerator / denominator), defining the
// zero-denominator case as 0 so every mode shares one rule.
func Percent(numerator, denominator int) int {
	if denominator <= 0 {
		return 0
	}
	return numerator * 100 / denominator
}

func tally(outcomes []Outcome) (correct, wrong, blank, skipped int) {
	for _, o := range outcomes {
		switch o {
		case OutcomeCorrect:
			correct++
		case OutcomeWrong:
			wrong++
		case OutcomeBlank, OutcomeTimedOut:
			blank++
		case OutcomeSkipped:
			skipped++
		}
	}
	return
}

// Standard scores correct answers against every presented question.
type Standard struct{}

func (Standard) Name() string { return "standard" }

func (Standard) StopAfter(Outcome) bool { return false }

func (Standard) Score(outcomes []Outcome) Result {
	correct, wrong, blank, skipped := tally(outcomes)
	total := len(outcomes)
	return Result{
		Percent: Percent(correct, total),
		Correct: correct,
		Wrong:   wrong,
		Blank:   blank,
		Skipped: skipped,
		Asked:   total,
		Raw:     float64(correct),
	}
}

// NegativeMarking awards +1 per correct answer and deducts Penalty per
// non-blank wrong answer; blanks contribute nothing. The raw score may
// go negative; the clamp is applied to the reported percent.
type NegativeMarking struct {
	Penalty float64
}

func (NegativeMarking) Name() string { return "negative-marking" }

func (NegativeMarking) StopAfter(Outcome) bool { return false }

func (p NegativeMarking) Score(outcomes []Outcome) Result {
	correct, wrong, blank, skipped := tally(outcomes)
	total := len(outcomes)
	raw := float64(correct) - p.Penalty*float64(wrong)

	percent := 0
	if total > 0 {
		percent = int(math.Floor(raw / float64(total) * 100))
	}
	if percent < 0 {
		percent = 0
	}
	return Result{
		Percent: percent,
		Correct: correct,
		Wrong:   wrong,
		Blank:   blank,
		Skipped: skipped,
		Asked:   total,
		Raw:     raw,
	}
}

// SkipAware excludes skipped questions from both the numerator and the
// denominator. A run where everything was skipped scores 0.
type SkipAware struct{}

func (SkipAware) Name() string { return "skip-aware" }

func (SkipAware) StopAfter(Outcome) bool { return false }

func (SkipAware) Score(outcomes []Outcome) Result {
	correct, wrong, blank, skipped := tally(outcomes)
	answered := len(outcomes) - skipped
	return Result{
		Percent: Percent(correct, answered),
		Correct: correct,
		Wrong:   wrong,
		Blank:   blank,
		Skipped: skipped,
		Asked:   answered,
		Raw:     float64(correct),
	}
}

// Streak ends the run at the first non-correct answer. Asked counts
// every presented question including the one that broke the streak.
type Streak struct{}

func (Streak) Name() string { return "streak" }

func (Streak) StopAfter(o Outcome) bool { return o != OutcomeCorrect }

func (Streak) Score(outcomes []Outcome) Result {
	correct := 0
	asked := 0
	wrong, blank := 0, 0
	for _, o := range outcomes {
		asked++
		if o == OutcomeCorrect {
			correct++
			continue
		}
		if o == OutcomeWrong {
			wrong++
		} else {
			blank++
		}
		break
	}
	return Result{
		Percent: Percent(correct, asked),
		Correct: correct,
		Wrong:   wrong,
		Blank:   blank,
		Asked:   asked,
		Raw:     float64(correct),
	}
}
