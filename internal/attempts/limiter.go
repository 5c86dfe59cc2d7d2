// Package attempts enforces the per-user daily attempt quota. Keys are
// opaque strings: a plain user name for regular quizzes, or a
// name-plus-assessment pair for per-assessment gating. Certification
// uses a second Limiter over its own repository namespace.
package attempts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hbatra/quizforge/internal/logger"
	"github.com/hbatra/quizforge/internal/repository"
)

// AttemptKey normalizes a plain user name into an attempt key.
func AttemptKey(name string) string {
	return strings.TrimSpace(name)
}

// AssessmentAttemptKey scopes an attempt key to one assessment.
func AssessmentAttemptKey(name, assessment string) string {
	return fmt.Sprintf("%s::%s", strings.TrimSpace(name), assessment)
}

// Limiter tracks attempt counts per key per local calendar day.
type Limiter interface {
	// CanAttempt reports whether key may start another attempt today
	// and how many attempts remain.
	CanAttempt(ctx context.Context, key string, maxPerDay int) (bool, int, error)
	// RecordAttempt increments today's counter for key. It is not
	// idempotent: callers must invoke it exactly once per permitted
	// attempt, after the allow-check and before running the quiz.
	RecordAttempt(ctx context.Context, key string) error
}

type limiter struct {
	repo repository.AttemptRepository
	now  func() time.Time
}

// NewLimiter creates a Limiter over the given repository. A nil now
// func defaults to time.Now; tests inject a fixed clock to simulate
// date rollover.
func NewLimiter(repo repository.AttemptRepository, now func() time.Time) Limiter {
	if now == nil {
		now = time.Now
	}
	return &limiter{repo: repo, now: now}
}

// today is the local calendar date in ISO form. No timezone
// normalization: a user crossing timezones may gain or lose a day.
func (l *limiter) today() string {
	return l.now().Format("2006-01-02")
}

func (l *limiter) CanAttempt(ctx context.Context, key string, maxPerDay int) (bool, int, error) {
	log := logger.FromContext(ctx).WithPrefix("attempts")

	counters, err := l.repo.Load(ctx)
	if err != nil {
		return false, 0, err
	}

	used := counters[key][l.today()]
	remaining := maxPerDay - used
	if remaining < 0 {
		remaining = 0
	}
	log.Debug("attempt check: key=%s, used_today=%d, remaining=%d", key, used, remaining)
	return remaining > 0, remaining, nil
}

func (l *limiter) RecordAttempt(ctx context.Context, key string) error {
	log := logger.FromContext(ctx).WithPrefix("attempts")

	counters, err := l.repo.Load(ctx)
	if err != nil {
		return err
	}

	day := l.today()
	if counters[key] == nil {
		counters[key] = make(map[string]int)
	}
	counters[key][day]++
	if err := l.repo.Save(ctx, counters); err != nil {
		return err
	}
	log.Debug("attempt recorded: key=%s, date=%s, count=%d", key, day, counters[key][day])
	return nil
}
