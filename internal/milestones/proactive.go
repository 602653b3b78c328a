package milestones

import (
	"context"
	"fmt"
	"time"

	"babysteps/internal/domain"
)

// Cadence intervals for milestone update messages.
const (
	updateIntervalUnderTwelve = 14 * 24 * time.Hour
	updateIntervalOverTwelve  = 30 * 24 * time.Hour
	weeklyCheckMaxMonths      = 6
	updateAgeCutoffMonths     = 12
)

// Planner decides which proactive messages a child is due for. Cadence
// checks that depend on what was already sent consult the message store.
type Planner struct {
	messages domain.MessageStore
	now      func() time.Time
}

// PlannerOption customizes a Planner.
type PlannerOption func(*Planner)

// WithClock overrides the time source.
func WithClock(now func() time.Time) PlannerOption {
	return func(p *Planner) { p.now = now }
}

// NewPlanner creates a planner backed by the given message history.
func NewPlanner(messages domain.MessageStore, opts ...PlannerOption) *Planner {
	p := &Planner{messages: messages, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MilestoneUpdateDue reports whether a milestone update is due. Updates go
// out every 14 days for children under 12 months and every 30 days after,
// measured from the last check or, before the first update, the child's
// creation time.
func MilestoneUpdateDue(child *domain.Child, now time.Time) bool {
	if child == nil || !child.AgeKnown() {
		return false
	}
	lastCheck := child.LastMilestoneCheck
	if lastCheck.IsZero() {
		lastCheck = child.CreatedAt
	}
	if lastCheck.IsZero() {
		return false
	}
	interval := updateIntervalOverTwelve
	if domain.AgeInMonths(child.Birthday, now) < updateAgeCutoffMonths {
		interval = updateIntervalUnderTwelve
	}
	return now.Sub(lastCheck) >= interval
}

// WeeklyCheckDue reports whether a weekly check-in is due. Check-ins only
// apply to children under 6 months, at most one per calendar week starting
// on Sunday.
func (p *Planner) WeeklyCheckDue(ctx context.Context, child *domain.Child) (bool, error) {
	if child == nil || !child.AgeKnown() {
		return false, nil
	}
	now := p.now()
	if domain.AgeInMonths(child.Birthday, now) >= weeklyCheckMaxMonths {
		return false, nil
	}
	if AgeInWeeks(child.Birthday, now) < 1 {
		return false, nil
	}
	weekStart := startOfWeek(now)
	sent, err := p.messages.ListByKind(ctx, child.ID, domain.KindWeeklyCheck)
	if err != nil {
		return false, fmt.Errorf("list weekly checks: %w", err)
	}
	for _, m := range sent {
		if !m.Timestamp.Before(weekStart) {
			return false, nil
		}
	}
	return true, nil
}

// CelebrationDue reports whether a monthly birthday celebration is due
// today. Celebrations fire when the day of month matches the birthday, at
// most once per calendar month.
func (p *Planner) CelebrationDue(ctx context.Context, child *domain.Child) (bool, error) {
	if child == nil || !child.AgeKnown() {
		return false, nil
	}
	now := p.now()
	if now.Day() != child.Birthday.Day() {
		return false, nil
	}
	if domain.AgeInMonths(child.Birthday, now) < 1 {
		return false, nil
	}
	sent, err := p.messages.ListByKind(ctx, child.ID, domain.KindCelebration)
	if err != nil {
		return false, fmt.Errorf("list celebrations: %w", err)
	}
	for _, m := range sent {
		if m.Timestamp.Month() == now.Month() && m.Timestamp.Year() == now.Year() {
			return false, nil
		}
	}
	return true, nil
}

// Due returns the kinds of proactive messages the child should receive now.
func (p *Planner) Due(ctx context.Context, child *domain.Child) ([]domain.MessageKind, error) {
	var due []domain.MessageKind
	if MilestoneUpdateDue(child, p.now()) {
		due = append(due, domain.KindMilestoneUpdate)
	}
	weekly, err := p.WeeklyCheckDue(ctx, child)
	if err != nil {
		return nil, err
	}
	if weekly {
		due = append(due, domain.KindWeeklyCheck)
	}
	celebration, err := p.CelebrationDue(ctx, child)
	if err != nil {
		return nil, err
	}
	if celebration {
		due = append(due, domain.KindCelebration)
	}
	return due, nil
}

// AgeInWeeks derives a child's age in whole weeks at a reference time.
func AgeInWeeks(birthday, now time.Time) int {
	weeks := int(now.Sub(birthday).Hours() / (24 * 7))
	if weeks < 0 {
		return 0
	}
	return weeks
}

func startOfWeek(now time.Time) time.Time {
	day := now.AddDate(0, 0, -int(now.Weekday()))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
}

// Query builds the retrieval query used to compose a proactive message of
// the given kind.
func Query(kind domain.MessageKind, child *domain.Child, now time.Time) string {
	months := domain.AgeInMonths(child.Birthday, now)
	switch kind {
	case domain.KindWeeklyCheck:
		return fmt.Sprintf("development this week for a %d week old baby", AgeInWeeks(child.Birthday, now))
	case domain.KindCelebration:
		return fmt.Sprintf("milestones reached by %d months celebration", months)
	default:
		return fmt.Sprintf("development milestones for a %d month old baby", months)
	}
}
