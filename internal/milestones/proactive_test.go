package milestones

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babysteps/internal/domain"
	"babysteps/internal/store/memory"
)

// fixedNow is a Monday.
func fixedNow() time.Time {
	return time.Date(2025, time.June, 16, 10, 0, 0, 0, time.UTC)
}

func childWith(birthday, lastCheck, createdAt time.Time) *domain.Child {
	return &domain.Child{
		ID:                 "c1",
		Name:               "Emma",
		Birthday:           birthday,
		LastMilestoneCheck: lastCheck,
		CreatedAt:          createdAt,
	}
}

func TestMilestoneUpdateDue_UnderTwelveMonths(t *testing.T) {
	now := fixedNow()
	birthday := now.AddDate(0, -6, 0)

	thirteenDaysAgo := now.AddDate(0, 0, -13)
	fourteenDaysAgo := now.AddDate(0, 0, -14)

	assert.False(t, MilestoneUpdateDue(childWith(birthday, thirteenDaysAgo, time.Time{}), now))
	assert.True(t, MilestoneUpdateDue(childWith(birthday, fourteenDaysAgo, time.Time{}), now))
}

func TestMilestoneUpdateDue_OverTwelveMonths(t *testing.T) {
	now := fixedNow()
	birthday := now.AddDate(0, -15, 0)

	twentyDaysAgo := now.AddDate(0, 0, -20)
	thirtyDaysAgo := now.AddDate(0, 0, -30)

	assert.False(t, MilestoneUpdateDue(childWith(birthday, twentyDaysAgo, time.Time{}), now))
	assert.True(t, MilestoneUpdateDue(childWith(birthday, thirtyDaysAgo, time.Time{}), now))
}

func TestMilestoneUpdateDue_FallsBackToCreatedAt(t *testing.T) {
	now := fixedNow()
	birthday := now.AddDate(0, -6, 0)

	created := now.AddDate(0, 0, -14)
	assert.True(t, MilestoneUpdateDue(childWith(birthday, time.Time{}, created), now))

	recent := now.AddDate(0, 0, -1)
	assert.False(t, MilestoneUpdateDue(childWith(birthday, time.Time{}, recent), now))
}

func TestMilestoneUpdateDue_UnknownBirthday(t *testing.T) {
	now := fixedNow()
	assert.False(t, MilestoneUpdateDue(childWith(time.Time{}, time.Time{}, now.AddDate(0, 0, -60)), now))
	assert.False(t, MilestoneUpdateDue(nil, now))
}

func newPlanner(t *testing.T) (*Planner, *memory.MessageStore) {
	t.Helper()
	messages := memory.NewMessageStore()
	return NewPlanner(messages, WithClock(fixedNow)), messages
}

func TestWeeklyCheckDue(t *testing.T) {
	planner, _ := newPlanner(t)
	now := fixedNow()

	child := childWith(now.AddDate(0, -3, 0), time.Time{}, time.Time{})
	due, err := planner.WeeklyCheckDue(context.Background(), child)
	require.NoError(t, err)
	assert.True(t, due)
}

func TestWeeklyCheckDue_SixMonthsAndOlder(t *testing.T) {
	planner, _ := newPlanner(t)
	now := fixedNow()

	child := childWith(now.AddDate(0, -6, 0), time.Time{}, time.Time{})
	due, err := planner.WeeklyCheckDue(context.Background(), child)
	require.NoError(t, err)
	assert.False(t, due)
}

func TestWeeklyCheckDue_AlreadySentThisWeek(t *testing.T) {
	planner, messages := newPlanner(t)
	now := fixedNow()
	ctx := context.Background()

	child := childWith(now.AddDate(0, -3, 0), time.Time{}, time.Time{})

	// Sunday of the current week.
	require.NoError(t, messages.Append(ctx, &domain.ChatMessage{
		ChildID:   child.ID,
		Sender:    domain.SenderAssistant,
		Kind:      domain.KindWeeklyCheck,
		Content:   "check-in",
		Timestamp: time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC),
	}))

	due, err := planner.WeeklyCheckDue(ctx, child)
	require.NoError(t, err)
	assert.False(t, due)
}

func TestWeeklyCheckDue_SentLastWeek(t *testing.T) {
	planner, messages := newPlanner(t)
	ctx := context.Background()

	child := childWith(fixedNow().AddDate(0, -3, 0), time.Time{}, time.Time{})

	require.NoError(t, messages.Append(ctx, &domain.ChatMessage{
		ChildID:   child.ID,
		Sender:    domain.SenderAssistant,
		Kind:      domain.KindWeeklyCheck,
		Content:   "check-in",
		Timestamp: time.Date(2025, time.June, 13, 9, 0, 0, 0, time.UTC),
	}))

	due, err := planner.WeeklyCheckDue(ctx, child)
	require.NoError(t, err)
	assert.True(t, due)
}

func TestCelebrationDue_MonthlyBirthday(t *testing.T) {
	planner, _ := newPlanner(t)

	// Born on the 16th, today is June 16th.
	child := childWith(time.Date(2025, time.January, 16, 0, 0, 0, 0, time.UTC), time.Time{}, time.Time{})
	due, err := planner.CelebrationDue(context.Background(), child)
	require.NoError(t, err)
	assert.True(t, due)
}

func TestCelebrationDue_WrongDay(t *testing.T) {
	planner, _ := newPlanner(t)

	child := childWith(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC), time.Time{}, time.Time{})
	due, err := planner.CelebrationDue(context.Background(), child)
	require.NoError(t, err)
	assert.False(t, due)
}

func TestCelebrationDue_AlreadyCelebratedThisMonth(t *testing.T) {
	planner, messages := newPlanner(t)
	ctx := context.Background()

	child := childWith(time.Date(2025, time.January, 16, 0, 0, 0, 0, time.UTC), time.Time{}, time.Time{})
	require.NoError(t, messages.Append(ctx, &domain.ChatMessage{
		ChildID:   child.ID,
		Sender:    domain.SenderAssistant,
		Kind:      domain.KindCelebration,
		Content:   "happy five months",
		Timestamp: time.Date(2025, time.June, 16, 8, 0, 0, 0, time.UTC),
	}))

	due, err := planner.CelebrationDue(ctx, child)
	require.NoError(t, err)
	assert.False(t, due)
}

func TestCelebrationDue_Newborn(t *testing.T) {
	planner, _ := newPlanner(t)

	child := childWith(time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC), time.Time{}, time.Time{})
	due, err := planner.CelebrationDue(context.Background(), child)
	require.NoError(t, err)
	assert.False(t, due)
}

func TestDue_CollectsAllKinds(t *testing.T) {
	planner, _ := newPlanner(t)
	now := fixedNow()

	// Three months old, born on the 16th, last update over two weeks ago.
	child := childWith(
		time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC),
		now.AddDate(0, 0, -20),
		time.Time{},
	)

	due, err := planner.Due(context.Background(), child)
	require.NoError(t, err)
	assert.Equal(t, []domain.MessageKind{
		domain.KindMilestoneUpdate,
		domain.KindWeeklyCheck,
		domain.KindCelebration,
	}, due)
}

func TestAgeInWeeks(t *testing.T) {
	now := fixedNow()
	assert.Equal(t, 0, AgeInWeeks(now, now))
	assert.Equal(t, 1, AgeInWeeks(now.AddDate(0, 0, -7), now))
	assert.Equal(t, 0, AgeInWeeks(now.AddDate(0, 0, 7), now))
}

func TestQuery(t *testing.T) {
	now := fixedNow()
	child := childWith(now.AddDate(0, -6, 0), time.Time{}, time.Time{})

	assert.Contains(t, Query(domain.KindMilestoneUpdate, child, now), "6 month old")
	assert.Contains(t, Query(domain.KindWeeklyCheck, child, now), "week old")
	assert.Contains(t, Query(domain.KindCelebration, child, now), "celebration")
}
