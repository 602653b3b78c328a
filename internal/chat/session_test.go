package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babysteps/internal/compose"
	"babysteps/internal/corpus"
	"babysteps/internal/domain"
	"babysteps/internal/retrieval"
	"babysteps/internal/store/memory"
)

func fixedNow() time.Time {
	return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func newSession(t *testing.T, child *domain.Child) (*Session, *memory.MessageStore, *memory.ChildStore) {
	t.Helper()
	children := memory.NewChildStore()
	messages := memory.NewMessageStore()
	if child != nil {
		require.NoError(t, children.Create(context.Background(), child))
	}
	retriever := retrieval.New(corpus.Builtin(), retrieval.NewKeywordScorer(), retrieval.WithClock(fixedNow))
	deps := Deps{
		Retriever: retriever,
		Composer:  compose.NewRuleBasedComposer(),
		Parser:    compose.NewParser(),
		Children:  children,
		Messages:  messages,
	}
	return New(child, deps, WithClock(fixedNow)), messages, children
}

func emma() *domain.Child {
	return &domain.Child{
		Name:     "Emma",
		Birthday: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSend_RecordsBothSides(t *testing.T) {
	child := emma()
	session, messages, _ := newSession(t, child)
	ctx := context.Background()

	turn, err := session.Send(ctx, "how can I help my baby sleep")
	require.NoError(t, err)

	assert.Equal(t, domain.SenderUser, turn.User.Sender)
	assert.Equal(t, "how can I help my baby sleep", turn.User.Content)
	assert.Equal(t, domain.SenderAssistant, turn.Assistant.Sender)
	assert.Contains(t, turn.Assistant.Content, "Emma")
	assert.NotEmpty(t, turn.Assistant.Sources)
	assert.Len(t, turn.FollowUps, 3)

	history, err := messages.ListByChild(ctx, child.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, turn.User.ID, history[0].ID)
	assert.Equal(t, turn.Assistant.ID, history[1].ID)
}

func TestSend_FollowUpReentersAsOrdinaryTurn(t *testing.T) {
	session, _, _ := newSession(t, emma())
	ctx := context.Background()

	first, err := session.Send(ctx, "sleep routine tips")
	require.NoError(t, err)
	require.NotEmpty(t, first.FollowUps)

	second, err := session.Send(ctx, first.FollowUps[0])
	require.NoError(t, err)
	assert.Equal(t, first.FollowUps[0], second.User.Content)
	assert.NotEmpty(t, second.Assistant.Content)
}

func TestSend_NoMatchStillAnswers(t *testing.T) {
	// No child, so retrieval cannot fall back on age either.
	session, _, _ := newSession(t, nil)

	turn, err := session.Send(context.Background(), "xyzzy")
	require.NoError(t, err)
	assert.Equal(t, compose.NoMatchMessage, turn.Assistant.Content)
	assert.Empty(t, turn.Assistant.Sources)
	assert.Empty(t, turn.FollowUps)
}

func TestWelcome_Personalized(t *testing.T) {
	child := emma()
	session, messages, _ := newSession(t, child)
	ctx := context.Background()

	msg, err := session.Welcome(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.KindWelcome, msg.Kind)
	assert.Contains(t, msg.Content, "Emma")

	history, err := messages.ListByChild(ctx, child.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestWelcomeMessage_Generic(t *testing.T) {
	assert.Contains(t, WelcomeMessage(nil), "parenting assistant")
	assert.Contains(t, WelcomeMessage(&domain.Child{}), "parenting assistant")
}

func TestHistory(t *testing.T) {
	session, _, _ := newSession(t, emma())
	ctx := context.Background()

	_, err := session.Welcome(ctx)
	require.NoError(t, err)
	_, err = session.Send(ctx, "feeding schedule")
	require.NoError(t, err)

	history, err := session.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestRunProactive_MilestoneUpdateAdvancesCheck(t *testing.T) {
	child := emma()
	child.CreatedAt = fixedNow().AddDate(0, 0, -20)
	session, _, children := newSession(t, child)
	ctx := context.Background()

	sent, err := session.RunProactive(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, sent)
	assert.Equal(t, domain.KindMilestoneUpdate, sent[0].Kind)
	assert.NotEmpty(t, sent[0].Content)

	saved, err := children.Get(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, fixedNow(), saved.LastMilestoneCheck)

	// Nothing further is due immediately after.
	again, err := session.RunProactive(ctx)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestRunProactive_NilChild(t *testing.T) {
	session, _, _ := newSession(t, nil)
	sent, err := session.RunProactive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sent)
}
