package compose

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babysteps/internal/domain"
)

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
}

func (g *fakeGenerator) Name() string { return "fake" }

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.reply, g.err
}

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC) }
}

func TestGenerative_Success(t *testing.T) {
	gen := &fakeGenerator{reply: "Answer: Yes.\n\nFollow-up questions:\n• More?"}
	c := NewGenerativeComposer(gen, WithGenerativeClock(fixedClock()))

	got := c.Compose(context.Background(), "can babies have water", emma(), composeDocs)
	assert.Equal(t, gen.reply, got.RawText)
	require.Len(t, got.Sources, 2)
	assert.Equal(t, "Safe Sleep for Babies", got.Sources[0].Title)
	assert.Equal(t, string(domain.CategorySleep), got.Sources[0].Excerpt)
	assert.Equal(t, string(domain.CategoryFeeding), got.Sources[1].Excerpt)
}

func TestGenerative_PromptContents(t *testing.T) {
	gen := &fakeGenerator{reply: "Answer: Yes."}
	c := NewGenerativeComposer(gen, WithGenerativeClock(fixedClock()))

	c.Compose(context.Background(), "How much sleep does she need?", emma(), composeDocs)

	assert.Contains(t, gen.prompt, `"How much sleep does she need?"`)
	assert.Contains(t, gen.prompt, "Emma is 6 months old")
	assert.Contains(t, gen.prompt, "Source: Safe Sleep for Babies")
	assert.Contains(t, gen.prompt, "Source: Breastfeeding Support")
	assert.Contains(t, gen.prompt, followUpMarker)
	assert.Contains(t, gen.prompt, DefaultBullet)
}

func TestGenerative_PromptWithoutChild(t *testing.T) {
	gen := &fakeGenerator{reply: "Answer: Yes."}
	c := NewGenerativeComposer(gen, WithGenerativeClock(fixedClock()))

	c.Compose(context.Background(), "water?", nil, composeDocs)
	assert.Contains(t, gen.prompt, "No specific child information provided")
}

func TestGenerative_PromptWithUnknownBirthday(t *testing.T) {
	gen := &fakeGenerator{reply: "Answer: Yes."}
	c := NewGenerativeComposer(gen, WithGenerativeClock(fixedClock()))

	c.Compose(context.Background(), "water?", &domain.Child{Name: "Emma"}, composeDocs)
	assert.Contains(t, gen.prompt, "age unknown")
}

func TestGenerative_FailureDegrades(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	c := NewGenerativeComposer(gen, WithGenerativeClock(fixedClock()))

	got := c.Compose(context.Background(), "anything", emma(), composeDocs)
	assert.Equal(t, DegradedMessage, got.RawText)
	assert.Empty(t, got.Sources)
}

func TestGenerative_EmptyReplyDegrades(t *testing.T) {
	gen := &fakeGenerator{reply: "   \n"}
	c := NewGenerativeComposer(gen, WithGenerativeClock(fixedClock()))

	got := c.Compose(context.Background(), "anything", emma(), composeDocs)
	assert.Equal(t, DegradedMessage, got.RawText)
	assert.Empty(t, got.Sources)
}

type slowGenerator struct{}

func (slowGenerator) Name() string { return "slow" }

func (slowGenerator) Generate(ctx context.Context, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestGenerative_TimeoutDegrades(t *testing.T) {
	c := NewGenerativeComposer(slowGenerator{}, WithTimeout(10*time.Millisecond), WithGenerativeClock(fixedClock()))

	got := c.Compose(context.Background(), "anything", emma(), composeDocs)
	assert.Equal(t, DegradedMessage, got.RawText)
	assert.Empty(t, got.Sources)
}
