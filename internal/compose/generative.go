package compose

import (
	"context"
	"strings"
	"time"

	"github.com/phuslu/log"

	"babysteps/internal/domain"
)

// DegradedMessage replaces the answer when the generation capability fails.
// Failures are absorbed here; they never reach the chat surface as errors.
const DegradedMessage = "I'm having trouble accessing my knowledge base right now. Please try again in a moment."

// DefaultGenerateTimeout bounds a single generation call. There are no
// retries: one failed call degrades immediately to keep latency bounded.
const DefaultGenerateTimeout = 30 * time.Second

// GenerativeComposer delegates answer production to an external text
// generator, prompting it to follow the answer/follow-up convention.
type GenerativeComposer struct {
	generator domain.Generator
	timeout   time.Duration
	logger    *log.Logger
	now       func() time.Time
}

var _ domain.Composer = (*GenerativeComposer)(nil)

// GenerativeOption configures a GenerativeComposer.
type GenerativeOption func(*GenerativeComposer)

// WithTimeout overrides the per-call generation timeout.
func WithTimeout(d time.Duration) GenerativeOption {
	return func(c *GenerativeComposer) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger overrides the logger.
func WithLogger(l *log.Logger) GenerativeOption {
	return func(c *GenerativeComposer) { c.logger = l }
}

// WithGenerativeClock overrides the time source used for age derivation.
func WithGenerativeClock(now func() time.Time) GenerativeOption {
	return func(c *GenerativeComposer) { c.now = now }
}

// NewGenerativeComposer creates the generator-backed response strategy.
func NewGenerativeComposer(generator domain.Generator, opts ...GenerativeOption) *GenerativeComposer {
	c := &GenerativeComposer{
		generator: generator,
		timeout:   DefaultGenerateTimeout,
		logger:    &log.DefaultLogger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose builds a context-aware prompt and invokes the generator under a
// timeout. On any failure, including an empty body, it returns the fixed
// degraded message with no sources.
func (c *GenerativeComposer) Compose(ctx context.Context, query string, child *domain.Child, docs []domain.Document) domain.ComposedResponse {
	prompt := BuildPrompt(query, child, docs, c.now())

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.generator.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		c.logger.Warn().
			Err(err).
			Str("generator", c.generator.Name()).
			Int("documents", len(docs)).
			Msg("generation failed, returning degraded response")
		return domain.ComposedResponse{RawText: DegradedMessage}
	}
	return domain.ComposedResponse{RawText: text, Sources: categorySources(docs)}
}

// categorySources builds source references in document order, labelling each
// with its category rather than a content excerpt.
func categorySources(docs []domain.Document) []domain.SourceRef {
	out := make([]domain.SourceRef, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.SourceRef{Title: d.Title, URL: d.URL, Excerpt: string(d.Category)})
	}
	return out
}
