// Package chat runs conversations: it drives the retrieval and composition
// pipeline for user questions and for proactively scheduled messages, and
// records both sides in the message history.
package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/phuslu/log"

	"babysteps/internal/compose"
	"babysteps/internal/domain"
	"babysteps/internal/milestones"
	"babysteps/internal/retrieval"
)

// Deps are the collaborators a session needs.
type Deps struct {
	Retriever domain.Retriever
	Composer  domain.Composer
	Parser    *compose.Parser
	Children  domain.ChildStore
	Messages  domain.MessageStore
}

// Session is a conversation scoped to one child profile. The child may be
// nil for an anonymous chat.
type Session struct {
	child  *domain.Child
	deps   Deps
	topK   int
	logger *log.Logger
	now    func() time.Time
}

// Option customizes a Session.
type Option func(*Session)

// WithTopK overrides how many documents each turn retrieves.
func WithTopK(k int) Option {
	return func(s *Session) {
		if k > 0 {
			s.topK = k
		}
	}
}

// WithLogger overrides the logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a session for the given child.
func New(child *domain.Child, deps Deps, opts ...Option) *Session {
	s := &Session{
		child:  child,
		deps:   deps,
		topK:   retrieval.DefaultLimit,
		logger: &log.DefaultLogger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Child returns the session's child profile, possibly nil.
func (s *Session) Child() *domain.Child { return s.child }

// Turn is the outcome of one question: both recorded messages plus the
// parsed follow-up suggestions.
type Turn struct {
	User      domain.ChatMessage
	Assistant domain.ChatMessage
	FollowUps []string
}

// Send records the user's question, runs it through the pipeline and records
// the assistant's answer. Selecting a suggested follow-up re-enters here as
// an ordinary question.
func (s *Session) Send(ctx context.Context, text string) (*Turn, error) {
	userMsg := domain.ChatMessage{
		ChildID:   s.childID(),
		Sender:    domain.SenderUser,
		Kind:      domain.KindChat,
		Content:   text,
		Timestamp: s.now(),
	}
	if err := s.deps.Messages.Append(ctx, &userMsg); err != nil {
		return nil, fmt.Errorf("record question: %w", err)
	}

	docs := s.deps.Retriever.Retrieve(text, s.child, s.topK)
	resp := s.deps.Composer.Compose(ctx, text, s.child, docs)
	parsed := s.deps.Parser.Parse(resp.RawText)

	assistantMsg := domain.ChatMessage{
		ChildID:   s.childID(),
		Sender:    domain.SenderAssistant,
		Kind:      domain.KindChat,
		Content:   parsed.AnswerBody,
		Sources:   resp.Sources,
		Timestamp: s.now(),
	}
	if err := s.deps.Messages.Append(ctx, &assistantMsg); err != nil {
		return nil, fmt.Errorf("record answer: %w", err)
	}

	return &Turn{User: userMsg, Assistant: assistantMsg, FollowUps: parsed.FollowUpQuestions}, nil
}

// Welcome records and returns the opening greeting.
func (s *Session) Welcome(ctx context.Context) (*domain.ChatMessage, error) {
	msg := domain.ChatMessage{
		ChildID:   s.childID(),
		Sender:    domain.SenderAssistant,
		Kind:      domain.KindWelcome,
		Content:   WelcomeMessage(s.child),
		Timestamp: s.now(),
	}
	if err := s.deps.Messages.Append(ctx, &msg); err != nil {
		return nil, fmt.Errorf("record welcome: %w", err)
	}
	return &msg, nil
}

// History returns the session child's full message history.
func (s *Session) History(ctx context.Context) ([]domain.ChatMessage, error) {
	return s.deps.Messages.ListByChild(ctx, s.childID())
}

// RunProactive sends any proactive messages the child is due for and returns
// them. Sending a milestone update advances the child's last-check marker.
func (s *Session) RunProactive(ctx context.Context) ([]domain.ChatMessage, error) {
	if s.child == nil {
		return nil, nil
	}
	planner := milestones.NewPlanner(s.deps.Messages, milestones.WithClock(s.now))
	due, err := planner.Due(ctx, s.child)
	if err != nil {
		return nil, err
	}

	var sent []domain.ChatMessage
	for _, kind := range due {
		query := milestones.Query(kind, s.child, s.now())
		docs := s.deps.Retriever.Retrieve(query, s.child, s.topK)
		resp := s.deps.Composer.Compose(ctx, query, s.child, docs)
		parsed := s.deps.Parser.Parse(resp.RawText)

		msg := domain.ChatMessage{
			ChildID:   s.child.ID,
			Sender:    domain.SenderAssistant,
			Kind:      kind,
			Content:   parsed.AnswerBody,
			Sources:   resp.Sources,
			Timestamp: s.now(),
		}
		if err := s.deps.Messages.Append(ctx, &msg); err != nil {
			return sent, fmt.Errorf("record %s message: %w", kind, err)
		}
		sent = append(sent, msg)

		if kind == domain.KindMilestoneUpdate {
			s.child.LastMilestoneCheck = s.now()
			if err := s.deps.Children.Update(ctx, s.child); err != nil {
				return sent, fmt.Errorf("advance milestone check: %w", err)
			}
		}
		s.logger.Info().
			Str("child", s.child.ID).
			Str("kind", string(kind)).
			Msg("proactive message sent")
	}
	return sent, nil
}

func (s *Session) childID() string {
	if s.child == nil {
		return ""
	}
	return s.child.ID
}
