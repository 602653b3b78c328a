package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"babysteps/internal/domain"
)

// Ensure MessageStore implements the interface.
var _ domain.MessageStore = (*MessageStore)(nil)

// MessageStore is an in-memory, append-only chat history.
type MessageStore struct {
	mu       sync.RWMutex
	messages []domain.ChatMessage
}

// NewMessageStore creates an empty in-memory message store.
func NewMessageStore() *MessageStore {
	return &MessageStore{}
}

// Append adds a message to the history, assigning an ID and timestamp when
// absent.
func (s *MessageStore) Append(_ context.Context, msg *domain.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	s.messages = append(s.messages, *msg)
	return nil
}

// ListByChild returns a child's messages in append order.
func (s *MessageStore) ListByChild(_ context.Context, childID string) ([]domain.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.ChatMessage
	for _, m := range s.messages {
		if m.ChildID == childID {
			out = append(out, m)
		}
	}
	return out, nil
}

// ListByKind returns a child's messages of one kind in append order.
func (s *MessageStore) ListByKind(_ context.Context, childID string, kind domain.MessageKind) ([]domain.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.ChatMessage
	for _, m := range s.messages {
		if m.ChildID == childID && m.Kind == kind {
			out = append(out, m)
		}
	}
	return out, nil
}
